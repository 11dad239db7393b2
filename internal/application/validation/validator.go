package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/nullable"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-pos/internal/application/dto"
)

// Validator aplica las reglas de valor (email, enums, image_url, dive) declaradas en los tags `validate`.
// Se construye una vez y es seguro para uso concurrente.
type Validator struct {
	v *validator.Validate
}

// New construye el validador con las reglas propias registradas.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return jsonName(f)
	})

	// present se comprueba al decodificar (presencia de la clave), aquí no aplica.
	mustRegister(v, TagPresent, func(validator.FieldLevel) bool { return true })
	mustRegister(v, TagUserRole, func(fl validator.FieldLevel) bool {
		return dto.UserRole(fl.Field().String()).IsValid()
	})
	mustRegister(v, TagMovementType, func(fl validator.FieldLevel) bool {
		return dto.MovementType(fl.Field().String()).IsValid()
	})
	mustRegister(v, TagImageURL, func(fl validator.FieldLevel) bool {
		return hasImageExtension(fl.Field().String())
	})

	registerNullable[string](v)
	registerNullable[bool](v)
	registerNullable[int64](v)
	registerNullable[float64](v)
	registerNullable[decimal.Decimal](v)
	registerNullable[time.Time](v)
	registerNullable[dto.UserRole](v)
	registerNullable[[]dto.IngredientCreate](v)

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registrar regla %s: %v", tag, err))
	}
}

// registerNullable hace que las reglas se evalúen sobre el valor contenido.
// Ausente o null se exponen como puntero nil (los tags usan omitnil); un valor
// especificado, aunque sea "" o 0, se valida siempre.
func registerNullable[T any](v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		n, ok := field.Interface().(nullable.Nullable[T])
		if !ok {
			return (*T)(nil)
		}
		val, err := n.Get()
		if err != nil {
			return (*T)(nil)
		}
		return &val
	}, nullable.Nullable[T]{})
}

// Struct valida las reglas de valor de s. Devuelve *ValidationError o nil.
func (v *Validator) Struct(s any) error {
	var set errorSet
	if err := v.collect(s, &set); err != nil {
		return err
	}
	return set.err()
}

// Var valida un valor suelto con un tag (ej. "email").
func (v *Validator) Var(field string, value any, tag string) error {
	err := v.v.Var(value, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validación: %w", err)
	}
	var set errorSet
	for _, fe := range verrs {
		set.add(field, fe.Tag(), ruleMessage(fe))
	}
	return set.err()
}

func (v *Validator) collect(s any, set *errorSet) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validación: %w", err)
	}
	for _, fe := range verrs {
		set.add(fieldPath(fe.Namespace()), fe.Tag(), ruleMessage(fe))
	}
	return nil
}

// fieldPath quita el nombre del struct raíz: "OrderCreate.items[0].quantity" -> "items[0].quantity".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return "email inválido"
	case TagUserRole:
		return "rol inválido: se espera admin o worker"
	case TagMovementType:
		return "tipo de movimiento inválido: se espera restock, usage, waste o adjustment"
	case TagImageURL:
		return MsgInvalidImageFormat
	case "datetime":
		return "fecha inválida: se espera " + dateLayoutHint(fe.Param())
	case "min":
		return "debe ser mayor o igual a " + fe.Param()
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("no cumple la regla %s=%s", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("no cumple la regla %s", fe.Tag())
	}
}

func dateLayoutHint(layout string) string {
	if layout == "2006-01-02" {
		return "YYYY-MM-DD"
	}
	return layout
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func hasRule(f reflect.StructField, rule string) bool {
	for _, r := range strings.Split(f.Tag.Get("validate"), ",") {
		if r == rule {
			return true
		}
	}
	return false
}
