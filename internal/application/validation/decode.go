package validation

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Defaulter lo implementan los shapes con valores por defecto; se invoca antes de leer el payload.
type Defaulter interface {
	SetDefaults()
}

var (
	jsonUnmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	nullLiteral         = []byte("null")
)

// DecodeMap construye T a partir de un mapa campo -> valor crudo (ej. body JSON ya parseado o query).
func DecodeMap[T any](v *Validator, m map[string]any) (T, error) {
	data, err := json.Marshal(m)
	if err != nil {
		var zero T
		return zero, &ValidationError{Errors: []FieldError{{Tag: TagType, Message: "mapa no serializable: " + err.Error()}}}
	}
	return DecodeJSON[T](v, data)
}

// DecodeJSON construye T a partir de un documento JSON.
// Reúne un error por campo (presencia, null, tipo y reglas de valor) y no devuelve valores parciales.
func DecodeJSON[T any](v *Validator, data []byte) (T, error) {
	var out T
	var set errorSet
	d := decoder{errs: &set}
	d.value(reflect.ValueOf(&out).Elem(), bytes.TrimSpace(data), "")
	if err := v.collect(&out, &set); err != nil {
		var zero T
		return zero, err
	}
	if err := set.err(); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

type decoder struct {
	errs *errorSet
}

func (d decoder) value(rv reflect.Value, raw json.RawMessage, path string) bool {
	t := rv.Type()
	if bytes.Equal(raw, nullLiteral) {
		switch {
		case isTriState(t):
			m := reflect.MakeMapWithSize(t, 1)
			m.SetMapIndex(reflect.ValueOf(false), reflect.Zero(t.Elem()))
			rv.Set(m)
		case t.Kind() == reflect.Ptr:
			rv.Set(reflect.Zero(t))
		default:
			d.errs.add(path, TagNotNull, "no puede ser null")
			return false
		}
		return true
	}

	switch {
	case isTriState(t):
		elem := reflect.New(t.Elem()).Elem()
		if !d.value(elem, raw, path) {
			return false
		}
		m := reflect.MakeMapWithSize(t, 1)
		m.SetMapIndex(reflect.ValueOf(true), elem)
		rv.Set(m)
		return true
	case t.Kind() == reflect.Ptr:
		p := reflect.New(t.Elem())
		if !d.value(p.Elem(), raw, path) {
			return false
		}
		rv.Set(p)
		return true
	case isShape(t):
		return d.object(rv, raw, path)
	case t.Kind() == reflect.Slice && isShape(t.Elem()):
		return d.list(rv, raw, path)
	case isNumberKind(t.Kind()):
		return d.number(rv, raw, path)
	}

	if err := json.Unmarshal(raw, rv.Addr().Interface()); err != nil {
		d.errs.add(path, TagType, typeMessage(t, err))
		return false
	}
	return true
}

func (d decoder) object(rv reflect.Value, raw json.RawMessage, path string) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		d.errs.add(path, TagType, "se esperaba un objeto")
		return false
	}
	if def, ok := rv.Addr().Interface().(Defaulter); ok {
		def.SetDefaults()
	}

	ok := true
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := jsonName(f)
		if !f.IsExported() || name == "" {
			continue
		}
		fp := joinPath(path, name)
		val, found := obj[name]
		if !found {
			if hasRule(f, TagPresent) {
				d.errs.add(fp, TagPresent, "campo requerido")
				ok = false
			}
			continue
		}
		if !d.value(rv.Field(i), val, fp) {
			ok = false
		}
	}
	return ok
}

func (d decoder) list(rv reflect.Value, raw json.RawMessage, path string) bool {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		d.errs.add(path, TagType, "se esperaba una lista")
		return false
	}
	s := reflect.MakeSlice(rv.Type(), len(items), len(items))
	ok := true
	for i, item := range items {
		if !d.value(s.Index(i), item, fmt.Sprintf("%s[%d]", path, i)) {
			ok = false
		}
	}
	rv.Set(s)
	return ok
}

// number acepta un número JSON o un string con un número JSON ("2", "2.5").
// En campos enteros solo se aceptan valores integrales: 2 y 2.0 sí, 2.5 no.
func (d decoder) number(rv reflect.Value, raw json.RawMessage, path string) bool {
	text, ok := numberText(raw)
	if ok {
		ok = setNumber(rv, text)
	}
	if !ok {
		d.errs.add(path, TagType, fmt.Sprintf("tipo inválido: se esperaba %s, se recibió %s", kindName(rv.Type()), jsonKind(raw)))
	}
	return ok
}

func numberText(raw json.RawMessage) (string, bool) {
	text := string(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		text = strings.TrimSpace(s)
	}
	// un JSON válido que empieza por dígito o '-' solo puede ser un número
	if text == "" || !(text[0] == '-' || (text[0] >= '0' && text[0] <= '9')) || !json.Valid([]byte(text)) {
		return "", false
	}
	return text, true
}

func setNumber(rv reflect.Value, text string) bool {
	switch {
	case rv.CanInt():
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(text, 64)
			if ferr != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
				return false
			}
			n = int64(f)
		}
		if rv.OverflowInt(n) {
			return false
		}
		rv.SetInt(n)
	case rv.CanUint():
		n, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(text, 64)
			if ferr != nil || f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
				return false
			}
			n = uint64(f)
		}
		if rv.OverflowUint(n) {
			return false
		}
		rv.SetUint(n)
	default:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || rv.OverflowFloat(f) {
			return false
		}
		rv.SetFloat(f)
	}
	return true
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func jsonKind(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "vacío"
	}
	switch raw[0] {
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case '[':
		return "lista"
	case '{':
		return "objeto"
	}
	return "número"
}

// isShape: struct propio que se recorre campo a campo (time.Time, decimal.Decimal y similares no).
func isShape(t reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	pt := reflect.PointerTo(t)
	return !pt.Implements(jsonUnmarshalerType) && !pt.Implements(textUnmarshalerType)
}

// isTriState detecta nullable.Nullable[T] (map[bool]T): ausente, null o valor.
func isTriState(t reflect.Type) bool {
	return t.Kind() == reflect.Map && t.Key().Kind() == reflect.Bool
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func typeMessage(t reflect.Type, err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("tipo inválido: se esperaba %s, se recibió %s", kindName(t), typeErr.Value)
	}
	var timeErr *time.ParseError
	if errors.As(err, &timeErr) || t == reflect.TypeOf(time.Time{}) {
		return "fecha inválida: se espera ISO-8601 (RFC 3339)"
	}
	return "valor inválido: " + err.Error()
}

func kindName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "entero"
	case reflect.Float32, reflect.Float64:
		return "número"
	case reflect.Slice, reflect.Array:
		return "lista"
	case reflect.Map, reflect.Struct:
		return "objeto"
	}
	return t.String()
}
