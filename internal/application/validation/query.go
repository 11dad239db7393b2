package validation

import (
	"reflect"
	"strconv"
)

// DecodeQuery construye T desde parámetros de query (todos texto).
// Cada valor se convierte según el tipo del campo destino; si no se puede convertir
// se deja como texto y el decodificador reporta el error de tipo del campo.
func DecodeQuery[T any](v *Validator, params map[string]string) (T, error) {
	kinds := fieldKinds(reflect.TypeOf((*T)(nil)).Elem())
	m := make(map[string]any, len(params))
	for key, raw := range params {
		m[key] = coerce(kinds[key], raw)
	}
	return DecodeMap[T](v, m)
}

func fieldKinds(t reflect.Type) map[string]reflect.Kind {
	kinds := make(map[string]reflect.Kind)
	if t.Kind() != reflect.Struct {
		return kinds
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := jsonName(f)
		if !f.IsExported() || name == "" {
			continue
		}
		ft := f.Type
		for ft.Kind() == reflect.Ptr || isTriState(ft) {
			ft = ft.Elem()
		}
		kinds[name] = ft.Kind()
	}
	return kinds
}

func coerce(k reflect.Kind, raw string) any {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return n
		}
	case reflect.Float32, reflect.Float64:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	case reflect.Bool:
		if b, err := strconv.ParseBool(raw); err == nil {
			return b
		}
	}
	return raw
}
