package transport

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// EncodeValues flattens a typed parameter struct (or map) into url.Values.
//
// Keys come from `mapstructure` tags. Nil pointers and nil interfaces are
// omitted, as are fields tagged omitempty holding a zero value. Integer-like
// enums are encoded by their numeric value, never by their String method.
func EncodeValues(params any) (url.Values, error) {
	values := url.Values{}
	if params == nil {
		return values, nil
	}
	if v, ok := params.(url.Values); ok {
		copyValues(values, v)
		return values, nil
	}

	var flat map[string]interface{}
	if err := mapstructure.Decode(params, &flat); err != nil {
		return nil, fmt.Errorf("failed to flatten params: %w", err)
	}

	for key, raw := range flat {
		s, ok, err := formatValue(reflect.ValueOf(raw))
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", key, err)
		}
		if ok {
			values.Set(key, s)
		}
	}

	return values, nil
}

// formatValue renders a scalar. ok is false for nil values.
func formatValue(v reflect.Value) (string, bool, error) {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return "", false, nil
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return "", false, nil
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), true, nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true, nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true, nil
	default:
		return "", false, fmt.Errorf("unsupported kind %s", v.Kind())
	}
}
