package httpservice

import (
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"sort"

	"github.com/gorilla/schema"
	"github.com/spf13/cast"
)

// QueryTag is the struct tag consulted when a struct argument is expanded
// into query parameters or form fields.
const QueryTag = "query"

var queryEncoder = schema.NewEncoder()

func init() {
	queryEncoder.SetAliasTag(QueryTag)
}

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

// FormatValue converts an argument into one or more strings suitable for the
// wire.  Slices and arrays, other than []byte, produce one string per element.
// Everything else produces exactly one string.
func FormatValue(v any) ([]string, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		if rv.Type().Elem().Kind() != reflect.Uint8 {
			values := make([]string, 0, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				s, err := FormatScalar(rv.Index(i).Interface())
				if err != nil {
					return nil, err
				}

				values = append(values, s)
			}

			return values, nil
		}
	}

	s, err := FormatScalar(v)
	if err != nil {
		return nil, err
	}

	return []string{s}, nil
}

// FormatScalar converts a single value into a string.  Values that implement
// encoding.TextMarshaler use that.  Otherwise, spf13/cast is used for the usual
// primitive types, and fmt is the fallback.
func FormatScalar(v any) (string, error) {
	if tm, ok := v.(encoding.TextMarshaler); ok {
		if IsAbsent(v) {
			return "", nil
		}

		text, err := tm.MarshalText()
		return string(text), err
	}

	if s, err := cast.ToStringE(v); err == nil {
		return s, nil
	}

	return fmt.Sprint(v), nil
}

// EncodeValues expands a struct, a pointer to a struct, or a map into
// name/value pairs.  Structs are encoded with gorilla/schema, using the
// QueryTag struct tag for names.  Map keys are formatted with FormatScalar
// and visited in sorted order.
//
// The second return value is false if v is none of those kinds, in which
// case dst is left untouched.
func EncodeValues(v any, dst url.Values) (bool, error) {
	rv := reflect.Indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Struct:
		if rv.Type().Implements(textMarshalerType) || reflect.PtrTo(rv.Type()).Implements(textMarshalerType) {
			return false, nil
		}

		return true, queryEncoder.Encode(v, dst)

	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		byKey := make(map[string]reflect.Value, rv.Len())
		for it := rv.MapRange(); it.Next(); {
			k, err := FormatScalar(it.Key().Interface())
			if err != nil {
				return true, err
			}

			keys = append(keys, k)
			byKey[k] = it.Value()
		}

		sort.Strings(keys)
		for _, k := range keys {
			values, err := FormatValue(byKey[k].Interface())
			if err != nil {
				return true, err
			}

			dst[k] = append(dst[k], values...)
		}

		return true, nil

	default:
		return false, nil
	}
}
