package httpservice

import (
	"encoding"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Exact sets the DecoderConfig.ErrorUnused flag, so that unknown configuration
// keys, e.g. a misspelled operation property, are errors.
//
// This:
//
//	v := viper.New()
//	v.UnmarshalExact(config)
//
// is the same as this:
//
//	v := viper.New()
//	v.Unmarshal(config, httpservice.Exact)
func Exact(dc *mapstructure.DecoderConfig) {
	dc.ErrorUnused = true
}

// Merge takes any number of slices of decoder options and merges them
// into a single option.
//
// This function avoids consuming more heap to merge slices.  It simply iterates over all
// the given options, applying them in order.
func Merge(opts ...[]viper.DecoderConfigOption) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		for _, group := range opts {
			for _, o := range group {
				o(dc)
			}
		}
	}
}

// DefaultDecodeHooks is a viper option that sets the decode hooks to more useful defaults.
// This includes the ones set by viper itself, plus TextUnmarshalerHookFunc, which is
// what allows Method and Kind values to be written as strings in configuration.
func DefaultDecodeHooks(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		TextUnmarshalerHookFunc,
	)
}

var (
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// TextUnmarshalerHookFunc is a mapstructure.DecodeHookFunc that honors the destination
// type's encoding.TextUnmarshaler implementation, using it to convert the src.  The src
// parameter must be a string, or else this function does not attempt any conversion.
//
// The to type must be either a non-pointer type whose pointer implements
// encoding.TextUnmarshaler, e.g. Method and Kind, or a pointer type that itself
// implements encoding.TextUnmarshaler.  More than one level of indirection is not supported.
//
// In any case where this function does no conversion, it returns src and a nil error.  This
// is the contract required by mapstructure.DecodeHookFunc.
func TextUnmarshalerHookFunc(_, to reflect.Type, src interface{}) (interface{}, error) {
	if text, ok := src.(string); ok {
		switch {
		case to.Kind() != reflect.Ptr && reflect.PtrTo(to).Implements(textUnmarshalerType):
			ptr := reflect.New(to)
			tu := ptr.Interface().(encoding.TextUnmarshaler)
			err := tu.UnmarshalText([]byte(text))
			return ptr.Elem().Interface(), err

		case to.Kind() == reflect.Ptr && to.Elem().Kind() != reflect.Ptr && to.Implements(textUnmarshalerType):
			ptr := reflect.New(to.Elem())
			tu := ptr.Interface().(encoding.TextUnmarshaler)
			err := tu.UnmarshalText([]byte(text))
			return tu, err
		}
	}

	return src, nil
}
