package convert

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// buildHook assembles the decode hook chain: caller-supplied hooks first,
// then duration, text-unmarshaler and slice conversion, with scalar
// parsing last.
func buildHook(cfg config) mapstructure.DecodeHookFunc {
	hooks := make([]mapstructure.DecodeHookFunc, 0, len(cfg.hooks)+4)
	hooks = append(hooks, cfg.hooks...)
	hooks = append(hooks,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		scalarHook(cfg.booleanStates),
	)
	return mapstructure.ComposeDecodeHookFunc(hooks...)
}

// scalarHook converts string values into boolean and numeric targets.
// Booleans go through the configured state table, so "yes" and "off" work
// the same way they do in the typed store getters. Numeric strings parse
// at the target field's bit width: a value the field cannot represent is
// a conversion error, not a wrap-around.
func scalarHook(states map[string]bool) mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		value := data.(string)
		switch to.Kind() {
		case reflect.Bool:
			b, ok := states[strings.ToLower(value)]
			if !ok {
				return nil, fmt.Errorf("%q is not a recognized boolean", value)
			}
			return b, nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(strings.TrimSpace(value), 10, to.Bits())
			if err != nil {
				return nil, fmt.Errorf("%q is not a valid %s", value, to.Kind())
			}
			return n, nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			n, err := strconv.ParseUint(strings.TrimSpace(value), 10, to.Bits())
			if err != nil {
				return nil, fmt.Errorf("%q is not a valid %s", value, to.Kind())
			}
			return n, nil
		case reflect.Float32, reflect.Float64:
			f, err := strconv.ParseFloat(strings.TrimSpace(value), to.Bits())
			if err != nil {
				return nil, fmt.Errorf("%q is not a valid %s", value, to.Kind())
			}
			return f, nil
		default:
			return data, nil
		}
	}
}
