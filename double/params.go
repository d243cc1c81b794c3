package double

import (
	"fmt"
	"reflect"
	"slices"

	jsoniter "github.com/json-iterator/go"
)

// recordedParams is the projection of one invocation's parameters that a mock
// stores in its call log: one entry per parameter position, ignored positions
// omitted.
type recordedParams []any

// projectParams splits a parameter value into its positional parts and drops
// the ignored positions.
//
// Structs and arrays are treated as parameter tuples with one position per
// field/element, in declaration order; every other value is a single position
// with index 0. Unexported struct fields cannot be read reflectively and are
// skipped, so parameter structs should only carry exported fields.
func projectParams(params any, ignored []int) recordedParams {
	value := reflect.ValueOf(params)

	switch value.Kind() {
	case reflect.Struct:
		kept := make(recordedParams, 0, value.NumField())
		for i := 0; i < value.NumField(); i++ {
			if slices.Contains(ignored, i) || !value.Field(i).CanInterface() {
				continue
			}
			kept = append(kept, snapshotValue(value.Field(i).Interface()))
		}

		return kept

	case reflect.Array:
		kept := make(recordedParams, 0, value.Len())
		for i := 0; i < value.Len(); i++ {
			if slices.Contains(ignored, i) {
				continue
			}
			kept = append(kept, snapshotValue(value.Index(i).Interface()))
		}

		return kept

	default:
		if slices.Contains(ignored, 0) {
			return recordedParams{}
		}

		return recordedParams{snapshotValue(params)}
	}
}

// snapshotValue deep-copies one parameter position so the log keeps the value
// as it was at call time, not an alias into the caller's data. Kinds without
// shared backing need no copy; everything else goes through a JSON round-trip
// into the same concrete type, falling back to the raw value for types JSON
// cannot carry. The assertion side runs through the same transform, so both
// sides of a comparison share one representation.
func snapshotValue(v any) any {
	value := reflect.ValueOf(v)

	switch value.Kind() {
	case reflect.Invalid, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return v
	}

	data, marshalErr := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(v)
	if marshalErr != nil {
		return v
	}

	copied := reflect.New(value.Type())
	if unmarshalErr := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, copied.Interface()); unmarshalErr != nil {
		return v
	}

	return copied.Elem().Interface()
}

// equal compares two projections by value equality, position by position.
func (rp recordedParams) equal(other recordedParams) bool {
	return reflect.DeepEqual(rp, other)
}

// String renders the projection for diagnostic messages.
func (rp recordedParams) String() string {
	rendered, err := jsoniter.ConfigFastest.MarshalToString([]any(rp))
	if err != nil {
		return fmt.Sprintf("%+v", []any(rp))
	}

	return rendered
}

func renderCallLog(callLog []recordedParams) string {
	if len(callLog) == 0 {
		return "no logged calls"
	}

	plain := make([][]any, 0, len(callLog))
	for _, logged := range callLog {
		plain = append(plain, []any(logged))
	}

	out, err := jsoniter.ConfigFastest.MarshalToString(plain)
	if err != nil {
		return fmt.Sprintf("%+v", plain)
	}

	return out
}
