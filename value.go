package gomvt

import (
	"encoding/json"
	"fmt"
	"math"
)

//resolveValue classifies an arbitrary property value into a wire value kind.
//Booleans are always stored under the bool kind, never the int kind.
//Anything outside {string, bool, float, integer} is escaped to its JSON text
//and stored under the string kind; a value JSON cannot represent is an error
//and fails the whole tile encode.
func resolveValue(v interface{}) (MVTValue, error) {
	switch t := v.(type) {
	case string:
		return MVTValue{Kind: mvtString, Str: t}, nil
	case bool:
		return MVTValue{Kind: mvtBool, Bool: t}, nil
	case float64:
		return MVTValue{Kind: mvtDouble, Double: t}, nil
	case float32:
		return MVTValue{Kind: mvtDouble, Double: float64(t)}, nil
	case int:
		return MVTValue{Kind: mvtInt, Int: int64(t)}, nil
	case int8:
		return MVTValue{Kind: mvtInt, Int: int64(t)}, nil
	case int16:
		return MVTValue{Kind: mvtInt, Int: int64(t)}, nil
	case int32:
		return MVTValue{Kind: mvtInt, Int: int64(t)}, nil
	case int64:
		return MVTValue{Kind: mvtInt, Int: t}, nil
	case uint:
		return MVTValue{Kind: mvtInt, Int: int64(t)}, nil
	case uint8:
		return MVTValue{Kind: mvtInt, Int: int64(t)}, nil
	case uint16:
		return MVTValue{Kind: mvtInt, Int: int64(t)}, nil
	case uint32:
		return MVTValue{Kind: mvtInt, Int: int64(t)}, nil
	case uint64:
		if t > math.MaxInt64 {
			return MVTValue{}, fmt.Errorf("value %d overflows int_value", t)
		}
		return MVTValue{Kind: mvtInt, Int: int64(t)}, nil
	}
	escaped, err := json.Marshal(v)
	if err != nil {
		return MVTValue{}, fmt.Errorf("unresolvable value %v: %w", v, err)
	}
	return MVTValue{Kind: mvtString, Str: string(escaped)}, nil
}
