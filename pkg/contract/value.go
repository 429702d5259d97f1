package contract

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// ToBigInt coerces a raw numeric value into *big.Int without going through float64
func ToBigInt(v RawValue) (*big.Int, error) {
	switch x := v.(type) {
	case *big.Int:
		if x == nil {
			return nil, fmt.Errorf("nil big int")
		}
		return new(big.Int).Set(x), nil
	case big.Int:
		return new(big.Int).Set(&x), nil
	case json.Number:
		return parseBigInt(string(x))
	case string:
		return parseBigInt(x)
	case int:
		return big.NewInt(int64(x)), nil
	case int32:
		return big.NewInt(int64(x)), nil
	case int64:
		return big.NewInt(x), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint64:
		return new(big.Int).SetUint64(x), nil
	case nil:
		return nil, fmt.Errorf("missing numeric value")
	default:
		return nil, fmt.Errorf("unsupported numeric value of type %T", v)
	}
}

func parseBigInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("invalid integer: %q", s)
	}
	return n, nil
}

// ToInt64 ...
func ToInt64(v RawValue) (int64, error) {
	n, err := ToBigInt(v)
	if err != nil {
		return 0, err
	}
	if !n.IsInt64() {
		return 0, fmt.Errorf("integer out of range: %s", n.String())
	}
	return n.Int64(), nil
}

// ToString ...
func ToString(v RawValue) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	case nil:
		return "", fmt.Errorf("missing string value")
	default:
		return "", fmt.Errorf("unsupported string value of type %T", v)
	}
}

// ToSlice ...
func ToSlice(v RawValue) ([]interface{}, error) {
	switch x := v.(type) {
	case []interface{}:
		return x, nil
	case []string:
		result := make([]interface{}, 0, len(x))
		for _, s := range x {
			result = append(result, s)
		}
		return result, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported list value of type %T", v)
	}
}
