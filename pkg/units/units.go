package units

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultDecimals is the number of decimals of the base currency (wei -> ether)
const DefaultDecimals = 18

// ErrNegativeAmount ...
var ErrNegativeAmount = errors.New("amount must not be negative")

// FormatUnits converts an integer amount of the smallest unit into a decimal string.
// The result always has at least one fractional digit: 10^18 with 18 decimals is "1.0".
func FormatUnits(raw *big.Int, decimals int32) string {
	if raw == nil {
		raw = new(big.Int)
	}
	s := decimal.NewFromBigInt(raw, -decimals).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ParseUnits is the inverse of FormatUnits
func ParseUnits(s string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("parse units %q: %w", s, err)
	}
	if d.IsNegative() {
		return nil, ErrNegativeAmount
	}

	shifted := d.Shift(decimals)
	if !shifted.IsInteger() {
		return nil, fmt.Errorf("parse units %q: too many decimal places (max %d)", s, decimals)
	}
	return shifted.BigInt(), nil
}
