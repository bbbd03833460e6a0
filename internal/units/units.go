package units

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"marketsync/internal/errs"

	"github.com/ethereum/go-ethereum/common/math"
)

// Decimals is the number of fractional digits between the smallest unit and
// the display denomination.
const Decimals = 18

// BasisPointsDenominator expresses fees in parts per 10,000.
const BasisPointsDenominator = 10_000

// MaxAmount is the largest amount the ledger can store, 2^256-1. Larger
// values would be wrapped by the ABI encoder.
var MaxAmount = new(big.Int).Set(math.MaxBig256)

var (
	decimalPattern = regexp.MustCompile(`^(\d+)(?:\.(\d*))?$|^\.(\d+)$`)
	integerPattern = regexp.MustCompile(`^\d+$`)

	scale = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)
)

// ToSmallestUnit converts a decimal amount ("1.5") into its integer smallest-unit form.
func ToSmallestUnit(decimal string) (string, error) {
	v, err := ParseDecimal(decimal)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// ParseDecimal converts a decimal amount into an exact smallest-unit integer.
func ParseDecimal(decimal string) (*big.Int, error) {
	s := strings.TrimSpace(decimal)
	m := decimalPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("%w: %q is not a non-negative decimal", errs.ErrInvalidAmount, decimal)
	}

	whole, frac := m[1], m[2]
	if m[3] != "" {
		whole, frac = "0", m[3]
	}
	if len(frac) > Decimals {
		return nil, fmt.Errorf("%w: %q has more than %d fractional digits", errs.ErrInvalidAmount, decimal, Decimals)
	}

	digits := whole + frac + strings.Repeat("0", Decimals-len(frac))
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidAmount, decimal)
	}
	return inRange(v, decimal)
}

// ToDecimalString converts an integer smallest-unit amount into canonical decimal form.
func ToDecimalString(integer string) (string, error) {
	v, err := ParseInteger(integer)
	if err != nil {
		return "", err
	}
	return FormatDecimal(v), nil
}

// ParseInteger parses a non-negative base-10 smallest-unit amount.
func ParseInteger(integer string) (*big.Int, error) {
	s := strings.TrimSpace(integer)
	if !integerPattern.MatchString(s) {
		return nil, fmt.Errorf("%w: %q is not a non-negative integer", errs.ErrInvalidAmount, integer)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidAmount, integer)
	}
	return inRange(v, integer)
}

// InRange reports whether v is a non-negative amount the ledger can store.
func InRange(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(MaxAmount) <= 0
}

func inRange(v *big.Int, raw string) (*big.Int, error) {
	if !InRange(v) {
		return nil, fmt.Errorf("%w: %q exceeds the largest ledger amount", errs.ErrInvalidAmount, raw)
	}
	return v, nil
}

// FormatDecimal renders v with at least one fractional digit and no
// redundant trailing zeros: 10^18 -> "1.0", 15*10^17 -> "1.5".
func FormatDecimal(v *big.Int) string {
	if v == nil || v.Sign() < 0 {
		return "0.0"
	}

	whole, frac := new(big.Int).QuoRem(v, scale, new(big.Int))
	fracStr := frac.String()
	fracStr = strings.Repeat("0", Decimals-len(fracStr)) + fracStr
	fracStr = strings.TrimRight(fracStr, "0")
	if fracStr == "" {
		fracStr = "0"
	}
	return whole.String() + "." + fracStr
}

// Display renders an integer amount with a fixed number of decimal places,
// rounding half up. It never fails: bad input renders as zero, since it
// only feeds presentation.
func Display(integer string, places int) string {
	if places < 0 {
		places = 0
	}
	v, err := ParseInteger(integer)
	if err != nil {
		return formatFixed(big.NewInt(0), places)
	}
	return formatFixed(v, places)
}

func formatFixed(v *big.Int, places int) string {
	r := new(big.Rat).SetFrac(v, scale)
	return r.FloatString(places)
}

// Fee is the basis-point share of amount, truncated toward zero.
func Fee(amount *big.Int, bps uint64) *big.Int {
	if amount == nil {
		return new(big.Int)
	}
	fee := new(big.Int).Mul(amount, new(big.Int).SetUint64(bps))
	return fee.Quo(fee, big.NewInt(BasisPointsDenominator))
}

// NetOfFee is what remains of amount after the basis-point fee.
func NetOfFee(amount *big.Int, bps uint64) *big.Int {
	if amount == nil {
		return new(big.Int)
	}
	return new(big.Int).Sub(amount, Fee(amount, bps))
}

// PercentToBasisPoints converts a percentage such as "2.5" into 250.
func PercentToBasisPoints(percent string) (uint64, error) {
	s := strings.TrimSpace(percent)
	if !decimalPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %q is not a valid percentage", errs.ErrInvalidAmount, percent)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok || r.Sign() < 0 {
		return 0, fmt.Errorf("%w: %q is not a valid percentage", errs.ErrInvalidAmount, percent)
	}

	bps := new(big.Rat).Mul(r, big.NewRat(100, 1))
	if !bps.IsInt() {
		return 0, fmt.Errorf("%w: %q is finer than one basis point", errs.ErrInvalidAmount, percent)
	}
	if bps.Num().Cmp(big.NewInt(BasisPointsDenominator)) > 0 {
		return 0, fmt.Errorf("%w: %q exceeds 100%%", errs.ErrInvalidAmount, percent)
	}
	return bps.Num().Uint64(), nil
}
