package distributor

import (
	"bytes"
	"encoding/json"
	"math/bits"
	"strings"

	"github.com/iov-one/feesplit/errors"
	"github.com/shopspring/decimal"
)

// Weight is a fraction expressed in basis points. 10000 basis points
// represent 100%.
type Weight uint32

const (
	// BasisPoints is the number of basis points in a whole.
	BasisPoints = 10000

	// MaxWeight represents 100%.
	MaxWeight Weight = BasisPoints
)

var (
	hundred = decimal.New(100, 0)
	bpsUnit = decimal.New(BasisPoints, 0)
)

// Validate returns an error if the weight is greater than 100%.
func (w Weight) Validate() error {
	if w > MaxWeight {
		return errors.Wrapf(ErrInvalidWeight, "%s is more than 100%%", w)
	}
	return nil
}

// Apply returns floor(amount * w). The weight must not exceed MaxWeight.
func (w Weight) Apply(amount uint64) uint64 {
	if w > MaxWeight {
		panic("weight out of range")
	}
	hi, lo := bits.Mul64(amount, uint64(w))
	// hi < BasisPoints because w <= BasisPoints, so the quotient fits.
	q, _ := bits.Div64(hi, lo, BasisPoints)
	return q
}

// Decimal returns the weight as a fraction of one.
func (w Weight) Decimal() decimal.Decimal {
	return decimal.New(int64(w), 0).Div(bpsUnit)
}

// String returns a percentage representation, for example "12.5%".
func (w Weight) String() string {
	return decimal.New(int64(w), -2).String() + "%"
}

// ParseWeight decodes a weight from either a percentage ("40%", "12.5%")
// or a fraction of one ("0.4"). A value more precise than a basis point is
// rejected.
func ParseWeight(s string) (Weight, error) {
	raw := strings.TrimSpace(s)
	scale := bpsUnit
	if strings.HasSuffix(raw, "%") {
		raw = strings.TrimSpace(strings.TrimSuffix(raw, "%"))
		scale = bpsUnit.Div(hundred)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidWeight, "cannot parse %q", s)
	}
	if d.IsNegative() {
		return 0, errors.Wrapf(ErrInvalidWeight, "negative weight %q", s)
	}
	bps := d.Mul(scale)
	if !bps.Equal(bps.Truncate(0)) {
		return 0, errors.Wrapf(ErrInvalidWeight, "%q is more precise than a basis point", s)
	}
	if bps.GreaterThan(bpsUnit) {
		return 0, errors.Wrapf(ErrInvalidWeight, "%q is more than 100%%", s)
	}
	return Weight(bps.IntPart()), nil
}

// MarshalJSON encodes the weight as a percentage string.
func (w Weight) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

// UnmarshalJSON accepts a percentage or fraction string, or a plain number
// of basis points. null leaves the weight unchanged.
func (w *Weight) UnmarshalJSON(raw []byte) error {
	if string(bytes.TrimSpace(raw)) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v, err := ParseWeight(s)
		if err != nil {
			return err
		}
		*w = v
		return nil
	}
	var bps uint32
	if err := json.Unmarshal(raw, &bps); err != nil {
		return errors.Wrapf(ErrInvalidWeight, "cannot decode %s", raw)
	}
	*w = Weight(bps)
	return w.Validate()
}
