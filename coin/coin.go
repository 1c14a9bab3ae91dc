package coin

import (
	"encoding/json"
	"regexp"
	"strconv"

	"github.com/iov-one/feesplit/errors"
)

// IsDenom is the RegExp to ensure valid denomination names. It follows the
// cosmos convention: a letter followed by 2..127 letters, digits or one of
// "/:._-" characters.
var IsDenom = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9/:._\-]{2,127}$`).MatchString

// Coin is an amount of a single fungible token. Amount is expressed in the
// smallest indivisible unit of the denomination.
type Coin struct {
	Denom  string `json:"denom"`
	Amount uint64 `json:"amount"`
}

// NewCoin creates a new coin object
func NewCoin(amount uint64, denom string) Coin {
	return Coin{
		Amount: amount,
		Denom:  denom,
	}
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(amount uint64, denom string) *Coin {
	c := NewCoin(amount, denom)
	return &c
}

// ID returns a coin denomination name.
func (c Coin) ID() string {
	return c.Denom
}

// Add combines two coins.
// Returns error if they are of different
// denominations, or if the combination would cause
// an overflow
func (c Coin) Add(o Coin) (Coin, error) {
	// If any of the coins represents no value and does not have a denom
	// set then it has no influence on the addition result.
	if c.Denom == "" && c.IsZero() {
		return o, nil
	}
	if o.Denom == "" && o.IsZero() {
		return c, nil
	}

	if !c.SameType(o) {
		return Coin{}, errors.Wrapf(errors.ErrCurrency, "adding %s to %s", o.Denom, c.Denom)
	}

	sum := c.Amount + o.Amount
	if sum < c.Amount {
		return Coin{}, errors.Wrapf(errors.ErrOverflow, "%s + %s", c, o)
	}
	c.Amount = sum
	return c, nil
}

// Subtract given amount. Because amounts are never negative, subtracting
// more than available fails with ErrInsufficientAmount.
func (c Coin) Subtract(o Coin) (Coin, error) {
	if o.IsZero() {
		return c, nil
	}
	if !c.SameType(o) {
		return Coin{}, errors.Wrapf(errors.ErrCurrency, "subtracting %s from %s", o.Denom, c.Denom)
	}
	if c.Amount < o.Amount {
		return Coin{}, errors.Wrapf(errors.ErrInsufficientAmount, "%s - %s", c, o)
	}
	c.Amount -= o.Amount
	return c, nil
}

// Compare will check values of two coins, without
// inspecting the denomination. It is up to the caller
// to determine if they want to check this.
//
// Returns 1 if c is larger, -1 if o is larger, 0 if equal
func (c Coin) Compare(o Coin) int {
	switch {
	case c.Amount > o.Amount:
		return 1
	case c.Amount < o.Amount:
		return -1
	default:
		return 0
	}
}

// Equals returns true if all fields are identical
func (c Coin) Equals(o Coin) bool {
	return c.Denom == o.Denom && c.Amount == o.Amount
}

// IsEmpty returns true on null or zero amount
func IsEmpty(c *Coin) bool {
	return c == nil || c.IsZero()
}

// IsZero returns true amounts are 0
func (c Coin) IsZero() bool {
	return c.Amount == 0
}

// IsPositive returns true if the value is greater than 0
func (c Coin) IsPositive() bool {
	return c.Amount > 0
}

// IsGTE returns true if c is same type and at least
// as large as o.
func (c Coin) IsGTE(o Coin) bool {
	return c.SameType(o) && c.Amount >= o.Amount
}

// SameType returns true if they have the same denomination
func (c Coin) SameType(o Coin) bool {
	return c.Denom == o.Denom
}

// Clone provides an independent copy of a coin pointer
func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	cpy := *c
	return &cpy
}

// Validate ensures that the coin has a valid denomination.
// Zero amounts are accepted, so you may want to make other checks
// in your business logic
func (c Coin) Validate() error {
	if !IsDenom(c.Denom) {
		return errors.Wrapf(errors.ErrCurrency, "invalid denomination: %q", c.Denom)
	}
	return nil
}

// UnmarshalJSON accepts both the object form and a human readable string
// in the format "<amount><denom>" or "<amount> <denom>".
func (c *Coin) UnmarshalJSON(raw []byte) error {
	var human string
	if err := json.Unmarshal(raw, &human); err == nil {
		parsed, err := ParseHumanFormat(human)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	// Because UnmarshalJSON method is provided, we can no longer use Coin
	// type for this.
	var coin struct {
		Denom  string `json:"denom"`
		Amount uint64 `json:"amount,string"`
	}
	if err := json.Unmarshal(raw, &coin); err != nil {
		// Numeric amounts are accepted as well.
		var numeric struct {
			Denom  string `json:"denom"`
			Amount uint64 `json:"amount"`
		}
		if err := json.Unmarshal(raw, &numeric); err != nil {
			return errors.Wrapf(errors.ErrInput, "coin: %s", err)
		}
		coin.Denom, coin.Amount = numeric.Denom, numeric.Amount
	}
	c.Denom = coin.Denom
	c.Amount = coin.Amount
	return nil
}

// MarshalJSON serializes the amount as a string so that clients that parse
// numbers as float do not lose precision.
func (c Coin) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Denom  string `json:"denom"`
		Amount uint64 `json:"amount,string"`
	}{
		Denom:  c.Denom,
		Amount: c.Amount,
	})
}

// String provides a human readable representation of the coin. For a
// valid coin the result can be parsed back with ParseHumanFormat.
func (c Coin) String() string {
	if c.Denom == "" {
		return strconv.FormatUint(c.Amount, 10)
	}
	return strconv.FormatUint(c.Amount, 10) + c.Denom
}

// ParseHumanFormat parse a human readable coin representation. Accepted format
// is a string:
//   "<amount>[ ]<denom>"
func ParseHumanFormat(h string) (Coin, error) {
	m := humanCoinFormatRx.FindStringSubmatch(h)
	if m == nil {
		return Coin{}, errors.Wrapf(errors.ErrInput, "invalid coin format: %q", h)
	}
	amount, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return Coin{}, errors.Wrapf(errors.ErrOverflow, "amount %q", m[1])
	}
	c := Coin{Denom: m[2], Amount: amount}
	return c, c.Validate()
}

var humanCoinFormatRx = regexp.MustCompile(`^\s*(\d+)\s*([a-zA-Z][a-zA-Z0-9/:._\-]*)\s*$`)

// Set updates this coin value to what is provided. This method implements
// flag.Value interface.
func (c *Coin) Set(raw string) error {
	val, err := ParseHumanFormat(raw)
	if err != nil {
		return err
	}
	*c = val
	return nil
}

// Type implements pflag.Value interface.
func (c *Coin) Type() string {
	return "coin"
}
