package coin

import (
	"sort"
	"strconv"
	"strings"

	"github.com/iov-one/feesplit/errors"
)

// Coins represents a set of coins. Most operations on the coin set require
// normalized form: sorted by denomination, no duplicates and no zero
// amounts. Make sure to normalize you collection before using.
type Coins []*Coin

// CombineCoins creates a Coins containing all given coins.
// It will sort them and combine duplicates to produce
// a normalized form regardless of input.
func CombineCoins(cs ...Coin) (Coins, error) {
	var (
		coins Coins
		err   error
	)
	for _, c := range cs {
		coins, err = coins.Add(c)
		if err != nil {
			return nil, err
		}
	}
	if err := coins.Validate(); err != nil {
		return nil, err
	}
	return coins, nil
}

// Clone returns a copy that can be safely modified
func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// Add returns a new set with the holdings increased by c. The receiver is
// not modified.
func (cs Coins) Add(c Coin) (Coins, error) {
	// We ignore zero values
	if c.IsZero() {
		return cs.Clone(), nil
	}

	res := cs.Clone()
	has, i := res.findCoin(c.ID())
	if has != nil {
		sum, err := has.Add(c)
		if err != nil {
			return nil, err
		}
		res[i] = &sum
		return res, nil
	}

	// insert keeping the order (with one alloc)
	res = append(res, nil)
	copy(res[i+1:], res[i:])
	res[i] = &c
	return res, nil
}

// Subtract returns a new set with the holdings decreased by c. The receiver
// is not modified. A denomination whose amount drops to zero is removed.
// Subtracting more than held returns ErrInsufficientAmount.
func (cs Coins) Subtract(c Coin) (Coins, error) {
	if c.IsZero() {
		return cs.Clone(), nil
	}

	res := cs.Clone()
	has, i := res.findCoin(c.ID())
	if has == nil {
		return nil, errors.Wrapf(errors.ErrInsufficientAmount, "no %s held", c.Denom)
	}
	left, err := has.Subtract(c)
	if err != nil {
		return nil, err
	}
	if left.IsZero() {
		return append(res[:i], res[i+1:]...), nil
	}
	res[i] = &left
	return res, nil
}

// Combine will create a new Coins adding all the coins
// of s and o together.
func (cs Coins) Combine(o Coins) (Coins, error) {
	var err error
	res := cs.Clone()
	for _, c := range o {
		res, err = res.Add(*c)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Contains returns true if there is at least that much
// coin in the Coins.
func (cs Coins) Contains(c Coin) bool {
	has, _ := cs.findCoin(c.ID())
	if has == nil {
		return c.IsZero()
	}
	return has.IsGTE(c)
}

// AmountOf returns the held amount of given denomination. A zero coin is
// returned for denominations that are not held.
func (cs Coins) AmountOf(denom string) Coin {
	has, _ := cs.findCoin(denom)
	if has == nil {
		return Coin{Denom: denom}
	}
	return *has
}

// findCoin returns a coin and index that have this
// denomination.
//
// If there was a match, then result is non-nil, and the
// index is where it was. If there was no match, then
// result is nil, and index is where it should be
// (which may be between 0 and len(cs)).
func (cs Coins) findCoin(id string) (*Coin, int) {
	i := sort.Search(len(cs), func(i int) bool {
		return cs[i].Denom >= id
	})
	if i < len(cs) && cs[i].Denom == id {
		return cs[i], i
	}
	return nil, i
}

// IsEmpty returns if nothing is in the Coins
func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

// Equals returns true if both Coins contain same coins
func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Count returns the number of unique denominations in the Coins
func (cs Coins) Count() int {
	return len(cs)
}

// Validate requires that all coins are in alphabetical
// order and that each coin is valid in it's own right
//
// Zero amounts should not be present
func (cs Coins) Validate() error {
	var err error
	last := ""
	for i, c := range cs {
		if c == nil {
			err = errors.AppendField(err, fieldName(i), errors.ErrEmpty)
			continue
		}
		err = errors.AppendField(err, fieldName(i), c.Validate())
		if c.IsZero() {
			err = errors.AppendField(err, fieldName(i), errors.Wrap(errors.ErrAmount, "zero coins"))
		}
		if i > 0 && c.Denom <= last {
			err = errors.AppendField(err, fieldName(i), errors.Wrap(errors.ErrState, "not sorted or duplicated"))
		}
		last = c.Denom
	}
	return err
}

func fieldName(i int) string {
	return "Coins." + strconv.Itoa(i)
}

// NormalizeCoins is a cleanup operation that merge and orders set of coin instances
// into a unified form. This includes merging coins of the same denomination and
// sorting coins according to the denomination name.
// If given set of coins is normalized this operation return what was given.
// Otherwise a new instance of a slice is returned.
func NormalizeCoins(cs Coins) (Coins, error) {
	if isNormalized(cs) {
		if len(cs) == 0 {
			return nil, nil
		}
		return cs, nil
	}

	set := make(map[string]Coin)
	for _, c := range cs {
		if IsEmpty(c) {
			continue
		}
		sum, err := set[c.Denom].Add(*c)
		if err != nil {
			return nil, errors.Wrap(err, "cannot sum coins")
		}
		set[c.Denom] = sum
	}
	if len(set) == 0 {
		return nil, nil
	}

	coins := make(Coins, 0, len(set))
	for _, c := range set {
		cpy := c
		coins = append(coins, &cpy)
	}
	sort.Slice(coins, func(i, j int) bool {
		return strings.Compare(coins[i].Denom, coins[j].Denom) < 0
	})
	return coins, nil
}

// isNormalized check if coins collection is in a normalized form. This is a
// cheap operation.
func isNormalized(cs Coins) bool {
	var prev *Coin
	for _, c := range cs {
		if IsEmpty(c) {
			// Zero coins should not be a part of a collection
			// because they carry no value.
			return false
		}
		if prev != nil && prev.Denom >= c.Denom {
			return false
		}
		prev = c
	}
	return true
}
