package app

import (
	"encoding/json"

	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
)

// ResultSet holds zero or more raw query results. Query responses carry
// one ResultSet for the keys and one for the values, of equal length.
type ResultSet struct {
	Results [][]byte `json:"results"`
}

// Marshal serializes the set.
func (r *ResultSet) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Unmarshal loads the set from its serialized form.
func (r *ResultSet) Unmarshal(raw []byte) error {
	if err := json.Unmarshal(raw, r); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return nil
}

// ResultsFromKeys returns a ResultSet of all model keys.
func ResultsFromKeys(models []feesplit.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Key
	}
	return &ResultSet{Results: res}
}

// ResultsFromValues returns a ResultSet of all model values.
func ResultsFromValues(models []feesplit.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Value
	}
	return &ResultSet{Results: res}
}

// JoinResults inverts ResultsFromKeys and ResultsFromValues.
func JoinResults(keys, values *ResultSet) ([]feesplit.Model, error) {
	kref, vref := keys.Results, values.Results
	if len(kref) != len(vref) {
		return nil, errors.Wrapf(errors.ErrState, "got %d keys and %d values", len(kref), len(vref))
	}
	mods := make([]feesplit.Model, len(kref))
	for i := range mods {
		mods[i] = feesplit.Pair(kref[i], vref[i])
	}
	return mods, nil
}

// UnmarshalOneResult parses a serialized ResultSet and, if it is not
// empty, decodes the binary encoded first value into dest. ErrNotFound is
// returned for an empty set.
func UnmarshalOneResult(raw []byte, dest interface{}) error {
	var res ResultSet
	if err := res.Unmarshal(raw); err != nil {
		return err
	}
	if len(res.Results) == 0 {
		return errors.ErrNotFound
	}
	return feesplit.UnmarshalBinary(res.Results[0], dest)
}
