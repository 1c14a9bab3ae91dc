package distributor

import (
	"regexp"
	"sort"

	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
)

var isProtocolID = regexp.MustCompile(`^[a-zA-Z0-9_\-.:]{1,64}$`).MatchString

// ValidateProtocolID returns an error if the name cannot be used as a
// protocol identifier.
func ValidateProtocolID(id string) error {
	if !isProtocolID(id) {
		return errors.Wrapf(errors.ErrInput, "invalid protocol id %q", id)
	}
	return nil
}

// WeightEntry declares the share of a protocol.
type WeightEntry struct {
	Protocol string `json:"protocol"`
	Weight   Weight `json:"weight"`
}

// WhitelistEntry declares the payout address of a protocol.
type WhitelistEntry struct {
	Address  feesplit.Address `json:"address"`
	Protocol string           `json:"protocol"`
}

// WeightTable is a validated set of weights indexed by the protocol.
type WeightTable struct {
	weights map[string]Weight
	total   Weight
}

// NewWeightTable validates given entries and builds a table out of them.
// The sum of all weights must not exceed 100%.
func NewWeightTable(entries []WeightEntry) (WeightTable, error) {
	t := WeightTable{weights: make(map[string]Weight, len(entries))}
	var total uint64
	for i, e := range entries {
		if err := ValidateProtocolID(e.Protocol); err != nil {
			return WeightTable{}, errors.Wrapf(err, "weight %d", i)
		}
		if err := e.Weight.Validate(); err != nil {
			return WeightTable{}, errors.Wrapf(err, "protocol %q", e.Protocol)
		}
		if _, ok := t.weights[e.Protocol]; ok {
			return WeightTable{}, errors.Wrapf(ErrDuplicateProtocol, "protocol %q weighted twice", e.Protocol)
		}
		t.weights[e.Protocol] = e.Weight
		total += uint64(e.Weight)
	}
	if total > uint64(MaxWeight) {
		return WeightTable{}, errors.Wrapf(ErrInvalidWeight, "weights sum up to %s", Weight(total))
	}
	t.total = Weight(total)
	return t, nil
}

// TotalWeight returns the sum of all weights.
func (t WeightTable) TotalWeight() Weight {
	return t.total
}

// WeightOf returns the weight of given protocol or zero if not present.
func (t WeightTable) WeightOf(protocol string) Weight {
	return t.weights[protocol]
}

// Protocols returns all weighted protocols in lexical order.
func (t WeightTable) Protocols() []string {
	ps := make([]string, 0, len(t.weights))
	for p := range t.weights {
		ps = append(ps, p)
	}
	sort.Strings(ps)
	return ps
}

// Whitelist is a validated protocol to payout address mapping.
type Whitelist struct {
	addrs map[string]feesplit.Address
}

// NewWhitelist validates given entries and builds a whitelist. A protocol
// can be declared only once.
func NewWhitelist(entries []WhitelistEntry) (Whitelist, error) {
	w := Whitelist{addrs: make(map[string]feesplit.Address, len(entries))}
	for i, e := range entries {
		if err := ValidateProtocolID(e.Protocol); err != nil {
			return Whitelist{}, errors.Wrapf(err, "whitelist %d", i)
		}
		if err := e.Address.Validate(); err != nil {
			return Whitelist{}, errors.Wrapf(err, "whitelist %q", e.Protocol)
		}
		if _, ok := w.addrs[e.Protocol]; ok {
			return Whitelist{}, errors.Wrapf(ErrDuplicateProtocol, "protocol %q whitelisted twice", e.Protocol)
		}
		w.addrs[e.Protocol] = e.Address
	}
	return w, nil
}

// AddressFor returns the payout address of given protocol.
func (w Whitelist) AddressFor(protocol string) (feesplit.Address, error) {
	addr, ok := w.addrs[protocol]
	if !ok {
		return nil, errors.Wrapf(ErrUnresolvedProtocol, "no address for %q", protocol)
	}
	return addr, nil
}

// Configuration is the single record describing how funds are distributed.
type Configuration struct {
	Metadata         *feesplit.Metadata `json:"metadata"`
	Admin            feesplit.Address   `json:"admin"`
	BurnAddress      feesplit.Address   `json:"burn_address"`
	DeveloperAddress feesplit.Address   `json:"developer_address"`
	Whitelist        []WhitelistEntry   `json:"whitelist"`
	Weights          []WeightEntry      `json:"weight_per_protocol"`
	// DeveloperShare is the part of the remainder paid to the developer
	// address. The rest of the remainder is burned.
	DeveloperShare Weight `json:"developer_share"`
}

// Validate checks the configuration as a whole. Every weighted protocol
// must resolve to a whitelisted address.
func (c *Configuration) Validate() error {
	_, _, err := c.tables()
	return err
}

// tables validates the configuration and returns its lookup tables.
func (c *Configuration) tables() (WeightTable, Whitelist, error) {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Admin", c.Admin.Validate())
	errs = errors.AppendField(errs, "BurnAddress", c.BurnAddress.Validate())
	errs = errors.AppendField(errs, "DeveloperAddress", c.DeveloperAddress.Validate())
	errs = errors.AppendField(errs, "DeveloperShare", c.DeveloperShare.Validate())

	wl, err := NewWhitelist(c.Whitelist)
	errs = errors.AppendField(errs, "Whitelist", err)
	wt, err := NewWeightTable(c.Weights)
	errs = errors.AppendField(errs, "Weights", err)
	if errs != nil {
		return WeightTable{}, Whitelist{}, errs
	}

	for _, p := range wt.Protocols() {
		if _, err := wl.AddressFor(p); err != nil {
			errs = errors.AppendField(errs, "Whitelist", err)
		}
	}
	if errs != nil {
		return WeightTable{}, Whitelist{}, errs
	}
	return wt, wl, nil
}

// Copy returns a deep copy of the configuration.
func (c *Configuration) Copy() *Configuration {
	cpy := &Configuration{
		Metadata:         c.Metadata.Copy(),
		Admin:            c.Admin.Clone(),
		BurnAddress:      c.BurnAddress.Clone(),
		DeveloperAddress: c.DeveloperAddress.Clone(),
		DeveloperShare:   c.DeveloperShare,
	}
	if c.Whitelist != nil {
		cpy.Whitelist = make([]WhitelistEntry, len(c.Whitelist))
		for i, e := range c.Whitelist {
			cpy.Whitelist[i] = WhitelistEntry{Address: e.Address.Clone(), Protocol: e.Protocol}
		}
	}
	if c.Weights != nil {
		cpy.Weights = make([]WeightEntry, len(c.Weights))
		copy(cpy.Weights, c.Weights)
	}
	return cpy
}
