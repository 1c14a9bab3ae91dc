package distributor

import (
	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/coin"
	"github.com/iov-one/feesplit/errors"
)

const (
	pathInstantiateMsg  = "distributor/instantiate"
	pathDistributeMsg   = "distributor/distribute"
	pathUpdateConfigMsg = "distributor/update_config"
)

// InstantiateMsg creates the distributor configuration.
type InstantiateMsg struct {
	Metadata         *feesplit.Metadata `json:"metadata"`
	Admin            feesplit.Address   `json:"admin"`
	BurnAddress      feesplit.Address   `json:"burn_address"`
	DeveloperAddress feesplit.Address   `json:"developer_address"`
	Whitelist        []WhitelistEntry   `json:"whitelist"`
	Weights          []WeightEntry      `json:"weight_per_protocol"`
	DeveloperShare   Weight             `json:"developer_share"`
}

var _ feesplit.Msg = (*InstantiateMsg)(nil)

func (InstantiateMsg) Path() string {
	return pathInstantiateMsg
}

func (m *InstantiateMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return m.Configuration().Validate()
}

// Configuration returns the configuration declared by the message.
func (m *InstantiateMsg) Configuration() *Configuration {
	c := &Configuration{
		Metadata:         &feesplit.Metadata{Schema: 1},
		Admin:            m.Admin,
		BurnAddress:      m.BurnAddress,
		DeveloperAddress: m.DeveloperAddress,
		Whitelist:        m.Whitelist,
		Weights:          m.Weights,
		DeveloperShare:   m.DeveloperShare,
	}
	return c.Copy()
}

// DistributeMsg requests the distribution of the whole balance of a single
// denomination.
type DistributeMsg struct {
	Metadata *feesplit.Metadata `json:"metadata"`
	Denom    string             `json:"denom"`
}

var _ feesplit.Msg = (*DistributeMsg)(nil)

func (DistributeMsg) Path() string {
	return pathDistributeMsg
}

func (m *DistributeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !coin.IsDenom(m.Denom) {
		errs = errors.Append(errs, errors.Field("Denom", errors.ErrCurrency, "invalid denomination %q", m.Denom))
	}
	return errs
}

// UpdateConfigMsg replaces any subset of the configuration fields. Fields
// that are not set keep their current value.
type UpdateConfigMsg struct {
	Metadata         *feesplit.Metadata `json:"metadata"`
	Admin            feesplit.Address   `json:"admin,omitempty"`
	BurnAddress      feesplit.Address   `json:"burn_address,omitempty"`
	DeveloperAddress feesplit.Address   `json:"developer_address,omitempty"`
	Whitelist        *[]WhitelistEntry  `json:"whitelist,omitempty"`
	Weights          *[]WeightEntry     `json:"weight_per_protocol,omitempty"`
	DeveloperShare   *Weight            `json:"developer_share,omitempty"`
}

var _ feesplit.Msg = (*UpdateConfigMsg)(nil)

func (UpdateConfigMsg) Path() string {
	return pathUpdateConfigMsg
}

// Validate checks only the fields that are set. The complete configuration
// is validated once the patch is applied.
func (m *UpdateConfigMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Admin != nil {
		errs = errors.AppendField(errs, "Admin", m.Admin.Validate())
	}
	if m.BurnAddress != nil {
		errs = errors.AppendField(errs, "BurnAddress", m.BurnAddress.Validate())
	}
	if m.DeveloperAddress != nil {
		errs = errors.AppendField(errs, "DeveloperAddress", m.DeveloperAddress.Validate())
	}
	if m.Whitelist != nil {
		_, err := NewWhitelist(*m.Whitelist)
		errs = errors.AppendField(errs, "Whitelist", err)
	}
	if m.Weights != nil {
		_, err := NewWeightTable(*m.Weights)
		errs = errors.AppendField(errs, "Weights", err)
	}
	if m.DeveloperShare != nil {
		errs = errors.AppendField(errs, "DeveloperShare", m.DeveloperShare.Validate())
	}
	return errs
}

// Patch returns the configuration patch carried by this message.
func (m *UpdateConfigMsg) Patch() ConfigPatch {
	return ConfigPatch{
		Admin:            m.Admin,
		BurnAddress:      m.BurnAddress,
		DeveloperAddress: m.DeveloperAddress,
		Whitelist:        m.Whitelist,
		Weights:          m.Weights,
		DeveloperShare:   m.DeveloperShare,
	}
}

// updateConfigFields is the binary form of UpdateConfigMsg. Zero values
// are not encoded, so whether an optional field is set is stored
// explicitly.
type updateConfigFields struct {
	Metadata          *feesplit.Metadata
	Admin             feesplit.Address
	BurnAddress       feesplit.Address
	DeveloperAddress  feesplit.Address
	HasWhitelist      bool
	Whitelist         []WhitelistEntry
	HasWeights        bool
	Weights           []WeightEntry
	HasDeveloperShare bool
	DeveloperShare    Weight
}

// MarshalAmino returns the binary form of the message.
func (m UpdateConfigMsg) MarshalAmino() (updateConfigFields, error) {
	f := updateConfigFields{
		Metadata:         m.Metadata,
		Admin:            m.Admin,
		BurnAddress:      m.BurnAddress,
		DeveloperAddress: m.DeveloperAddress,
	}
	if m.Whitelist != nil {
		f.HasWhitelist, f.Whitelist = true, *m.Whitelist
	}
	if m.Weights != nil {
		f.HasWeights, f.Weights = true, *m.Weights
	}
	if m.DeveloperShare != nil {
		f.HasDeveloperShare, f.DeveloperShare = true, *m.DeveloperShare
	}
	return f, nil
}

// UnmarshalAmino restores the message from its binary form.
func (m *UpdateConfigMsg) UnmarshalAmino(f updateConfigFields) error {
	*m = UpdateConfigMsg{
		Metadata:         f.Metadata,
		Admin:            nonEmpty(f.Admin),
		BurnAddress:      nonEmpty(f.BurnAddress),
		DeveloperAddress: nonEmpty(f.DeveloperAddress),
	}
	if f.HasWhitelist {
		entries := append([]WhitelistEntry{}, f.Whitelist...)
		m.Whitelist = &entries
	}
	if f.HasWeights {
		entries := append([]WeightEntry{}, f.Weights...)
		m.Weights = &entries
	}
	if f.HasDeveloperShare {
		share := f.DeveloperShare
		m.DeveloperShare = &share
	}
	return nil
}

func nonEmpty(a feesplit.Address) feesplit.Address {
	if len(a) == 0 {
		return nil
	}
	return a
}
