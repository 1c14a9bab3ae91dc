package distributor

import (
	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/coin"
	"github.com/iov-one/feesplit/errors"
)

// PayoutKind describes why a recipient is paid.
type PayoutKind string

const (
	ProtocolPayout  PayoutKind = "protocol"
	BurnPayout      PayoutKind = "burn"
	DeveloperPayout PayoutKind = "developer"
)

// Payout is a single transfer of a distribution. Kind and Protocol
// describe the first part paid to the recipient. When several parts are
// merged into one transfer, Shares lists all of them.
type Payout struct {
	Recipient feesplit.Address `json:"recipient"`
	Amount    coin.Coin        `json:"amount"`
	Kind      PayoutKind       `json:"kind"`
	Protocol  string           `json:"protocol,omitempty"`
	Shares    []PayoutShare    `json:"shares,omitempty"`
}

// PayoutShare is one part of a merged payout.
type PayoutShare struct {
	Kind     PayoutKind `json:"kind"`
	Protocol string     `json:"protocol,omitempty"`
	Amount   uint64     `json:"amount"`
}

// Parts returns every part the payout is made of.
func (po Payout) Parts() []PayoutShare {
	if len(po.Shares) != 0 {
		return po.Shares
	}
	return []PayoutShare{po.share()}
}

func (po Payout) share() PayoutShare {
	return PayoutShare{Kind: po.Kind, Protocol: po.Protocol, Amount: po.Amount.Amount}
}

// PayoutPlan is the ordered list of transfers of a single distribution.
type PayoutPlan []Payout

// Total returns the sum of all payouts.
func (p PayoutPlan) Total(denom string) (coin.Coin, error) {
	total := coin.NewCoin(0, denom)
	for _, po := range p {
		var err error
		if total, err = total.Add(po.Amount); err != nil {
			return coin.Coin{}, err
		}
	}
	return total, nil
}

// Account returns the address of the ledger account holding the funds to
// distribute.
func Account() feesplit.Address {
	return feesplit.NewCondition("dist", "account", []byte("distributor")).Address()
}

// PlanDistribution splits the whole balance according to the
// configuration. Protocols are paid in lexical order, followed by the burn
// and the developer address. Zero payouts are omitted and payouts to the
// same recipient are merged into the first one, keeping each part in
// Shares.
func PlanDistribution(balance coin.Coin, conf *Configuration) (PayoutPlan, error) {
	weights, whitelist, err := conf.tables()
	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	var (
		plan      PayoutPlan
		allocated uint64
	)
	for _, p := range weights.Protocols() {
		addr, err := whitelist.AddressFor(p)
		if err != nil {
			return nil, err
		}
		amount := weights.WeightOf(p).Apply(balance.Amount)
		allocated += amount
		plan = plan.add(Payout{
			Recipient: addr,
			Amount:    coin.NewCoin(amount, balance.Denom),
			Kind:      ProtocolPayout,
			Protocol:  p,
		})
	}
	if allocated > balance.Amount {
		return nil, errors.Wrap(errors.ErrHuman, "allocated more than the balance")
	}

	remainder := balance.Amount - allocated
	dev := conf.DeveloperShare.Apply(remainder)
	plan = plan.add(Payout{
		Recipient: conf.BurnAddress,
		Amount:    coin.NewCoin(remainder-dev, balance.Denom),
		Kind:      BurnPayout,
	})
	plan = plan.add(Payout{
		Recipient: conf.DeveloperAddress,
		Amount:    coin.NewCoin(dev, balance.Denom),
		Kind:      DeveloperPayout,
	})

	total, err := plan.Total(balance.Denom)
	if err != nil {
		return nil, errors.Wrap(err, "plan total")
	}
	if !total.Equals(coin.NewCoin(balance.Amount, balance.Denom)) {
		return nil, errors.Wrapf(errors.ErrHuman, "plan pays %s out of %s", total, balance)
	}
	return plan, nil
}

// add appends a payout, merging it with an already planned payout to the
// same recipient. The merged payout keeps every part in Shares. Zero
// payouts are ignored.
func (p PayoutPlan) add(po Payout) PayoutPlan {
	if po.Amount.IsZero() {
		return p
	}
	for i := range p {
		if p[i].Recipient.Equals(po.Recipient) {
			if len(p[i].Shares) == 0 {
				p[i].Shares = []PayoutShare{p[i].share()}
			}
			p[i].Shares = append(p[i].Shares, po.share())
			// Both amounts are parts of the same balance so the sum
			// cannot overflow.
			p[i].Amount.Amount += po.Amount.Amount
			return p
		}
	}
	return append(p, po)
}

// CashController allows to manage coins stored by the accounts without the
// need to directly access the bucket.
// Required functionality is implemented by the x/cash extension.
type CashController interface {
	Balance(feesplit.ReadOnlyKVStore, feesplit.Address) (coin.Coins, error)
	MoveCoins(feesplit.KVStore, feesplit.Address, feesplit.Address, coin.Coin) error
}

// Distribute pays out the whole balance of given denomination held by the
// distributor account. The first failing transfer aborts the distribution.
// Already executed transfers must be discarded by the caller.
func Distribute(db feesplit.KVStore, ctrl CashController, denom string) (PayoutPlan, error) {
	if !coin.IsDenom(denom) {
		return nil, errors.Wrapf(errors.ErrCurrency, "invalid denomination %q", denom)
	}
	conf, err := Get(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load configuration")
	}
	src := Account()
	held, err := ctrl.Balance(db, src)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read balance")
	}
	plan, err := PlanDistribution(held.AmountOf(denom), conf)
	if err != nil {
		return nil, err
	}
	for i, po := range plan {
		if err := ctrl.MoveCoins(db, src, po.Recipient, po.Amount); err != nil {
			return nil, errors.Wrapf(errors.Append(ErrTransferFailed, err), "payout %d to %s", i, po.Recipient)
		}
	}
	return plan, nil
}
