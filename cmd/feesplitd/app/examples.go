package app

import (
	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/coin"
	"github.com/iov-one/feesplit/commands"
	"github.com/iov-one/feesplit/crypto"
	"github.com/iov-one/feesplit/x/cash"
	"github.com/iov-one/feesplit/x/distributor"
	"github.com/iov-one/feesplit/x/sigs"
)

// Examples returns sample objects to dump out with testgen.
func Examples() []commands.Example {
	meta := &feesplit.Metadata{Schema: 1}
	priv := crypto.PrivKeyEd25519FromSeed(make([]byte, 32))
	admin := priv.PublicKey().Address()
	alpha := feesplit.NewCondition("example", "protocol", []byte("alpha")).Address()
	beta := feesplit.NewCondition("example", "protocol", []byte("beta")).Address()

	send := &cash.SendMsg{
		Metadata: meta,
		Source:   admin,
		Dest:     distributor.Account(),
		Amount:   coin.NewCoinp(100, "IOV"),
		Memo:     "fees of block 17",
	}
	instantiate := &distributor.InstantiateMsg{
		Metadata:         meta,
		Admin:            admin,
		BurnAddress:      BurnAddress,
		DeveloperAddress: admin,
		Whitelist: []distributor.WhitelistEntry{
			{Address: alpha, Protocol: "alpha"},
			{Address: beta, Protocol: "beta"},
		},
		Weights: []distributor.WeightEntry{
			{Protocol: "alpha", Weight: 4000},
			{Protocol: "beta", Weight: 3000},
		},
		DeveloperShare: 5000,
	}
	distribute := &distributor.DistributeMsg{Metadata: meta, Denom: "IOV"}
	share := distributor.Weight(2500)
	update := &distributor.UpdateConfigMsg{Metadata: meta, DeveloperShare: &share}

	unsigned, err := NewTx(send)
	if err != nil {
		panic(err)
	}
	signed := *unsigned
	sig, err := sigs.SignTx(priv, &signed, "test-chain-123", 0)
	if err != nil {
		panic(err)
	}
	signed.Signatures = []*sigs.StdSignature{sig}

	return []commands.Example{
		{Filename: "pub_key", Obj: priv.PublicKey()},
		{Filename: "send_msg", Obj: send},
		{Filename: "instantiate_msg", Obj: instantiate},
		{Filename: "distribute_msg", Obj: distribute},
		{Filename: "update_config_msg", Obj: update},
		{Filename: "configuration", Obj: instantiate.Configuration()},
		{Filename: "unsigned_tx", Obj: unsigned},
		{Filename: "signed_tx", Obj: &signed},
	}
}
