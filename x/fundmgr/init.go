package fundmgr

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file.
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis creates the fund account from the genesis declaration. The fund
// starts empty, owned by the declared admin, holding tokens of the declared
// ticker.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	var conf struct {
		Admin  weave.Address `json:"admin"`
		Ticker string        `json:"ticker"`
	}
	if err := opts.ReadOptions("fundmgr", &conf); err != nil {
		return errors.Wrap(err, "cannot load fundmgr genesis options")
	}
	if len(conf.Admin) == 0 {
		// Chain without a fund.
		return nil
	}
	if err := conf.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	zero := coin.NewCoin(0, 0, conf.Ticker)
	if err := zero.Validate(); err != nil {
		return errors.Wrap(err, "ticker")
	}

	b := NewFundAccountBucket()
	switch err := b.Has(db, fundAccountKey); {
	case err == nil:
		return errors.Wrap(errors.ErrDuplicate, "fund account already initialized")
	case errors.ErrNotFound.Is(err):
		// Expected.
	default:
		return errors.Wrap(err, "fund lookup")
	}

	fund := FundAccount{
		Metadata:   &weave.Metadata{Schema: 1},
		Admin:      conf.Admin,
		TotalFunds: &zero,
	}
	if _, err := b.Put(db, fundAccountKey, &fund); err != nil {
		return errors.Wrap(err, "store fund account")
	}
	return nil
}
