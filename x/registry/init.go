package registry

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file.
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis creates the registry configuration from the genesis declaration.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	var conf struct {
		Admin           weave.Address `json:"admin"`
		RegistrationFee *coin.Coin    `json:"registration_fee"`
	}
	if err := opts.ReadOptions("registry", &conf); err != nil {
		return errors.Wrap(err, "cannot load registry genesis options")
	}
	if len(conf.Admin) == 0 {
		// Chain without a registry.
		return nil
	}
	if err := conf.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	fee := conf.RegistrationFee
	if fee == nil {
		// A zero coin declares a free registry.
		return errors.Wrap(errors.ErrEmpty, "registration fee")
	}
	if err := fee.Validate(); err != nil {
		return errors.Wrap(err, "registration fee")
	}
	if !fee.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "registration fee must not be negative")
	}

	b := NewRegistryBucket()
	switch err := b.Has(db, registryKey); {
	case err == nil:
		return errors.Wrap(errors.ErrDuplicate, "registry already initialized")
	case errors.ErrNotFound.Is(err):
		// Expected.
	default:
		return errors.Wrap(err, "registry lookup")
	}

	reg := Registry{
		Metadata:        &weave.Metadata{Schema: 1},
		Admin:           conf.Admin,
		RegistrationFee: fee,
	}
	if _, err := b.Put(db, registryKey, &reg); err != nil {
		return errors.Wrap(err, "store registry")
	}
	return nil
}
