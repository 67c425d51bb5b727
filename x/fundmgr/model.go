package fundmgr

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &FundAccount{}, migration.NoModification)
	migration.MustRegister(1, &WhitelistEntry{}, migration.NoModification)
}

// fundAccountKey is the fixed key of the one and only FundAccount instance.
// It is also the seed of the fund address derivation.
var fundAccountKey = []byte("fund_account")

// FundCondition returns the condition controlling the fund wallet.
func FundCondition() weave.Condition {
	return weave.NewCondition("fundmgr", "fund", fundAccountKey)
}

// FundAddress returns the address that all deposited tokens are held on. No
// key pair exists for this address.
func FundAddress() weave.Address {
	return FundCondition().Address()
}

var _ orm.Model = (*FundAccount)(nil)

func (m *FundAccount) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Admin", m.Admin.Validate())
	if m.TotalFunds == nil {
		errs = errors.AppendField(errs, "TotalFunds", errors.ErrEmpty)
	} else {
		if err := m.TotalFunds.Validate(); err != nil {
			errs = errors.AppendField(errs, "TotalFunds", err)
		} else if !m.TotalFunds.IsNonNegative() {
			errs = errors.AppendField(errs, "TotalFunds", errors.Wrap(errors.ErrAmount, "must not be negative"))
		}
	}
	return errs
}

func NewFundAccountBucket() orm.ModelBucket {
	b := orm.NewModelBucket("fund", &FundAccount{})
	return migration.NewModelBucket("fundmgr", b)
}

// loadFundAccount returns the fund singleton. It is an ErrNotFound when the
// genesis initialization did not run.
func loadFundAccount(db weave.ReadOnlyKVStore, b orm.ModelBucket) (*FundAccount, error) {
	var fund FundAccount
	if err := b.One(db, fundAccountKey, &fund); err != nil {
		return nil, errors.Wrap(err, "fund account")
	}
	return &fund, nil
}

var _ orm.Model = (*WhitelistEntry)(nil)

func (m *WhitelistEntry) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", m.Address.Validate())
	if len(m.Label) > maxLabelLen {
		errs = errors.AppendField(errs, "Label", errors.Wrap(errors.ErrInput, "too long"))
	}
	errs = errors.AppendField(errs, "AddedBy", m.AddedBy.Validate())
	errs = errors.AppendField(errs, "AddedAt", m.AddedAt.Validate())
	return errs
}

func NewWhitelistBucket() orm.ModelBucket {
	b := orm.NewModelBucket("whitelist", &WhitelistEntry{})
	return migration.NewModelBucket("fundmgr", b)
}
