package fundmgr

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &StoreFundsMsg{}, migration.NoModification)
	migration.MustRegister(1, &AllocateFundsMsg{}, migration.NoModification)
	migration.MustRegister(1, &SetAdminMsg{}, migration.NoModification)
	migration.MustRegister(1, &AddWhitelistMsg{}, migration.NoModification)
	migration.MustRegister(1, &RemoveWhitelistMsg{}, migration.NoModification)
	migration.MustRegister(1, &ToggleWhitelistMsg{}, migration.NoModification)
}

// maxLabelLen is the maximum length of a whitelist entry label.
const maxLabelLen = 64

var _ weave.Msg = (*StoreFundsMsg)(nil)

func (StoreFundsMsg) Path() string {
	return "fundmgr/store_funds"
}

func (m *StoreFundsMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	// Source is optional. When empty the main signer is the depositor.
	if len(m.Source) != 0 {
		errs = errors.AppendField(errs, "Source", m.Source.Validate())
	}
	if m.Amount == nil {
		errs = errors.AppendField(errs, "Amount", errors.ErrEmpty)
	} else if err := m.Amount.Validate(); err != nil {
		errs = errors.AppendField(errs, "Amount", err)
	} else if !m.Amount.IsPositive() {
		errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	return errs
}

var _ weave.Msg = (*AllocateFundsMsg)(nil)

func (AllocateFundsMsg) Path() string {
	return "fundmgr/allocate_funds"
}

func (m *AllocateFundsMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	if m.Amount == nil {
		errs = errors.AppendField(errs, "Amount", errors.ErrEmpty)
	} else if err := m.Amount.Validate(); err != nil {
		errs = errors.AppendField(errs, "Amount", err)
	} else if !m.Amount.IsPositive() {
		errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	return errs
}

var _ weave.Msg = (*SetAdminMsg)(nil)

func (SetAdminMsg) Path() string {
	return "fundmgr/set_admin"
}

func (m *SetAdminMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "NewAdmin", m.NewAdmin.Validate())
	return errs
}

var _ weave.Msg = (*AddWhitelistMsg)(nil)

func (AddWhitelistMsg) Path() string {
	return "fundmgr/add_whitelist"
}

func (m *AddWhitelistMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	if len(m.Label) > maxLabelLen {
		errs = errors.AppendField(errs, "Label", errors.Wrap(errors.ErrInput, "too long"))
	}
	return errs
}

var _ weave.Msg = (*RemoveWhitelistMsg)(nil)

func (RemoveWhitelistMsg) Path() string {
	return "fundmgr/remove_whitelist"
}

func (m *RemoveWhitelistMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	return errs
}

var _ weave.Msg = (*ToggleWhitelistMsg)(nil)

func (ToggleWhitelistMsg) Path() string {
	return "fundmgr/toggle_whitelist"
}

func (m *ToggleWhitelistMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	return errs
}
