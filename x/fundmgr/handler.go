package fundmgr

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
)

func RegisterQuery(qr weave.QueryRouter) {
	NewFundAccountBucket().Register("fundaccounts", qr)
	NewWhitelistBucket().Register("whitelists", qr)
}

func RegisterRoutes(r weave.Registry, auth x.Authenticator, cashctrl cash.Controller) {
	r = migration.SchemaMigratingRegistry("fundmgr", r)

	fund := NewFundAccountBucket()
	entries := NewWhitelistBucket()

	r.Handle(&StoreFundsMsg{}, &storeFundsHandler{
		auth:     auth,
		fund:     fund,
		cashctrl: cashctrl,
	})
	r.Handle(&AllocateFundsMsg{}, &allocateFundsHandler{
		auth:     auth,
		fund:     fund,
		entries:  entries,
		cashctrl: cashctrl,
	})
	r.Handle(&SetAdminMsg{}, &setAdminHandler{
		auth: auth,
		fund: fund,
	})
	r.Handle(&AddWhitelistMsg{}, &addWhitelistHandler{
		auth:    auth,
		fund:    fund,
		entries: entries,
	})
	r.Handle(&RemoveWhitelistMsg{}, &removeWhitelistHandler{
		auth:    auth,
		fund:    fund,
		entries: entries,
	})
	r.Handle(&ToggleWhitelistMsg{}, &toggleWhitelistHandler{
		auth:    auth,
		fund:    fund,
		entries: entries,
	})
}

type storeFundsHandler struct {
	auth     x.Authenticator
	fund     orm.ModelBucket
	cashctrl cash.Controller
}

func (h *storeFundsHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *storeFundsHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, fund, source, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// Grow the counter before moving coins so that an overflow aborts
	// before any value changed hands.
	total, err := fund.TotalFunds.Add(*msg.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "total funds")
	}
	if err := cash.MoveCoins(db, h.cashctrl, source, FundAddress(), []*coin.Coin{msg.Amount}); err != nil {
		return nil, errors.Wrap(err, "deposit funds")
	}
	fund.TotalFunds = &total
	if _, err := h.fund.Put(db, fundAccountKey, fund); err != nil {
		return nil, errors.Wrap(err, "store fund account")
	}
	return &weave.DeliverResult{}, nil
}

func (h *storeFundsHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*StoreFundsMsg, *FundAccount, weave.Address, error) {
	var msg StoreFundsMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	source := msg.Source
	if len(source) == 0 {
		signer := x.AnySigner(ctx, h.auth)
		if signer == nil {
			return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "no depositor")
		}
		source = signer.Address()
	}
	if !h.auth.HasAddress(ctx, source) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "depositor signature is required")
	}
	fund, err := loadFundAccount(db, h.fund)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, fund, source, nil
}

type allocateFundsHandler struct {
	auth     x.Authenticator
	fund     orm.ModelBucket
	entries  orm.ModelBucket
	cashctrl cash.Controller
}

func (h *allocateFundsHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *allocateFundsHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, fund, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := cash.MoveCoins(db, h.cashctrl, FundAddress(), msg.Recipient, []*coin.Coin{msg.Amount}); err != nil {
		return nil, errors.Wrap(err, "allocate funds")
	}
	total, err := fund.TotalFunds.Subtract(*msg.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "total funds")
	}
	fund.TotalFunds = &total
	if _, err := h.fund.Put(db, fundAccountKey, fund); err != nil {
		return nil, errors.Wrap(err, "store fund account")
	}
	return &weave.DeliverResult{}, nil
}

// validate enforces the disbursement preconditions in a fixed order: admin
// signature, sufficient funds, active whitelist entry for the recipient.
func (h *allocateFundsHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*AllocateFundsMsg, *FundAccount, error) {
	var msg AllocateFundsMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	fund, err := loadFundAccount(db, h.fund)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, fund.Admin) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "admin signature missing")
	}
	if !fund.TotalFunds.IsGTE(*msg.Amount) {
		return nil, nil, errors.Wrap(errors.ErrAmount, "insufficient funds")
	}
	var entry WhitelistEntry
	switch err := h.entries.One(db, msg.Recipient, &entry); {
	case errors.ErrNotFound.Is(err):
		return nil, nil, errors.Wrapf(ErrNotWhitelisted, "recipient %q", msg.Recipient)
	case err != nil:
		return nil, nil, errors.Wrap(err, "whitelist entry")
	}
	if !entry.IsActive {
		return nil, nil, errors.Wrapf(ErrEntryNotActive, "recipient %q", msg.Recipient)
	}
	return &msg, fund, nil
}

type setAdminHandler struct {
	auth x.Authenticator
	fund orm.ModelBucket
}

func (h *setAdminHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *setAdminHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, fund, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// No two phase handover. The current admin takes full responsibility
	// for the new admin address being correct.
	fund.Admin = msg.NewAdmin
	if _, err := h.fund.Put(db, fundAccountKey, fund); err != nil {
		return nil, errors.Wrap(err, "store fund account")
	}
	return &weave.DeliverResult{}, nil
}

func (h *setAdminHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SetAdminMsg, *FundAccount, error) {
	var msg SetAdminMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	fund, err := loadFundAccount(db, h.fund)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, fund.Admin) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "admin signature missing")
	}
	return &msg, fund, nil
}

type addWhitelistHandler struct {
	auth    x.Authenticator
	fund    orm.ModelBucket
	entries orm.ModelBucket
}

func (h *addWhitelistHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *addWhitelistHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, fund, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	entry := WhitelistEntry{
		Metadata: &weave.Metadata{Schema: 1},
		Address:  msg.Recipient,
		Label:    msg.Label,
		IsActive: true,
		AddedBy:  fund.Admin,
		AddedAt:  weave.AsUnixTime(now),
	}
	if _, err := h.entries.Put(db, msg.Recipient, &entry); err != nil {
		return nil, errors.Wrap(err, "store whitelist entry")
	}
	fund.WhitelistCount++
	if _, err := h.fund.Put(db, fundAccountKey, fund); err != nil {
		return nil, errors.Wrap(err, "store fund account")
	}
	return &weave.DeliverResult{Data: msg.Recipient}, nil
}

func (h *addWhitelistHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*AddWhitelistMsg, *FundAccount, error) {
	var msg AddWhitelistMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	fund, err := loadFundAccount(db, h.fund)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, fund.Admin) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "admin signature missing")
	}
	// An existing entry must not be overwritten, deactivated entries
	// included. Use toggle to activate an entry again.
	switch err := h.entries.Has(db, msg.Recipient); {
	case err == nil:
		return nil, nil, errors.Wrapf(errors.ErrDuplicate, "recipient %q", msg.Recipient)
	case errors.ErrNotFound.Is(err):
		// Expected.
	default:
		return nil, nil, errors.Wrap(err, "whitelist lookup")
	}
	return &msg, fund, nil
}

type removeWhitelistHandler struct {
	auth    x.Authenticator
	fund    orm.ModelBucket
	entries orm.ModelBucket
}

func (h *removeWhitelistHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *removeWhitelistHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, entry, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	entry.IsActive = false
	if _, err := h.entries.Put(db, msg.Recipient, entry); err != nil {
		return nil, errors.Wrap(err, "store whitelist entry")
	}
	return &weave.DeliverResult{}, nil
}

func (h *removeWhitelistHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RemoveWhitelistMsg, *WhitelistEntry, error) {
	var msg RemoveWhitelistMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	fund, err := loadFundAccount(db, h.fund)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, fund.Admin) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "admin signature missing")
	}
	var entry WhitelistEntry
	if err := h.entries.One(db, msg.Recipient, &entry); err != nil {
		return nil, nil, errors.Wrap(err, "whitelist entry")
	}
	// Removal is not idempotent. Removing an already deactivated entry is
	// an error, unlike toggle.
	if !entry.IsActive {
		return nil, nil, errors.Wrapf(ErrEntryNotActive, "recipient %q", msg.Recipient)
	}
	return &msg, &entry, nil
}

type toggleWhitelistHandler struct {
	auth    x.Authenticator
	fund    orm.ModelBucket
	entries orm.ModelBucket
}

func (h *toggleWhitelistHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *toggleWhitelistHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, entry, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	entry.IsActive = msg.IsActive
	if _, err := h.entries.Put(db, msg.Recipient, entry); err != nil {
		return nil, errors.Wrap(err, "store whitelist entry")
	}
	return &weave.DeliverResult{}, nil
}

func (h *toggleWhitelistHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ToggleWhitelistMsg, *WhitelistEntry, error) {
	var msg ToggleWhitelistMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	fund, err := loadFundAccount(db, h.fund)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, fund.Admin) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "admin signature missing")
	}
	var entry WhitelistEntry
	if err := h.entries.One(db, msg.Recipient, &entry); err != nil {
		return nil, nil, errors.Wrap(err, "whitelist entry")
	}
	return &msg, &entry, nil
}
