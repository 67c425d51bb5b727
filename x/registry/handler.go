package registry

import (
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
)

// registrationInterval is the minimum time between two registrations by the
// same owner.
const registrationInterval = 60 * time.Second

func RegisterQuery(qr weave.QueryRouter) {
	NewRegistryBucket().Register("registries", qr)
	NewInstanceBucket().Register("instances", qr)
	NewRateLimitBucket().Register("ratelimits", qr)
}

func RegisterRoutes(r weave.Registry, auth x.Authenticator, cashctrl cash.Controller) {
	r = migration.SchemaMigratingRegistry("registry", r)

	registry := NewRegistryBucket()
	instances := NewInstanceBucket()
	rates := NewRateLimitBucket()

	r.Handle(&RegisterInstanceMsg{}, &registerInstanceHandler{
		auth:      auth,
		registry:  registry,
		instances: instances,
		rates:     rates,
		cashctrl:  cashctrl,
	})
	r.Handle(&UpdateHeartbeatMsg{}, &updateHeartbeatHandler{
		auth:      auth,
		instances: instances,
	})
	r.Handle(&DeactivateInstanceMsg{}, &deactivateInstanceHandler{
		auth:      auth,
		instances: instances,
	})
	r.Handle(&UpdateRegistryFeeMsg{}, &updateRegistryFeeHandler{
		auth:     auth,
		registry: registry,
	})
}

type registerInstanceHandler struct {
	auth      x.Authenticator
	registry  orm.ModelBucket
	instances orm.ModelBucket
	rates     orm.ModelBucket
	cashctrl  cash.Controller
}

func (h *registerInstanceHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *registerInstanceHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, reg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	if reg.RegistrationFee.IsPositive() {
		fee := *reg.RegistrationFee
		if err := cash.MoveCoins(db, h.cashctrl, msg.Owner, CollectorAddress(), []*coin.Coin{&fee}); err != nil {
			return nil, errors.Wrap(err, "collect registration fee")
		}
	}
	instance := Instance{
		Metadata:      &weave.Metadata{Schema: 1},
		ID:            msg.ID,
		Owner:         msg.Owner,
		Endpoint:      msg.Endpoint,
		RegisteredAt:  weave.AsUnixTime(now),
		LastHeartbeat: weave.AsUnixTime(now),
		IsActive:      true,
	}
	if _, err := h.instances.Put(db, msg.ID, &instance); err != nil {
		return nil, errors.Wrap(err, "store instance")
	}

	var rate RateLimit
	switch err := h.rates.One(db, msg.Owner, &rate); {
	case err == nil:
		// Subsequent registration of this owner.
	case errors.ErrNotFound.Is(err):
		rate = RateLimit{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    msg.Owner,
		}
	default:
		return nil, errors.Wrap(err, "rate limit")
	}
	rate.LastRegistration = weave.AsUnixTime(now)
	rate.RegistrationCount++
	if _, err := h.rates.Put(db, msg.Owner, &rate); err != nil {
		return nil, errors.Wrap(err, "store rate limit")
	}

	reg.TotalInstances++
	if _, err := h.registry.Put(db, registryKey, reg); err != nil {
		return nil, errors.Wrap(err, "store registry")
	}
	return &weave.DeliverResult{Data: msg.ID}, nil
}

func (h *registerInstanceHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RegisterInstanceMsg, *Registry, error) {
	var msg RegisterInstanceMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature is required")
	}
	reg, err := loadRegistry(db, h.registry)
	if err != nil {
		return nil, nil, err
	}
	switch err := h.instances.Has(db, msg.ID); {
	case err == nil:
		return nil, nil, errors.Wrapf(errors.ErrDuplicate, "instance %x", msg.ID)
	case errors.ErrNotFound.Is(err):
		// Expected.
	default:
		return nil, nil, errors.Wrap(err, "instance lookup")
	}

	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "block time")
	}
	var rate RateLimit
	switch err := h.rates.One(db, msg.Owner, &rate); {
	case err == nil:
		if now.Sub(rate.LastRegistration.Time()) < registrationInterval {
			return nil, nil, errors.Wrapf(ErrRateLimited, "next registration at %s",
				rate.LastRegistration.Time().Add(registrationInterval))
		}
	case errors.ErrNotFound.Is(err):
		// First registration of this owner.
	default:
		return nil, nil, errors.Wrap(err, "rate limit")
	}
	return &msg, reg, nil
}

type updateHeartbeatHandler struct {
	auth      x.Authenticator
	instances orm.ModelBucket
}

func (h *updateHeartbeatHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *updateHeartbeatHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, instance, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	instance.LastHeartbeat = weave.AsUnixTime(now)
	if _, err := h.instances.Put(db, msg.ID, instance); err != nil {
		return nil, errors.Wrap(err, "store instance")
	}
	return &weave.DeliverResult{}, nil
}

func (h *updateHeartbeatHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UpdateHeartbeatMsg, *Instance, error) {
	var msg UpdateHeartbeatMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var instance Instance
	if err := h.instances.One(db, msg.ID, &instance); err != nil {
		return nil, nil, errors.Wrap(err, "instance")
	}
	if !h.auth.HasAddress(ctx, instance.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature is required")
	}
	if !instance.IsActive {
		return nil, nil, errors.Wrapf(ErrInstanceNotActive, "instance %x", msg.ID)
	}
	return &msg, &instance, nil
}

type deactivateInstanceHandler struct {
	auth      x.Authenticator
	instances orm.ModelBucket
}

func (h *deactivateInstanceHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *deactivateInstanceHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, instance, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	instance.IsActive = false
	if _, err := h.instances.Put(db, msg.ID, instance); err != nil {
		return nil, errors.Wrap(err, "store instance")
	}
	return &weave.DeliverResult{}, nil
}

func (h *deactivateInstanceHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*DeactivateInstanceMsg, *Instance, error) {
	var msg DeactivateInstanceMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var instance Instance
	if err := h.instances.One(db, msg.ID, &instance); err != nil {
		return nil, nil, errors.Wrap(err, "instance")
	}
	if !h.auth.HasAddress(ctx, instance.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature is required")
	}
	return &msg, &instance, nil
}

type updateRegistryFeeHandler struct {
	auth     x.Authenticator
	registry orm.ModelBucket
}

func (h *updateRegistryFeeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *updateRegistryFeeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, reg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	reg.RegistrationFee = msg.Fee
	if _, err := h.registry.Put(db, registryKey, reg); err != nil {
		return nil, errors.Wrap(err, "store registry")
	}
	return &weave.DeliverResult{}, nil
}

func (h *updateRegistryFeeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UpdateRegistryFeeMsg, *Registry, error) {
	var msg UpdateRegistryFeeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	reg, err := loadRegistry(db, h.registry)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, reg.Admin) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "admin signature missing")
	}
	return &msg, reg, nil
}
