package registry

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Registry{}, migration.NoModification)
	migration.MustRegister(1, &Instance{}, migration.NoModification)
	migration.MustRegister(1, &RateLimit{}, migration.NoModification)
}

// registryKey is the fixed key of the one and only Registry instance. It is
// also the seed of the fee collector address derivation.
var registryKey = []byte("registry")

// CollectorCondition returns the condition controlling the wallet that all
// registration fees are paid into.
func CollectorCondition() weave.Condition {
	return weave.NewCondition("registry", "collector", registryKey)
}

// CollectorAddress returns the address holding the collected registration
// fees. No key pair exists for this address.
func CollectorAddress() weave.Address {
	return CollectorCondition().Address()
}

var _ orm.Model = (*Registry)(nil)

func (m *Registry) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Admin", m.Admin.Validate())
	if m.RegistrationFee == nil {
		errs = errors.AppendField(errs, "RegistrationFee", errors.ErrEmpty)
	} else {
		if err := m.RegistrationFee.Validate(); err != nil {
			errs = errors.AppendField(errs, "RegistrationFee", err)
		} else if !m.RegistrationFee.IsNonNegative() {
			errs = errors.AppendField(errs, "RegistrationFee", errors.Wrap(errors.ErrAmount, "must not be negative"))
		}
	}
	return errs
}

func NewRegistryBucket() orm.ModelBucket {
	b := orm.NewModelBucket("registry", &Registry{})
	return migration.NewModelBucket("registry", b)
}

func loadRegistry(db weave.ReadOnlyKVStore, b orm.ModelBucket) (*Registry, error) {
	var reg Registry
	if err := b.One(db, registryKey, &reg); err != nil {
		return nil, errors.Wrap(err, "registry")
	}
	return &reg, nil
}

var _ orm.Model = (*Instance)(nil)

func (m *Instance) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.ID) != instanceIDLen {
		errs = errors.AppendField(errs, "ID", errors.Wrap(errors.ErrInput, "invalid length"))
	}
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	if len(m.Endpoint) == 0 {
		errs = errors.AppendField(errs, "Endpoint", errors.ErrEmpty)
	} else if len(m.Endpoint) > maxEndpointLen {
		errs = errors.AppendField(errs, "Endpoint", errors.Wrap(errors.ErrInput, "too long"))
	}
	errs = errors.AppendField(errs, "RegisteredAt", m.RegisteredAt.Validate())
	errs = errors.AppendField(errs, "LastHeartbeat", m.LastHeartbeat.Validate())
	return errs
}

func NewInstanceBucket() orm.ModelBucket {
	b := orm.NewModelBucket("instance", &Instance{},
		orm.WithIndex("owner", instanceOwner, false),
	)
	return migration.NewModelBucket("registry", b)
}

func instanceOwner(o orm.Object) ([]byte, error) {
	ins, ok := o.Value().(*Instance)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not an Instance")
	}
	return ins.Owner, nil
}

var _ orm.Model = (*RateLimit)(nil)

func (m *RateLimit) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "LastRegistration", m.LastRegistration.Validate())
	return errs
}

func NewRateLimitBucket() orm.ModelBucket {
	b := orm.NewModelBucket("ratelimit", &RateLimit{})
	return migration.NewModelBucket("registry", b)
}
