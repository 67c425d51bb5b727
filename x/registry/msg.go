package registry

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &RegisterInstanceMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateHeartbeatMsg{}, migration.NoModification)
	migration.MustRegister(1, &DeactivateInstanceMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateRegistryFeeMsg{}, migration.NoModification)
}

const (
	// instanceIDLen is the required length of an instance identifier.
	instanceIDLen = 32

	// maxEndpointLen is the maximum length of an instance endpoint.
	maxEndpointLen = 200
)

var _ weave.Msg = (*RegisterInstanceMsg)(nil)

func (RegisterInstanceMsg) Path() string {
	return "registry/register_instance"
}

func (m *RegisterInstanceMsg) Validate() error {
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
	return errs
}

var _ weave.Msg = (*UpdateHeartbeatMsg)(nil)

func (UpdateHeartbeatMsg) Path() string {
	return "registry/update_heartbeat"
}

func (m *UpdateHeartbeatMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.ID) != instanceIDLen {
		errs = errors.AppendField(errs, "ID", errors.Wrap(errors.ErrInput, "invalid length"))
	}
	return errs
}

var _ weave.Msg = (*DeactivateInstanceMsg)(nil)

func (DeactivateInstanceMsg) Path() string {
	return "registry/deactivate_instance"
}

func (m *DeactivateInstanceMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.ID) != instanceIDLen {
		errs = errors.AppendField(errs, "ID", errors.Wrap(errors.ErrInput, "invalid length"))
	}
	return errs
}

var _ weave.Msg = (*UpdateRegistryFeeMsg)(nil)

func (UpdateRegistryFeeMsg) Path() string {
	return "registry/update_registry_fee"
}

func (m *UpdateRegistryFeeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Fee == nil {
		errs = errors.AppendField(errs, "Fee", errors.ErrEmpty)
	} else if err := m.Fee.Validate(); err != nil {
		errs = errors.AppendField(errs, "Fee", err)
	} else if !m.Fee.IsNonNegative() {
		errs = errors.AppendField(errs, "Fee", errors.Wrap(errors.ErrAmount, "must not be negative"))
	}
	return errs
}
