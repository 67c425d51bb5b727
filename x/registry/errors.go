package registry

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrRateLimited is returned when an owner registers instances faster
	// than the rate limit allows.
	ErrRateLimited = errors.Register(1510, "registration rate limited")

	// ErrInstanceNotActive is returned when an operation requires an
	// active instance but the instance is deactivated.
	ErrInstanceNotActive = errors.Register(1511, "instance not active")
)
