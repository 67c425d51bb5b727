package fundmgr

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrNotWhitelisted is returned when allocating funds to a recipient
	// that has no whitelist entry at all.
	ErrNotWhitelisted = errors.Register(1500, "recipient not whitelisted")

	// ErrEntryNotActive is returned when an operation requires an active
	// whitelist entry but the entry is deactivated.
	ErrEntryNotActive = errors.Register(1501, "whitelist entry not active")
)
