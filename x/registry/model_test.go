package registry

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestRegistryValidate(t *testing.T) {
	cases := map[string]struct {
		Model *Registry
		Want  *errors.Error
	}{
		"valid model": {
			Model: &Registry{
				Metadata:        &weave.Metadata{Schema: 1},
				Admin:           weavetest.NewCondition().Address(),
				RegistrationFee: coin.NewCoinp(5, 0, "IOV"),
			},
			Want: nil,
		},
		"missing metadata": {
			Model: &Registry{
				Admin:           weavetest.NewCondition().Address(),
				RegistrationFee: coin.NewCoinp(5, 0, "IOV"),
			},
			Want: errors.ErrMetadata,
		},
		"missing fee": {
			Model: &Registry{
				Metadata: &weave.Metadata{Schema: 1},
				Admin:    weavetest.NewCondition().Address(),
			},
			Want: errors.ErrEmpty,
		},
		"negative fee": {
			Model: &Registry{
				Metadata:        &weave.Metadata{Schema: 1},
				Admin:           weavetest.NewCondition().Address(),
				RegistrationFee: coin.NewCoinp(-5, 0, "IOV"),
			},
			Want: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Model.Validate(); !tc.Want.Is(err) {
				t.Fatal(err)
			}
		})
	}
}

func TestInstanceValidate(t *testing.T) {
	cases := map[string]struct {
		Model *Instance
		Want  *errors.Error
	}{
		"valid model": {
			Model: &Instance{
				Metadata:      &weave.Metadata{Schema: 1},
				ID:            instanceID(1),
				Owner:         weavetest.NewCondition().Address(),
				Endpoint:      "https://node.example.com:443",
				RegisteredAt:  weave.UnixTime(1572247483),
				LastHeartbeat: weave.UnixTime(1572247483),
				IsActive:      true,
			},
			Want: nil,
		},
		"invalid id length": {
			Model: &Instance{
				Metadata:      &weave.Metadata{Schema: 1},
				ID:            []byte("too short"),
				Owner:         weavetest.NewCondition().Address(),
				Endpoint:      "https://node.example.com:443",
				RegisteredAt:  weave.UnixTime(1572247483),
				LastHeartbeat: weave.UnixTime(1572247483),
			},
			Want: errors.ErrInput,
		},
		"missing endpoint": {
			Model: &Instance{
				Metadata:      &weave.Metadata{Schema: 1},
				ID:            instanceID(1),
				Owner:         weavetest.NewCondition().Address(),
				RegisteredAt:  weave.UnixTime(1572247483),
				LastHeartbeat: weave.UnixTime(1572247483),
			},
			Want: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Model.Validate(); !tc.Want.Is(err) {
				t.Fatal(err)
			}
		})
	}
}

// The collector address must never change as clients hardcode it.
func TestCollectorAddressIsDeterministic(t *testing.T) {
	if got := string(CollectorCondition()); got != "registry/collector/registry" {
		t.Fatalf("unexpected collector condition: %q", got)
	}
}
