package registry

import (
	"strings"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestRegisterInstanceMsgValidate(t *testing.T) {
	cases := map[string]struct {
		Msg  weave.Msg
		Want *errors.Error
	}{
		"valid message": {
			Msg: &RegisterInstanceMsg{
				Metadata: &weave.Metadata{Schema: 1},
				ID:       instanceID(1),
				Owner:    weavetest.NewCondition().Address(),
				Endpoint: "https://node.example.com:443",
			},
			Want: nil,
		},
		"endpoint of maximum length": {
			Msg: &RegisterInstanceMsg{
				Metadata: &weave.Metadata{Schema: 1},
				ID:       instanceID(1),
				Owner:    weavetest.NewCondition().Address(),
				Endpoint: strings.Repeat("x", 200),
			},
			Want: nil,
		},
		"endpoint too long": {
			Msg: &RegisterInstanceMsg{
				Metadata: &weave.Metadata{Schema: 1},
				ID:       instanceID(1),
				Owner:    weavetest.NewCondition().Address(),
				Endpoint: strings.Repeat("x", 201),
			},
			Want: errors.ErrInput,
		},
		"endpoint is required": {
			Msg: &RegisterInstanceMsg{
				Metadata: &weave.Metadata{Schema: 1},
				ID:       instanceID(1),
				Owner:    weavetest.NewCondition().Address(),
			},
			Want: errors.ErrEmpty,
		},
		"id must be 32 bytes": {
			Msg: &RegisterInstanceMsg{
				Metadata: &weave.Metadata{Schema: 1},
				ID:       []byte("too short"),
				Owner:    weavetest.NewCondition().Address(),
				Endpoint: "https://node.example.com:443",
			},
			Want: errors.ErrInput,
		},
		"owner is required": {
			Msg: &RegisterInstanceMsg{
				Metadata: &weave.Metadata{Schema: 1},
				ID:       instanceID(1),
				Endpoint: "https://node.example.com:443",
			},
			Want: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Msg.Validate(); !tc.Want.Is(err) {
				t.Fatal(err)
			}
		})
	}
}

func TestUpdateHeartbeatMsgValidate(t *testing.T) {
	cases := map[string]struct {
		Msg  weave.Msg
		Want *errors.Error
	}{
		"valid message": {
			Msg: &UpdateHeartbeatMsg{
				Metadata: &weave.Metadata{Schema: 1},
				ID:       instanceID(1),
			},
			Want: nil,
		},
		"id must be 32 bytes": {
			Msg: &UpdateHeartbeatMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			Want: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Msg.Validate(); !tc.Want.Is(err) {
				t.Fatal(err)
			}
		})
	}
}

func TestUpdateRegistryFeeMsgValidate(t *testing.T) {
	cases := map[string]struct {
		Msg  weave.Msg
		Want *errors.Error
	}{
		"valid message": {
			Msg: &UpdateRegistryFeeMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Fee:      coin.NewCoinp(5, 0, "IOV"),
			},
			Want: nil,
		},
		"a zero fee disables charging": {
			Msg: &UpdateRegistryFeeMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Fee:      coin.NewCoinp(0, 0, "IOV"),
			},
			Want: nil,
		},
		"fee is required": {
			Msg: &UpdateRegistryFeeMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			Want: errors.ErrEmpty,
		},
		"negative fee": {
			Msg: &UpdateRegistryFeeMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Fee:      coin.NewCoinp(-5, 0, "IOV"),
			},
			Want: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Msg.Validate(); !tc.Want.Is(err) {
				t.Fatal(err)
			}
		})
	}
}
