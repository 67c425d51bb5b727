package fundmgr

import (
	"strings"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestStoreFundsMsgValidate(t *testing.T) {
	cases := map[string]struct {
		Msg  weave.Msg
		Want *errors.Error
	}{
		"valid message": {
			Msg: &StoreFundsMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Source:   weavetest.NewCondition().Address(),
				Amount:   coin.NewCoinp(10, 0, "IOV"),
			},
			Want: nil,
		},
		"source is optional": {
			Msg: &StoreFundsMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Amount:   coin.NewCoinp(10, 0, "IOV"),
			},
			Want: nil,
		},
		"amount is required": {
			Msg: &StoreFundsMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Source:   weavetest.NewCondition().Address(),
			},
			Want: errors.ErrEmpty,
		},
		"zero amount": {
			Msg: &StoreFundsMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Source:   weavetest.NewCondition().Address(),
				Amount:   coin.NewCoinp(0, 0, "IOV"),
			},
			Want: errors.ErrAmount,
		},
		"negative amount": {
			Msg: &StoreFundsMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Source:   weavetest.NewCondition().Address(),
				Amount:   coin.NewCoinp(-4, 0, "IOV"),
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

func TestAllocateFundsMsgValidate(t *testing.T) {
	cases := map[string]struct {
		Msg  weave.Msg
		Want *errors.Error
	}{
		"valid message": {
			Msg: &AllocateFundsMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Recipient: weavetest.NewCondition().Address(),
				Amount:    coin.NewCoinp(10, 0, "IOV"),
			},
			Want: nil,
		},
		"recipient is required": {
			Msg: &AllocateFundsMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Amount:   coin.NewCoinp(10, 0, "IOV"),
			},
			Want: errors.ErrEmpty,
		},
		"zero amount": {
			Msg: &AllocateFundsMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Recipient: weavetest.NewCondition().Address(),
				Amount:    coin.NewCoinp(0, 0, "IOV"),
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

func TestAddWhitelistMsgValidate(t *testing.T) {
	cases := map[string]struct {
		Msg  weave.Msg
		Want *errors.Error
	}{
		"valid message": {
			Msg: &AddWhitelistMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Recipient: weavetest.NewCondition().Address(),
				Label:     "payroll",
			},
			Want: nil,
		},
		"label is optional": {
			Msg: &AddWhitelistMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Recipient: weavetest.NewCondition().Address(),
			},
			Want: nil,
		},
		"label of maximum length": {
			Msg: &AddWhitelistMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Recipient: weavetest.NewCondition().Address(),
				Label:     strings.Repeat("x", 64),
			},
			Want: nil,
		},
		"label too long": {
			Msg: &AddWhitelistMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Recipient: weavetest.NewCondition().Address(),
				Label:     strings.Repeat("x", 65),
			},
			Want: errors.ErrInput,
		},
		"recipient is required": {
			Msg: &AddWhitelistMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Label:    "payroll",
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

func TestSetAdminMsgValidate(t *testing.T) {
	cases := map[string]struct {
		Msg  weave.Msg
		Want *errors.Error
	}{
		"valid message": {
			Msg: &SetAdminMsg{
				Metadata: &weave.Metadata{Schema: 1},
				NewAdmin: weavetest.NewCondition().Address(),
			},
			Want: nil,
		},
		"new admin is required": {
			Msg: &SetAdminMsg{
				Metadata: &weave.Metadata{Schema: 1},
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
