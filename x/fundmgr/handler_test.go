package fundmgr

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	coin "github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"
)

func TestUseCases(t *testing.T) {
	type Request struct {
		Now         weave.UnixTime
		Conditions  []weave.Condition
		Tx          weave.Tx
		BlockHeight int64
		WantErr     *errors.Error
	}

	type AccountBalance struct {
		Wallet weave.Address
		Amount coin.Coin
	}

	var (
		adminCond = weavetest.NewCondition()
		aliceCond = weavetest.NewCondition()
		bobCond   = weavetest.NewCondition()

		now = weave.UnixTime(1572247483)
	)

	cases := map[string]struct {
		Requests  []Request
		Funds     []AccountBalance
		AfterTest func(t *testing.T, db weave.KVStore)
	}{
		"deposit, whitelist and allocate": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(1000, 0, "IOV")},
			},
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &StoreFundsMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Source:   aliceCond.Address(),
							Amount:   coin.NewCoinp(1000, 0, "IOV"),
						},
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &AddWhitelistMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
							Label:     "grant payout",
						},
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
				{
					Now:        now + 2,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &AllocateFundsMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
							Amount:    coin.NewCoinp(400, 0, "IOV"),
						},
					},
					BlockHeight: 102,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, bobCond.Address(), coin.NewCoin(400, 0, "IOV"))
				assertFunds(t, db, FundAddress(), coin.NewCoin(600, 0, "IOV"))
				assertTotalFunds(t, db, coin.NewCoin(600, 0, "IOV"))

				var entry WhitelistEntry
				if err := NewWhitelistBucket().One(db, bobCond.Address(), &entry); err != nil {
					t.Fatalf("cannot get whitelist entry: %s", err)
				}
				if !entry.IsActive {
					t.Fatal("entry must be active")
				}
				if entry.AddedAt != now+1 {
					t.Fatalf("invalid added at time: %d", entry.AddedAt)
				}
				if !entry.AddedBy.Equals(adminCond.Address()) {
					t.Fatalf("invalid added by: %q", entry.AddedBy)
				}
			},
		},
		"allocation to a recipient without a whitelist entry is rejected": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(1000, 0, "IOV")},
			},
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &StoreFundsMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Source:   aliceCond.Address(),
							Amount:   coin.NewCoinp(1000, 0, "IOV"),
						},
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &AllocateFundsMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
							Amount:    coin.NewCoinp(400, 0, "IOV"),
						},
					},
					BlockHeight: 101,
					WantErr:     ErrNotWhitelisted,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, FundAddress(), coin.NewCoin(1000, 0, "IOV"))
				assertTotalFunds(t, db, coin.NewCoin(1000, 0, "IOV"))
			},
		},
		"allocation to a deactivated recipient is rejected until toggled back": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(1000, 0, "IOV")},
			},
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &StoreFundsMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Source:   aliceCond.Address(),
							Amount:   coin.NewCoinp(1000, 0, "IOV"),
						},
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &AddWhitelistMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
						},
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
				{
					Now:        now + 2,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &RemoveWhitelistMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
						},
					},
					BlockHeight: 102,
					WantErr:     nil,
				},
				{
					Now:        now + 3,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &AllocateFundsMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
							Amount:    coin.NewCoinp(400, 0, "IOV"),
						},
					},
					BlockHeight: 103,
					WantErr:     ErrEntryNotActive,
				},
				{
					Now:        now + 4,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &ToggleWhitelistMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
							IsActive:  true,
						},
					},
					BlockHeight: 104,
					WantErr:     nil,
				},
				{
					Now:        now + 5,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &AllocateFundsMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
							Amount:    coin.NewCoinp(400, 0, "IOV"),
						},
					},
					BlockHeight: 105,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, bobCond.Address(), coin.NewCoin(400, 0, "IOV"))
				assertTotalFunds(t, db, coin.NewCoin(600, 0, "IOV"))
			},
		},
		"only the admin can allocate funds": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(1000, 0, "IOV")},
			},
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &StoreFundsMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Source:   aliceCond.Address(),
							Amount:   coin.NewCoinp(1000, 0, "IOV"),
						},
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &AllocateFundsMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
							Amount:    coin.NewCoinp(400, 0, "IOV"),
						},
					},
					BlockHeight: 101,
					WantErr:     errors.ErrUnauthorized,
				},
			},
		},
		"allocation above the fund balance is rejected before the whitelist is consulted": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(100, 0, "IOV")},
			},
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &StoreFundsMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Source:   aliceCond.Address(),
							Amount:   coin.NewCoinp(100, 0, "IOV"),
						},
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &AllocateFundsMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
							Amount:    coin.NewCoinp(101, 0, "IOV"),
						},
					},
					BlockHeight: 101,
					WantErr:     errors.ErrAmount,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertTotalFunds(t, db, coin.NewCoin(100, 0, "IOV"))
			},
		},
		"anyone can deposit, the depositor signature is required": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(10, 0, "IOV")},
				{Wallet: bobCond.Address(), Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &StoreFundsMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Source:   bobCond.Address(),
							Amount:   coin.NewCoinp(10, 0, "IOV"),
						},
					},
					BlockHeight: 100,
					WantErr:     errors.ErrUnauthorized,
				},
				{
					// Source defaults to the main signer.
					Now:        now + 1,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &StoreFundsMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Amount:   coin.NewCoinp(10, 0, "IOV"),
						},
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, aliceCond.Address(), coin.NewCoin(10, 0, "IOV"))
				assertTotalFunds(t, db, coin.NewCoin(10, 0, "IOV"))
			},
		},
		"a whitelist entry cannot be created twice": {
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &AddWhitelistMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
						},
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &RemoveWhitelistMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
						},
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
				// Deactivated entries still occupy the address.
				{
					Now:        now + 2,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &AddWhitelistMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
						},
					},
					BlockHeight: 102,
					WantErr:     errors.ErrDuplicate,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				var fund FundAccount
				if err := NewFundAccountBucket().One(db, fundAccountKey, &fund); err != nil {
					t.Fatalf("cannot get fund account: %s", err)
				}
				if fund.WhitelistCount != 1 {
					t.Fatalf("unexpected whitelist count: %d", fund.WhitelistCount)
				}
			},
		},
		"removing an already deactivated entry fails, toggle does not": {
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &AddWhitelistMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
						},
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &RemoveWhitelistMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
						},
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
				{
					Now:        now + 2,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &RemoveWhitelistMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
						},
					},
					BlockHeight: 102,
					WantErr:     ErrEntryNotActive,
				},
				{
					Now:        now + 3,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &ToggleWhitelistMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
							IsActive:  false,
						},
					},
					BlockHeight: 103,
					WantErr:     nil,
				},
			},
		},
		"whitelist mutations require the admin signature": {
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &AddWhitelistMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
						},
					},
					BlockHeight: 100,
					WantErr:     errors.ErrUnauthorized,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &ToggleWhitelistMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
							IsActive:  true,
						},
					},
					BlockHeight: 101,
					WantErr:     errors.ErrUnauthorized,
				},
			},
		},
		"toggle of a missing entry fails": {
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &ToggleWhitelistMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
							IsActive:  true,
						},
					},
					BlockHeight: 100,
					WantErr:     errors.ErrNotFound,
				},
			},
		},
		"admin rotation transfers all rights at once": {
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &SetAdminMsg{
							Metadata: &weave.Metadata{Schema: 1},
							NewAdmin: aliceCond.Address(),
						},
					},
					BlockHeight: 100,
					WantErr:     errors.ErrUnauthorized,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &SetAdminMsg{
							Metadata: &weave.Metadata{Schema: 1},
							NewAdmin: aliceCond.Address(),
						},
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
				// The previous admin is powerless now.
				{
					Now:        now + 2,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &AddWhitelistMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
						},
					},
					BlockHeight: 102,
					WantErr:     errors.ErrUnauthorized,
				},
				{
					Now:        now + 3,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &AddWhitelistMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Recipient: bobCond.Address(),
						},
					},
					BlockHeight: 103,
					WantErr:     nil,
				},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "fundmgr", "cash")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			ctrl := cash.NewController(cash.NewBucket())
			RegisterRoutes(rt, auth, ctrl)

			for _, b := range tc.Funds {
				if err := ctrl.CoinMint(db, b.Wallet, b.Amount); err != nil {
					t.Fatalf("cannot mint coins for %q: %s", b.Wallet, err)
				}
			}

			zero := coin.NewCoin(0, 0, "IOV")
			fund := FundAccount{
				Metadata:   &weave.Metadata{Schema: 1},
				Admin:      adminCond.Address(),
				TotalFunds: &zero,
			}
			if _, err := NewFundAccountBucket().Put(db, fundAccountKey, &fund); err != nil {
				t.Fatalf("cannot save fund account: %s", err)
			}

			for i, req := range tc.Requests {
				ctx := weave.WithHeight(context.Background(), req.BlockHeight)
				ctx = weave.WithChainID(ctx, "testchain-123")
				ctx = auth.SetConditions(ctx, req.Conditions...)
				ctx = weave.WithBlockTime(ctx, req.Now.Time())

				cache := db.CacheWrap()
				if _, err := rt.Check(ctx, cache, req.Tx); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d check error: want %q, got %+v", i, req.WantErr, err)
				}
				cache.Discard()
				if _, err := rt.Deliver(ctx, db, req.Tx); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d deliver error: want %q, got %+v", i, req.WantErr, err)
				}
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db)
			}
		})
	}
}

func assertFunds(t testing.TB, db weave.KVStore, wallet weave.Address, funds coin.Coin) {
	t.Helper()

	ctrl := cash.NewController(cash.NewBucket())
	coins, err := ctrl.Balance(db, wallet)
	if err != nil {
		t.Fatalf("balance: %s", err)
	}
	if len(coins) != 1 {
		t.Fatalf("want %q funds, found %d coins: %q", funds, len(coins), coins)
	}
	if !coins[0].Equals(funds) {
		t.Fatalf("unexpected funds found: %q", coins[0])
	}
}

// assertTotalFunds ensures the fund counter and the cash balance of the fund
// wallet did not diverge.
func assertTotalFunds(t testing.TB, db weave.KVStore, funds coin.Coin) {
	t.Helper()

	var fund FundAccount
	if err := NewFundAccountBucket().One(db, fundAccountKey, &fund); err != nil {
		t.Fatalf("cannot get fund account: %s", err)
	}
	if !fund.TotalFunds.Equals(funds) {
		t.Fatalf("unexpected total funds: %q", fund.TotalFunds)
	}
	assertFunds(t, db, FundAddress(), funds)
}
