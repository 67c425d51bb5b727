package registry

import (
	"bytes"
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

		idA = instanceID(0xa1)
		idB = instanceID(0xb2)

		now = weave.UnixTime(1572247483)
	)

	cases := map[string]struct {
		Requests  []Request
		Funds     []AccountBalance
		AfterTest func(t *testing.T, db weave.KVStore)
	}{
		"register, pay the fee and heartbeat": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(20, 0, "IOV")},
			},
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterInstanceMsg{
							Metadata: &weave.Metadata{Schema: 1},
							ID:       idA,
							Owner:    aliceCond.Address(),
							Endpoint: "https://node-a.example.com:443",
						},
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Now:        now + 120,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &UpdateHeartbeatMsg{
							Metadata: &weave.Metadata{Schema: 1},
							ID:       idA,
						},
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, aliceCond.Address(), coin.NewCoin(13, 0, "IOV"))
				assertFunds(t, db, CollectorAddress(), coin.NewCoin(7, 0, "IOV"))

				var instance Instance
				if err := NewInstanceBucket().One(db, idA, &instance); err != nil {
					t.Fatalf("cannot get instance: %s", err)
				}
				if !instance.IsActive {
					t.Fatal("instance must be active")
				}
				if instance.RegisteredAt != now {
					t.Fatalf("invalid registration time: %d", instance.RegisteredAt)
				}
				if instance.LastHeartbeat != now+120 {
					t.Fatalf("invalid heartbeat time: %d", instance.LastHeartbeat)
				}
				if !instance.Owner.Equals(aliceCond.Address()) {
					t.Fatalf("invalid owner: %q", instance.Owner)
				}

				var reg Registry
				if err := NewRegistryBucket().One(db, registryKey, &reg); err != nil {
					t.Fatalf("cannot get registry: %s", err)
				}
				if reg.TotalInstances != 1 {
					t.Fatalf("unexpected instance count: %d", reg.TotalInstances)
				}

				var rate RateLimit
				if err := NewRateLimitBucket().One(db, aliceCond.Address(), &rate); err != nil {
					t.Fatalf("cannot get rate limit: %s", err)
				}
				if rate.RegistrationCount != 1 {
					t.Fatalf("unexpected registration count: %d", rate.RegistrationCount)
				}
				if rate.LastRegistration != now {
					t.Fatalf("invalid last registration: %d", rate.LastRegistration)
				}
			},
		},
		"a second registration within a minute is rejected": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(30, 0, "IOV")},
			},
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterInstanceMsg{
							Metadata: &weave.Metadata{Schema: 1},
							ID:       idA,
							Owner:    aliceCond.Address(),
							Endpoint: "https://node-a.example.com:443",
						},
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Now:        now + 59,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterInstanceMsg{
							Metadata: &weave.Metadata{Schema: 1},
							ID:       idB,
							Owner:    aliceCond.Address(),
							Endpoint: "https://node-b.example.com:443",
						},
					},
					BlockHeight: 101,
					WantErr:     ErrRateLimited,
				},
				{
					Now:        now + 60,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterInstanceMsg{
							Metadata: &weave.Metadata{Schema: 1},
							ID:       idB,
							Owner:    aliceCond.Address(),
							Endpoint: "https://node-b.example.com:443",
						},
					},
					BlockHeight: 102,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, CollectorAddress(), coin.NewCoin(14, 0, "IOV"))

				var rate RateLimit
				if err := NewRateLimitBucket().One(db, aliceCond.Address(), &rate); err != nil {
					t.Fatalf("cannot get rate limit: %s", err)
				}
				if rate.RegistrationCount != 2 {
					t.Fatalf("unexpected registration count: %d", rate.RegistrationCount)
				}
			},
		},
		"the rate limit is per owner": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(10, 0, "IOV")},
				{Wallet: bobCond.Address(), Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterInstanceMsg{
							Metadata: &weave.Metadata{Schema: 1},
							ID:       idA,
							Owner:    aliceCond.Address(),
							Endpoint: "https://node-a.example.com:443",
						},
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterInstanceMsg{
							Metadata: &weave.Metadata{Schema: 1},
							ID:       idB,
							Owner:    bobCond.Address(),
							Endpoint: "https://node-b.example.com:443",
						},
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
			},
		},
		"an instance id cannot be registered twice": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(10, 0, "IOV")},
				{Wallet: bobCond.Address(), Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterInstanceMsg{
							Metadata: &weave.Metadata{Schema: 1},
							ID:       idA,
							Owner:    aliceCond.Address(),
							Endpoint: "https://node-a.example.com:443",
						},
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterInstanceMsg{
							Metadata: &weave.Metadata{Schema: 1},
							ID:       idA,
							Owner:    bobCond.Address(),
							Endpoint: "https://node-b.example.com:443",
						},
					},
					BlockHeight: 101,
					WantErr:     errors.ErrDuplicate,
				},
			},
		},
		"registration requires the owner signature": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterInstanceMsg{
							Metadata: &weave.Metadata{Schema: 1},
							ID:       idA,
							Owner:    aliceCond.Address(),
							Endpoint: "https://node-a.example.com:443",
						},
					},
					BlockHeight: 100,
					WantErr:     errors.ErrUnauthorized,
				},
			},
		},
		"a deactivated instance does not heartbeat": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterInstanceMsg{
							Metadata: &weave.Metadata{Schema: 1},
							ID:       idA,
							Owner:    aliceCond.Address(),
							Endpoint: "https://node-a.example.com:443",
						},
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &DeactivateInstanceMsg{
							Metadata: &weave.Metadata{Schema: 1},
							ID:       idA,
						},
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
				{
					Now:        now + 2,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &UpdateHeartbeatMsg{
							Metadata: &weave.Metadata{Schema: 1},
							ID:       idA,
						},
					},
					BlockHeight: 102,
					WantErr:     ErrInstanceNotActive,
				},
				// Deactivation of an inactive instance is a noop.
				{
					Now:        now + 3,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &DeactivateInstanceMsg{
							Metadata: &weave.Metadata{Schema: 1},
							ID:       idA,
						},
					},
					BlockHeight: 103,
					WantErr:     nil,
				},
			},
		},
		"heartbeat and deactivation require the owner signature": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterInstanceMsg{
							Metadata: &weave.Metadata{Schema: 1},
							ID:       idA,
							Owner:    aliceCond.Address(),
							Endpoint: "https://node-a.example.com:443",
						},
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &UpdateHeartbeatMsg{
							Metadata: &weave.Metadata{Schema: 1},
							ID:       idA,
						},
					},
					BlockHeight: 101,
					WantErr:     errors.ErrUnauthorized,
				},
				{
					Now:        now + 2,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &DeactivateInstanceMsg{
							Metadata: &weave.Metadata{Schema: 1},
							ID:       idA,
						},
					},
					BlockHeight: 102,
					WantErr:     errors.ErrUnauthorized,
				},
			},
		},
		"heartbeat of an unknown instance fails": {
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &UpdateHeartbeatMsg{
							Metadata: &weave.Metadata{Schema: 1},
							ID:       idA,
						},
					},
					BlockHeight: 100,
					WantErr:     errors.ErrNotFound,
				},
			},
		},
		"only the admin can change the registration fee": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &UpdateRegistryFeeMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Fee:      coin.NewCoinp(0, 0, "IOV"),
						},
					},
					BlockHeight: 100,
					WantErr:     errors.ErrUnauthorized,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &UpdateRegistryFeeMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Fee:      coin.NewCoinp(0, 0, "IOV"),
						},
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
				// With a zero fee no coins move on registration.
				{
					Now:        now + 2,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterInstanceMsg{
							Metadata: &weave.Metadata{Schema: 1},
							ID:       idA,
							Owner:    aliceCond.Address(),
							Endpoint: "https://node-a.example.com:443",
						},
					},
					BlockHeight: 102,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, aliceCond.Address(), coin.NewCoin(10, 0, "IOV"))

				var reg Registry
				if err := NewRegistryBucket().One(db, registryKey, &reg); err != nil {
					t.Fatalf("cannot get registry: %s", err)
				}
				if !reg.RegistrationFee.IsZero() {
					t.Fatalf("unexpected fee: %q", reg.RegistrationFee)
				}
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "registry", "cash")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			ctrl := cash.NewController(cash.NewBucket())
			RegisterRoutes(rt, auth, ctrl)

			for _, b := range tc.Funds {
				if err := ctrl.CoinMint(db, b.Wallet, b.Amount); err != nil {
					t.Fatalf("cannot mint coins for %q: %s", b.Wallet, err)
				}
			}

			reg := Registry{
				Metadata:        &weave.Metadata{Schema: 1},
				Admin:           adminCond.Address(),
				RegistrationFee: coin.NewCoinp(7, 0, "IOV"),
			}
			if _, err := NewRegistryBucket().Put(db, registryKey, &reg); err != nil {
				t.Fatalf("cannot save registry: %s", err)
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

func TestOwnerIndex(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "registry")

	owner := weavetest.NewCondition().Address()
	b := NewInstanceBucket()
	for i := byte(0); i < 3; i++ {
		instance := Instance{
			Metadata:      &weave.Metadata{Schema: 1},
			ID:            instanceID(i + 1),
			Owner:         owner,
			Endpoint:      "https://node.example.com:443",
			RegisteredAt:  weave.UnixTime(1572247483),
			LastHeartbeat: weave.UnixTime(1572247483),
			IsActive:      true,
		}
		if _, err := b.Put(db, instance.ID, &instance); err != nil {
			t.Fatalf("cannot save instance: %s", err)
		}
	}

	var instances []*Instance
	if _, err := b.ByIndex(db, "owner", owner, &instances); err != nil {
		t.Fatalf("cannot query by owner: %s", err)
	}
	if len(instances) != 3 {
		t.Fatalf("want 3 instances, got %d", len(instances))
	}
}

// instanceID returns a valid instance identifier filled with the given byte.
func instanceID(b byte) []byte {
	return bytes.Repeat([]byte{b}, 32)
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
