package app

import (
	"testing"
	"time"

	"github.com/fundhub/fundd/x/fundmgr"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// TestAppFlow runs the full deposit, whitelist and allocation flow
// through the ABCI surface.
func TestAppFlow(t *testing.T) {
	const chainID = "test-net-22"

	abciApp, err := GenerateApp(&server.Options{
		Home:   "",
		Logger: log.NewNopLogger(),
		Debug:  true,
	})
	if err != nil {
		t.Fatalf("cannot generate app: %s", err)
	}
	myApp := abciApp.(app.BaseApp)

	admin := crypto.GenPrivKeyEd25519()
	adminAddr := admin.PublicKey().Address()
	recipient := crypto.GenPrivKeyEd25519()
	recipientAddr := recipient.PublicKey().Address()

	opts, err := GenInitOptions([]string{"IOV", adminAddr.String()})
	if err != nil {
		t.Fatalf("cannot generate genesis options: %s", err)
	}
	myApp.InitChain(abci.RequestInitChain{
		AppStateBytes: opts,
		ChainId:       chainID,
	})
	commitBlock(t, myApp, 1, chainID)

	// The genesis account is funded.
	var wallet cash.Set
	queryOne(t, myApp, "/wallets", adminAddr, &wallet)
	if len(wallet.Coins) != 1 || wallet.Coins[0].Whole != 123456789 {
		t.Fatalf("unexpected genesis balance: %q", wallet.Coins)
	}

	deliverTx(t, myApp, 2, chainID, &Tx{
		Sum: &Tx_FundmgrStoreFundsMsg{&fundmgr.StoreFundsMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Source:   adminAddr,
			Amount:   coin.NewCoinp(1000, 0, "IOV"),
		}},
	}, admin, 0)

	deliverTx(t, myApp, 3, chainID, &Tx{
		Sum: &Tx_FundmgrAddWhitelistMsg{&fundmgr.AddWhitelistMsg{
			Metadata:  &weave.Metadata{Schema: 1},
			Recipient: recipientAddr,
			Label:     "grant payout",
		}},
	}, admin, 1)

	deliverTx(t, myApp, 4, chainID, &Tx{
		Sum: &Tx_FundmgrAllocateFundsMsg{&fundmgr.AllocateFundsMsg{
			Metadata:  &weave.Metadata{Schema: 1},
			Recipient: recipientAddr,
			Amount:    coin.NewCoinp(400, 0, "IOV"),
		}},
	}, admin, 2)

	var paid cash.Set
	queryOne(t, myApp, "/wallets", recipientAddr, &paid)
	if len(paid.Coins) != 1 || paid.Coins[0].Whole != 400 {
		t.Fatalf("unexpected recipient balance: %q", paid.Coins)
	}

	var held cash.Set
	queryOne(t, myApp, "/wallets", fundmgr.FundAddress(), &held)
	if len(held.Coins) != 1 || held.Coins[0].Whole != 600 {
		t.Fatalf("unexpected fund balance: %q", held.Coins)
	}

	var fund fundmgr.FundAccount
	queryOne(t, myApp, "/fundaccounts", []byte("fund_account"), &fund)
	if fund.TotalFunds.Whole != 600 {
		t.Fatalf("unexpected total funds: %q", fund.TotalFunds)
	}
	if !fund.Admin.Equals(adminAddr) {
		t.Fatalf("unexpected admin: %q", fund.Admin)
	}
}

// commitBlock runs an empty block at the given height.
func commitBlock(t testing.TB, myApp app.BaseApp, height int64, chainID string) []byte {
	t.Helper()

	header := abci.Header{
		Height:  height,
		ChainID: chainID,
		Time:    time.Unix(1572247483+height, 0),
	}
	myApp.BeginBlock(abci.RequestBeginBlock{Header: header})
	myApp.EndBlock(abci.RequestEndBlock{})
	cres := myApp.Commit()
	if len(cres.Data) == 0 {
		t.Fatal("empty commit hash")
	}
	return cres.Data
}

// deliverTx signs the transaction, runs it in a block at the given
// height and commits.
func deliverTx(t testing.TB, myApp app.BaseApp, height int64, chainID string, tx *Tx, signer *crypto.PrivateKey, seq int64) {
	t.Helper()

	sig, err := sigs.SignTx(signer, tx, chainID, seq)
	if err != nil {
		t.Fatalf("cannot sign transaction: %s", err)
	}
	tx.Signatures = []*sigs.StdSignature{sig}
	txBytes, err := tx.Marshal()
	if err != nil {
		t.Fatalf("cannot marshal transaction: %s", err)
	}

	header := abci.Header{
		Height:  height,
		ChainID: chainID,
		Time:    time.Unix(1572247483+height, 0),
	}
	myApp.BeginBlock(abci.RequestBeginBlock{Header: header})
	if res := myApp.CheckTx(txBytes); res.Code != 0 {
		t.Fatalf("check failed: %s", res.Log)
	}
	if res := myApp.DeliverTx(txBytes); res.Code != 0 {
		t.Fatalf("deliver failed: %s", res.Log)
	}
	myApp.EndBlock(abci.RequestEndBlock{})
	if cres := myApp.Commit(); len(cres.Data) == 0 {
		t.Fatal("empty commit hash")
	}
}

func queryOne(t testing.TB, myApp app.BaseApp, path string, key []byte, dest weave.Persistent) {
	t.Helper()

	qres := myApp.Query(abci.RequestQuery{Path: path, Data: key})
	if qres.Code != 0 {
		t.Fatalf("query failed: %s", qres.Log)
	}
	if len(qres.Value) == 0 {
		t.Fatalf("no result for %s %X", path, key)
	}
	if err := app.UnmarshalOneResult(qres.Value, dest); err != nil {
		t.Fatalf("cannot unmarshal result: %s", err)
	}
}
