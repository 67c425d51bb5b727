package registry

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
)

func TestGenesisKey(t *testing.T) {
	const genesis = `
		{
			"registry": {
				"admin": "E94323317C46BDA2268FA3698BAF4F95B893E8C7",
				"registration_fee": {"whole": 5, "ticker": "IOV"}
			}
		}
	`
	admin, _ := hex.DecodeString("E94323317C46BDA2268FA3698BAF4F95B893E8C7")

	var opts weave.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "registry")
	var ini Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); err != nil {
		t.Fatalf("cannot load genesis: %s", err)
	}

	var reg Registry
	if err := NewRegistryBucket().One(db, registryKey, &reg); err != nil {
		t.Fatalf("cannot fetch registry: %s", err)
	}
	if !reg.Admin.Equals(admin) {
		t.Fatalf("unexpected admin address: %q", reg.Admin)
	}
	if reg.RegistrationFee.Whole != 5 || reg.RegistrationFee.Ticker != "IOV" {
		t.Fatalf("unexpected registration fee: %q", reg.RegistrationFee)
	}
	if reg.TotalInstances != 0 {
		t.Fatalf("unexpected instance count: %d", reg.TotalInstances)
	}

	// A second initialization must not overwrite the registry.
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); !errors.ErrDuplicate.Is(err) {
		t.Fatalf("want a duplicate error, got %+v", err)
	}
}

func TestGenesisWithoutRegistryDeclaration(t *testing.T) {
	var opts weave.Options
	if err := json.Unmarshal([]byte(`{}`), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "registry")
	var ini Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); err != nil {
		t.Fatalf("cannot load genesis: %s", err)
	}

	var reg Registry
	if err := NewRegistryBucket().One(db, registryKey, &reg); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want no registry, got %+v", err)
	}
}

func TestGenesisRequiresFeeDeclaration(t *testing.T) {
	const genesis = `
		{
			"registry": {
				"admin": "E94323317C46BDA2268FA3698BAF4F95B893E8C7"
			}
		}
	`
	var opts weave.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "registry")
	var ini Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); !errors.ErrEmpty.Is(err) {
		t.Fatalf("want an empty fee error, got %+v", err)
	}
}
