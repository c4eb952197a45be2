package badgr

import (
	"log"
	"os"
	"testing"

	"github.com/dgraph-io/badger"
)

var testDB *badger.DB

func TestMain(m *testing.M) {
	// create a tmp dir for badger
	dir, err := os.MkdirTemp("", "badger_test")
	if err != nil {
		log.Fatal(err)
	}
	// open the db
	testDB, err = badger.Open(badger.DefaultOptions(dir))
	if err != nil {
		os.RemoveAll(dir)
		log.Fatal(err)
	}
	// run the tests
	code := m.Run()
	testDB.Close()
	os.RemoveAll(dir)
	os.Exit(code)
}
