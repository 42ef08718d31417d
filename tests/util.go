package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/ivamusic/academia/core/directory"
	emailsvc "github.com/ivamusic/academia/services/email"
	logsvc "github.com/ivamusic/academia/services/logger"
	inmemdb "github.com/ivamusic/academia/storage/database/inmem"
)

// NewService returns a directory service backed by a fresh empty store.
func NewService(t *testing.T) (*directory.Service, *inmemdb.DB) {
	t.Helper()

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open(): %v", err)
	}
	svc := directory.NewService(
		inmemdb.Repositories(db),
		emailsvc.NewConsoleServiceMock(),
		logsvc.NewConsoleLogger(log.New(io.Discard, "", 0)),
	)
	return svc, db
}

// NewSeededService returns a directory service backed by a store holding the
// fixed seed set.
func NewSeededService(t *testing.T) (*directory.Service, *inmemdb.DB) {
	t.Helper()

	svc, db := NewService(t)
	db.LoadFixtures()
	return svc, db
}

// CreateUser registers a user through the service, failing the test on error.
func CreateUser(t *testing.T, svc *directory.Service, name, uname string, role directory.Role, pwd string) directory.User {
	t.Helper()

	usr, err := svc.CreateUser(directory.NewUser{
		Name:     name,
		Username: uname,
		Role:     role,
		Password: pwd,
	})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

// DiffJSON renders a unified diff of two JSON payloads for readable test
// failures.
func DiffJSON(want, got interface{}) string {
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(indentJSON(want)),
		B:        difflib.SplitLines(indentJSON(got)),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	return diff
}

func indentJSON(obj interface{}) string {
	out, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", obj)
	}
	return string(out)
}
