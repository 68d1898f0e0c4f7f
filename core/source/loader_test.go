package source

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"csvdiff/core/database"
	"csvdiff/core/reconcile"
	"csvdiff/core/storage"
	"csvdiff/core/storage/mocks"
	"csvdiff/core/tabular"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, m, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := database.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}))
	require.NoError(t, err)
	return db, m
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeCSV(t, "prev.csv", "id,name\n1,Alice\n")
	l := NewLoader(NewClients(storage.Config{}, database.Config{}, zap.NewNop()), zap.NewNop())

	loc, err := l.Parse(path)
	require.NoError(t, err)

	ds, err := l.Load(context.Background(), loc)
	require.NoError(t, err)
	assert.Equal(t, path, ds.Name)
	assert.Equal(t, []string{"id", "name"}, ds.Header)
	assert.Equal(t, reconcile.Text("Alice"), ds.Rows[0]["name"])
}

func TestLoader_LoadMissingFile(t *testing.T) {
	l := NewLoader(NewClients(storage.Config{}, database.Config{}, zap.NewNop()), zap.NewNop())

	_, err := l.Load(context.Background(), Locator{Kind: KindFile, Raw: "nope.csv", Path: "nope.csv"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_LoadObject(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)
	m.On("BucketExists", mock.Anything, "snaps").Return(true, nil)
	m.On("GetObject", mock.Anything, "snaps", "users.csv", minio.GetObjectOptions{}).
		Return(io.NopCloser(strings.NewReader("\uFEFFid,name\n7,Zed\n")), nil)

	l := NewLoader(NewClients(storage.Config{}, database.Config{}, zap.NewNop(), WithStorage(m)), zap.NewNop())

	ds, err := l.Load(ctx, Locator{Kind: KindObject, Raw: "s3://snaps/users.csv", Bucket: "snaps", Object: "users.csv"})
	require.NoError(t, err)
	assert.Equal(t, "s3://snaps/users.csv", ds.Name)
	assert.Equal(t, []string{"id", "name"}, ds.Header)
	m.AssertExpectations(t)
}

func TestLoader_LoadObjectParseError(t *testing.T) {
	m := new(mocks.Client)
	m.On("BucketExists", mock.Anything, "snaps").Return(true, nil)
	m.On("GetObject", mock.Anything, "snaps", "bad.csv", mock.Anything).
		Return(io.NopCloser(strings.NewReader("id,name\n1,\"open\n")), nil)

	l := NewLoader(NewClients(storage.Config{}, database.Config{}, zap.NewNop(), WithStorage(m)), zap.NewNop())

	_, err := l.Load(context.Background(), Locator{Kind: KindObject, Raw: "s3://snaps/bad.csv", Bucket: "snaps", Object: "bad.csv"})
	assert.ErrorIs(t, err, tabular.ErrParse)
}

func TestLoader_LoadTable(t *testing.T) {
	db, sm := mockDB(t)
	sm.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("1", nil))

	l := NewLoader(NewClients(storage.Config{}, database.Config{}, zap.NewNop(), WithDB(db)), zap.NewNop())

	ds, err := l.Load(context.Background(), Locator{Kind: KindTable, Raw: "db://users", Table: "users"})
	require.NoError(t, err)
	assert.Equal(t, reconcile.Null(), ds.Rows[0]["name"])
}

func TestLoader_LazyClients(t *testing.T) {
	clients := NewClients(storage.Config{}, database.Config{}, zap.NewNop())
	calls := 0
	clients.connect = func(database.Config) (*gorm.DB, error) {
		calls++
		return nil, errors.New("refused")
	}
	clients.newStorage = func(storage.Config) (storage.Client, error) {
		t.Fatal("storage must not be created for a table source")
		return nil, nil
	}
	l := NewLoader(clients, zap.NewNop())

	_, err := l.Load(context.Background(), Locator{Kind: KindTable, Raw: "db://users", Table: "users"})
	assert.ErrorContains(t, err, "database: refused")
	assert.Equal(t, 1, calls)
}

func TestLoader_LoadPair(t *testing.T) {
	prevPath := writeCSV(t, "prev.csv", "id,name\n1,Alice\n")
	currPath := writeCSV(t, "curr.csv", "id,name\n1,Alicia\n2,Bob\n")
	l := NewLoader(NewClients(storage.Config{}, database.Config{}, zap.NewNop()), zap.NewNop())

	prevLoc, _ := l.Parse(prevPath)
	currLoc, _ := l.Parse(currPath)

	prev, curr, err := l.LoadPair(context.Background(), prevLoc, currLoc)
	require.NoError(t, err)
	assert.Len(t, prev.Rows, 1)
	assert.Len(t, curr.Rows, 2)

	t.Run("one side fails", func(t *testing.T) {
		missing := Locator{Kind: KindFile, Raw: "missing.csv", Path: filepath.Join(t.TempDir(), "missing.csv")}

		prev, curr, err := l.LoadPair(context.Background(), prevLoc, missing)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Nil(t, prev)
		assert.Nil(t, curr)
	})
}
