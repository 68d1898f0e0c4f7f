package source

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"csvdiff/core/database"
	"csvdiff/core/storage"
	"csvdiff/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func renderString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestWriter_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "diff.txt")
	w := NewWriter(NewClients(storage.Config{}, database.Config{}, zap.NewNop()), zap.NewNop())

	err := w.Write(context.Background(), Locator{Kind: KindFile, Raw: path, Path: path}, "text/plain", renderString("ok\r\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ok\r\n", string(data))
}

func TestWriter_Object(t *testing.T) {
	m := new(mocks.Client)
	m.On("BucketExists", mock.Anything, "reports").Return(true, nil)
	m.On("PutObject", mock.Anything, "reports", "run/diff.json", mock.Anything, int64(2),
		minio.PutObjectOptions{ContentType: "application/json"}).Return(minio.UploadInfo{}, nil)

	w := NewWriter(NewClients(storage.Config{}, database.Config{}, zap.NewNop(), WithStorage(m)), zap.NewNop())

	loc := Locator{Kind: KindObject, Raw: "s3://reports/run/diff.json", Bucket: "reports", Object: "run/diff.json"}
	require.NoError(t, w.Write(context.Background(), loc, "application/json", renderString("{}")))
	m.AssertExpectations(t)
}

func TestWriter_ObjectRenderFails(t *testing.T) {
	m := new(mocks.Client)
	w := NewWriter(NewClients(storage.Config{}, database.Config{}, zap.NewNop(), WithStorage(m)), zap.NewNop())

	loc := Locator{Kind: KindObject, Raw: "s3://reports/x", Bucket: "reports", Object: "x"}
	err := w.Write(context.Background(), loc, "text/plain", func(io.Writer) error { return errors.New("boom") })
	assert.ErrorContains(t, err, "boom")
	m.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWriter_Table(t *testing.T) {
	w := NewWriter(NewClients(storage.Config{}, database.Config{}, zap.NewNop()), zap.NewNop())

	err := w.Write(context.Background(), Locator{Kind: KindTable, Raw: "db://out", Table: "out"}, "text/plain", renderString("x"))
	assert.ErrorIs(t, err, ErrUnsupportedOutput)
}
