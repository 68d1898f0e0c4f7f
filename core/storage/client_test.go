package storage_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"csvdiff/core/storage"
	"csvdiff/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{"ValidConfig", storage.Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Region: "us-east-1"}},
		{"EndpointWithHTTP", storage.Config{Endpoint: "http://localhost:9000", AccessKey: "k", SecretKey: "s"}},
		{"EndpointWithHTTPS", storage.Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "k", SecretKey: "s", UseSSL: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "snapshots").Return(true, nil)
		m.On("GetObject", ctx, "snapshots", "a.csv", minio.GetObjectOptions{}).
			Return(io.NopCloser(strings.NewReader("id\n1\n")), nil)

		rc, err := storage.Open(ctx, m, "snapshots", "a.csv")
		require.NoError(t, err)
		defer rc.Close()

		data, _ := io.ReadAll(rc)
		assert.Equal(t, "id\n1\n", string(data))
		m.AssertExpectations(t)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "nope").Return(false, nil)

		_, err := storage.Open(ctx, m, "nope", "a.csv")
		assert.ErrorIs(t, err, storage.ErrBucketNotFound)
		m.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("GetObjectFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "snapshots").Return(true, nil)
		m.On("GetObject", ctx, "snapshots", "gone.csv", minio.GetObjectOptions{}).
			Return(nil, errors.New("NoSuchKey"))

		_, err := storage.Open(ctx, m, "snapshots", "gone.csv")
		assert.ErrorContains(t, err, "NoSuchKey")
	})
}

func TestUpload(t *testing.T) {
	ctx := context.Background()
	data := []byte("report\r\n")

	t.Run("ExistingBucket", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "reports").Return(true, nil)
		m.On("PutObject", ctx, "reports", "out.txt", mock.Anything, int64(len(data)),
			minio.PutObjectOptions{ContentType: "text/plain"}).Return(minio.UploadInfo{}, nil)

		require.NoError(t, storage.Upload(ctx, m, "reports", "out.txt", data, "text/plain"))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
		m.AssertExpectations(t)
	})

	t.Run("CreatesBucket", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "reports").Return(false, nil)
		m.On("MakeBucket", ctx, "reports", minio.MakeBucketOptions{}).Return(nil)
		m.On("PutObject", ctx, "reports", "out.txt", mock.Anything, int64(len(data)), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		require.NoError(t, storage.Upload(ctx, m, "reports", "out.txt", data, "text/plain"))
		m.AssertExpectations(t)
	})

	t.Run("PutFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "reports").Return(true, nil)
		m.On("PutObject", ctx, "reports", "out.txt", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("denied"))

		err := storage.Upload(ctx, m, "reports", "out.txt", data, "text/plain")
		assert.ErrorContains(t, err, "denied")
	})
}
