package s3_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekit/gatekit/core/assets"
	"github.com/gatekit/gatekit/integration/assets/s3"
)

// mockClient returns canned objects keyed by object key.
type mockClient struct {
	objects map[string]mockObject
	err     error
	lastKey string
}

type mockObject struct {
	content     []byte
	contentType string
}

func (m *mockClient) GetObject(ctx context.Context, params *s3aws.GetObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error) {
	m.lastKey = aws.ToString(params.Key)
	if m.err != nil {
		return nil, m.err
	}
	obj, ok := m.objects[m.lastKey]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	out := &s3aws.GetObjectOutput{
		Body: io.NopCloser(bytes.NewReader(obj.content)),
	}
	if obj.contentType != "" {
		out.ContentType = aws.String(obj.contentType)
	}
	return out, nil
}

func TestStoreOpen(t *testing.T) {
	t.Parallel()

	t.Run("returns content and content type", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{objects: map[string]mockObject{
			"css/app.css": {content: []byte("body{}"), contentType: "text/css"},
		}}
		store := s3.NewWithClient(client, "bucket", "")

		asset, err := store.Open(context.Background(), "css/app.css")
		require.NoError(t, err)

		assert.Equal(t, []byte("body{}"), asset.Content)
		assert.Equal(t, "text/css", asset.ContentType)
	})

	t.Run("missing object maps to not found", func(t *testing.T) {
		t.Parallel()

		store := s3.NewWithClient(&mockClient{}, "bucket", "")

		_, err := store.Open(context.Background(), "nope.js")
		assert.ErrorIs(t, err, assets.ErrNotFound)
	})

	t.Run("missing bucket maps to not found", func(t *testing.T) {
		t.Parallel()

		store := s3.NewWithClient(&mockClient{err: &types.NoSuchBucket{}}, "bucket", "")

		_, err := store.Open(context.Background(), "app.js")
		assert.ErrorIs(t, err, assets.ErrNotFound)
	})

	t.Run("other API errors keep their code", func(t *testing.T) {
		t.Parallel()

		store := s3.NewWithClient(&mockClient{
			err: &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"},
		}, "bucket", "")

		_, err := store.Open(context.Background(), "app.js")
		require.Error(t, err)
		assert.NotErrorIs(t, err, assets.ErrNotFound)
		assert.Contains(t, err.Error(), "AccessDenied")
	})

	t.Run("key prefix confines lookups", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{objects: map[string]mockObject{
			"public/v2/index.html": {content: []byte("<html></html>"), contentType: "text/html"},
		}}
		store := s3.NewWithClient(client, "bucket", "/public/v2/")

		_, err := store.Open(context.Background(), "index.html")
		require.NoError(t, err)
		assert.Equal(t, "public/v2/index.html", client.lastKey)
	})

	t.Run("traversal outside the prefix is rejected", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{}
		store := s3.NewWithClient(client, "bucket", "public")

		_, err := store.Open(context.Background(), "../secrets.env")
		assert.ErrorIs(t, err, assets.ErrNotFound)
		assert.Empty(t, client.lastKey, "traversal keys must never reach S3")
	})

	t.Run("missing content type falls back to the extension", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{objects: map[string]mockObject{
			"app.json": {content: []byte("{}")},
		}}
		store := s3.NewWithClient(client, "bucket", "")

		asset, err := store.Open(context.Background(), "app.json")
		require.NoError(t, err)
		assert.Contains(t, asset.ContentType, "application/json")
	})
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := s3.New(context.Background(), s3.Config{Region: "eu-central-1"})
	assert.ErrorIs(t, err, s3.ErrInvalidConfig)

	_, err = s3.New(context.Background(), s3.Config{Bucket: "bucket"})
	assert.ErrorIs(t, err, s3.ErrInvalidConfig)
}
