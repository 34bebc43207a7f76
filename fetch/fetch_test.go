package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("http://example.com/houses.json"))
	assert.True(t, IsURL("https://example.com/houses.json"))
	assert.False(t, IsURL("houses.json"))
	assert.False(t, IsURL("/tmp/http/houses.json"))
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "houses.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"houses":[]}`), 0o644))

	r, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer r.Close()

	content, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, `{"houses":[]}`, string(content))
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_URL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/houses.json" {
			http.NotFound(w, r)
			return
		}

		_, _ = io.WriteString(w, `{"roads":[]}`)
	}))
	defer server.Close()

	r, err := Open(context.Background(), server.URL+"/houses.json")
	require.NoError(t, err)
	defer r.Close()

	content, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, `{"roads":[]}`, string(content))

	_, err = Open(context.Background(), server.URL+"/missing.json")
	assert.ErrorContains(t, err, "404")
}

func TestOpen_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Open(ctx, "houses.json")
	assert.ErrorIs(t, err, context.Canceled)
}
