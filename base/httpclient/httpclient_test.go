package httpclient

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/domain"
)

func TestDo(t *testing.T) {
	var got *http.Request
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New(Cfg{Header: http.Header{"X-Api-Key": []string{"secret"}}})
	data, err := c.Do(bCtx.Background(), http.MethodPost, srv.URL+"/things", []byte(`{"a":1}`))
	require.NoError(t, err)
	require.JSONEq(t, `{"ok":true}`, string(data))
	require.Equal(t, "secret", got.Header.Get("X-Api-Key"))
	require.NotEmpty(t, got.Header.Get(HeaderRequestId))
	require.Equal(t, "application/json", got.Header.Get("Content-Type"))
	require.Equal(t, `{"a":1}`, gotBody)
}

func TestDoStatusNotOk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("missing"))
	}))
	defer srv.Close()

	_, err := New(Cfg{}).Do(bCtx.Background(), http.MethodGet, srv.URL+"/x", nil)
	require.ErrorIs(t, err, domain.ErrRequestFailed)
	require.ErrorIs(t, err, domain.ErrNotFound)

	var failure *domain.RequestFailure
	require.True(t, errors.As(err, &failure))
	require.Equal(t, http.StatusNotFound, failure.StatusCode)
	require.Equal(t, "missing", failure.Body)
	require.Equal(t, http.MethodGet, failure.Method)
}

func TestDoTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := New(Cfg{Timeout: 20 * time.Millisecond}).Do(bCtx.Background(), http.MethodGet, srv.URL, nil)
	require.Error(t, err)
	require.False(t, errors.Is(err, domain.ErrRequestFailed))
}

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"sprite"}`))
	}))
	defer srv.Close()

	out := struct {
		Name string `json:"name"`
	}{}
	require.NoError(t, New(Cfg{}).GetJSON(bCtx.Background(), srv.URL, &out))
	require.Equal(t, "sprite", out.Name)

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer bad.Close()
	require.Error(t, New(Cfg{}).GetJSON(bCtx.Background(), bad.URL, &out))
}
