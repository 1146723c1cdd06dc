package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remindme/internal/logging"
)

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token(context.Context) (string, error) {
	return s.token, s.err
}

func newGateway(t *testing.T, ts *httptest.Server, tokens TokenSource) *Gateway {
	t.Helper()
	return NewGateway(ts.URL, 2*time.Second, tokens, logging.Nop{})
}

func TestDo_SetsHeadersAndDecodes(t *testing.T) {
	var gotAuth, gotContentType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"name":"Ana"}`))
	}))
	defer ts.Close()

	g := newGateway(t, ts, staticTokens{token: "tok-1"})

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, g.Get(context.Background(), "/friendship/friends", nil, &out, true))
	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Ana", out.Name)
}

func TestDo_UnauthenticatedCallOmitsBearer(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	g := newGateway(t, ts, staticTokens{err: ErrNoSession})
	require.NoError(t, g.Post(context.Background(), "/auth/login", map[string]string{"email": "a@b.com"}, nil, false))
	assert.Empty(t, gotAuth)
}

func TestDo_NoSessionFailsBeforeAnyCall(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	g := newGateway(t, ts, staticTokens{err: ErrNoSession})
	err := g.Get(context.Background(), "/friendship/friends", nil, nil, true)
	require.ErrorIs(t, err, ErrNoSession)
	assert.False(t, called)
}

func TestDo_NonSuccessStatusIsRequestError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no such user"}`))
	}))
	defer ts.Close()

	g := newGateway(t, ts, staticTokens{token: "t"})
	err := g.Get(context.Background(), "/friendship/search", url.Values{"email": {"x@y.z"}}, nil, true)

	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusNotFound, re.Status)
	assert.Contains(t, string(re.Body), "no such user")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestDo_UnauthorizedMatchesSentinel(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	g := newGateway(t, ts, staticTokens{token: "stale"})
	err := g.Get(context.Background(), "/category", nil, nil, true)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestDo_TransportFailureIsNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	g := newGateway(t, ts, staticTokens{token: "t"})
	err := g.Get(context.Background(), "/category", nil, nil, true)

	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestDo_QueryParamsEncoded(t *testing.T) {
	var gotQuery url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	g := newGateway(t, ts, staticTokens{token: "t"})
	q := url.Values{}
	q.Set("query", "dentist")
	q.Set("page", "2")
	require.NoError(t, g.Get(context.Background(), "/annotations/search", q, nil, true))
	assert.Equal(t, "dentist", gotQuery.Get("query"))
	assert.Equal(t, "2", gotQuery.Get("page"))
}

func TestValidationf(t *testing.T) {
	err := Validationf("name %q is empty", "")
	assert.True(t, IsValidation(err))
	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.False(t, IsValidation(errors.New("other")))
}
