package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atollway/travel-content-api/internal/config"
)

func testCacheCfg() config.CacheConfig {
	return config.CacheConfig{
		Enabled:     true,
		Methods:     map[string]bool{"GET": true},
		Prefix:      "cache",
		KeyStrategy: "route_query",
	}
}

func newCtx(method, target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(strings.SplitN(target, "?", 2)[0])
	return c
}

func TestCacheKeyIncludesGroupAndQuery(t *testing.T) {
	cfg := testCacheCfg()

	a := cacheKeyFrom(cfg, "transport", newCtx(http.MethodGet, "/api/transportation"))
	b := cacheKeyFrom(cfg, "transport", newCtx(http.MethodGet, "/api/transportation?active=true"))
	c := cacheKeyFrom(cfg, "homepage", newCtx(http.MethodGet, "/api/transportation"))

	assert.True(t, strings.HasPrefix(a, "cache:transport:"))
	assert.True(t, strings.HasPrefix(c, "cache:homepage:"))
	assert.NotEqual(t, a, b, "query must change the key")
	assert.NotEqual(t, a, c, "group must change the key")

	// same request hashes to the same key
	assert.Equal(t, a, cacheKeyFrom(cfg, "transport", newCtx(http.MethodGet, "/api/transportation")))
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")

	payload, err := encodePayload(http.StatusOK, hdr, []byte(`{"ok":true}`))
	require.NoError(t, err)

	status, gotHdr, body, ok := decodePayload(payload)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, `{"ok":true}`, string(body))
}

func TestDecodePayloadRejectsShortInput(t *testing.T) {
	_, _, _, ok := decodePayload([]byte{1, 2, 3})
	assert.False(t, ok)
	_, _, _, ok = decodePayload(nil)
	assert.False(t, ok)
}

func TestNilInvalidatorIsNoOp(t *testing.T) {
	var inv *Invalidator
	// must not panic
	inv.Invalidate(t.Context(), "transport")

	inv = NewInvalidator(testCacheCfg(), nil)
	inv.Invalidate(t.Context(), "transport")
}

func TestDisabledCacheIsPassThrough(t *testing.T) {
	mw := NewRedisCache(config.CacheConfig{Enabled: false}, nil, "transport")
	called := false
	h := mw(func(c echo.Context) error { called = true; return c.NoContent(http.StatusOK) })
	require.NoError(t, h(newCtx(http.MethodGet, "/api/transportation")))
	assert.True(t, called)
}
