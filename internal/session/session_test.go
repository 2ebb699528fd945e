package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(idleTTL time.Duration) *Registry {
	return NewRegistry(func() *Handle { return &Handle{} }, idleTTL)
}

func contextWithCookie(e *echo.Echo, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAcquireMintsCookieOnce(t *testing.T) {
	e := echo.New()
	r := newRegistry(time.Minute)

	c, rec := contextWithCookie(e, nil)
	first := r.Acquire(c)
	require.NotNil(t, first)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)

	// Same cookie comes back to the same handle, without a new Set-Cookie.
	c2, rec2 := contextWithCookie(e, cookies[0])
	second := r.Acquire(c2)
	assert.Same(t, first, second)
	assert.Empty(t, rec2.Result().Cookies())
	assert.Equal(t, 1, r.Len())
}

func TestAcquireSeparatesSessions(t *testing.T) {
	e := echo.New()
	r := newRegistry(time.Minute)

	c1, _ := contextWithCookie(e, &http.Cookie{Name: CookieName, Value: "a"})
	c2, _ := contextWithCookie(e, &http.Cookie{Name: CookieName, Value: "b"})

	assert.NotSame(t, r.Acquire(c1), r.Acquire(c2))
	assert.Equal(t, 2, r.Len())
}

func TestIdleSessionsEvicted(t *testing.T) {
	e := echo.New()
	r := newRegistry(10 * time.Millisecond)

	c1, _ := contextWithCookie(e, &http.Cookie{Name: CookieName, Value: "stale"})
	r.Acquire(c1)
	require.Equal(t, 1, r.Len())

	time.Sleep(20 * time.Millisecond)

	c2, _ := contextWithCookie(e, &http.Cookie{Name: CookieName, Value: "fresh"})
	r.Acquire(c2)
	assert.Equal(t, 1, r.Len(), "the stale session should have been swept")
}
