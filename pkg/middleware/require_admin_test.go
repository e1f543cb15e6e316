package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func callWithPassword(t *testing.T, mw echo.MiddlewareFunc, password string) int {
	t.Helper()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/admin/leads", nil)
	if password != "" {
		req.Header.Set(AdminHeader, password)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec.Code
}

func TestRequireAdmin_Plaintext(t *testing.T) {
	mw := RequireAdmin("hunter2", "")

	assert.Equal(t, http.StatusOK, callWithPassword(t, mw, "hunter2"))
	assert.Equal(t, http.StatusUnauthorized, callWithPassword(t, mw, "wrong"))
	assert.Equal(t, http.StatusUnauthorized, callWithPassword(t, mw, ""))
}

func TestRequireAdmin_BcryptHashWins(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	mw := RequireAdmin("ignored-plaintext", string(hash))

	assert.Equal(t, http.StatusOK, callWithPassword(t, mw, "s3cret"))
	assert.Equal(t, http.StatusUnauthorized, callWithPassword(t, mw, "ignored-plaintext"))
}

func TestRequireAdmin_Unconfigured(t *testing.T) {
	mw := RequireAdmin("", "")

	assert.Equal(t, http.StatusUnauthorized, callWithPassword(t, mw, "anything"))
}
