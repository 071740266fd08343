package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, fn func(echo.Context) error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, fn(c))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestSearchResults(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return SearchResults(c, []string{"trip"}, "")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []interface{}{"trip"}, body["routes"])
	assert.NotContains(t, body, "error")
}

func TestSearchResults_EmptyRoutesStaySerialized(t *testing.T) {
	_, body := record(t, func(c echo.Context) error {
		return SearchResults(c, []string{}, "no day trips found")
	})

	routes, ok := body["routes"]
	require.True(t, ok, "routes key must be present even when empty")
	assert.Equal(t, []interface{}{}, routes)
	assert.Equal(t, "no day trips found", body["message"])
}

func TestValidationError(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return ValidationError(c, map[string]string{"departure": "departure is required"})
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, MsgInvalidParameters, body["error"])
	details := body["details"].(map[string]interface{})
	assert.Equal(t, "departure is required", details["departure"])
}

func TestInternalServerErrorIsGeneric(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return InternalServerError(c)
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, MsgInternalError, body["error"])
	assert.NotContains(t, body, "details")
	assert.NotContains(t, body, "routes")
}

func TestGatewayTimeout(t *testing.T) {
	rec, body := record(t, GatewayTimeout)
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, MsgTimeout, body["error"])
}

func TestServiceUnavailable(t *testing.T) {
	rec, body := record(t, ServiceUnavailable)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, MsgProviderUnavailable, body["error"])
}
