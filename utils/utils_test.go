package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	t.Parallel()

	a, b := GenerateID(), GenerateID()
	require.NotEqual(t, a, b)
	require.True(t, ValidID(a))
	require.False(t, ValidID("not-an-id"))
}

func TestSetLevel(t *testing.T) {
	require.NoError(t, SetLevel("debug"))
	require.NoError(t, SetLevel("info"))
	require.Error(t, SetLevel("loud"))
}

func TestJSONEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	JSONResponse(c, http.StatusCreated, map[string]any{"id": 1}, "created")

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, float64(http.StatusCreated), resp["status"])
	require.Equal(t, "created", resp["message"])
	require.Equal(t, float64(1), resp["data"].(map[string]any)["id"])

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	JSONError(c, http.StatusNotFound, errors.New("item 3: item not found"), "item not found")

	resp = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "item not found", resp["message"])
	require.Equal(t, "item 3: item not found", resp["error"])
}

func TestFormatTime(t *testing.T) {
	require.Equal(t, "", FormatTime(time.Time{}))

	plusTwo := time.FixedZone("UTC+2", 2*60*60)
	require.Equal(t, "2025-03-01T10:00:00Z", FormatTime(time.Date(2025, 3, 1, 12, 0, 0, 0, plusTwo)))
}
