package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalogue-service/internal/models"
	"catalogue-service/services/catalogue/handler"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRouter_IdentityRequired(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		user           string
		mockSetup      func(m *handler.MockCatalogueServiceInterface)
		expectedStatus int
	}{
		{
			name:           "search_without_user",
			method:         http.MethodGet,
			path:           "/catalogue/search?keyword=lamp",
			mockSetup:      func(m *handler.MockCatalogueServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "search_with_user",
			method: http.MethodGet,
			path:   "/catalogue/search?keyword=lamp",
			user:   "bob",
			mockSetup: func(m *handler.MockCatalogueServiceInterface) {
				m.EXPECT().SearchItems(gomock.Any(), "lamp", models.ScopeActive).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "create_item_without_user",
			method:         http.MethodPost,
			path:           "/catalogue/items",
			body:           `{"title":"Lamp","description":"Old lamp","starting_price":10,"duration_hours":2,"seller_id":1}`,
			mockSetup:      func(m *handler.MockCatalogueServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "deactivate_without_user",
			method:         http.MethodPost,
			path:           "/catalogue/items/1/deactivate",
			mockSetup:      func(m *handler.MockCatalogueServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "list_items_is_public",
			method: http.MethodGet,
			path:   "/catalogue/items",
			mockSetup: func(m *handler.MockCatalogueServiceInterface) {
				m.EXPECT().ListItems(gomock.Any(), models.ScopeActive).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "list_sellers_is_public",
			method: http.MethodGet,
			path:   "/catalogue/sellers",
			mockSetup: func(m *handler.MockCatalogueServiceInterface) {
				m.EXPECT().ListSellers(gomock.Any()).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockService := handler.NewMockCatalogueServiceInterface(ctrl)
			tc.mockSetup(mockService)
			router := SetupRouter(mockService, "X-User")

			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			if tc.user != "" {
				req.Header.Set("X-User", tc.user)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			if w.Code == http.StatusUnauthorized {
				require.Equal(t, "user not logged in", resp["message"])
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestIDMiddleware)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	// generated when absent
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	require.Equal(t, generated, w.Body.String())

	// propagated when valid
	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, incoming, w.Header().Get(RequestIDHeader))

	// replaced when malformed
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "not-an-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.NotEqual(t, "not-an-id", w.Header().Get(RequestIDHeader))
}
