package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"catalogue-service/internal/catalogueerrors"
	"catalogue-service/utils"

	"github.com/gin-gonic/gin"
)

// UserKey is the gin context key holding the caller identity
const UserKey = "catalogue.user"

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleServiceError maps err to a status and sends it, logging at a level matching the status
func HandleServiceError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, catalogueerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, catalogueerrors.ErrSellerNotFound):
		return http.StatusNotFound, "seller not found"
	case errors.Is(err, catalogueerrors.ErrInvalidItem):
		return http.StatusBadRequest, "invalid item details"
	case errors.Is(err, catalogueerrors.ErrInvalidSeller):
		return http.StatusBadRequest, "invalid seller details"
	case errors.Is(err, catalogueerrors.ErrSellerExists):
		return http.StatusConflict, "seller already exists"
	case errors.Is(err, catalogueerrors.ErrUnauthenticated):
		return http.StatusUnauthorized, "user not logged in"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ParseItemID reads the :item_id path parameter
func ParseItemID(c *gin.Context) (int64, error) {
	raw := c.Param("item_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w - item id %q is not a positive integer", catalogueerrors.ErrInvalidItem, raw)
	}
	return id, nil
}

// BindSearchQuery binds the search query; a present but empty keyword matches every title
func BindSearchQuery(c *gin.Context) (SearchQuery, error) {
	var q SearchQuery
	if _, ok := c.GetQuery("keyword"); !ok {
		return q, errors.New("keyword query parameter is required")
	}
	err := c.ShouldBindQuery(&q)
	return q, err
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
