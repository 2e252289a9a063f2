package handler

import (
	"context"
	"fmt"
	"net/http"

	"catalogue-service/internal/catalogueerrors"
	"catalogue-service/internal/models"
	"catalogue-service/services/catalogue/helpers"
	"catalogue-service/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=catalogue_handler.go -destination=mock_catalogue_service.go -package=handler

type CatalogueServiceInterface interface {
	ListItems(ctx context.Context, scope models.Scope) ([]models.ItemView, error)
	SearchItems(ctx context.Context, keyword string, scope models.Scope) ([]models.ItemView, error)
	GetItem(ctx context.Context, itemID int64) (models.ItemView, error)
	CreateItem(ctx context.Context, in models.NewItem) (models.ItemView, error)
	DeactivateItem(ctx context.Context, itemID int64) (models.ItemView, error)
	CreateSeller(ctx context.Context, name, email string) (models.Seller, error)
	ListSellers(ctx context.Context) ([]models.Seller, error)
}

type CatalogueHandler struct {
	service CatalogueServiceInterface
}

func NewCatalogueHandler(service CatalogueServiceInterface) *CatalogueHandler {
	return &CatalogueHandler{service: service}
}

// IndexHandler handles GET /
func (h *CatalogueHandler) IndexHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, gin.H{"service": "catalogue"}, "catalogue service is running")
}

// ListItemsHandler handles GET /catalogue/items
func (h *CatalogueHandler) ListItemsHandler(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context(), models.ScopeActive)
	if err != nil {
		helpers.HandleServiceError(c, "ListItemsHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponses(items), "items retrieved successfully")
	helpers.LogSuccess("ListItemsHandler", "items retrieved successfully", map[string]any{
		"items_count": len(items),
	})
}

// SearchItemsHandler handles GET /catalogue/search?keyword=
func (h *CatalogueHandler) SearchItemsHandler(c *gin.Context) {
	q, err := helpers.BindSearchQuery(c)
	if err != nil {
		helpers.HandleBindError(c, "SearchItemsHandler", err)
		return
	}

	items, err := h.service.SearchItems(c.Request.Context(), q.Keyword, models.ScopeActive)
	if err != nil {
		helpers.HandleServiceError(c, "SearchItemsHandler", err, map[string]any{"keyword": q.Keyword})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponses(items), "items retrieved successfully")
	helpers.LogSuccess("SearchItemsHandler", "items retrieved successfully", map[string]any{
		"user":        c.GetString(helpers.UserKey),
		"keyword":     q.Keyword,
		"items_count": len(items),
	})
}

// GetItemHandler handles GET /catalogue/items/:item_id
func (h *CatalogueHandler) GetItemHandler(c *gin.Context) {
	itemID, err := helpers.ParseItemID(c)
	if err != nil {
		helpers.HandleServiceError(c, "GetItemHandler", err, nil)
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), itemID)
	if err != nil {
		helpers.HandleServiceError(c, "GetItemHandler", err, map[string]any{"item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponse(item), "item retrieved successfully")
	helpers.LogSuccess("GetItemHandler", "item retrieved successfully", map[string]any{
		"item_id": itemID,
	})
}

// CreateItemHandler handles POST /catalogue/items
func (h *CatalogueHandler) CreateItemHandler(c *gin.Context) {
	var req helpers.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateItemHandler", err)
		return
	}

	price, err := models.ParseUnits(req.StartingPrice)
	if err != nil {
		helpers.HandleServiceError(c, "CreateItemHandler", fmt.Errorf("%w: starting price: %w", catalogueerrors.ErrInvalidItem, err), map[string]any{
			"starting_price": req.StartingPrice,
		})
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), models.NewItem{
		Title:         req.Title,
		Description:   req.Description,
		StartingPrice: price,
		DurationHours: req.DurationHours,
		SellerID:      req.SellerID,
	})
	if err != nil {
		helpers.HandleServiceError(c, "CreateItemHandler", err, map[string]any{
			"title":     req.Title,
			"seller_id": req.SellerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewItemResponse(item), "item created successfully")
	helpers.LogSuccess("CreateItemHandler", "item created successfully", map[string]any{
		"user":      c.GetString(helpers.UserKey),
		"item_id":   item.ID,
		"seller_id": item.SellerID,
		"end_time":  utils.FormatTime(item.EndTime),
	})
}

// DeactivateItemHandler handles POST /catalogue/items/:item_id/deactivate
func (h *CatalogueHandler) DeactivateItemHandler(c *gin.Context) {
	itemID, err := helpers.ParseItemID(c)
	if err != nil {
		helpers.HandleServiceError(c, "DeactivateItemHandler", err, nil)
		return
	}

	item, err := h.service.DeactivateItem(c.Request.Context(), itemID)
	if err != nil {
		helpers.HandleServiceError(c, "DeactivateItemHandler", err, map[string]any{"item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponse(item), "item deactivated successfully")
	helpers.LogSuccess("DeactivateItemHandler", "item deactivated successfully", map[string]any{
		"user":    c.GetString(helpers.UserKey),
		"item_id": itemID,
	})
}

// CreateSellerHandler handles POST /catalogue/sellers
func (h *CatalogueHandler) CreateSellerHandler(c *gin.Context) {
	var req helpers.CreateSellerRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "CreateSellerHandler", err)
		return
	}

	seller, err := h.service.CreateSeller(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		helpers.HandleServiceError(c, "CreateSellerHandler", err, map[string]any{"name": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewSellerResponse(seller), "seller created successfully")
	helpers.LogSuccess("CreateSellerHandler", "seller created successfully", map[string]any{
		"seller_id": seller.ID,
		"name":      seller.Name,
	})
}

// ListSellersHandler handles GET /catalogue/sellers
func (h *CatalogueHandler) ListSellersHandler(c *gin.Context) {
	sellers, err := h.service.ListSellers(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ListSellersHandler", err, nil)
		return
	}

	resp := make([]helpers.SellerResponse, 0, len(sellers))
	for _, s := range sellers {
		resp = append(resp, helpers.NewSellerResponse(s))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "sellers retrieved successfully")
	helpers.LogSuccess("ListSellersHandler", "sellers retrieved successfully", map[string]any{
		"sellers_count": len(sellers),
	})
}
