package helpers

import (
	"catalogue-service/internal/models"
	"catalogue-service/utils"
)

// Request/Response DTOs
type CreateItemRequest struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	StartingPrice float64 `json:"starting_price" binding:"required,gt=0"`
	DurationHours int     `json:"duration_hours" binding:"required,gt=0"`
	SellerID      int64   `json:"seller_id" binding:"required,gt=0"`
}

// CreateSellerRequest binds from a JSON body or from query/form parameters
type CreateSellerRequest struct {
	Name  string `json:"name" form:"name" binding:"required"`
	Email string `json:"email" form:"email" binding:"required,email"`
}

// SearchQuery must carry the keyword parameter, but its value may be empty
type SearchQuery struct {
	Keyword string `form:"keyword"`
}

type ItemResponse struct {
	ID                   int64   `json:"id"`
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	StartingPrice        float64 `json:"starting_price"`
	CurrentPrice         float64 `json:"current_price"`
	Active               bool    `json:"active"`
	DurationHours        int     `json:"duration_hours"`
	CreatedAt            string  `json:"created_at"`
	EndTime              string  `json:"end_time"`
	SellerID             int64   `json:"seller_id"`
	ShippingCost         float64 `json:"shipping_cost"`
	ShippingTime         int     `json:"shipping_time"`
	RemainingTimeSeconds *int64  `json:"remaining_time_seconds,omitempty"`
}

type SellerResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// NewItemResponse converts a service view into its REST representation
func NewItemResponse(v models.ItemView) ItemResponse {
	resp := ItemResponse{
		ID:            v.ID,
		Title:         v.Title,
		Description:   v.Description,
		StartingPrice: v.StartingPrice.Units(),
		CurrentPrice:  v.CurrentPrice.Units(),
		Active:        v.Active,
		DurationHours: v.DurationHours,
		CreatedAt:     utils.FormatTime(v.CreatedAt),
		EndTime:       utils.FormatTime(v.EndTime),
		SellerID:      v.SellerID,
		ShippingCost:  v.ShippingCost.Units(),
		ShippingTime:  v.ShippingTime,
	}
	if v.Expires {
		secs := v.RemainingSeconds
		resp.RemainingTimeSeconds = &secs
	}
	return resp
}

// NewItemResponses converts a list of views, never returning nil
func NewItemResponses(views []models.ItemView) []ItemResponse {
	out := make([]ItemResponse, 0, len(views))
	for _, v := range views {
		out = append(out, NewItemResponse(v))
	}
	return out
}

func NewSellerResponse(s models.Seller) SellerResponse {
	return SellerResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		CreatedAt: utils.FormatTime(s.CreatedAt),
	}
}
