package rpc

// Wire messages for catalogue.CatalogueService. Field names follow the
// snake_case JSON carried by the json codec.

type Empty struct{}

type SearchRequest struct {
	Keyword string `json:"keyword"`
}

type ItemRequest struct {
	ID int64 `json:"id"`
}

type CreateItemRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	StartingPrice int64  `json:"starting_price"`
	DurationHours int64  `json:"duration_hours"`
	SellerID      int64  `json:"seller_id"`
}

// ItemResponse carries prices in whole currency units
type ItemResponse struct {
	ID                   int64  `json:"id"`
	Title                string `json:"title"`
	Description          string `json:"description"`
	StartingPrice        int64  `json:"starting_price"`
	CurrentPrice         int64  `json:"current_price"`
	Active               bool   `json:"active"`
	DurationHours        int64  `json:"duration_hours"`
	CreatedAt            string `json:"created_at"`
	EndTime              string `json:"end_time"`
	SellerID             int64  `json:"seller_id"`
	ShippingCost         int64  `json:"shipping_cost"`
	ShippingTime         int64  `json:"shipping_time"`
	RemainingTimeSeconds int64  `json:"remaining_time_seconds"`
}

type ItemList struct {
	Items []*ItemResponse `json:"items"`
}
