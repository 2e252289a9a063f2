package models

import (
	"time"

	"catalogue-service/internal/remaining"
)

// ItemView is a read-only snapshot of an item as observed at one instant.
// Active and RemainingSeconds are derived from the stored end time, not persisted.
type ItemView struct {
	ID               int64
	Title            string
	Description      string
	StartingPrice    Money
	CurrentPrice     Money
	DurationHours    int
	CreatedAt        time.Time
	EndTime          time.Time
	Active           bool
	SellerID         int64
	ShippingCost     Money
	ShippingTime     int
	RemainingSeconds int64
	Expires          bool // false when the item has no end time
}

// NewItemView projects item as seen at now
func NewItemView(item Item, now time.Time) ItemView {
	secs, expires := remaining.Seconds(item.EndTime, now)
	return ItemView{
		ID:               item.ID,
		Title:            item.Title,
		Description:      item.Description,
		StartingPrice:    item.StartingPrice,
		CurrentPrice:     item.CurrentPrice,
		DurationHours:    item.DurationHours,
		CreatedAt:        item.CreatedAt,
		EndTime:          item.EndTime,
		Active:           item.Active && !(expires && secs == 0),
		SellerID:         item.SellerID,
		ShippingCost:     item.ShippingCost,
		ShippingTime:     item.ShippingTime,
		RemainingSeconds: secs,
		Expires:          expires,
	}
}
