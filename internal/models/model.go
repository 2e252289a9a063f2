package models

import (
	"errors"
	"math"
	"time"
)

// ErrMoneyOutOfRange is returned when an amount cannot be held in cents
var ErrMoneyOutOfRange = errors.New("amount out of range")

// Money is an amount of currency in minor units (cents)
type Money int64

// MoneyFromUnits converts a decimal currency amount to Money, rounding to the nearest cent
func MoneyFromUnits(units float64) Money {
	return Money(math.Round(units * 100))
}

// MoneyFromWholeUnits converts a whole currency amount to Money
func MoneyFromWholeUnits(units int64) Money {
	return Money(units * 100)
}

// ParseUnits is MoneyFromUnits for untrusted input: NaN, infinities and
// amounts whose cents overflow int64 are rejected
func ParseUnits(units float64) (Money, error) {
	cents := math.Round(units * 100)
	// float64(math.MaxInt64) rounds up to 2^63
	if math.IsNaN(cents) || cents >= math.MaxInt64 || cents < math.MinInt64 {
		return 0, ErrMoneyOutOfRange
	}
	return Money(cents), nil
}

// ParseWholeUnits is MoneyFromWholeUnits for untrusted input
func ParseWholeUnits(units int64) (Money, error) {
	if units > math.MaxInt64/100 || units < math.MinInt64/100 {
		return 0, ErrMoneyOutOfRange
	}
	return MoneyFromWholeUnits(units), nil
}

// Units returns the amount in decimal currency units
func (m Money) Units() float64 {
	return float64(m) / 100
}

// WholeUnits returns the amount in currency units, truncating the cents
func (m Money) WholeUnits() int64 {
	return int64(m) / 100
}

// Shipping defaults applied to every new item
const (
	DefaultShippingCost Money = 700
	DefaultShippingTime       = 3
)

// Seller owns one or more items
type Seller struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Item represents an auction listing as it is persisted
type Item struct {
	ID            int64
	Title         string
	Description   string
	StartingPrice Money
	CurrentPrice  Money
	DurationHours int
	CreatedAt     time.Time
	EndTime       time.Time // zero when the item never expires
	Active        bool
	SellerID      int64
	ShippingCost  Money
	ShippingTime  int
}

// NewItem carries the caller-supplied fields for item creation
type NewItem struct {
	Title         string
	Description   string
	StartingPrice Money
	DurationHours int
	SellerID      int64
}

// Scope selects which items a listing returns
type Scope int

const (
	ScopeActive Scope = iota // only items that are active at the time of the read
	ScopeAll
)
