package entities

import "math"

// LineItemCategory classifies one itemized charge.

type LineItemCategory string

const (
	LineItemCategoryLabor     LineItemCategory = "labor"
	LineItemCategoryParts     LineItemCategory = "parts"
	LineItemCategoryMaterials LineItemCategory = "materials"
	LineItemCategoryOther     LineItemCategory = "other"
)

func ValidLineItemCategory(c LineItemCategory) bool {
	switch c {
	case LineItemCategoryLabor, LineItemCategoryParts, LineItemCategoryMaterials, LineItemCategoryOther:
		return true
	default:
		return false
	}
}

// LineItem is one itemized charge contributing to a job's or change order's
// total. TotalPrice is always Quantity * UnitPrice; SumLineItems re-derives
// container totals from it.

type LineItem struct {
	ID          string           `json:"id"`
	ServiceName string           `json:"service_name"`
	Category    LineItemCategory `json:"category"`
	Quantity    int              `json:"quantity"`
	UnitPrice   float64          `json:"unit_price"`
	TotalPrice  float64          `json:"total_price"`
	IsRequired  bool             `json:"is_required"`
}

// NormalizeLineItem fills TotalPrice from Quantity and UnitPrice.
func NormalizeLineItem(li LineItem) LineItem {
	li.TotalPrice = float64(li.Quantity) * li.UnitPrice
	return li
}

// SumLineItems returns the container total for items.
func SumLineItems(items []LineItem) float64 {
	total := 0.0
	for _, li := range items {
		total += li.TotalPrice
	}
	return total
}

// AmountToCents converts a decimal amount to the integer cents the payment
// provider expects.
func AmountToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
