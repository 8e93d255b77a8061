package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/model"
)

type OrderFilters struct {
	StoreID   string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PageSize  int
}

// OrderRow pairs an order with the action set its status permits, so the
// render layer never inspects status strings.
type OrderRow struct {
	model.Order
	Actions []action.Action `json:"actions"`
}

// PageState is the whole view state of the orders page. A failed list load
// blocks the page: LoadError is rendered as an inline panel, not a toast.
type PageState struct {
	Orders     []OrderRow      `json:"orders"`
	Selected   *OrderRow       `json:"selected"`
	Loading    bool            `json:"loading"`
	LoadError  string          `json:"load_error"`
	Filters    OrderFilters    `json:"filters"`
	TotalValue decimal.Decimal `json:"total_value"`
}
