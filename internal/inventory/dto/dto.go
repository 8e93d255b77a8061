package dto

import (
	"github.com/shopspring/decimal"

	"github.com/cannahub/admin-console/internal/model"
)

type InventoryFilters struct {
	StoreID     string
	StockStatus string
	SearchQuery string
	Page        int
	PageSize    int
}

// Summary holds the display aggregates shown above the table. Pure
// presentation arithmetic over the fetched rows.
type Summary struct {
	TotalOnHand   decimal.Decimal `json:"total_on_hand"`
	TotalReserved decimal.Decimal `json:"total_reserved"`
	LowStockCount int             `json:"low_stock_count"`
	OutOfStock    int             `json:"out_of_stock_count"`
}

type PageState struct {
	Items     []model.InventoryItem `json:"items"`
	Summary   Summary               `json:"summary"`
	Loading   bool                  `json:"loading"`
	ModalOpen bool                  `json:"modal_open"`
	EditingID string                `json:"editing_id"`
	Filters   InventoryFilters      `json:"filters"`
}
