package model

import "time"

// Stock status strings as the platform reports them. The console treats the
// value as advisory display state and never derives it locally.
const (
	StockStatusInStock    = "in_stock"
	StockStatusLowStock   = "low_stock"
	StockStatusOutOfStock = "out_of_stock"
)

type InventoryItem struct {
	ID                string     `json:"id"`
	StoreID           string     `json:"store_id"`
	ProductID         string     `json:"product_id"`
	SKU               string     `json:"sku"`
	ProductName       string     `json:"product_name"`
	BatchNumber       string     `json:"batch_number"`
	LotNumber         *string    `json:"lot_number"`
	GTIN              *string    `json:"gtin"`
	QuantityOnHand    float64    `json:"quantity_on_hand"`
	QuantityReserved  float64    `json:"quantity_reserved"`
	QuantityAvailable float64    `json:"quantity_available"`
	ReorderPoint      float64    `json:"reorder_point"`
	StockStatus       string     `json:"stock_status"`
	ExpiresAt         *time.Time `json:"expires_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
