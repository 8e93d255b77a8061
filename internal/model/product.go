package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	StoreID     string          `json:"store_id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Category    string          `json:"category"`
	StrainType  string          `json:"strain_type"` // indica, sativa, hybrid
	Price       decimal.Decimal `json:"price"`
	THCContent  float64         `json:"thc_content"`
	CBDContent  float64         `json:"cbd_content"`
	ImageURL    *string         `json:"image_url"`
	IsActive    bool            `json:"is_active"`
}
