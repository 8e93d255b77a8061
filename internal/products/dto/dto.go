package dto

import "github.com/cannahub/admin-console/internal/model"

type ProductFilters struct {
	StoreID     string
	Category    string
	StrainType  string
	IsActive    *bool
	SearchQuery string
	Page        int
	PageSize    int
}

type PageState struct {
	Products  []model.Product `json:"products"`
	Loading   bool            `json:"loading"`
	ModalOpen bool            `json:"modal_open"`
	// EditingID is the product open in the edit modal, "" for the
	// create modal.
	EditingID string         `json:"editing_id"`
	Filters   ProductFilters `json:"filters"`
}
