package dto

import (
	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/model"
)

// Max lengths mirror the platform's declared limits so most violations are
// caught before the round trip; the upstream 422 path renders identically.
type CreateStoreInput struct {
	Name     string `json:"name" validate:"required,max=100" label:"Store Name"`
	Slug     string `json:"slug" validate:"required,max=60" label:"Store Slug"`
	Email    string `json:"email" validate:"required,email" label:"Contact Email"`
	Phone    string `json:"phone" validate:"omitempty,max=20" label:"Phone"`
	Timezone string `json:"timezone" validate:"required" label:"Timezone"`

	AddressLine1 string `json:"address_line1" validate:"required,max=200" label:"Address Line 1"`
	AddressLine2 string `json:"address_line2" validate:"max=200" label:"Address Line 2"`
	City         string `json:"city" validate:"required,max=100" label:"City"`
	State        string `json:"state" validate:"required,max=50" label:"State"`
	PostalCode   string `json:"postal_code" validate:"required,max=16" label:"Postal Code"`
	Country      string `json:"country" validate:"required,max=2" label:"Country"`
}

type UpdateStoreInput struct {
	Name     string `json:"name" validate:"required,max=100" label:"Store Name"`
	Email    string `json:"email" validate:"required,email" label:"Contact Email"`
	Phone    string `json:"phone" validate:"omitempty,max=20" label:"Phone"`
	Timezone string `json:"timezone" validate:"required" label:"Timezone"`

	AddressLine1 string `json:"address_line1" validate:"required,max=200" label:"Address Line 1"`
	AddressLine2 string `json:"address_line2" validate:"max=200" label:"Address Line 2"`
	City         string `json:"city" validate:"required,max=100" label:"City"`
	State        string `json:"state" validate:"required,max=50" label:"State"`
	PostalCode   string `json:"postal_code" validate:"required,max=16" label:"Postal Code"`
	Country      string `json:"country" validate:"required,max=2" label:"Country"`
}

type StoreRow struct {
	model.Store
	Actions []action.Action `json:"actions"`
}

type PageState struct {
	Stores    []StoreRow `json:"stores"`
	Loading   bool       `json:"loading"`
	ModalOpen bool       `json:"modal_open"`
	EditingID string     `json:"editing_id"`
}
