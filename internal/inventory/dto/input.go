package dto

type UpdateItemInput struct {
	BatchNumber    string  `json:"batch_number" validate:"required,max=64" label:"Batch Number"`
	LotNumber      string  `json:"lot_number" validate:"omitempty,max=64" label:"Lot Number"`
	GTIN           string  `json:"gtin" validate:"omitempty,len=14" label:"GTIN"`
	QuantityOnHand float64 `json:"quantity_on_hand" validate:"gte=0" label:"Quantity On Hand"`
	ReorderPoint   float64 `json:"reorder_point" validate:"gte=0" label:"Reorder Point"`
}
