package dto

type CreateProductInput struct {
	SKU         string  `json:"sku" validate:"required,max=64" label:"SKU"`
	Name        string  `json:"name" validate:"required,max=200" label:"Product Name"`
	Description string  `json:"description" validate:"max=2000" label:"Description"`
	Category    string  `json:"category" validate:"required,max=80" label:"Category"`
	StrainType  string  `json:"strain_type" validate:"omitempty,oneof=indica sativa hybrid" label:"Strain Type"`
	Price       string  `json:"price" validate:"required" label:"Price"`
	THCContent  float64 `json:"thc_content" validate:"gte=0,lte=100" label:"THC Content"`
	CBDContent  float64 `json:"cbd_content" validate:"gte=0,lte=100" label:"CBD Content"`
	ImageURL    string  `json:"image_url" validate:"omitempty,max=500" label:"Image URL"`
}

type UpdateProductInput struct {
	SKU         string  `json:"sku" validate:"required,max=64" label:"SKU"`
	Name        string  `json:"name" validate:"required,max=200" label:"Product Name"`
	Description string  `json:"description" validate:"max=2000" label:"Description"`
	Category    string  `json:"category" validate:"required,max=80" label:"Category"`
	StrainType  string  `json:"strain_type" validate:"omitempty,oneof=indica sativa hybrid" label:"Strain Type"`
	Price       string  `json:"price" validate:"required" label:"Price"`
	THCContent  float64 `json:"thc_content" validate:"gte=0,lte=100" label:"THC Content"`
	CBDContent  float64 `json:"cbd_content" validate:"gte=0,lte=100" label:"CBD Content"`
	ImageURL    string  `json:"image_url" validate:"omitempty,max=500" label:"Image URL"`
	IsActive    bool    `json:"is_active"`
}
