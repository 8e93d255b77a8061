package model

type StoreAddress struct {
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
}

type Store struct {
	BaseModel
	TenantID     string          `json:"tenant_id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Status       string          `json:"status"` // active, suspended, inactive
	Email        string          `json:"email"`
	Phone        *string         `json:"phone"`
	Timezone     string          `json:"timezone"`
	Address      StoreAddress    `json:"address"`
	FeatureFlags map[string]bool `json:"feature_flags"`
}
