package model

import "time"

// BaseModel carries the fields every upstream record exposes. The console
// never writes these locally; they are mirrored from API responses.
type BaseModel struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
