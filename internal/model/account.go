package model

import "time"

// PendingAccount is a tenant signup awaiting review. Approve/reject happen
// exactly once; both outcomes are terminal.
type PendingAccount struct {
	ID               string     `json:"id"`
	TenantID         string     `json:"tenant_id"`
	BusinessName     string     `json:"business_name"`
	ContactEmail     string     `json:"contact_email"`
	VerificationTier string     `json:"verification_tier"` // basic, standard, enhanced
	LicenseNumber    *string    `json:"license_number"`
	ReviewNotes      *string    `json:"review_notes"`
	Status           string     `json:"status"` // pending, approved, rejected
	SubmittedAt      time.Time  `json:"submitted_at"`
	ReviewedAt       *time.Time `json:"reviewed_at"`
	ReviewedBy       *string    `json:"reviewed_by"`
}
