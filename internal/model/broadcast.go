package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Broadcast struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Channel         string     `json:"channel"` // sms, email, push
	MessageBody     string     `json:"message_body"`
	Status          string     `json:"status"`
	TotalRecipients int        `json:"total_recipients"`
	SentCount       int        `json:"sent_count"`
	FailedCount     int        `json:"failed_count"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
	StartedAt       *time.Time `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ProgressPercent is display arithmetic only; the send lifecycle itself is
// owned by the platform.
func (b *Broadcast) ProgressPercent() decimal.Decimal {
	if b.TotalRecipients <= 0 {
		return decimal.Zero
	}
	sent := decimal.NewFromInt(int64(b.SentCount))
	total := decimal.NewFromInt(int64(b.TotalRecipients))
	return sent.Div(total).Mul(decimal.NewFromInt(100)).Round(1)
}
