package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/model"
)

type CreateBroadcastInput struct {
	Name        string     `json:"name" validate:"required,max=120" label:"Campaign Name"`
	Channel     string     `json:"channel" validate:"required,oneof=sms email push" label:"Channel"`
	MessageBody string     `json:"message_body" validate:"required,max=1600" label:"Message"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

type UpdateBroadcastInput struct {
	Name        string     `json:"name" validate:"required,max=120" label:"Campaign Name"`
	MessageBody string     `json:"message_body" validate:"required,max=1600" label:"Message"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

type BroadcastRow struct {
	model.Broadcast
	Actions  []action.Action `json:"actions"`
	Progress decimal.Decimal `json:"progress"`
}

type PageState struct {
	Broadcasts []BroadcastRow `json:"broadcasts"`
	Loading    bool           `json:"loading"`
	WizardOpen bool           `json:"wizard_open"`
	Polling    bool           `json:"polling"`
}
