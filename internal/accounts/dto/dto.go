package dto

import (
	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/model"
)

type AccountRow struct {
	model.PendingAccount
	Actions []action.Action `json:"actions"`
}

type PageState struct {
	Accounts []AccountRow `json:"accounts"`
	Loading  bool         `json:"loading"`
}
