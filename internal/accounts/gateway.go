package accounts

import (
	"context"

	"github.com/cannahub/admin-console/internal/model"
)

type Gateway interface {
	ListPending(ctx context.Context) ([]model.PendingAccount, error)
	Approve(ctx context.Context, id, notes string) error
	Reject(ctx context.Context, id, notes string) error
}
