package controller

import (
	"context"
	"testing"
	"time"

	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/notify"
	"github.com/cannahub/admin-console/pkg/logger"
)

type fakeGateway struct {
	accounts []model.PendingAccount

	approveCalls []reviewCall
	rejectCalls  []reviewCall
}

type reviewCall struct {
	id    string
	notes string
}

func (f *fakeGateway) ListPending(ctx context.Context) ([]model.PendingAccount, error) {
	out := make([]model.PendingAccount, len(f.accounts))
	copy(out, f.accounts)
	return out, nil
}

func (f *fakeGateway) Approve(ctx context.Context, id, notes string) error {
	f.approveCalls = append(f.approveCalls, reviewCall{id: id, notes: notes})
	f.setStatus(id, action.AccountApproved)
	return nil
}

func (f *fakeGateway) Reject(ctx context.Context, id, notes string) error {
	f.rejectCalls = append(f.rejectCalls, reviewCall{id: id, notes: notes})
	f.setStatus(id, action.AccountRejected)
	return nil
}

func (f *fakeGateway) setStatus(id, status string) {
	for i := range f.accounts {
		if f.accounts[i].ID == id {
			f.accounts[i].Status = status
		}
	}
}

func pendingAccount(id string) model.PendingAccount {
	return model.PendingAccount{
		ID:           id,
		BusinessName: "High Desert Wellness",
		Status:       action.AccountPending,
	}
}

func TestReview_ApproveRecordsNotesAndRefetches(t *testing.T) {
	gw := &fakeGateway{accounts: []model.PendingAccount{pendingAccount("a-1")}}
	bus := notify.NewBus(time.Minute)
	ctrl := NewAccountController(gw, bus, logger.NewNop())
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := ctrl.Review(context.Background(), "a-1", action.AccountActionApprove, "license verified"); err != nil {
		t.Fatalf("Review: %v", err)
	}

	if len(gw.approveCalls) != 1 || gw.approveCalls[0].notes != "license verified" {
		t.Fatalf("approve calls = %v", gw.approveCalls)
	}

	// Refetch: the reviewed account now has no actions left.
	state := ctrl.Snapshot()
	row := state.Accounts[0]
	if row.Status != action.AccountApproved || len(row.Actions) != 0 {
		t.Fatalf("reviewed row = %+v", row)
	}

	recent := bus.Recent()
	if len(recent) != 1 || recent[0].Level != notify.LevelSuccess {
		t.Fatalf("expected one success toast, got %v", recent)
	}
}

func TestReview_SecondReviewIsRefusedLocally(t *testing.T) {
	gw := &fakeGateway{accounts: []model.PendingAccount{pendingAccount("a-1")}}
	bus := notify.NewBus(time.Minute)
	ctrl := NewAccountController(gw, bus, logger.NewNop())
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := ctrl.Review(context.Background(), "a-1", action.AccountActionApprove, ""); err != nil {
		t.Fatalf("first review: %v", err)
	}

	if err := ctrl.Review(context.Background(), "a-1", action.AccountActionReject, ""); err == nil {
		t.Fatalf("second review must be refused")
	}
	if len(gw.rejectCalls) != 0 {
		t.Fatalf("refused review must not reach the gateway")
	}

	recent := bus.Recent()
	if len(recent) != 2 {
		t.Fatalf("expected the approve toast plus one refusal toast, got %v", recent)
	}
	if recent[1].Level != notify.LevelError || recent[1].MessageKey != "accounts.already_reviewed" {
		t.Fatalf("refusal toast = %+v", recent[1])
	}
}

func TestReview_UnknownAccount(t *testing.T) {
	gw := &fakeGateway{}
	bus := notify.NewBus(time.Minute)
	ctrl := NewAccountController(gw, bus, logger.NewNop())
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := ctrl.Review(context.Background(), "missing", action.AccountActionApprove, ""); err == nil {
		t.Fatalf("expected error for unknown account")
	}
	if len(gw.approveCalls) != 0 {
		t.Fatalf("unknown account must not reach the gateway")
	}
}
