package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/notify"
	"github.com/cannahub/admin-console/internal/orders/dto"
	"github.com/cannahub/admin-console/pkg/logger"
)

type fakeGateway struct {
	orders []model.Order

	listCalls   int
	listErr     error
	updateCalls []statusCall
	updateErr   error
}

type statusCall struct {
	storeID string
	orderID string
	status  string
}

func (f *fakeGateway) List(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.Order, len(f.orders))
	copy(out, f.orders)
	return out, nil
}

func (f *fakeGateway) Get(ctx context.Context, storeID, id string) (*model.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeGateway) UpdateStatus(ctx context.Context, storeID, id, status string) error {
	f.updateCalls = append(f.updateCalls, statusCall{storeID: storeID, orderID: id, status: status})
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
		}
	}
	return nil
}

func pendingOrder(id string) model.Order {
	return model.Order{
		ID:     id,
		Status: action.OrderPending,
		Total:  decimal.NewFromInt(40),
	}
}

func newTestController(gw *fakeGateway) (*orderController, *notify.Bus) {
	bus := notify.NewBus(time.Minute)
	ctrl := NewOrderController(gw, bus, logger.NewNop()).(*orderController)
	return ctrl, bus
}

func TestLoad_PopulatesRowsWithActions(t *testing.T) {
	gw := &fakeGateway{orders: []model.Order{pendingOrder("o-1")}}
	ctrl, _ := newTestController(gw)

	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	state := ctrl.Snapshot()
	if len(state.Orders) != 1 {
		t.Fatalf("orders = %v", state.Orders)
	}
	row := state.Orders[0]
	if len(row.Actions) != 1 || row.Actions[0] != action.OrderActionConfirm {
		t.Fatalf("pending order actions = %v", row.Actions)
	}
	if state.Loading {
		t.Fatalf("loading flag should clear after Load")
	}
}

func TestLoad_FailureIsInlineNotToast(t *testing.T) {
	gw := &fakeGateway{listErr: errors.New("boom")}
	ctrl, bus := newTestController(gw)

	if err := ctrl.Load(context.Background()); err == nil {
		t.Fatalf("expected error")
	}

	state := ctrl.Snapshot()
	if state.LoadError == "" {
		t.Fatalf("expected inline load error in state")
	}
	if got := bus.Recent(); len(got) != 0 {
		t.Fatalf("list failure must not toast, got %v", got)
	}
}

func TestApply_ConfirmUpdatesStatusAndRefetches(t *testing.T) {
	gw := &fakeGateway{orders: []model.Order{pendingOrder("o-1")}}
	ctrl, bus := newTestController(gw)
	if err := ctrl.SetFilters(context.Background(), dto.OrderFilters{StoreID: "store-1"}); err != nil {
		t.Fatalf("SetFilters: %v", err)
	}

	if err := ctrl.Apply(context.Background(), "o-1", action.OrderActionConfirm); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if len(gw.updateCalls) != 1 {
		t.Fatalf("expected exactly one status call, got %d", len(gw.updateCalls))
	}
	call := gw.updateCalls[0]
	if call.storeID != "store-1" || call.orderID != "o-1" || call.status != action.OrderConfirmed {
		t.Fatalf("status call = %+v", call)
	}

	// The refetch picks up the new status and its new action set.
	state := ctrl.Snapshot()
	row := state.Orders[0]
	if row.Status != action.OrderConfirmed {
		t.Fatalf("row status = %q, want confirmed", row.Status)
	}
	if !action.Allowed(row.Actions, action.OrderActionBeginPreparing) || action.Allowed(row.Actions, action.OrderActionConfirm) {
		t.Fatalf("confirmed order actions = %v", row.Actions)
	}

	recent := bus.Recent()
	if len(recent) != 1 || recent[0].Level != notify.LevelSuccess {
		t.Fatalf("expected one success toast, got %v", recent)
	}
}

func TestApply_DisallowedActionIsRefusedLocally(t *testing.T) {
	delivered := pendingOrder("o-2")
	delivered.Status = action.OrderDelivered
	gw := &fakeGateway{orders: []model.Order{delivered}}
	ctrl, bus := newTestController(gw)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := ctrl.Apply(context.Background(), "o-2", action.OrderActionConfirm); err == nil {
		t.Fatalf("expected local refusal")
	}
	if len(gw.updateCalls) != 0 {
		t.Fatalf("no upstream call may be issued for a refused action")
	}
	recent := bus.Recent()
	if len(recent) != 1 || recent[0].Level != notify.LevelError {
		t.Fatalf("expected exactly one error toast, got %v", recent)
	}
}

func TestApply_GatewayFailureLeavesStateUnchanged(t *testing.T) {
	gw := &fakeGateway{orders: []model.Order{pendingOrder("o-1")}}
	ctrl, bus := newTestController(gw)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	before := ctrl.Snapshot()
	listCallsBefore := gw.listCalls

	gw.updateErr = errors.New("store is closed")
	if err := ctrl.Apply(context.Background(), "o-1", action.OrderActionConfirm); err == nil {
		t.Fatalf("expected gateway error to propagate")
	}

	after := ctrl.Snapshot()
	if after.Orders[0].Status != before.Orders[0].Status {
		t.Fatalf("status changed after failed mutation: %q", after.Orders[0].Status)
	}
	if gw.listCalls != listCallsBefore {
		t.Fatalf("failed mutation must not refetch")
	}
	recent := bus.Recent()
	if len(recent) != 1 || recent[0].Level != notify.LevelError {
		t.Fatalf("expected exactly one error toast, got %v", recent)
	}
}

func TestApply_SuccessClosesDetailSelection(t *testing.T) {
	gw := &fakeGateway{orders: []model.Order{pendingOrder("o-1")}}
	ctrl, _ := newTestController(gw)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := ctrl.Select(context.Background(), "o-1"); err != nil {
		t.Fatalf("Select: %v", err)
	}

	if err := ctrl.Apply(context.Background(), "o-1", action.OrderActionConfirm); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if ctrl.Snapshot().Selected != nil {
		t.Fatalf("detail selection should close after a successful action")
	}
}

func TestSnapshot_TotalValueSumsOrders(t *testing.T) {
	a := pendingOrder("o-1")
	b := pendingOrder("o-2")
	b.Total = decimal.NewFromFloat(19.95)
	gw := &fakeGateway{orders: []model.Order{a, b}}
	ctrl, _ := newTestController(gw)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := ctrl.Snapshot().TotalValue
	if !got.Equal(decimal.NewFromFloat(59.95)) {
		t.Fatalf("TotalValue = %s", got)
	}
}
