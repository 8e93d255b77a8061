package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/broadcasts/dto"
	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/notify"
	"github.com/cannahub/admin-console/internal/upstream"
	"github.com/cannahub/admin-console/pkg/logger"
)

type fakeGateway struct {
	broadcasts []model.Broadcast

	createCalls  int
	executeCalls []string
	pauseCalls   []string
	deleteCalls  []string
}

func (f *fakeGateway) List(ctx context.Context) ([]model.Broadcast, error) {
	out := make([]model.Broadcast, len(f.broadcasts))
	copy(out, f.broadcasts)
	return out, nil
}

func (f *fakeGateway) Create(ctx context.Context, input *dto.CreateBroadcastInput) (*model.Broadcast, error) {
	f.createCalls++
	b := model.Broadcast{ID: "b-new", Name: input.Name, Channel: input.Channel, Status: action.BroadcastDraft}
	f.broadcasts = append(f.broadcasts, b)
	return &b, nil
}

func (f *fakeGateway) Update(ctx context.Context, id string, input *dto.UpdateBroadcastInput) (*model.Broadcast, error) {
	for i := range f.broadcasts {
		if f.broadcasts[i].ID == id {
			f.broadcasts[i].Name = input.Name
			b := f.broadcasts[i]
			return &b, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeGateway) Delete(ctx context.Context, id string) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return nil
}

func (f *fakeGateway) Execute(ctx context.Context, id string) error {
	f.executeCalls = append(f.executeCalls, id)
	for i := range f.broadcasts {
		if f.broadcasts[i].ID == id {
			f.broadcasts[i].Status = action.BroadcastSending
		}
	}
	return nil
}

func (f *fakeGateway) Pause(ctx context.Context, id string) error {
	f.pauseCalls = append(f.pauseCalls, id)
	return nil
}

func (f *fakeGateway) Resume(ctx context.Context, id string) error { return nil }
func (f *fakeGateway) Cancel(ctx context.Context, id string) error { return nil }

func draft(id string) model.Broadcast {
	return model.Broadcast{ID: id, Name: "Spring promo", Channel: "sms", Status: action.BroadcastDraft}
}

func newTestController(gw *fakeGateway) (*broadcastController, *notify.Bus) {
	bus := notify.NewBus(time.Minute)
	ctrl := NewBroadcastController(gw, bus, logger.NewNop(), time.Hour).(*broadcastController)
	return ctrl, bus
}

func TestLoad_ComputesActionsAndProgress(t *testing.T) {
	sending := model.Broadcast{
		ID:              "b-2",
		Status:          action.BroadcastSending,
		TotalRecipients: 200,
		SentCount:       50,
	}
	gw := &fakeGateway{broadcasts: []model.Broadcast{draft("b-1"), sending}}
	ctrl, _ := newTestController(gw)

	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	state := ctrl.Snapshot()
	if len(state.Broadcasts) != 2 {
		t.Fatalf("broadcasts = %v", state.Broadcasts)
	}

	draftRow := state.Broadcasts[0]
	for _, a := range []action.Action{action.BroadcastActionSendNow, action.BroadcastActionEdit, action.BroadcastActionDelete} {
		if !action.Allowed(draftRow.Actions, a) {
			t.Fatalf("draft row missing %q: %v", a, draftRow.Actions)
		}
	}
	if action.Allowed(draftRow.Actions, action.BroadcastActionPause) {
		t.Fatalf("draft row must not offer pause")
	}

	if !state.Broadcasts[1].Progress.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("progress = %s, want 25", state.Broadcasts[1].Progress)
	}
}

func TestCreate_InvalidInputKeepsWizardOpenAndSkipsGateway(t *testing.T) {
	gw := &fakeGateway{}
	ctrl, bus := newTestController(gw)
	ctrl.OpenWizard()

	err := ctrl.Create(context.Background(), &dto.CreateBroadcastInput{
		Name:        "Spring promo",
		Channel:     "fax",
		MessageBody: "hello",
	})
	var vErr *upstream.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	if gw.createCalls != 0 {
		t.Fatalf("invalid input must not reach the gateway")
	}
	state := ctrl.Snapshot()
	if !state.WizardOpen {
		t.Fatalf("wizard must stay open on validation failure")
	}
	if got := bus.Recent(); len(got) != 0 {
		t.Fatalf("validation failures render inline, not as toasts: %v", got)
	}
}

func TestCreate_SuccessClosesWizardAndRefetches(t *testing.T) {
	gw := &fakeGateway{}
	ctrl, bus := newTestController(gw)
	ctrl.OpenWizard()

	err := ctrl.Create(context.Background(), &dto.CreateBroadcastInput{
		Name:        "Spring promo",
		Channel:     "sms",
		MessageBody: "20% off this weekend",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	state := ctrl.Snapshot()
	if state.WizardOpen {
		t.Fatalf("wizard should close after a successful create")
	}
	if len(state.Broadcasts) != 1 || state.Broadcasts[0].ID != "b-new" {
		t.Fatalf("expected refetched list with new broadcast, got %v", state.Broadcasts)
	}
	recent := bus.Recent()
	if len(recent) != 1 || recent[0].Level != notify.LevelSuccess {
		t.Fatalf("expected one success toast, got %v", recent)
	}
}

func TestApply_SendNowOnDraft(t *testing.T) {
	gw := &fakeGateway{broadcasts: []model.Broadcast{draft("b-1")}}
	ctrl, _ := newTestController(gw)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := ctrl.Apply(context.Background(), "b-1", action.BroadcastActionSendNow); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(gw.executeCalls) != 1 || gw.executeCalls[0] != "b-1" {
		t.Fatalf("execute calls = %v", gw.executeCalls)
	}

	// The refetched row is now sending and offers pause/cancel only.
	row := ctrl.Snapshot().Broadcasts[0]
	if row.Status != action.BroadcastSending {
		t.Fatalf("status = %q", row.Status)
	}
	if action.Allowed(row.Actions, action.BroadcastActionSendNow) {
		t.Fatalf("sending broadcast must not offer send_now")
	}
}

func TestApply_PauseOnDraftIsRefused(t *testing.T) {
	gw := &fakeGateway{broadcasts: []model.Broadcast{draft("b-1")}}
	ctrl, bus := newTestController(gw)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := ctrl.Apply(context.Background(), "b-1", action.BroadcastActionPause); err == nil {
		t.Fatalf("expected local refusal")
	}
	if len(gw.pauseCalls) != 0 {
		t.Fatalf("refused action must not reach the gateway")
	}
	recent := bus.Recent()
	if len(recent) != 1 || recent[0].Level != notify.LevelError {
		t.Fatalf("expected exactly one error toast, got %v", recent)
	}
}

func TestUpdate_RefusedWhenNotEditable(t *testing.T) {
	sending := draft("b-1")
	sending.Status = action.BroadcastSending
	gw := &fakeGateway{broadcasts: []model.Broadcast{sending}}
	ctrl, _ := newTestController(gw)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	err := ctrl.Update(context.Background(), "b-1", &dto.UpdateBroadcastInput{
		Name:        "Renamed",
		MessageBody: "new body",
	})
	if err == nil {
		t.Fatalf("expected refusal for non-editable broadcast")
	}
	if gw.broadcasts[0].Name != "Spring promo" {
		t.Fatalf("broadcast must not be modified: %q", gw.broadcasts[0].Name)
	}
}

func TestPollingLifecycle(t *testing.T) {
	gw := &fakeGateway{broadcasts: []model.Broadcast{draft("b-1")}}
	bus := notify.NewBus(time.Minute)
	ctrl := NewBroadcastController(gw, bus, logger.NewNop(), 10*time.Millisecond).(*broadcastController)

	ctrl.StartPolling(context.Background())
	time.Sleep(30 * time.Millisecond)
	if !ctrl.Snapshot().Polling {
		t.Fatalf("polling flag should be set while running")
	}
	if len(ctrl.Snapshot().Broadcasts) != 1 {
		t.Fatalf("poller should have populated the list")
	}

	ctrl.StopPolling()
	if ctrl.Snapshot().Polling {
		t.Fatalf("polling flag should clear after StopPolling")
	}
}
