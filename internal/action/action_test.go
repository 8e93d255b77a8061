package action

import "testing"

func sameSet(got []Action, want ...Action) bool {
	if len(got) != len(want) {
		return false
	}
	for _, w := range want {
		if !Allowed(got, w) {
			return false
		}
	}
	return true
}

func TestForOrder_ExactSets(t *testing.T) {
	cases := []struct {
		status string
		want   []Action
	}{
		{OrderPending, []Action{OrderActionConfirm}},
		{OrderConfirmed, []Action{OrderActionBeginPreparing, OrderActionCancel}},
		{OrderPreparing, []Action{OrderActionMarkReady, OrderActionCancel}},
		{OrderReady, []Action{OrderActionOutForDelivery, OrderActionMarkDelivered}},
		{OrderOutForDelivery, []Action{OrderActionMarkDelivered}},
		{OrderDelivered, nil},
		{OrderCancelled, nil},
		{"bogus", nil},
	}
	for _, tc := range cases {
		got := ForOrder(tc.status)
		if !sameSet(got, tc.want...) {
			t.Fatalf("ForOrder(%q) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestForOrder_PendingOffersOnlyConfirm(t *testing.T) {
	got := ForOrder(OrderPending)
	if len(got) != 1 || got[0] != OrderActionConfirm {
		t.Fatalf("pending order should offer exactly confirm, got %v", got)
	}
	if Allowed(got, OrderActionCancel) {
		t.Fatalf("pending order must not offer cancel")
	}
}

func TestForBroadcast_ExactSets(t *testing.T) {
	cases := []struct {
		status string
		want   []Action
	}{
		{BroadcastDraft, []Action{BroadcastActionSendNow, BroadcastActionEdit, BroadcastActionDelete}},
		{BroadcastScheduled, []Action{BroadcastActionSendNow, BroadcastActionEdit, BroadcastActionCancel}},
		{BroadcastSending, []Action{BroadcastActionPause, BroadcastActionCancel}},
		{BroadcastPaused, []Action{BroadcastActionResume, BroadcastActionCancel}},
		{BroadcastSent, nil},
		{BroadcastCancelled, nil},
		{BroadcastFailed, []Action{BroadcastActionDelete}},
	}
	for _, tc := range cases {
		got := ForBroadcast(tc.status)
		if !sameSet(got, tc.want...) {
			t.Fatalf("ForBroadcast(%q) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestForBroadcast_DraftHasNoLifecycleControls(t *testing.T) {
	got := ForBroadcast(BroadcastDraft)
	for _, a := range []Action{BroadcastActionPause, BroadcastActionResume, BroadcastActionCancel} {
		if Allowed(got, a) {
			t.Fatalf("draft broadcast must not offer %q", a)
		}
	}
}

func TestForAccount_ReviewIsTerminal(t *testing.T) {
	if got := ForAccount(AccountPending); !sameSet(got, AccountActionApprove, AccountActionReject) {
		t.Fatalf("pending account actions = %v", got)
	}
	if got := ForAccount(AccountApproved); len(got) != 0 {
		t.Fatalf("approved account should offer nothing, got %v", got)
	}
	if got := ForAccount(AccountRejected); len(got) != 0 {
		t.Fatalf("rejected account should offer nothing, got %v", got)
	}
}

func TestForModel(t *testing.T) {
	if got := ForModel("unloaded"); !sameSet(got, ModelActionLoad) {
		t.Fatalf("unloaded model actions = %v", got)
	}
	if got := ForModel("loading"); len(got) != 0 {
		t.Fatalf("loading model should offer nothing, got %v", got)
	}
	if got := ForModel("loaded"); !sameSet(got, ModelActionUnload) {
		t.Fatalf("loaded model actions = %v", got)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	first := ForOrder(OrderPending)
	first[0] = Action("tampered")
	second := ForOrder(OrderPending)
	if second[0] != OrderActionConfirm {
		t.Fatalf("table mutated through returned slice: %v", second)
	}
}

func TestOrderTransitionsCoverEveryAction(t *testing.T) {
	for status, actions := range orderActions {
		for _, a := range actions {
			if _, ok := OrderTransitions[a]; !ok {
				t.Fatalf("action %q offered at %q has no transition target", a, status)
			}
		}
	}
}
