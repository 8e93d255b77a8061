// Package action makes the per-status action sets explicit. The dashboard
// decides which buttons to render purely from an entity's current status;
// these tables are that decision, in one auditable place, instead of status
// string comparisons scattered through render code.
package action

// Action names a button the dashboard can offer for an entity row.
type Action string

// Order statuses and actions.
const (
	OrderPending        = "pending"
	OrderConfirmed      = "confirmed"
	OrderPreparing      = "preparing"
	OrderReady          = "ready"
	OrderOutForDelivery = "out_for_delivery"
	OrderDelivered      = "delivered"
	OrderCancelled      = "cancelled"

	OrderActionConfirm        Action = "confirm"
	OrderActionBeginPreparing Action = "begin_preparing"
	OrderActionMarkReady      Action = "mark_ready"
	OrderActionOutForDelivery Action = "out_for_delivery"
	OrderActionMarkDelivered  Action = "mark_delivered"
	OrderActionCancel         Action = "cancel"
)

// orderActions maps each order status to the exact set of offered actions.
// Delivered and cancelled are terminal.
var orderActions = map[string][]Action{
	OrderPending:        {OrderActionConfirm},
	OrderConfirmed:      {OrderActionBeginPreparing, OrderActionCancel},
	OrderPreparing:      {OrderActionMarkReady, OrderActionCancel},
	OrderReady:          {OrderActionOutForDelivery, OrderActionMarkDelivered},
	OrderOutForDelivery: {OrderActionMarkDelivered},
	OrderDelivered:      {},
	OrderCancelled:      {},
}

// OrderTransitions maps each action to the status it requests upstream.
var OrderTransitions = map[Action]string{
	OrderActionConfirm:        OrderConfirmed,
	OrderActionBeginPreparing: OrderPreparing,
	OrderActionMarkReady:      OrderReady,
	OrderActionOutForDelivery: OrderOutForDelivery,
	OrderActionMarkDelivered:  OrderDelivered,
	OrderActionCancel:         OrderCancelled,
}

// Broadcast statuses and actions.
const (
	BroadcastDraft     = "draft"
	BroadcastScheduled = "scheduled"
	BroadcastSending   = "sending"
	BroadcastSent      = "sent"
	BroadcastPaused    = "paused"
	BroadcastCancelled = "cancelled"
	BroadcastFailed    = "failed"

	BroadcastActionSendNow Action = "send_now"
	BroadcastActionEdit    Action = "edit"
	BroadcastActionDelete  Action = "delete"
	BroadcastActionPause   Action = "pause"
	BroadcastActionResume  Action = "resume"
	BroadcastActionCancel  Action = "cancel"
)

var broadcastActions = map[string][]Action{
	BroadcastDraft:     {BroadcastActionSendNow, BroadcastActionEdit, BroadcastActionDelete},
	BroadcastScheduled: {BroadcastActionSendNow, BroadcastActionEdit, BroadcastActionCancel},
	BroadcastSending:   {BroadcastActionPause, BroadcastActionCancel},
	BroadcastPaused:    {BroadcastActionResume, BroadcastActionCancel},
	BroadcastSent:      {},
	BroadcastCancelled: {},
	BroadcastFailed:    {BroadcastActionDelete},
}

// Store statuses and actions.
const (
	StoreActive    = "active"
	StoreSuspended = "suspended"
	StoreInactive  = "inactive"

	StoreActionEdit       Action = "edit"
	StoreActionSuspend    Action = "suspend"
	StoreActionReactivate Action = "reactivate"
	StoreActionClose      Action = "close"
)

var storeActions = map[string][]Action{
	StoreActive:    {StoreActionEdit, StoreActionSuspend, StoreActionClose},
	StoreSuspended: {StoreActionReactivate, StoreActionClose},
	StoreInactive:  {},
}

// Pending account statuses and actions. Approve/reject are terminal and
// offered exactly once.
const (
	AccountPending  = "pending"
	AccountApproved = "approved"
	AccountRejected = "rejected"

	AccountActionApprove Action = "approve"
	AccountActionReject  Action = "reject"
)

var accountActions = map[string][]Action{
	AccountPending:  {AccountActionApprove, AccountActionReject},
	AccountApproved: {},
	AccountRejected: {},
}

// AI model actions.
const (
	ModelActionLoad   Action = "load"
	ModelActionUnload Action = "unload"
)

var modelActions = map[string][]Action{
	"unloaded": {ModelActionLoad},
	"loading":  {},
	"loaded":   {ModelActionUnload},
}

func ForOrder(status string) []Action     { return lookup(orderActions, status) }
func ForBroadcast(status string) []Action { return lookup(broadcastActions, status) }
func ForStore(status string) []Action     { return lookup(storeActions, status) }
func ForAccount(status string) []Action   { return lookup(accountActions, status) }
func ForModel(status string) []Action     { return lookup(modelActions, status) }

// lookup copies so callers can't mutate the tables. Unknown statuses get no
// actions, mirroring a dashboard that renders nothing it doesn't recognize.
func lookup(table map[string][]Action, status string) []Action {
	actions, ok := table[status]
	if !ok {
		return nil
	}
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// Allowed reports whether the action is offered for the given status. Every
// controller checks this before issuing the corresponding mutation.
func Allowed(actions []Action, a Action) bool {
	for _, candidate := range actions {
		if candidate == a {
			return true
		}
	}
	return false
}
