/*
Package game
File: interfaces.go
Description:
    Narrow interfaces for everything outside the simulation: persistence,
    haptic-style notifications, user-facing messages, render triggers,
    floating rewards and the optional analytics event stream. The core
    never blocks on any of them; failures come back as values and are
    logged, not raised.
*/

package game

import (
	"context"
	"errors"
	"time"
)

// ErrNoSave is returned by a SaveStore when no document exists under the
// requested key.
var ErrNoSave = errors.New("no saved document")

// SaveStore persists the serialized game document.
type SaveStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, doc []byte) error
}

// NotifyClass mirrors the haptic feedback classes of the client platform.
type NotifyClass string

const (
	NotifySuccess      NotifyClass = "success"
	NotifyError        NotifyClass = "error"
	NotifyLightImpact  NotifyClass = "light-impact"
	NotifyMediumImpact NotifyClass = "medium-impact"
	NotifySoftImpact   NotifyClass = "soft-impact"
)

// Notifier receives fire-and-forget notification pulses.
type Notifier interface {
	Notify(class NotifyClass)
}

// Messenger surfaces user-visible, non-fatal messages.
type Messenger interface {
	ShowMessage(title, text string)
}

// Renderer is poked whenever state changed in a way a viewer should
// reflect. No data is pushed beyond "state changed".
type Renderer interface {
	RequestRender()
}

// RewardSink shows a floating reward indicator over a grid cell.
type RewardSink interface {
	ShowReward(at Coord, text string)
}

// Event is an analytics record of something that happened in the cafe.
type Event struct {
	Type       string    `json:"type"`
	Coord      string    `json:"coord,omitempty"`
	CustomerID string    `json:"customer_id,omitempty"`
	OrderID    string    `json:"order_id,omitempty"`
	ItemID     string    `json:"item_id,omitempty"`
	Amount     int       `json:"amount,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

const (
	EventCustomerSpawned = "customer_spawned"
	EventCustomerLeft    = "customer_left"
	EventOrderServed     = "order_served"
	EventBundlePurchased = "bundle_purchased"
)

// EventPublisher streams events to an external consumer.
type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}
