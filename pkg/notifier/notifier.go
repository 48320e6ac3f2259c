// Package notifier defines the host notification capability the reminder
// scheduler delivers through. Real push delivery is out of scope; embedders
// adapt their platform surface behind this interface.
package notifier

import (
	"context"

	"github.com/ieee-igdtuw/chapter-core/internal/model"
)

// Payload is a single deferred notification handed to the host surface. Tag
// carries the reminder id so repeat deliveries for the same reminder coalesce.
type Payload struct {
	Title              string `json:"title"`
	Body               string `json:"body"`
	Icon               string `json:"icon"`
	Badge              string `json:"badge"`
	Tag                string `json:"tag"`
	RequireInteraction bool   `json:"requireInteraction"`
}

// Notifier is the host capability. Supported is true only when the host
// exposes both a notification surface and a background worker.
type Notifier interface {
	Supported() bool
	Permission() model.Permission
	RequestPermission(ctx context.Context) (model.Permission, error)
	Deliver(ctx context.Context, p Payload) error
}
