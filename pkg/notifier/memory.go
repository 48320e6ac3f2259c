package notifier

import (
	"context"
	"sync"

	"github.com/ieee-igdtuw/chapter-core/internal/model"
)

// Memory is an in-process Notifier for tests and headless embedding. It
// records every delivery and resolves permission requests to a configured
// outcome. Safe for concurrent use: delivery timers fire on their own
// goroutines.
type Memory struct {
	mu         sync.Mutex
	supported  bool
	permission model.Permission
	outcome    model.Permission
	requestErr error
	delivered  []Payload
}

// NewMemory returns a Memory notifier. outcome is what RequestPermission
// resolves to; the initial cached permission is default (or unsupported).
func NewMemory(supported bool, outcome model.Permission) *Memory {
	permission := model.PermissionDefault
	if !supported {
		permission = model.PermissionUnsupported
	}
	return &Memory{
		supported:  supported,
		permission: permission,
		outcome:    outcome,
	}
}

// Grant marks the notifier as already granted, as a host would report for a
// returning user.
func (m *Memory) Grant() *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.permission = model.PermissionGranted
	return m
}

// FailRequests makes RequestPermission return err. The scheduler must fail
// closed to denied.
func (m *Memory) FailRequests(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestErr = err
}

func (m *Memory) Supported() bool {
	return m.supported
}

func (m *Memory) Permission() model.Permission {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.permission
}

func (m *Memory) RequestPermission(_ context.Context) (model.Permission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.supported {
		return model.PermissionUnsupported, nil
	}
	if m.requestErr != nil {
		return model.PermissionDenied, m.requestErr
	}
	m.permission = m.outcome
	return m.permission, nil
}

func (m *Memory) Deliver(_ context.Context, p Payload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delivered = append(m.delivered, p)
	return nil
}

// Delivered returns a snapshot of everything delivered so far.
func (m *Memory) Delivered() []Payload {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Payload, len(m.delivered))
	copy(out, m.delivered)
	return out
}
