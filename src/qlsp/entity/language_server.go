// Package entity contains the domain types shared by the qlsp layers.
package entity

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/protocol"
)

// InstanceState is the lifecycle state of a single language server instance.
type InstanceState int

const (
	InstanceStarting InstanceState = iota
	InstanceHandshaking
	InstanceReady
	InstanceDisposed
	InstanceFailed
)

func (s InstanceState) String() string {
	switch s {
	case InstanceStarting:
		return "starting"
	case InstanceHandshaking:
		return "handshaking"
	case InstanceReady:
		return "ready"
	case InstanceDisposed:
		return "disposed"
	case InstanceFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible.
func (s InstanceState) Terminal() bool {
	return s == InstanceDisposed || s == InstanceFailed
}

// AvailabilityKind distinguishes availability events.
type AvailabilityKind int

const (
	Unavailable AvailabilityKind = iota
	Available
)

func (k AvailabilityKind) String() string {
	if k == Available {
		return "available"
	}
	return "unavailable"
}

// Availability is published whenever a language server instance becomes usable or stops being usable.
// Only the latest event matters to subscribers.
type Availability struct {
	Kind         AvailabilityKind
	InstanceID   uuid.UUID
	Pid          int
	Capabilities *protocol.ServerCapabilities
	Err          error
}

// IsAvailable is a convenience for Kind == Available.
func (a Availability) IsAvailable() bool {
	return a.Kind == Available
}
