package tui

import (
	"time"

	"github.com/agbru/zergmon/internal/sysmon"
)

// TickMsg is sent on every refresh interval.
type TickMsg time.Time

// SnapshotMsg carries the result of one sampler refresh.
type SnapshotMsg struct {
	Snapshot sysmon.Snapshot
}

// IdentityMsg carries the host identity.
type IdentityMsg struct {
	Identity sysmon.Identity
}

// ContextCancelledMsg is sent when the parent context is done.
type ContextCancelledMsg struct {
	Err error
}
