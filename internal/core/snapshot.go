package core

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"
)

// Kind identifies which state machine a registry entry is.
type Kind string

const (
	KindMutex  Kind = "mutex"
	KindRWLock Kind = "rwlock"
	KindOnce   Kind = "once"
)

// PrimitiveState is the serializable observation of one primitive. Fields
// not meaningful for the entry's kind are zero and omitted.
type PrimitiveState struct {
	Name       string `json:"name" yaml:"name"`
	Kind       Kind   `json:"kind" yaml:"kind"`
	Held       bool   `json:"held,omitempty" yaml:"held,omitempty"`
	Readers    int    `json:"readers,omitempty" yaml:"readers,omitempty"`
	WriterHeld bool   `json:"writerHeld,omitempty" yaml:"writerHeld,omitempty"`
	Status     string `json:"status,omitempty" yaml:"status,omitempty"`
}

// Snapshot is the serializable picture of a whole registry at one instant.
type Snapshot struct {
	SetID      string           `json:"setID" yaml:"setID"`
	Primitives []PrimitiveState `json:"primitives" yaml:"primitives"`
	Timestamp  time.Time        `json:"timestamp" yaml:"timestamp"`
}

// ComputeVersion computes a deterministic version for a snapshot:
// SHA256(snapshot JSON)[:8] plus the snapshot timestamp.
func ComputeVersion(s *Snapshot) string {
	data, err := json.Marshal(s)
	if err != nil {
		// Fallback (should not happen for a valid snapshot)
		return fmt.Sprintf("invalid-%d", s.Timestamp.Unix())
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x-%s", hash[:8], s.Timestamp.UTC().Format("20060102T150405Z"))
}
