// Package store holds the in-process authoritative ledger state and every
// mutation path over it. All mutators funnel through a common mark-dirty
// step: the snapshot is persisted locally at once, then a debounced push
// replicates it to the remote store. Local persistence is a best-effort
// cache, not the transaction boundary; a failed local write is logged and
// the in-memory mutation stands.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/rgopal/chitfund/internal/ledger"
	"github.com/rgopal/chitfund/internal/metrics"
	"github.com/rgopal/chitfund/internal/models"
	"github.com/rgopal/chitfund/internal/remote"
	"github.com/rgopal/chitfund/internal/storage"
)

// Store is the single owner of all entity collections. Reads return
// defensive copies; no caller ever holds a mutable alias to internal state.
type Store struct {
	mu    sync.RWMutex
	state models.Snapshot

	dirty   bool
	syncing bool

	local  storage.Local
	cloud  *remote.Client
	window time.Duration

	pushTimer *time.Timer

	onDirty func(bool)
	onSync  func(bool)
}

// New creates a store backed by the given local persistence and optional
// remote client (nil for local-only operation). window is the debounce
// coalescing interval for remote pushes; repeated mutations within the
// window collapse into one push.
func New(local storage.Local, cloud *remote.Client, window time.Duration) *Store {
	return &Store{
		local:  local,
		cloud:  cloud,
		window: window,
	}
}

// SetDirtyListener registers a callback invoked whenever the dirty flag
// changes. Used by the UI boundary to surface unsynced-changes indicators.
func (s *Store) SetDirtyListener(fn func(bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onDirty = fn
}

// SetSyncListener registers a callback invoked when a remote sync starts and
// finishes.
func (s *Store) SetSyncListener(fn func(bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSync = fn
}

// Load initializes the store: local snapshot first (corrupt data is
// discarded, never fatal), then the remote snapshot overwrites local state
// iff it is strictly newer. Offline or failing remotes are tolerated; the
// store proceeds with whatever it has.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hasLocal := false
	data, err := s.local.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrNoSnapshot):
		slog.Info("No local snapshot, starting empty")
	case err != nil:
		slog.Error("Failed to read local snapshot", "error", err)
	default:
		var snap models.Snapshot
		if jerr := json.Unmarshal(data, &snap); jerr != nil {
			slog.Error("Corrupt local snapshot, resetting to defaults", "error", jerr)
		} else {
			s.state = normalize(snap)
			hasLocal = true
		}
	}

	if s.cloud == nil {
		return
	}

	s.setSyncingLocked(true)
	remoteSnap, err := s.cloud.Fetch(ctx)
	s.setSyncingLocked(false)
	if err != nil {
		metrics.SyncAttempts.WithLabelValues("pull", "error").Inc()
		slog.Warn("Cloud load failed, continuing local-only", "error", err)
		return
	}
	metrics.SyncAttempts.WithLabelValues("pull", "ok").Inc()
	if remoteSnap == nil {
		return
	}

	if !hasLocal || remoteSnap.LastUpdated.After(s.state.LastUpdated) {
		s.state = normalize(*remoteSnap)
		s.saveLocalLocked(ctx)
		s.setDirtyLocked(false)
		slog.Info("Adopted newer remote snapshot", "last_updated", s.state.LastUpdated)
	}
}

// normalize fills defaults a foreign snapshot may omit.
func normalize(snap models.Snapshot) models.Snapshot {
	for i := range snap.Chits {
		if snap.Chits[i].Status == "" {
			snap.Chits[i].Status = models.ChitActive
		}
	}
	return snap
}

// markDirty is the common tail of every mutator. Callers hold the write
// lock. Ordering guarantee: the local persist completes before the remote
// push is scheduled, so a crash in between never loses data locally.
func (s *Store) markDirty(op string) {
	metrics.Mutations.WithLabelValues(op).Inc()
	s.state.LastUpdated = time.Now()
	s.setDirtyLocked(true)
	s.saveLocalLocked(context.Background())

	if s.cloud == nil {
		return
	}
	if s.pushTimer != nil {
		s.pushTimer.Stop()
	}
	s.pushTimer = time.AfterFunc(s.window, func() {
		s.SyncNow(context.Background())
	})
}

func (s *Store) saveLocalLocked(ctx context.Context) {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		slog.Error("Critical: snapshot serialization failed", "error", err)
		return
	}
	if err := s.local.Save(ctx, data); err != nil {
		slog.Error("Critical: local snapshot save failed", "error", err)
	}
}

func (s *Store) setDirtyLocked(dirty bool) {
	s.dirty = dirty
	metrics.SetDirty(dirty)
	if s.onDirty != nil {
		s.onDirty(dirty)
	}
}

func (s *Store) setSyncingLocked(syncing bool) {
	s.syncing = syncing
	if s.onSync != nil {
		s.onSync(syncing)
	}
}

// SyncNow pushes the current snapshot to the remote store immediately.
// Returns false on failure; the dirty flag stays set so the next trigger
// retries naturally. There is no retry loop here.
func (s *Store) SyncNow(ctx context.Context) bool {
	if s.cloud == nil {
		return false
	}

	s.mu.Lock()
	s.setSyncingLocked(true)
	snap := s.state.Clone()
	s.mu.Unlock()

	err := s.cloud.Push(ctx, snap)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.setSyncingLocked(false)
	if err != nil {
		metrics.SyncAttempts.WithLabelValues("push", "error").Inc()
		slog.Error("Cloud sync failed", "error", err)
		return false
	}
	metrics.SyncAttempts.WithLabelValues("push", "ok").Inc()
	s.setDirtyLocked(false)
	return true
}

// Restore replaces the full state from a serialized backup and marks dirty.
func (s *Store) Restore(data []byte) error {
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = normalize(snap)
	s.markDirty("restore")
	return nil
}

// Serialized returns the snapshot as indented JSON, for backups.
func (s *Store) Serialized() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.MarshalIndent(s.state, "", "  ")
}

// Snapshot returns a deep copy of the full state.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Dirty reports whether unsynced mutations exist.
func (s *Store) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// Syncing reports whether a remote sync is in flight.
func (s *Store) Syncing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.syncing
}

// Chits returns a copy of all chit groups.
func (s *Store) Chits() []models.ChitGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ChitGroup(nil), s.state.Chits...)
}

// Chit returns one group by ID.
func (s *Store) Chit(chitGroupID string) (models.ChitGroup, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chitLocked(chitGroupID)
}

func (s *Store) chitLocked(chitGroupID string) (models.ChitGroup, bool) {
	for _, c := range s.state.Chits {
		if c.ChitGroupID == chitGroupID {
			return c, true
		}
	}
	return models.ChitGroup{}, false
}

// Members returns a copy of all members.
func (s *Store) Members() []models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Member(nil), s.state.Members...)
}

// Member returns one member by ID.
func (s *Store) Member(memberID string) (models.Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.state.Members {
		if m.MemberID == memberID {
			return m, true
		}
	}
	return models.Member{}, false
}

// Memberships returns a copy of all group memberships.
func (s *Store) Memberships() []models.GroupMembership {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.GroupMembership(nil), s.state.Memberships...)
}

// Installments returns a copy of all schedule rows.
func (s *Store) Installments() []models.InstallmentSchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.InstallmentSchedule(nil), s.state.Installments...)
}

// Allotments returns a copy of all allotments, revoked ones included.
func (s *Store) Allotments() []models.Allotment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Allotment(nil), s.state.Allotments...)
}

// Payments returns a copy of all payment records.
func (s *Store) Payments() []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Payment(nil), s.state.Payments...)
}

// PaymentRequests returns a copy of all payment-link requests.
func (s *Store) PaymentRequests() []models.PaymentRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.PaymentRequest(nil), s.state.PaymentRequests...)
}

// Settings returns the settings singleton.
func (s *Store) Settings() models.MasterSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Settings
}

// UpdateSettings replaces the settings singleton.
func (s *Store) UpdateSettings(settings models.MasterSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Settings = settings
	s.markDirty("update_settings")
}

// ResolveInstallment is the read-side query combining schedule, allotment
// and payment state for one member-month.
func (s *Store) ResolveInstallment(chitGroupID, memberID string, monthNo int) ledger.InstallmentStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chit, ok := s.chitLocked(chitGroupID)
	if !ok {
		return ledger.InstallmentStatus{Status: models.PaymentNotScheduled}
	}
	return ledger.Resolve(chit, s.state.Allotments, s.state.Installments, memberID, monthNo)
}

// SummarizeGroup aggregates the group's financial position.
func (s *Store) SummarizeGroup(chitGroupID string) (ledger.GroupSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chit, ok := s.chitLocked(chitGroupID)
	if !ok {
		return ledger.GroupSummary{}, false
	}
	return ledger.Summarize(chit, s.state.Memberships, s.state.Installments, s.state.Allotments), true
}

// MemberDues lists per-member aggregate positions for one group.
func (s *Store) MemberDues(chitGroupID string) ([]ledger.MemberDue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chit, ok := s.chitLocked(chitGroupID)
	if !ok {
		return nil, false
	}
	return ledger.MemberDues(chit, s.state.Memberships, s.state.Installments, s.state.Allotments), true
}
