package catalog

import (
	"sync"
	"time"

	"trabaho-board/internal/domain"
)

type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// Snapshot is an immutable view of the store. Jobs must not be modified.
type Snapshot struct {
	Status   Status
	Jobs     []domain.Job
	Err      error
	Rejected []Rejected
	LoadedAt time.Time
}

func (s Snapshot) Loading() bool { return s.Status == StatusLoading }
func (s Snapshot) Failed() bool  { return s.Status == StatusFailed }

// Empty reports a successful load that produced zero jobs.
func (s Snapshot) Empty() bool { return s.Status == StatusReady && len(s.Jobs) == 0 }

// Store is the job catalogue. It starts out loading and is settled exactly
// once, to ready or failed; after that it never changes.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
	once sync.Once
	done chan struct{}
}

func NewStore() *Store {
	return &Store{
		snap: Snapshot{Status: StatusLoading},
		done: make(chan struct{}),
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Done is closed once the store has settled.
func (s *Store) Done() <-chan struct{} { return s.done }

// Find looks a job up by ID.
func (s *Store) Find(id string) (domain.Job, bool) {
	snap := s.Snapshot()
	for _, j := range snap.Jobs {
		if j.ID == id {
			return j, true
		}
	}
	return domain.Job{}, false
}

// settle records the load outcome. Only the first call has any effect.
func (s *Store) settle(snap Snapshot) bool {
	applied := false
	s.once.Do(func() {
		s.mu.Lock()
		s.snap = snap
		s.mu.Unlock()
		close(s.done)
		applied = true
	})
	return applied
}
