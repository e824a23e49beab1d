package listing

import (
	"fmt"
	"sync"
)

// Snapshots caches the ordered (filtered + sorted) slice per parameter
// fingerprint so a page-only change does not re-run steps 1–4. A
// monotonically increasing sequence number guards each key: a computation
// superseded by a newer one for the same parameters can never overwrite the
// newer snapshot, even if its result lands late.
type Snapshots struct {
	mu   sync.Mutex
	next uint64
	byFP map[string]snapshot
}

type snapshot struct {
	seq  uint64
	rows []Row
}

func NewSnapshots() *Snapshots {
	return &Snapshots{byFP: make(map[string]snapshot)}
}

// Begin reserves a sequence number for a derivation about to start.
func (s *Snapshots) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.next
}

// Store records ordered rows for fp unless a newer derivation already wrote
// this key. Reports whether the rows were accepted.
func (s *Snapshots) Store(fp string, seq uint64, rows []Row) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.byFP[fp]; ok && cur.seq > seq {
		return false
	}
	s.byFP[fp] = snapshot{seq: seq, rows: rows}
	return true
}

// Load returns the cached ordered rows for fp, if any.
func (s *Snapshots) Load(fp string) ([]Row, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.byFP[fp]
	if !ok {
		return nil, false
	}
	return snap.rows, true
}

// Invalidate drops every snapshot of one collection, e.g. after a mutation.
func (s *Snapshots) Invalidate(collection string) {
	prefix := collection + "|"
	s.mu.Lock()
	defer s.mu.Unlock()
	for fp := range s.byFP {
		if len(fp) >= len(prefix) && fp[:len(prefix)] == prefix {
			delete(s.byFP, fp)
		}
	}
}

// Fingerprint keys a snapshot by everything the ordered slice depends on.
// Page is deliberately excluded: pagination is applied after the cache.
func Fingerprint(collection, scope string, p Params) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s", collection, scope, p.Query, p.Status, p.Sort)
}
