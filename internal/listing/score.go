package listing

import (
	"hash/fnv"
	"sync"

	"github.com/google/uuid"
)

// Score is a 0-100 résumé-to-job fit estimate. Known is true only for
// server-computed scores; everything else receives a synthetic display value
// from a ScoreSession and must never be persisted.
type Score struct {
	Value int
	Known bool
}

const (
	syntheticMin = 60
	syntheticMax = 99
)

// ScoreSession hands out deterministic synthetic scores in [60, 99], keyed by
// posting id so the same posting keeps the same display score across
// re-filters within a session.
type ScoreSession struct {
	seed uint64

	mu     sync.Mutex
	scores map[uuid.UUID]int
}

func NewScoreSession(seed uint64) *ScoreSession {
	return &ScoreSession{seed: seed, scores: make(map[uuid.UUID]int)}
}

func (s *ScoreSession) ScoreFor(id uuid.UUID) int {
	if s == nil {
		return syntheticMin
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.scores[id]; ok {
		return v
	}

	h := fnv.New64a()
	var seedBytes [8]byte
	for i := 0; i < 8; i++ {
		seedBytes[i] = byte(s.seed >> (8 * i))
	}
	_, _ = h.Write(seedBytes[:])
	_, _ = h.Write(id[:])

	span := uint64(syntheticMax - syntheticMin + 1)
	v := syntheticMin + int(h.Sum64()%span)
	s.scores[id] = v
	return v
}
