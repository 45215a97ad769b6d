package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"career-canvas/internal/domain/job"
)

const jobsCachePrefix = "jobs:list:"

type jobsCacheKeyInput struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Level       string `json:"level"`
	JobType     string `json:"job_type"`
	WorkMode    string `json:"work_mode"`
	PostedAfter int64  `json:"posted_after"`
}

func normalizeQueryValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// JobsCacheKey hashes the normalized server-side filter. PostedAfter is
// bucketed by the caller before keying so "last 24h" queries share an entry
// within the cache TTL window.
func JobsCacheKey(f job.ListFilter) string {
	in := jobsCacheKeyInput{
		Title:       normalizeQueryValue(f.Title),
		Location:    normalizeQueryValue(f.Location),
		Category:    normalizeQueryValue(f.Category),
		Level:       normalizeQueryValue(f.Level),
		JobType:     normalizeQueryValue(f.JobType),
		WorkMode:    normalizeQueryValue(f.WorkMode),
		PostedAfter: f.PostedAfter,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return jobsCachePrefix + hex.EncodeToString(sum[:])
}
