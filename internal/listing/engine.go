// Package listing implements the filter-and-rank pipeline behind the job
// board: a pure function from (postings, criteria) to the ordered, paginated
// subset to display. It never fails; absent or malformed criteria fields mean
// "no constraint".
package listing

import (
	"math"
	"sort"
	"strings"
	"time"

	"career-canvas/internal/domain/job"
)

const PageSize = 6

type SortKey string

const (
	SortRecent SortKey = "recent"
	SortSalary SortKey = "salary"
	SortMatch  SortKey = "match"
)

type DateBucket string

const (
	DateAny     DateBucket = ""
	DateLast24h DateBucket = "24h"
	DateLast7d  DateBucket = "7d"
	DateLast30d DateBucket = "30d"
)

type ScoreBucket string

const (
	ScoreAny    ScoreBucket = ""
	ScoreHigh   ScoreBucket = "high"   // score >= 70
	ScoreMedium ScoreBucket = "medium" // 40 <= score < 70
)

// Criteria is the full set of user-selected filters. Multi-select facets are
// OR within the facet except Skills, which is a conjunction. All active
// predicates are AND-combined.
type Criteria struct {
	TitleQuery    string
	LocationQuery string
	JobType       string
	WorkMode      string
	Categories    []string
	Locations     []string
	Skills        []string
	DatePosted    DateBucket
	MatchScore    ScoreBucket
	SortBy        SortKey
}

// Selecting the alias category also matches its canonical synonym, one
// direction only.
const (
	aliasCategory     = "Software Engineer"
	canonicalCategory = "Programming"
)

// Item is a posting annotated with the score used for filtering and ranking.
type Item struct {
	Posting job.Posting
	Score   Score
}

// Apply filters and orders postings. The base order is reverse insertion
// order (most recently added first); the requested sort is applied on top of
// it with stable ties. Postings without a Known score are annotated from the
// session before the score-bucket predicate runs.
func Apply(postings []job.Posting, c Criteria, now time.Time, scores map[string]int, session *ScoreSession) []Item {
	items := make([]Item, 0, len(postings))
	for i := len(postings) - 1; i >= 0; i-- {
		p := postings[i]
		if !matches(p, c, now) {
			continue
		}
		items = append(items, Item{Posting: p, Score: attachScore(p, scores, session)})
	}

	items = filterByScore(items, c.MatchScore)
	sortItems(items, c.SortBy)
	return items
}

func matches(p job.Posting, c Criteria, now time.Time) bool {
	return matchesCategory(p, c.Categories) &&
		matchesIn(p.Location, c.Locations) &&
		matchesSubstring(p.Title, c.TitleQuery) &&
		matchesSubstring(p.Location, c.LocationQuery) &&
		matchesExact(p.JobType, c.JobType) &&
		matchesExact(p.WorkMode, c.WorkMode) &&
		matchesSkills(p.Skills, c.Skills) &&
		matchesDate(p.PostedAt, c.DatePosted, now)
}

func matchesCategory(p job.Posting, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == p.Category {
			return true
		}
		if s == aliasCategory && p.Category == canonicalCategory {
			return true
		}
	}
	return false
}

func matchesIn(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

func matchesSubstring(value, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}

func matchesExact(value, want string) bool {
	return want == "" || value == want
}

func matchesSkills(have, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		found := false
		for _, s := range have {
			if s == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func matchesDate(postedAtMillis int64, bucket DateBucket, now time.Time) bool {
	hours, ok := bucketHours(bucket)
	if !ok {
		return true
	}
	age := now.Sub(time.UnixMilli(postedAtMillis))
	return age <= time.Duration(hours)*time.Hour
}

func bucketHours(bucket DateBucket) (int, bool) {
	switch bucket {
	case DateLast24h:
		return 24, true
	case DateLast7d:
		return 24 * 7, true
	case DateLast30d:
		return 24 * 30, true
	default:
		return 0, false
	}
}

func attachScore(p job.Posting, scores map[string]int, session *ScoreSession) Score {
	if scores != nil {
		if v, ok := scores[p.ID.String()]; ok {
			return Score{Value: v, Known: true}
		}
	}
	return Score{Value: session.ScoreFor(p.ID)}
}

func filterByScore(items []Item, bucket ScoreBucket) []Item {
	switch bucket {
	case ScoreHigh:
		return keep(items, func(it Item) bool { return it.Score.Value >= 70 })
	case ScoreMedium:
		return keep(items, func(it Item) bool { return it.Score.Value >= 40 && it.Score.Value < 70 })
	default:
		return items
	}
}

func keep(items []Item, pred func(Item) bool) []Item {
	out := items[:0]
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

func sortItems(items []Item, key SortKey) {
	switch key {
	case SortSalary:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Posting.Salary > items[j].Posting.Salary
		})
	case SortMatch:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Score.Value > items[j].Score.Value
		})
	default:
		// recency keeps the reverse-insertion base order
	}
}

// PageCount is ceil(total / PageSize); an empty result still has one page.
func PageCount(total int) int {
	if total <= 0 {
		return 1
	}
	return int(math.Ceil(float64(total) / float64(PageSize)))
}

// ClampPage forces page into [1, pages].
func ClampPage(page, pages int) int {
	if page < 1 {
		return 1
	}
	if page > pages {
		return pages
	}
	return page
}

// Paginate returns the items for the requested page and the clamped page
// number actually used.
func Paginate(items []Item, page int) ([]Item, int) {
	pages := PageCount(len(items))
	page = ClampPage(page, pages)

	start := (page - 1) * PageSize
	if start >= len(items) {
		return []Item{}, page
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page
}
