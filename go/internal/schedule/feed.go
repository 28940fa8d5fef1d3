// Package schedule builds the combined match feed for the followed teams and
// competitions.
package schedule

import (
	"sort"
	"time"

	"github.com/matchdayhq/matchday/go/clients/footballdata"
	"github.com/matchdayhq/matchday/go/internal/l10n"
)

// Merge combines independently fetched match lists into one deduplicated
// feed: exactly one match per id (first seen wins), sorted ascending by
// kickoff. Matches with missing or unparseable kickoff timestamps sort first.
func Merge(lists ...[]footballdata.Match) []footballdata.Match {
	seen := make(map[int]struct{})

	var merged []footballdata.Match
	for _, list := range lists {
		for _, m := range list {
			if _, ok := seen[m.ID]; ok {
				continue
			}
			seen[m.ID] = struct{}{}
			merged = append(merged, m)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return kickoff(merged[i]).Before(kickoff(merged[j]))
	})

	return merged
}

func kickoff(m footballdata.Match) time.Time {
	t, err := m.Date()
	if err != nil {
		return time.Time{}
	}

	return t
}

// Filter selects which slice of the feed a view shows.
type Filter string

const (
	FilterUpcoming Filter = "upcoming"
	FilterResults  Filter = "results"
	FilterAll      Filter = "all"
)

// Apply filters a chronological feed. Results come back newest first; the
// other filters preserve ascending order.
func Apply(matches []footballdata.Match, f Filter) []footballdata.Match {
	var out []footballdata.Match

	switch f {
	case FilterUpcoming:
		for _, m := range matches {
			if m.IsScheduled() || m.IsLive() {
				out = append(out, m)
			}
		}
	case FilterResults:
		for i := len(matches) - 1; i >= 0; i-- {
			if matches[i].IsFinished() {
				out = append(out, matches[i])
			}
		}
	default:
		out = append(out, matches...)
	}

	return out
}

// DayGroup is one calendar-date bucket of the grouped schedule.
type DayGroup struct {
	Label   string
	Matches []footballdata.Match
}

// GroupByDay buckets matches under their localized date label. Buckets are
// ordered by the earliest true kickoff among their members, not by label
// string; descending flips the order for the results view.
func GroupByDay(matches []footballdata.Match, lang l10n.Language, descending bool) []DayGroup {
	index := make(map[string]int)
	earliest := make(map[string]time.Time)

	var groups []DayGroup
	for _, m := range matches {
		var label string
		if t, err := m.Date(); err == nil {
			label = l10n.DateLabel(lang, t.Local())
		}

		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, DayGroup{Label: label})
			earliest[label] = kickoff(m)
		} else if k := kickoff(m); k.Before(earliest[label]) {
			earliest[label] = k
		}

		groups[i].Matches = append(groups[i].Matches, m)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := earliest[groups[i].Label], earliest[groups[j].Label]
		if descending {
			return a.After(b)
		}

		return a.Before(b)
	})

	return groups
}
