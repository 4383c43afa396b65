package discovery

import (
	"strings"

	"github.com/prismapp/prism-backend/internal/domain"
)

// BucketCounts holds the per-tab badge numbers shown over the browse
// list.
type BucketCounts struct {
	Gay     int `json:"gay"`
	Lesbian int `json:"lesbian"`
	Other   int `json:"other"`
}

func (c BucketCounts) Total() int {
	return c.Gay + c.Lesbian + c.Other
}

// PipelineResult is the outcome of one pipeline run. Survivors is the
// final ordered, deduplicated list across all tabs; Counts is computed
// from the pre-dedupe list so the badges reflect everything that passed
// the filters.
type PipelineResult struct {
	Survivors []*domain.Profile
	Counts    BucketCounts
}

// FilterAndCategorize turns a raw candidate list into the list a viewer
// sees. It is a pure function of its arguments; the stages run in a
// fixed order, each assuming the ones before it already ran:
//
//  1. drop the viewer's own profiles and everything the viewer passed on
//  2. apply the filter predicates (all must pass)
//  3. prepend the viewer's freshly edited profile, if given and not
//     already present
//  4. keep the first profile per owning user, drop repeats
//  5. count survivors per tab
//
// Liked profiles are never dropped; likes only flag. nil liked/passed
// sets are treated as empty.
func FilterAndCategorize(
	candidates []*domain.Profile,
	viewerUserID string,
	liked map[string]struct{},
	passed map[string]struct{},
	filters domain.MatchFilters,
	injectedSelf *domain.Profile,
) PipelineResult {
	// Stage 1+2: hard exclusions, then filter predicates.
	survivors := make([]*domain.Profile, 0, len(candidates))
	for _, p := range candidates {
		if p == nil || p.UserID == viewerUserID {
			continue
		}
		if _, isPassed := passed[p.ID]; isPassed {
			continue
		}
		if !matchesFilters(p, filters, liked) {
			continue
		}
		survivors = append(survivors, p)
	}

	// Stage 3: self injection at the front, never duplicated.
	if injectedSelf != nil {
		present := false
		for _, p := range survivors {
			if p.UserID == injectedSelf.UserID {
				present = true
				break
			}
		}
		if !present {
			survivors = append([]*domain.Profile{injectedSelf}, survivors...)
		}
	}

	// Stage 5 counts come from the pre-dedupe list.
	counts := countBuckets(survivors)

	// Stage 4: keep-first dedupe by owning user.
	return PipelineResult{
		Survivors: DedupeByOwner(survivors),
		Counts:    counts,
	}
}

// matchesFilters applies every viewer filter; all must pass. Profiles
// missing an optional field are never excluded by the rule for that
// field. Inverted or negative age bounds simply never match a declared
// numeric age.
func matchesFilters(p *domain.Profile, filters domain.MatchFilters, liked map[string]struct{}) bool {
	if filters.LikedOnly {
		if _, isLiked := liked[p.ID]; !isLiked {
			return false
		}
	}

	if p.Age != nil {
		if *p.Age < filters.AgeMin || *p.Age > filters.AgeMax {
			return false
		}
	}

	if len(filters.Orientations) > 0 {
		label := p.OrientationLabel()
		found := false
		for _, want := range filters.Orientations {
			if strings.Contains(label, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if !exactOrAbsent(p.Purpose, filters.Purposes) {
		return false
	}
	if !exactOrAbsent(p.AgeRange, filters.AgeRanges) {
		return false
	}
	if !exactOrAbsent(p.City, filters.Regions) {
		return false
	}

	return true
}

// exactOrAbsent passes profiles that never set the field; only a
// present, non-matching value excludes.
func exactOrAbsent(value *string, selected []string) bool {
	if len(selected) == 0 || value == nil || *value == "" {
		return true
	}
	for _, want := range selected {
		if *value == want {
			return true
		}
	}
	return false
}

// DedupeByOwner keeps the first profile encountered per owning-user id
// and drops later repeats. Order is otherwise preserved; running it on
// its own output is a no-op.
func DedupeByOwner(profiles []*domain.Profile) []*domain.Profile {
	seen := make(map[string]struct{}, len(profiles))
	out := make([]*domain.Profile, 0, len(profiles))
	for _, p := range profiles {
		if _, dup := seen[p.UserID]; dup {
			continue
		}
		seen[p.UserID] = struct{}{}
		out = append(out, p)
	}
	return out
}

// SelectBucket narrows a survivor list to the active tab.
func SelectBucket(profiles []*domain.Profile, bucket domain.Bucket) []*domain.Profile {
	out := make([]*domain.Profile, 0, len(profiles))
	for _, p := range profiles {
		if domain.ClassifyBucket(p.OrientationLabel()) == bucket {
			out = append(out, p)
		}
	}
	return out
}

func countBuckets(profiles []*domain.Profile) BucketCounts {
	var counts BucketCounts
	for _, p := range profiles {
		switch domain.ClassifyBucket(p.OrientationLabel()) {
		case domain.BucketGay:
			counts.Gay++
		case domain.BucketLesbian:
			counts.Lesbian++
		default:
			counts.Other++
		}
	}
	return counts
}
