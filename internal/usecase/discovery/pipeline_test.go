package discovery

import (
	"testing"

	"github.com/prismapp/prism-backend/internal/domain"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func newProfile(id, owner string) *domain.Profile {
	return &domain.Profile{ID: id, UserID: owner, DisplayName: "user-" + owner}
}

func ids(profiles []*domain.Profile) []string {
	out := make([]string, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.ID)
	}
	return out
}

func set(ids ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func TestFilterAndCategorize_SelfExclusion(t *testing.T) {
	candidates := []*domain.Profile{
		newProfile("p1", "viewer"),
		newProfile("p2", "u2"),
		newProfile("p3", "viewer"),
	}

	result := FilterAndCategorize(candidates, "viewer", nil, nil, domain.DefaultMatchFilters(), nil)

	require.Equal(t, []string{"p2"}, ids(result.Survivors))
	for _, p := range result.Survivors {
		require.NotEqual(t, "viewer", p.UserID)
	}
}

func TestFilterAndCategorize_PassedExcludedLikedKept(t *testing.T) {
	candidates := []*domain.Profile{
		newProfile("p1", "u1"),
		newProfile("p2", "u2"),
		newProfile("p3", "u3"),
	}

	result := FilterAndCategorize(candidates, "viewer", set("p1"), set("p2"), domain.DefaultMatchFilters(), nil)

	// passed p2 is gone; liked p1 stays
	require.Equal(t, []string{"p1", "p3"}, ids(result.Survivors))
}

func TestFilterAndCategorize_LikedOnly(t *testing.T) {
	candidates := []*domain.Profile{
		newProfile("p1", "u1"),
		newProfile("p2", "u2"),
	}
	filters := domain.DefaultMatchFilters()
	filters.LikedOnly = true

	result := FilterAndCategorize(candidates, "viewer", set("p2"), nil, filters, nil)

	require.Equal(t, []string{"p2"}, ids(result.Survivors))
}

func TestFilterAndCategorize_AgeBounds(t *testing.T) {
	young := newProfile("p1", "u1")
	young.Age = intp(17)
	inRange := newProfile("p2", "u2")
	inRange.Age = intp(30)
	noAge := newProfile("p3", "u3")

	filters := domain.DefaultMatchFilters()
	filters.AgeMin, filters.AgeMax = 18, 50

	result := FilterAndCategorize([]*domain.Profile{young, inRange, noAge}, "viewer", nil, nil, filters, nil)

	// 17 excluded, 30 kept, no declared age kept
	require.Equal(t, []string{"p2", "p3"}, ids(result.Survivors))
}

func TestFilterAndCategorize_InvertedBoundsNeverMatch(t *testing.T) {
	withAge := newProfile("p1", "u1")
	withAge.Age = intp(30)
	noAge := newProfile("p2", "u2")

	filters := domain.DefaultMatchFilters()
	filters.AgeMin, filters.AgeMax = 50, 18

	result := FilterAndCategorize([]*domain.Profile{withAge, noAge}, "viewer", nil, nil, filters, nil)

	// inverted bounds exclude every declared age but never error;
	// profiles without a numeric age are untouched by the rule
	require.Equal(t, []string{"p2"}, ids(result.Survivors))
}

func TestFilterAndCategorize_OrientationSubstring(t *testing.T) {
	a := newProfile("p1", "u1")
	a.Orientation = strp("レズビアン(Lッ気強め)")
	b := newProfile("p2", "u2")
	b.Orientation = strp("ゲイ")
	c := newProfile("p3", "u3")

	filters := domain.DefaultMatchFilters()
	filters.Orientations = []string{"レズビアン"}

	result := FilterAndCategorize([]*domain.Profile{a, b, c}, "viewer", nil, nil, filters, nil)

	// substring match against the raw label; profiles without a label
	// fail a non-empty orientation filter
	require.Equal(t, []string{"p1"}, ids(result.Survivors))
}

func TestFilterAndCategorize_ExactOrAbsentFields(t *testing.T) {
	matching := newProfile("p1", "u1")
	matching.Purpose = strp("恋人")
	other := newProfile("p2", "u2")
	other.Purpose = strp("友達")
	unset := newProfile("p3", "u3")

	filters := domain.DefaultMatchFilters()
	filters.Purposes = []string{"恋人"}

	result := FilterAndCategorize([]*domain.Profile{matching, other, unset}, "viewer", nil, nil, filters, nil)

	// only a present, non-matching purpose excludes
	require.Equal(t, []string{"p1", "p3"}, ids(result.Survivors))
}

func TestFilterAndCategorize_RegionFilter(t *testing.T) {
	tokyo := newProfile("p1", "u1")
	tokyo.City = strp("東京")
	osaka := newProfile("p2", "u2")
	osaka.City = strp("大阪")
	nowhere := newProfile("p3", "u3")

	filters := domain.DefaultMatchFilters()
	filters.Regions = []string{"東京"}

	result := FilterAndCategorize([]*domain.Profile{tokyo, osaka, nowhere}, "viewer", nil, nil, filters, nil)

	require.Equal(t, []string{"p1", "p3"}, ids(result.Survivors))
}

func TestFilterAndCategorize_SelfInjection(t *testing.T) {
	candidates := []*domain.Profile{newProfile("p1", "u1")}
	self := newProfile("self", "viewer")

	result := FilterAndCategorize(candidates, "viewer", nil, nil, domain.DefaultMatchFilters(), self)

	require.Equal(t, []string{"self", "p1"}, ids(result.Survivors))
}

func TestFilterAndCategorize_SelfInjectionNoDuplicate(t *testing.T) {
	// a stale candidate snapshot can already contain the freshly saved
	// profile's owner; injection must not duplicate it
	existing := newProfile("p0", "u1")
	candidates := []*domain.Profile{existing, newProfile("p1", "u2")}
	fresh := newProfile("fresh", "u1")

	result := FilterAndCategorize(candidates, "viewer", nil, nil, domain.DefaultMatchFilters(), fresh)

	require.Equal(t, []string{"p0", "p1"}, ids(result.Survivors))
}

func TestDedupeByOwner_KeepsFirstAndIsIdempotent(t *testing.T) {
	profiles := []*domain.Profile{
		newProfile("p1", "u1"),
		newProfile("p2", "u2"),
		newProfile("p3", "u1"),
		newProfile("p4", "u2"),
	}

	once := DedupeByOwner(profiles)
	require.Equal(t, []string{"p1", "p2"}, ids(once))

	twice := DedupeByOwner(once)
	require.Equal(t, ids(once), ids(twice))
}

func TestFilterAndCategorize_BucketCountsExhaustive(t *testing.T) {
	gay := newProfile("p1", "u1")
	gay.Orientation = strp("ゲイ")
	lesbian := newProfile("p2", "u2")
	lesbian.Orientation = strp("レズビアン")
	bi := newProfile("p3", "u3")
	bi.Orientation = strp("バイセクシュアル")
	unset := newProfile("p4", "u4")

	result := FilterAndCategorize([]*domain.Profile{gay, lesbian, bi, unset}, "viewer", nil, nil, domain.DefaultMatchFilters(), nil)

	require.Equal(t, BucketCounts{Gay: 1, Lesbian: 1, Other: 2}, result.Counts)
	require.Equal(t, len(result.Survivors), result.Counts.Total())
}

func TestFilterAndCategorize_CountsUsePreDedupeList(t *testing.T) {
	first := newProfile("p1", "u1")
	first.Orientation = strp("ゲイ")
	dup := newProfile("p2", "u1")
	dup.Orientation = strp("ゲイ")

	result := FilterAndCategorize([]*domain.Profile{first, dup}, "viewer", nil, nil, domain.DefaultMatchFilters(), nil)

	require.Equal(t, []string{"p1"}, ids(result.Survivors))
	require.Equal(t, 2, result.Counts.Gay)
}

func TestSelectBucket(t *testing.T) {
	gay := newProfile("p1", "u1")
	gay.Orientation = strp("ゲイ")
	lesbian := newProfile("p2", "u2")
	lesbian.Orientation = strp("レズビアン")
	unset := newProfile("p3", "u3")

	profiles := []*domain.Profile{gay, lesbian, unset}

	require.Equal(t, []string{"p1"}, ids(SelectBucket(profiles, domain.BucketGay)))
	require.Equal(t, []string{"p2"}, ids(SelectBucket(profiles, domain.BucketLesbian)))
	require.Equal(t, []string{"p3"}, ids(SelectBucket(profiles, domain.BucketOther)))
}

func TestFilterAndCategorize_NarrowingNeverGrowsList(t *testing.T) {
	candidates := []*domain.Profile{}
	for i, age := range []int{20, 25, 30, 35, 40} {
		p := newProfile(string(rune('a'+i)), string(rune('A'+i)))
		p.Age = intp(age)
		candidates = append(candidates, p)
	}

	loose := domain.DefaultMatchFilters()
	narrow := loose
	narrow.AgeMin, narrow.AgeMax = 25, 35

	before := FilterAndCategorize(candidates, "viewer", nil, nil, loose, nil)
	after := FilterAndCategorize(candidates, "viewer", nil, nil, narrow, nil)

	require.LessOrEqual(t, len(after.Survivors), len(before.Survivors))
	require.Len(t, after.Survivors, 3)
}

func TestFilterAndCategorize_EmptyCandidates(t *testing.T) {
	result := FilterAndCategorize(nil, "viewer", nil, nil, domain.DefaultMatchFilters(), nil)

	require.Empty(t, result.Survivors)
	require.Equal(t, BucketCounts{}, result.Counts)
}

func TestFilterAndCategorize_AllExcludedScenario(t *testing.T) {
	p1 := newProfile("p1", "u1")
	p1.Age = intp(30)
	p1.Purpose = strp("恋人")
	p1.Orientation = strp("ゲイ")

	p2 := newProfile("p2", "u2")
	p2.Age = intp(17)
	p2.Orientation = strp("ゲイ")

	p3 := newProfile("p3", "u1")
	p3.Orientation = strp("ゲイ")

	filters := domain.DefaultMatchFilters()
	filters.AgeMin, filters.AgeMax = 18, 50
	filters.Purposes = []string{"恋人"}

	result := FilterAndCategorize([]*domain.Profile{p1, p2, p3}, "u1", nil, nil, filters, nil)

	// p1 and p3 belong to the viewer, p2 is under age
	require.Empty(t, result.Survivors)
	require.Equal(t, BucketCounts{}, result.Counts)
}

func TestFilterAndCategorize_DefaultFiltersScenario(t *testing.T) {
	q1 := newProfile("q1", "u1")
	q1.Orientation = strp("レズビアン")
	q2 := newProfile("q2", "u2")
	q2.Orientation = strp("ゲイ")

	result := FilterAndCategorize([]*domain.Profile{q1, q2}, "u9", nil, nil, domain.DefaultMatchFilters(), nil)

	require.Equal(t, []string{"q1", "q2"}, ids(result.Survivors))
	require.Equal(t, BucketCounts{Gay: 1, Lesbian: 1, Other: 0}, result.Counts)
}
