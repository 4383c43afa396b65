package domain

import "strings"

// Orientation is the closed category set every free-text orientation
// label normalizes into. Downstream policy switches on this enum, never
// on raw strings.
type Orientation string

const (
	OrientationLesbian     Orientation = "lesbian"
	OrientationGay         Orientation = "gay"
	OrientationBisexual    Orientation = "bisexual"
	OrientationPansexual   Orientation = "pansexual"
	OrientationTransgender Orientation = "transgender"
	OrientationQuestioning Orientation = "questioning"
	OrientationAsexual     Orientation = "asexual"
	OrientationOther       Orientation = "other"
)

// orientationFamilies maps each category to its known synonyms, in
// normalization priority order. Matching is case-insensitive substring;
// the first family that matches wins, so a label never normalizes to
// more than one category.
var orientationFamilies = []struct {
	category Orientation
	keywords []string
}{
	{OrientationLesbian, []string{"lesbian", "レズビアン", "レズ", "ビアン", "びあん", "百合"}},
	{OrientationGay, []string{"gay", "ゲイ", "ホモ"}},
	{OrientationBisexual, []string{"bisexual", "バイセクシュアル", "バイセクシャル", "バイ", "両性愛"}},
	{OrientationPansexual, []string{"pansexual", "パンセクシュアル", "パンセクシャル", "全性愛"}},
	{OrientationTransgender, []string{"transgender", "トランスジェンダー", "トランス", "mtf", "ftm"}},
	{OrientationQuestioning, []string{"questioning", "クエスチョニング", "queer", "クィア"}},
	{OrientationAsexual, []string{"asexual", "アセクシュアル", "アセクシャル", "無性愛", "ノンセクシュアル"}},
}

// NormalizeOrientation maps a raw self-reported orientation label to
// its category. Empty or unrecognized labels normalize to other.
func NormalizeOrientation(label string) Orientation {
	l := strings.ToLower(strings.TrimSpace(label))
	if l == "" {
		return OrientationOther
	}
	for _, family := range orientationFamilies {
		for _, kw := range family.keywords {
			if strings.Contains(l, kw) {
				return family.category
			}
		}
	}
	return OrientationOther
}

// Bucket is one of the three discovery tabs the browse list is
// partitioned into.
type Bucket string

const (
	BucketGay     Bucket = "gay"
	BucketLesbian Bucket = "lesbian"
	BucketOther   Bucket = "other"
)

var (
	gayMarkers     = []string{"gay", "ゲイ"}
	lesbianMarkers = []string{"lesbian", "レズ", "ビアン", "びあん", "百合"}
)

// ClassifyBucket assigns a profile's orientation label to exactly one
// discovery tab. Gay markers take priority over lesbian markers;
// everything else, including empty labels, lands in the other tab.
func ClassifyBucket(label string) Bucket {
	l := strings.ToLower(label)
	for _, m := range gayMarkers {
		if strings.Contains(l, m) {
			return BucketGay
		}
	}
	for _, m := range lesbianMarkers {
		if strings.Contains(l, m) {
			return BucketLesbian
		}
	}
	return BucketOther
}

// ParseBucket maps a tab query value to a Bucket, defaulting to other.
func ParseBucket(s string) Bucket {
	switch Bucket(strings.ToLower(s)) {
	case BucketGay:
		return BucketGay
	case BucketLesbian:
		return BucketLesbian
	default:
		return BucketOther
	}
}
