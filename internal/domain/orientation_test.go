package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeOrientation(t *testing.T) {
	tests := []struct {
		label string
		want  Orientation
	}{
		{"レズビアン", OrientationLesbian},
		{"ビアン", OrientationLesbian},
		{"Lesbian", OrientationLesbian},
		{"ゲイ", OrientationGay},
		{"GAY", OrientationGay},
		{"バイセクシュアル", OrientationBisexual},
		{"バイ", OrientationBisexual},
		{"パンセクシュアル", OrientationPansexual},
		{"トランスジェンダー", OrientationTransgender},
		{"FTM", OrientationTransgender},
		{"クエスチョニング", OrientationQuestioning},
		{"queer", OrientationQuestioning},
		{"アセクシュアル", OrientationAsexual},
		{"ノンセクシュアル", OrientationAsexual},
		{"", OrientationOther},
		{"  ", OrientationOther},
		{"ストレート", OrientationOther},
		{"secret", OrientationOther},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			require.Equal(t, tt.want, NormalizeOrientation(tt.label))
		})
	}
}

func TestNormalizeOrientation_PriorityOrder(t *testing.T) {
	// a label matching several families resolves to the first family
	// in priority order, never to more than one category
	require.Equal(t, OrientationLesbian, NormalizeOrientation("レズビアン寄りのバイ"))
	require.Equal(t, OrientationLesbian, NormalizeOrientation("lesbian/gay"))
	require.Equal(t, OrientationGay, NormalizeOrientation("ゲイ(バイ寄り)"))
}

func TestClassifyBucket(t *testing.T) {
	tests := []struct {
		label string
		want  Bucket
	}{
		{"ゲイ", BucketGay},
		{"gay", BucketGay},
		{"レズビアン", BucketLesbian},
		{"ビアン", BucketLesbian},
		{"バイセクシュアル", BucketOther},
		{"パンセクシュアル", BucketOther},
		{"クエスチョニング", BucketOther},
		{"アセクシュアル", BucketOther},
		{"", BucketOther},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			require.Equal(t, tt.want, ClassifyBucket(tt.label))
		})
	}
}

func TestClassifyBucket_GayMarkerWins(t *testing.T) {
	// tab classification checks gay markers first, unlike normalization
	require.Equal(t, BucketGay, ClassifyBucket("レズビアンとゲイ"))
}

func TestParseBucket(t *testing.T) {
	require.Equal(t, BucketGay, ParseBucket("gay"))
	require.Equal(t, BucketLesbian, ParseBucket("Lesbian"))
	require.Equal(t, BucketOther, ParseBucket("other"))
	require.Equal(t, BucketOther, ParseBucket(""))
	require.Equal(t, BucketOther, ParseBucket("nonsense"))
}
