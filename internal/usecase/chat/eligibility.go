package chat

import "github.com/prismapp/prism-backend/internal/domain"

// Eligibility is the outcome of a chat-open attempt between two users.
// Denials carry a user-facing title and reason; approvals carry
// neither.
type Eligibility struct {
	Allowed bool   `json:"allowed"`
	Title   string `json:"title,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

const (
	restrictedTitle  = "チャット制限"
	restrictedReason = "レズビアンの方はレズビアンの方同士でのみチャットを開始できます。"
)

// CheckEligibility decides whether two users may open a chat, from
// their raw orientation labels alone. The only restriction: if either
// side normalizes to lesbian, both must. Every other pairing is
// allowed. Pure and total; empty labels normalize to other and are
// never restricted.
func CheckEligibility(viewerOrientation, targetOrientation string) Eligibility {
	viewer := domain.NormalizeOrientation(viewerOrientation)
	target := domain.NormalizeOrientation(targetOrientation)

	if viewer == domain.OrientationLesbian || target == domain.OrientationLesbian {
		if viewer != target {
			return Eligibility{
				Allowed: false,
				Title:   restrictedTitle,
				Reason:  restrictedReason,
			}
		}
	}

	return Eligibility{Allowed: true}
}
