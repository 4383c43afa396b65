package chat

import (
	"context"
	"testing"

	"github.com/prismapp/prism-backend/internal/domain"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepo struct {
	byUser map[string]*domain.Profile
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *domain.Profile) error { return nil }
func (f *fakeProfileRepo) Update(ctx context.Context, p *domain.Profile) error { return nil }
func (f *fakeProfileRepo) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeProfileRepo) TouchLastActive(ctx context.Context, userID string) error { return nil }

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	for _, p := range f.byUser {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if p, ok := f.byUser[userID]; ok {
		return p, nil
	}
	return nil, domain.ErrProfileNotFound
}

func (f *fakeProfileRepo) ListVisible(ctx context.Context, limit, offset int) ([]*domain.Profile, error) {
	return nil, nil
}

type fakeConversationRepo struct {
	created []*domain.Conversation
}

func (f *fakeConversationRepo) Create(ctx context.Context, conv *domain.Conversation) error {
	f.created = append(f.created, conv)
	return nil
}

func (f *fakeConversationRepo) GetByID(ctx context.Context, id string) (*domain.Conversation, error) {
	return nil, domain.ErrConversationNotFound
}

func (f *fakeConversationRepo) GetByUsers(ctx context.Context, user1ID, user2ID string) (*domain.Conversation, error) {
	for _, c := range f.created {
		if c.HasUser(user1ID) && c.HasUser(user2ID) {
			return c, nil
		}
	}
	return nil, domain.ErrConversationNotFound
}

func (f *fakeConversationRepo) GetUserConversations(ctx context.Context, userID string, limit, offset int) ([]*domain.Conversation, error) {
	var out []*domain.Conversation
	for _, c := range f.created {
		if c.HasUser(userID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeConversationRepo) UpdateStatus(ctx context.Context, id string, isActive bool) error {
	return nil
}

func (f *fakeConversationRepo) Delete(ctx context.Context, id string) error { return nil }

func strp(s string) *string { return &s }

func profileWithOrientation(id, userID, orientation string) *domain.Profile {
	p := &domain.Profile{ID: id, UserID: userID, DisplayName: "user-" + userID}
	if orientation != "" {
		p.Orientation = strp(orientation)
	}
	return p
}

func newChatUseCaseWithProfiles(profiles ...*domain.Profile) (*ChatUseCase, *fakeConversationRepo) {
	byUser := make(map[string]*domain.Profile, len(profiles))
	for _, p := range profiles {
		byUser[p.UserID] = p
	}
	convRepo := &fakeConversationRepo{}
	return NewChatUseCase(convRepo, &fakeProfileRepo{byUser: byUser}), convRepo
}

func TestOpenChat_AllowedCreatesConversation(t *testing.T) {
	uc, convRepo := newChatUseCaseWithProfiles(
		profileWithOrientation("p1", "u1", "ゲイ"),
		profileWithOrientation("p2", "u2", "ゲイ"),
	)

	resp, err := uc.OpenChat(context.Background(), "u1", &OpenChatRequest{TargetUserID: "u2"})
	require.NoError(t, err)
	require.True(t, resp.Eligibility.Allowed)
	require.NotNil(t, resp.Conversation)
	require.Len(t, convRepo.created, 1)
	// pair is stored ordered in the repository layer; here both users
	// must be on the conversation
	require.True(t, resp.Conversation.HasUser("u1"))
	require.True(t, resp.Conversation.HasUser("u2"))
}

func TestOpenChat_DeniedDoesNotCreateConversation(t *testing.T) {
	uc, convRepo := newChatUseCaseWithProfiles(
		profileWithOrientation("p1", "u1", "レズビアン"),
		profileWithOrientation("p2", "u2", "ゲイ"),
	)

	resp, err := uc.OpenChat(context.Background(), "u1", &OpenChatRequest{TargetUserID: "u2"})
	require.NoError(t, err)
	require.False(t, resp.Eligibility.Allowed)
	require.NotEmpty(t, resp.Eligibility.Reason)
	require.Nil(t, resp.Conversation)
	require.Empty(t, convRepo.created)
}

func TestOpenChat_ReturnsExistingConversation(t *testing.T) {
	uc, convRepo := newChatUseCaseWithProfiles(
		profileWithOrientation("p1", "u1", "レズビアン"),
		profileWithOrientation("p2", "u2", "レズビアン"),
	)

	first, err := uc.OpenChat(context.Background(), "u1", &OpenChatRequest{TargetUserID: "u2"})
	require.NoError(t, err)

	second, err := uc.OpenChat(context.Background(), "u2", &OpenChatRequest{TargetUserID: "u1"})
	require.NoError(t, err)

	require.Len(t, convRepo.created, 1)
	require.Equal(t, first.Conversation.ID, second.Conversation.ID)
}

func TestOpenChat_SelfRejected(t *testing.T) {
	uc, _ := newChatUseCaseWithProfiles(profileWithOrientation("p1", "u1", ""))

	_, err := uc.OpenChat(context.Background(), "u1", &OpenChatRequest{TargetUserID: "u1"})
	require.ErrorIs(t, err, domain.ErrCannotChatSelf)
}

func TestOpenChat_MissingTargetProfile(t *testing.T) {
	uc, _ := newChatUseCaseWithProfiles(profileWithOrientation("p1", "u1", ""))

	_, err := uc.OpenChat(context.Background(), "u1", &OpenChatRequest{TargetUserID: "u2"})
	require.ErrorIs(t, err, domain.ErrProfileNotFound)
}
