package auth

import (
	"context"
	"testing"

	"github.com/prismapp/prism-backend/internal/domain"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]*domain.User{},
		byEmail: map[string]*domain.User{},
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if _, taken := f.byEmail[user.Email]; taken {
		return domain.ErrEmailTaken
	}
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

const testSecret = "0123456789abcdef0123456789abcdef"

func TestRegisterLoginRoundtrip(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testSecret, 60)

	registered, err := uc.Register(context.Background(), &RegisterRequest{
		Email:       "Akari@Example.com",
		Password:    "correct horse",
		DisplayName: "akari",
	})
	require.NoError(t, err)
	require.True(t, registered.IsNewUser)
	require.NotEmpty(t, registered.Token)
	// email is stored lowercased
	require.Equal(t, "akari@example.com", registered.User.Email)

	loggedIn, err := uc.Login(context.Background(), &LoginRequest{
		Email:    "akari@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.Equal(t, registered.User.ID, loggedIn.User.ID)

	userID, err := uc.ValidateToken(loggedIn.Token)
	require.NoError(t, err)
	require.Equal(t, registered.User.ID, userID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testSecret, 60)

	_, err := uc.Register(context.Background(), &RegisterRequest{
		Email:       "a@example.com",
		Password:    "correct horse",
		DisplayName: "a",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), &LoginRequest{
		Email:    "a@example.com",
		Password: "wrong horse",
	})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testSecret, 60)

	_, err := uc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestValidateToken_Garbage(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testSecret, 60)

	_, err := uc.ValidateToken("not-a-token")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	repo := newFakeUserRepo()
	issuer := NewAuthUseCase(repo, testSecret, 60)
	verifier := NewAuthUseCase(repo, "another-secret-another-secret-00", 60)

	registered, err := issuer.Register(context.Background(), &RegisterRequest{
		Email:       "a@example.com",
		Password:    "correct horse",
		DisplayName: "a",
	})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(registered.Token)
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
