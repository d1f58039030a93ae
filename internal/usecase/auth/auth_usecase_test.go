package auth

import (
	"context"
	"testing"

	"github.com/gdugdh24/godate-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	seq   int
	users map[int]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range f.users {
		if u.Email == user.Email || u.Nickname == user.Nickname {
			return domain.ErrUserAlreadyExists
		}
	}
	f.seq++
	user.ID = f.seq
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByNickname(_ context.Context, nickname string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Nickname == nickname {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByIDs(_ context.Context, ids []int) ([]*domain.User, error) {
	var users []*domain.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (f *fakeUserRepo) UpdateAvatar(_ context.Context, userID int, avatarURL string) error {
	u, ok := f.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.AvatarURL = &avatarURL
	return nil
}

func (f *fakeUserRepo) AddRating(_ context.Context, userID, delta int) (int, error) {
	u, ok := f.users[userID]
	if !ok {
		return 0, domain.ErrUserNotFound
	}
	u.Rating += delta
	return u.Rating, nil
}

func (f *fakeUserRepo) LinkSoulmates(_ context.Context, userID, soulmateID int) error {
	a, okA := f.users[userID]
	b, okB := f.users[soulmateID]
	if !okA || !okB {
		return domain.ErrUserNotFound
	}
	if a.SoulmateID != nil || b.SoulmateID != nil {
		return domain.ErrSoulmateTaken
	}
	a.SoulmateID = &b.ID
	b.SoulmateID = &a.ID
	return nil
}

func (f *fakeUserRepo) UnlinkSoulmates(_ context.Context, userID, soulmateID int) error {
	if a, ok := f.users[userID]; ok {
		a.SoulmateID = nil
	}
	if b, ok := f.users[soulmateID]; ok {
		b.SoulmateID = nil
	}
	return nil
}

func (f *fakeUserRepo) ListByRating(_ context.Context) ([]*domain.User, error) {
	var users []*domain.User
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

const testSecret = "test-secret-used-only-in-unit-tests!!"

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUseCase(repo, testSecret, 1)

	user, err := uc.Register(context.Background(), &RegisterRequest{
		Email:    "anna@example.com",
		Nickname: "anna",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	token, err := uc.Login(context.Background(), &LoginRequest{
		Email:    "anna@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)

	resolved, err := uc.ResolveUser(context.Background(), token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestRegisterDuplicate(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUseCase(repo, testSecret, 1)

	_, err := uc.Register(context.Background(), &RegisterRequest{
		Email:    "anna@example.com",
		Nickname: "anna",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), &RegisterRequest{
		Email:    "anna@example.com",
		Nickname: "other",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	_, err = uc.Register(context.Background(), &RegisterRequest{
		Email:    "other@example.com",
		Nickname: "anna",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUseCase(repo, testSecret, 1)

	_, err := uc.Register(context.Background(), &RegisterRequest{
		Email:    "anna@example.com",
		Nickname: "anna",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), &LoginRequest{
		Email:    "anna@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	uc := NewUseCase(newFakeUserRepo(), testSecret, 1)

	_, err := uc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerifyTokenRejectsForeignSecret(t *testing.T) {
	repo := newFakeUserRepo()
	issuer := NewUseCase(repo, testSecret, 1)
	verifier := NewUseCase(repo, "another-secret-of-sufficient-length!!", 1)

	_, err := issuer.Register(context.Background(), &RegisterRequest{
		Email:    "anna@example.com",
		Nickname: "anna",
		Password: "secret123",
	})
	require.NoError(t, err)

	token, err := issuer.Login(context.Background(), &LoginRequest{
		Email:    "anna@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token.AccessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestResolveUserMissingUser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUseCase(repo, testSecret, 1)

	user, err := uc.Register(context.Background(), &RegisterRequest{
		Email:    "anna@example.com",
		Nickname: "anna",
		Password: "secret123",
	})
	require.NoError(t, err)

	token, err := uc.Login(context.Background(), &LoginRequest{
		Email:    "anna@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	delete(repo.users, user.ID)

	_, err = uc.ResolveUser(context.Background(), token.AccessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
