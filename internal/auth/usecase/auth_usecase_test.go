package usecase

import (
	"errors"
	"testing"
	"time"

	authdomain "fasttodo-backend/internal/auth/domain"
	authdto "fasttodo-backend/internal/auth/dto"
	"fasttodo-backend/internal/auth/repository"
	"fasttodo-backend/pkg/token"

	"github.com/google/uuid"
)

// fakeUserRepo is an in-memory UserRepository
type fakeUserRepo struct {
	users []*authdomain.User
}

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*authdomain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) delete(username string) {
	for i, u := range r.users {
		if u.Username == username {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return
		}
	}
}

func newTestUsecase() (AuthUsecase, *fakeUserRepo) {
	repo := &fakeUserRepo{}
	tokens := token.NewManager("test-secret-key", 5*time.Minute, 10*time.Minute)
	return NewAuthUsecase(repo, tokens), repo
}

func registerAlice(t *testing.T, uc AuthUsecase) *authdomain.User {
	t.Helper()
	user, err := uc.Register(&authdto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password1",
	})
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	return user
}

func TestRegister(t *testing.T) {
	uc, _ := newTestUsecase()

	user := registerAlice(t, uc)

	if user.ID == "" {
		t.Error("expected user id to be assigned")
	}
	if user.Username != "alice" {
		t.Errorf("expected username 'alice', got '%s'", user.Username)
	}
	if user.HashedPassword == "password1" {
		t.Error("password must not be stored in plaintext")
	}
	if !repository.CheckPasswordHash("password1", user.HashedPassword) {
		t.Error("stored hash should verify against the original password")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	uc, _ := newTestUsecase()
	registerAlice(t, uc)

	_, err := uc.Register(&authdto.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "password2",
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newTestUsecase()
	registerAlice(t, uc)

	_, err := uc.Register(&authdto.RegisterRequest{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "password2",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	uc, _ := newTestUsecase()
	registerAlice(t, uc)

	tokens, err := uc.Login(&authdto.LoginRequest{Username: "alice", Password: "password1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("expected both access and refresh tokens")
	}
	if tokens.TokenType != "bearer" {
		t.Errorf("expected token_type 'bearer', got '%s'", tokens.TokenType)
	}
	if tokens.Username != "alice" {
		t.Errorf("expected username 'alice', got '%s'", tokens.Username)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	uc, _ := newTestUsecase()

	_, err := uc.Login(&authdto.LoginRequest{Username: "nobody", Password: "password1"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _ := newTestUsecase()
	registerAlice(t, uc)

	_, err := uc.Login(&authdto.LoginRequest{Username: "alice", Password: "wrong"})
	if !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestResolveUser(t *testing.T) {
	uc, _ := newTestUsecase()
	registerAlice(t, uc)

	tokens, err := uc.Login(&authdto.LoginRequest{Username: "alice", Password: "password1"})
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}

	user, err := uc.ResolveUser(tokens.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("expected username 'alice', got '%s'", user.Username)
	}
}

func TestResolveUser_InvalidToken(t *testing.T) {
	uc, _ := newTestUsecase()

	_, err := uc.ResolveUser("garbage")
	if !errors.Is(err, token.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestResolveUser_ExpiredToken(t *testing.T) {
	repo := &fakeUserRepo{}
	tokens := token.NewManager("test-secret-key", -time.Minute, 10*time.Minute)
	uc := NewAuthUsecase(repo, tokens)
	registerAlice(t, uc)

	pair, err := uc.Login(&authdto.LoginRequest{Username: "alice", Password: "password1"})
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}

	if _, err := uc.ResolveUser(pair.AccessToken); !errors.Is(err, token.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestResolveUser_DeletedUser(t *testing.T) {
	uc, repo := newTestUsecase()
	registerAlice(t, uc)

	tokens, err := uc.Login(&authdto.LoginRequest{Username: "alice", Password: "password1"})
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}

	// A still-valid token for a user that no longer exists must fail
	repo.delete("alice")

	if _, err := uc.ResolveUser(tokens.AccessToken); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRefresh(t *testing.T) {
	uc, _ := newTestUsecase()
	registerAlice(t, uc)

	pair, err := uc.Login(&authdto.LoginRequest{Username: "alice", Password: "password1"})
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}

	refreshed, err := uc.Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if refreshed.AccessToken == "" {
		t.Error("expected a new access token")
	}
	if refreshed.RefreshToken != pair.RefreshToken {
		t.Error("refresh token should be returned unchanged")
	}

	// The new access token must authenticate
	user, err := uc.ResolveUser(refreshed.AccessToken)
	if err != nil {
		t.Fatalf("new access token failed to resolve: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("expected username 'alice', got '%s'", user.Username)
	}
}

func TestRefresh_Garbage(t *testing.T) {
	uc, _ := newTestUsecase()

	_, err := uc.Refresh("not-a-token")
	if !errors.Is(err, token.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestRefresh_Expired(t *testing.T) {
	repo := &fakeUserRepo{}
	expired := token.NewManager("test-secret-key", 5*time.Minute, -time.Minute)
	uc := NewAuthUsecase(repo, expired)
	registerAlice(t, uc)

	pair, err := uc.Login(&authdto.LoginRequest{Username: "alice", Password: "password1"})
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}

	if _, err := uc.Refresh(pair.RefreshToken); !errors.Is(err, token.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired refresh token, got %v", err)
	}
}

func TestRefresh_DeletedUser(t *testing.T) {
	uc, repo := newTestUsecase()
	registerAlice(t, uc)

	pair, err := uc.Login(&authdto.LoginRequest{Username: "alice", Password: "password1"})
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}

	repo.delete("alice")

	if _, err := uc.Refresh(pair.RefreshToken); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
