package usecase

import (
	authdomain "fasttodo-backend/internal/auth/domain"
	authdto "fasttodo-backend/internal/auth/dto"
	"fasttodo-backend/internal/auth/repository"
	"fasttodo-backend/pkg/token"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Manager) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdomain.User, error) {
	existing, err := u.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	existing, err = u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !repository.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, ErrInvalidPassword
	}

	accessToken, err := u.tokens.IssueAccessToken(user.Username)
	if err != nil {
		return nil, err
	}

	refreshToken, err := u.tokens.IssueRefreshToken(user.Username)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		Username:     user.Username,
	}, nil
}

func (u *authUsecase) Refresh(refreshToken string) (*authdto.TokenResponse, error) {
	username, err := u.tokens.Verify(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	accessToken, err := u.tokens.IssueAccessToken(user.Username)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		Username:     user.Username,
	}, nil
}

func (u *authUsecase) ResolveUser(accessToken string) (*authdomain.User, error) {
	username, err := u.tokens.Verify(accessToken)
	if err != nil {
		return nil, err
	}

	// Re-fetch so a token for a deleted user fails even before expiry
	user, err := u.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}
