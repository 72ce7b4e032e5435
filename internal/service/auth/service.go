// Package auth handles account registration and token issuance.
package auth

import (
	"go.uber.org/zap"

	"kind_contact_server/internal/dao/mysql/repository"
	"kind_contact_server/internal/dto/request"
	"kind_contact_server/internal/dto/respond"
	"kind_contact_server/internal/model"
	"kind_contact_server/pkg/errorx"
	"kind_contact_server/pkg/util/jwt"
	"kind_contact_server/pkg/util/random"
)

type authService struct {
	repos *repository.Repositories
}

// NewAuthService wires the service to its repositories.
func NewAuthService(repos *repository.Repositories) *authService {
	return &authService{repos: repos}
}

// Register creates an account. Email uniqueness is checked up front so the
// caller gets a clean conflict error instead of a database constraint one.
func (s *authService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	existing, err := s.repos.User.FindByEmail(req.Email)
	if err != nil && !errorx.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, errorx.New(errorx.CodeUserExist, "email already registered")
	}

	user := &model.User{
		Uuid:        "U" + random.GetNowAndLenRandomString(13),
		Name:        req.Name,
		Email:       req.Email,
		RawPassword: req.Password,
	}
	if err := s.repos.User.Create(user); err != nil {
		return nil, err
	}

	zap.L().Info("user registered", zap.String("uuid", user.Uuid))
	return &respond.RegisterRespond{Uuid: user.Uuid}, nil
}

// Login verifies credentials and issues an access/refresh token pair. Bad
// email and bad password return the same error so the endpoint does not
// leak which accounts exist.
func (s *authService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	user, err := s.repos.User.FindByEmail(req.Email)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeInvalidPassword, "invalid email or password")
		}
		return nil, err
	}
	if !user.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeInvalidPassword, "invalid email or password")
	}
	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *authService) Refresh(refreshToken string) (*respond.LoginRespond, error) {
	claims, err := jwt.ParseToken(refreshToken)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeUnauthorized, "invalid refresh token")
	}
	if claims.Subject != "refresh_token" {
		return nil, errorx.New(errorx.CodeUnauthorized, "token is not a refresh token")
	}

	user, err := s.repos.User.FindByUuid(claims.UserID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUnauthorized, "account no longer exists")
		}
		return nil, err
	}
	return s.issueTokens(user)
}

func (s *authService) issueTokens(user *model.User) (*respond.LoginRespond, error) {
	accessToken, err := jwt.GenerateAccessToken(user.Uuid)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "issue access token")
	}
	refreshToken, _, err := jwt.GenerateRefreshToken(user.Uuid)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "issue refresh token")
	}
	return &respond.LoginRespond{
		Uuid:         user.Uuid,
		Name:         user.Name,
		Email:        user.Email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
