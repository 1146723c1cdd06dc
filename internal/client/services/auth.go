package services

import (
	"context"
	"fmt"

	"remindme/internal/client/api"
	"remindme/internal/client/models"
	"remindme/internal/logging"
)

// AuthService handles login, signup and logout against /auth.
//
// Contract:
//   - Login/Signup establish the session on success.
//   - Signup rejects a mismatched password confirmation before any call.
//   - Logout destroys the session.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, email, password, confirm string) error
	Logout(ctx context.Context) error
}

type authService struct {
	gw      Gateway
	session Session
	log     logging.Logger
}

func NewAuthService(gw Gateway, session Session, log logging.Logger) AuthService {
	return &authService{gw: gw, session: session, log: log}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

func (s *authService) Login(ctx context.Context, email, password string) error {
	var resp authResponse
	if err := s.gw.Post(ctx, "/auth/login", credentials{Email: email, Password: password}, &resp, false); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := s.session.Establish(ctx, resp.AccessToken, resp.User); err != nil {
		return fmt.Errorf("establish session: %w", err)
	}
	s.log.Info(ctx, "logged in", "user", resp.User.Email)
	return nil
}

func (s *authService) Signup(ctx context.Context, email, password, confirm string) error {
	if password != confirm {
		return api.Validationf("passwords do not match")
	}

	var resp authResponse
	if err := s.gw.Post(ctx, "/auth/signup", credentials{Email: email, Password: password}, &resp, false); err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	if err := s.session.Establish(ctx, resp.AccessToken, resp.User); err != nil {
		return fmt.Errorf("establish session: %w", err)
	}
	s.log.Info(ctx, "account created", "user", resp.User.Email)
	return nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}
