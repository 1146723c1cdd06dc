// Package session owns the authenticated user's token and profile: the one
// place every component reads "who am I" from, established on login/signup
// and destroyed on logout.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"remindme/internal/client/api"
	"remindme/internal/client/models"
	sessionrepo "remindme/internal/client/repositories/session"
	"remindme/internal/dbx"
)

const (
	keyAccessToken = "access_token"
	keyUser        = "user"
)

// ErrTokenExpired is returned by Establish when the access token's exp claim
// is already in the past.
var ErrTokenExpired = errors.New("access token expired")

// Session is the persisted token plus user profile.
type Session struct {
	Token string
	User  models.User
}

// Store persists the session in the local database and caches it in memory.
// The token is read by every authenticated call and written only by
// login/signup/logout, which are serialized by user action.
type Store struct {
	db *sql.DB

	mu  sync.RWMutex
	cur *Session
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo() sessionrepo.Repository {
	return sessionrepo.NewSQLiteRepository(s.db)
}

// Load reads any persisted session into memory. A missing session is not an
// error; subsequent Token calls report api.ErrNoSession. A stored token whose
// exp claim has already passed is discarded the same way, so a restart never
// resurrects a session that can only 401.
func (s *Store) Load(ctx context.Context) error {
	r := s.repo()

	token, err := r.Get(ctx, keyAccessToken)
	if err != nil {
		return err
	}
	if token == nil {
		return nil
	}
	if err := checkExpiry(string(token), time.Now()); err != nil {
		if clearErr := r.Clear(ctx); clearErr != nil {
			return clearErr
		}
		return err
	}

	rawUser, err := r.Get(ctx, keyUser)
	if err != nil {
		return err
	}
	var user models.User
	if rawUser != nil {
		if err := json.Unmarshal(rawUser, &user); err != nil {
			return fmt.Errorf("decode stored user: %w", err)
		}
	}

	s.mu.Lock()
	s.cur = &Session{Token: string(token), User: user}
	s.mu.Unlock()
	return nil
}

// Establish persists a fresh session. Tokens that parse as JWTs with an exp
// claim already in the past are rejected with ErrTokenExpired; tokens the
// client cannot parse are treated as opaque and accepted.
func (s *Store) Establish(ctx context.Context, token string, user models.User) error {
	if err := checkExpiry(token, time.Now()); err != nil {
		return err
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		tr := sessionrepo.NewSQLiteRepository(tx)
		if err := tr.Set(ctx, keyAccessToken, []byte(token)); err != nil {
			return err
		}
		return tr.Set(ctx, keyUser, rawUser)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cur = &Session{Token: token, User: user}
	s.mu.Unlock()
	return nil
}

// Clear destroys the persisted and in-memory session.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo().Clear(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.cur = nil
	s.mu.Unlock()
	return nil
}

// Active reports whether a session is currently established.
func (s *Store) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur != nil
}

// Token returns the bearer token, or api.ErrNoSession.
func (s *Store) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return "", api.ErrNoSession
	}
	return s.cur.Token, nil
}

// CurrentUser returns the session user's profile, or api.ErrNoSession.
func (s *Store) CurrentUser(ctx context.Context) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return models.User{}, api.ErrNoSession
	}
	return s.cur.User, nil
}

// CurrentUserID returns the session user's id, or api.ErrNoSession.
func (s *Store) CurrentUserID(ctx context.Context) (uuid.UUID, error) {
	u, err := s.CurrentUser(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID, nil
}

// SetUserName updates the stored profile's name after a successful rename.
func (s *Store) SetUserName(ctx context.Context, name string) error {
	s.mu.Lock()
	if s.cur == nil {
		s.mu.Unlock()
		return api.ErrNoSession
	}
	s.cur.User.Name = name
	user := s.cur.User
	s.mu.Unlock()

	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.repo().Set(ctx, keyUser, rawUser)
}

func checkExpiry(token string, now time.Time) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil // opaque token, nothing to check
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if exp.Before(now) {
		return ErrTokenExpired
	}
	return nil
}
