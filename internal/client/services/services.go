// Package services contains the application services of the remindme client:
// authentication, the friend directory, reminder search and creation, the
// category picker, and profile settings. Services talk to the backend through
// the Gateway interface and to local identity through the Session interface,
// so tests can substitute both.
package services

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"remindme/internal/client/models"
)

// Gateway is the subset of the API client the services need.
// *api.Gateway satisfies it.
type Gateway interface {
	Get(ctx context.Context, path string, query url.Values, out any, authed bool) error
	Post(ctx context.Context, path string, body, out any, authed bool) error
	Put(ctx context.Context, path string, body, out any, authed bool) error
	Delete(ctx context.Context, path string, authed bool) error
}

// Session is the subset of the session store the services need.
// *session.Store satisfies it.
type Session interface {
	Establish(ctx context.Context, token string, user models.User) error
	Clear(ctx context.Context) error
	CurrentUser(ctx context.Context) (models.User, error)
	CurrentUserID(ctx context.Context) (uuid.UUID, error)
	SetUserName(ctx context.Context, name string) error
}
