package services

import (
	"context"
	"net/url"
	"sync"

	"github.com/google/uuid"

	"remindme/internal/client/api"
	"remindme/internal/client/models"
)

// fakeGateway routes every call through handler and records it, so tests can
// assert both behavior and the absence of network traffic.
type gatewayCall struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Authed bool
}

type fakeGateway struct {
	mu      sync.Mutex
	calls   []gatewayCall
	handler func(c gatewayCall, out any) error
}

func (g *fakeGateway) record(c gatewayCall, out any) error {
	g.mu.Lock()
	g.calls = append(g.calls, c)
	h := g.handler
	g.mu.Unlock()
	if h == nil {
		return nil
	}
	return h(c, out)
}

func (g *fakeGateway) Get(ctx context.Context, path string, query url.Values, out any, authed bool) error {
	return g.record(gatewayCall{Method: "GET", Path: path, Query: query, Authed: authed}, out)
}

func (g *fakeGateway) Post(ctx context.Context, path string, body, out any, authed bool) error {
	return g.record(gatewayCall{Method: "POST", Path: path, Body: body, Authed: authed}, out)
}

func (g *fakeGateway) Put(ctx context.Context, path string, body, out any, authed bool) error {
	return g.record(gatewayCall{Method: "PUT", Path: path, Body: body, Authed: authed}, out)
}

func (g *fakeGateway) Delete(ctx context.Context, path string, authed bool) error {
	return g.record(gatewayCall{Method: "DELETE", Path: path, Authed: authed}, nil)
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func (g *fakeGateway) lastCall() gatewayCall {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[len(g.calls)-1]
}

// fakeSession is an in-memory Session.
type fakeSession struct {
	mu           sync.Mutex
	user         *models.User
	token        string
	renamedTo    string
	establishErr error
}

func (s *fakeSession) Establish(ctx context.Context, token string, user models.User) error {
	if s.establishErr != nil {
		return s.establishErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = &user
	return nil
}

func (s *fakeSession) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	return nil
}

func (s *fakeSession) CurrentUser(ctx context.Context) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, api.ErrNoSession
	}
	return *s.user, nil
}

func (s *fakeSession) CurrentUserID(ctx context.Context) (uuid.UUID, error) {
	u, err := s.CurrentUser(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID, nil
}

func (s *fakeSession) SetUserName(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return api.ErrNoSession
	}
	s.user.Name = name
	s.renamedTo = name
	return nil
}

func loggedInSession(id uuid.UUID) *fakeSession {
	return &fakeSession{
		token: "tok",
		user:  &models.User{ID: id, Name: "Me", Email: "me@example.com"},
	}
}
