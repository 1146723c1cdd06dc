package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"remindme/internal/client/api"
	"remindme/internal/client/models"
	"remindme/internal/client/services"
	"remindme/internal/logging"
)

// gatewayCall captures one request made through the fake gateway.
type gatewayCall struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// fakeGateway routes commands' API calls through a handler so CLI tests
// exercise the real services end to end without a server.
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
	return g.record(gatewayCall{Method: "GET", Path: path, Query: query}, out)
}

func (g *fakeGateway) Post(ctx context.Context, path string, body, out any, authed bool) error {
	return g.record(gatewayCall{Method: "POST", Path: path, Body: body}, out)
}

func (g *fakeGateway) Put(ctx context.Context, path string, body, out any, authed bool) error {
	return g.record(gatewayCall{Method: "PUT", Path: path, Body: body}, out)
}

func (g *fakeGateway) Delete(ctx context.Context, path string, authed bool) error {
	return g.record(gatewayCall{Method: "DELETE", Path: path}, nil)
}

func (g *fakeGateway) callsTo(method, path string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, c := range g.calls {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

// fakeSess is an in-memory services.Session.
type fakeSess struct {
	mu   sync.Mutex
	user *models.User
}

func (s *fakeSess) Establish(ctx context.Context, token string, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	return nil
}

func (s *fakeSess) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}

func (s *fakeSess) CurrentUser(ctx context.Context) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, api.ErrNoSession
	}
	return *s.user, nil
}

func (s *fakeSess) CurrentUserID(ctx context.Context) (uuid.UUID, error) {
	u, err := s.CurrentUser(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID, nil
}

func (s *fakeSess) SetUserName(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return api.ErrNoSession
	}
	s.user.Name = name
	return nil
}

// newTestApp wires an App to real services over the fake gateway. The session
// starts logged in unless user is nil.
func newTestApp(gw *fakeGateway, user *models.User) (*App, *bytes.Buffer) {
	sess := &fakeSess{user: user}
	log := logging.Nop{}
	out := &bytes.Buffer{}

	a := &App{
		session:   sess,
		auth:      services.NewAuthService(gw, sess, log),
		friends:   services.NewFriendService(gw, sess, log),
		reminders: services.NewReminderService(gw, sess, log, 5),
		picker:    services.NewPicker(services.NewCategoryService(gw)),
		profile:   services.NewProfileService(gw, sess, log),
		log:       log,
		in:        strings.NewReader(""),
		out:       out,
	}
	a.reader = bufio.NewReader(a.in)
	if user != nil {
		a.userName = user.Name
	}
	return a, out
}

func testUser() *models.User {
	return &models.User{ID: uuid.New(), Name: "Me", Email: "me@example.com"}
}

// stubTextInputs replaces getSimpleText with a queue of canned answers.
func stubTextInputs(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

// stubPasswords replaces getPassword with a queue of canned answers.
func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	orig := getPassword
	i := 0
	getPassword = func(_ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getPassword = orig })
}

// stubMultiline replaces getMultiline with a single canned answer.
func stubMultiline(t *testing.T, answer string) {
	t.Helper()
	orig := getMultiline
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return answer, nil
	}
	t.Cleanup(func() { getMultiline = orig })
}
