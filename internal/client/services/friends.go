package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"

	"remindme/internal/client/api"
	"remindme/internal/client/models"
	"remindme/internal/logging"
)

// FriendService maintains the friend directory and runs the friend-search /
// request / accept workflow.
//
// Contract:
//   - Refresh fetches pending requests and accepted friendships concurrently;
//     a failure in one fetch never blocks the other's data from applying.
//   - Respond/Unfriend mutate the directory optimistically on success and
//     leave it untouched on failure; the next Refresh reconciles.
//   - SendRequest and SearchByEmail report "no such user" (api.ErrNotFound)
//     and transport failure (*api.NetworkError) as distinct outcomes.
type FriendService interface {
	Refresh(ctx context.Context) error
	Respond(ctx context.Context, requestID uuid.UUID, accept bool) error
	Unfriend(ctx context.Context, friendshipID uuid.UUID) error
	SendRequest(ctx context.Context, email string) error
	SearchByEmail(ctx context.Context, email string) (models.FriendCandidate, error)
	Candidate() *models.FriendCandidate
	Directory() DirectorySnapshot
}

type friendService struct {
	gw      Gateway
	session Session
	log     logging.Logger

	dir *Directory

	mu        sync.Mutex
	candidate *models.FriendCandidate
}

func NewFriendService(gw Gateway, session Session, log logging.Logger) FriendService {
	return &friendService{gw: gw, session: session, log: log, dir: NewDirectory()}
}

type pendingRequestsResponse struct {
	ReceivedRequests []models.Friendship `json:"receivedRequests"`
	SentRequests     []models.Friendship `json:"sentRequests"`
}

func (s *friendService) Directory() DirectorySnapshot {
	return s.dir.Snapshot()
}

func (s *friendService) Refresh(ctx context.Context) error {
	selfID, err := s.session.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	var (
		wg         sync.WaitGroup
		errReq     error
		errFriends error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		errReq = s.fetchRequests(ctx)
	}()
	go func() {
		defer wg.Done()
		errFriends = s.fetchFriends(ctx, selfID)
	}()
	wg.Wait()

	if errReq != nil {
		s.log.Warn(ctx, "pending requests fetch failed", "err", errReq)
	}
	if errFriends != nil {
		s.log.Warn(ctx, "friends fetch failed", "err", errFriends)
	}
	return errors.Join(errReq, errFriends)
}

func (s *friendService) fetchRequests(ctx context.Context) error {
	var resp pendingRequestsResponse
	if err := s.gw.Get(ctx, "/friendship/requests", nil, &resp, true); err != nil {
		return fmt.Errorf("fetch friend requests: %w", err)
	}

	received := make([]models.FriendRequest, 0, len(resp.ReceivedRequests))
	for _, f := range resp.ReceivedRequests {
		// user1 is the requester, so on the receiving end that is the
		// counterparty to show.
		received = append(received, models.FriendRequest{
			ID:           f.ID,
			Direction:    models.DirectionIncoming,
			Counterparty: f.User1,
		})
	}
	sent := make([]models.FriendRequest, 0, len(resp.SentRequests))
	for _, f := range resp.SentRequests {
		sent = append(sent, models.FriendRequest{
			ID:           f.ID,
			Direction:    models.DirectionOutgoing,
			Counterparty: f.User2,
		})
	}

	s.dir.Apply(RequestsFetched{Received: received, Sent: sent})
	return nil
}

func (s *friendService) fetchFriends(ctx context.Context, selfID uuid.UUID) error {
	var friendships []models.Friendship
	if err := s.gw.Get(ctx, "/friendship/friends", nil, &friendships, true); err != nil {
		return fmt.Errorf("fetch friends: %w", err)
	}

	entries := make([]DirectoryEntry, 0, len(friendships))
	for _, f := range friendships {
		entries = append(entries, DirectoryEntry{
			FriendshipID: f.ID,
			Friend:       f.Counterparty(selfID),
		})
	}

	s.dir.Apply(FriendsFetched{Friends: entries})
	return nil
}

func (s *friendService) Respond(ctx context.Context, requestID uuid.UUID, accept bool) error {
	body := struct {
		Accept bool `json:"accept"`
	}{Accept: accept}

	if err := s.gw.Post(ctx, "/friendship/respond/"+requestID.String(), body, nil, true); err != nil {
		return fmt.Errorf("respond to friend request: %w", err)
	}

	s.dir.Apply(RequestResponded{ID: requestID, Accepted: accept})
	return nil
}

func (s *friendService) Unfriend(ctx context.Context, friendshipID uuid.UUID) error {
	if err := s.gw.Delete(ctx, "/friendship/"+friendshipID.String(), true); err != nil {
		return fmt.Errorf("unfriend: %w", err)
	}

	s.dir.Apply(FriendRemoved{FriendshipID: friendshipID})
	return nil
}

func (s *friendService) SearchByEmail(ctx context.Context, email string) (models.FriendCandidate, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return models.FriendCandidate{}, api.Validationf("email must not be empty")
	}

	q := url.Values{}
	q.Set("email", email)

	var c models.FriendCandidate
	if err := s.gw.Get(ctx, "/friendship/search", q, &c, true); err != nil {
		s.mu.Lock()
		s.candidate = nil
		s.mu.Unlock()
		return models.FriendCandidate{}, fmt.Errorf("search user: %w", err)
	}

	s.mu.Lock()
	s.candidate = &c
	s.mu.Unlock()
	return c, nil
}

func (s *friendService) SendRequest(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return api.Validationf("email must not be empty")
	}

	body := struct {
		FriendEmail string `json:"friendEmail"`
	}{FriendEmail: email}

	if err := s.gw.Post(ctx, "/friendship/request", body, nil, true); err != nil {
		return fmt.Errorf("send friend request: %w", err)
	}

	// Mark the searched candidate as pending without a re-fetch.
	s.mu.Lock()
	if s.candidate != nil && strings.EqualFold(s.candidate.Email, email) {
		status := models.StatusPending
		s.candidate.Status = &status
	}
	s.mu.Unlock()
	return nil
}

// Candidate returns the latest search result, updated in place after a
// successful SendRequest. Nil when no search has completed.
func (s *friendService) Candidate() *models.FriendCandidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.candidate == nil {
		return nil
	}
	c := *s.candidate
	return &c
}
