package models

import "github.com/google/uuid"

// Friend is a directory entry: an immutable snapshot of another user,
// replaced wholesale on every refresh.
type Friend struct {
	ID              uuid.UUID `json:"uuid"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
}

// Friendship is the raw relation record as the backend returns it, both for
// pending requests and accepted friendships. user1 is always the requester.
type Friendship struct {
	ID      uuid.UUID `json:"uuid"`
	User1ID uuid.UUID `json:"user1Id"`
	User2ID uuid.UUID `json:"user2Id"`
	User1   Friend    `json:"user1"`
	User2   Friend    `json:"user2"`
}

// Counterparty resolves the side of the friendship that is not self.
func (f Friendship) Counterparty(selfID uuid.UUID) Friend {
	if f.User1.ID == selfID {
		return f.User2
	}
	return f.User1
}

// RequestDirection tells which side of a pending request the session user is on.
type RequestDirection string

const (
	DirectionIncoming RequestDirection = "incoming"
	DirectionOutgoing RequestDirection = "outgoing"
)

// FriendRequest is a pending, directional proposal. Its ID is the id of the
// underlying friendship record, so an accepted request and the friendship it
// becomes share one identity.
type FriendRequest struct {
	ID           uuid.UUID
	Direction    RequestDirection
	Counterparty Friend
}

// RequestStatus is the relation state the backend reports for a searched user.
type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusAccepted RequestStatus = "ACCEPTED"
	StatusRejected RequestStatus = "REJECTED"
)

// FriendCandidate is the result of a friend search by email. A nil Status
// means the two users are not related yet and a request can be sent.
type FriendCandidate struct {
	ID              uuid.UUID      `json:"uuid"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	ProfileImageURL string         `json:"profileImageUrl,omitempty"`
	Status          *RequestStatus `json:"status,omitempty"`
}

// CanRequest reports whether the add-friend action is available.
func (c FriendCandidate) CanRequest() bool {
	return c.Status == nil
}
