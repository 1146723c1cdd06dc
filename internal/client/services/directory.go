package services

import (
	"sync"

	"github.com/google/uuid"

	"remindme/internal/client/models"
)

// DirectoryEntry is an accepted friend, keyed by the friendship record that
// links the two users (the id used to unfriend).
type DirectoryEntry struct {
	FriendshipID uuid.UUID
	Friend       models.Friend
}

// DirectorySnapshot is a copy of the directory's three lists, safe to read
// after the directory moves on.
type DirectorySnapshot struct {
	Received []models.FriendRequest
	Sent     []models.FriendRequest
	Friends  []DirectoryEntry
}

// DirectoryEvent is a state transition of the friend directory. Modeling the
// mutations as explicit events keeps replay deterministic and testable
// instead of ad hoc slice surgery at call sites.
type DirectoryEvent interface {
	apply(d *Directory)
}

// RequestsFetched replaces both pending lists with a fresh server snapshot.
type RequestsFetched struct {
	Received []models.FriendRequest
	Sent     []models.FriendRequest
}

// FriendsFetched replaces the accepted-friends list with a fresh server snapshot.
type FriendsFetched struct {
	Friends []DirectoryEntry
}

// RequestResponded records a local accept/reject decision that the server has
// confirmed. The received entry is removed either way; on accept its
// counterparty joins the friends list without a re-fetch.
type RequestResponded struct {
	ID       uuid.UUID
	Accepted bool
}

// FriendRemoved records a confirmed unfriend.
type FriendRemoved struct {
	FriendshipID uuid.UUID
}

// Directory holds the three client-side friendship lists. The lists are
// disjoint by record id at any instant; whichever fetch applied last wins a
// conflict, so a stale pending snapshot never resurrects an accepted friend
// (and vice versa).
type Directory struct {
	mu       sync.Mutex
	received []models.FriendRequest
	sent     []models.FriendRequest
	friends  []DirectoryEntry
}

func NewDirectory() *Directory {
	return &Directory{}
}

// Apply runs one event against the directory.
func (d *Directory) Apply(ev DirectoryEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	ev.apply(d)
}

// Snapshot returns copies of the three lists.
func (d *Directory) Snapshot() DirectorySnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DirectorySnapshot{
		Received: append([]models.FriendRequest(nil), d.received...),
		Sent:     append([]models.FriendRequest(nil), d.sent...),
		Friends:  append([]DirectoryEntry(nil), d.friends...),
	}
}

func (ev RequestsFetched) apply(d *Directory) {
	d.received = append([]models.FriendRequest(nil), ev.Received...)
	d.sent = append([]models.FriendRequest(nil), ev.Sent...)

	// This fetch is now the freshest view: anything it still considers
	// pending cannot simultaneously sit in the friends list.
	pending := make(map[uuid.UUID]struct{}, len(d.received)+len(d.sent))
	for _, r := range d.received {
		pending[r.ID] = struct{}{}
	}
	for _, r := range d.sent {
		pending[r.ID] = struct{}{}
	}
	kept := d.friends[:0]
	for _, f := range d.friends {
		if _, ok := pending[f.FriendshipID]; !ok {
			kept = append(kept, f)
		}
	}
	d.friends = kept
}

func (ev FriendsFetched) apply(d *Directory) {
	d.friends = append([]DirectoryEntry(nil), ev.Friends...)

	accepted := make(map[uuid.UUID]struct{}, len(d.friends))
	for _, f := range d.friends {
		accepted[f.FriendshipID] = struct{}{}
	}
	d.received = dropRequests(d.received, accepted)
	d.sent = dropRequests(d.sent, accepted)
}

func dropRequests(reqs []models.FriendRequest, ids map[uuid.UUID]struct{}) []models.FriendRequest {
	kept := reqs[:0]
	for _, r := range reqs {
		if _, ok := ids[r.ID]; !ok {
			kept = append(kept, r)
		}
	}
	return kept
}

func (ev RequestResponded) apply(d *Directory) {
	var responded *models.FriendRequest
	kept := d.received[:0]
	for i := range d.received {
		if d.received[i].ID == ev.ID {
			r := d.received[i]
			responded = &r
			continue
		}
		kept = append(kept, d.received[i])
	}
	d.received = kept

	if !ev.Accepted || responded == nil {
		return
	}
	for _, f := range d.friends {
		if f.FriendshipID == ev.ID {
			return
		}
	}
	d.friends = append(d.friends, DirectoryEntry{
		FriendshipID: responded.ID,
		Friend:       responded.Counterparty,
	})
}

func (ev FriendRemoved) apply(d *Directory) {
	kept := d.friends[:0]
	for _, f := range d.friends {
		if f.FriendshipID != ev.FriendshipID {
			kept = append(kept, f)
		}
	}
	d.friends = kept
}
