package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a user-defined label attached to reminders for filtering.
type Category struct {
	ID   uuid.UUID `json:"uuid"`
	Name string    `json:"name"`
}

// RelatedUser wraps a participant of an annotation. The backend nests the
// user object one level deep.
type RelatedUser struct {
	User Friend `json:"user"`
}

// Annotation is a user-authored reminder with a due timestamp, an optional
// category and optional related participants.
type Annotation struct {
	ID           uuid.UUID     `json:"uuid"`
	Content      string        `json:"content"`
	CreatedAt    time.Time     `json:"createdAt"`
	RemindAt     time.Time     `json:"remindAt"`
	Category     *Category     `json:"category,omitempty"`
	Author       Friend        `json:"author"`
	RelatedUsers []RelatedUser `json:"relatedUsers,omitempty"`
}

// AnnotationDraft is the client-side input for creating an annotation.
// RelatedUserIDs may include the author; the service strips it before sending.
type AnnotationDraft struct {
	Content        string
	RemindAt       time.Time
	CategoryID     *uuid.UUID
	RelatedUserIDs []uuid.UUID
}

// SearchFilter is the transient query state of the reminder search view.
// Page is 1-based.
type SearchFilter struct {
	Query      string
	CategoryID *uuid.UUID
	Page       int
	PageSize   int
}

// SearchPage is the response of /annotations/search: one full page of results
// plus the total match count, replacing any previously held page.
type SearchPage struct {
	Annotations []Annotation `json:"annotations"`
	TotalCount  int          `json:"totalCount"`
}
