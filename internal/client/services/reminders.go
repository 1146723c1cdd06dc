package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"remindme/internal/client/api"
	"remindme/internal/client/models"
	"remindme/internal/logging"
)

// ReminderService runs the paginated reminder search and creates reminders.
//
// Contract:
//   - Search issues one request for the view's current filter; on failure the
//     prior page is retained and the view returns to Ready.
//   - Create validates the draft before any call and strips the author from
//     the related-user list.
type ReminderService interface {
	Search(ctx context.Context) error
	View() *SearchView
	Create(ctx context.Context, draft models.AnnotationDraft) (models.Annotation, error)
}

type reminderService struct {
	gw      Gateway
	session Session
	log     logging.Logger
	view    *SearchView
}

func NewReminderService(gw Gateway, session Session, log logging.Logger, pageSize int) ReminderService {
	return &reminderService{gw: gw, session: session, log: log, view: NewSearchView(pageSize)}
}

func (s *reminderService) View() *SearchView {
	return s.view
}

func (s *reminderService) Search(ctx context.Context) error {
	filter, seq := s.view.begin()

	q := url.Values{}
	q.Set("query", filter.Query)
	categoryID := ""
	if filter.CategoryID != nil {
		categoryID = filter.CategoryID.String()
	}
	q.Set("categoryId", categoryID)
	q.Set("page", strconv.Itoa(filter.Page))
	q.Set("limit", strconv.Itoa(filter.PageSize))

	var page models.SearchPage
	if err := s.gw.Get(ctx, "/annotations/search", q, &page, true); err != nil {
		s.view.fail(seq)
		return fmt.Errorf("search reminders: %w", err)
	}

	if !s.view.complete(seq, page) {
		s.log.Debug(ctx, "discarded stale search response", "seq", seq)
	}
	return nil
}

type createAnnotationRequest struct {
	Content        string      `json:"content"`
	RemindAt       string      `json:"remindAt"`
	CategoryID     *uuid.UUID  `json:"categoryId,omitempty"`
	RelatedUserIDs []uuid.UUID `json:"relatedUserIds"`
}

func (s *reminderService) Create(ctx context.Context, draft models.AnnotationDraft) (models.Annotation, error) {
	if strings.TrimSpace(draft.Content) == "" {
		return models.Annotation{}, api.Validationf("reminder content must not be empty")
	}
	if draft.RemindAt.IsZero() {
		return models.Annotation{}, api.Validationf("reminder time must be set")
	}

	selfID, err := s.session.CurrentUserID(ctx)
	if err != nil {
		return models.Annotation{}, err
	}

	related := make([]uuid.UUID, 0, len(draft.RelatedUserIDs))
	for _, id := range draft.RelatedUserIDs {
		if id != selfID {
			related = append(related, id)
		}
	}

	req := createAnnotationRequest{
		Content:        draft.Content,
		RemindAt:       draft.RemindAt.UTC().Format(time.RFC3339),
		CategoryID:     draft.CategoryID,
		RelatedUserIDs: related,
	}

	var created models.Annotation
	if err := s.gw.Post(ctx, "/annotations", req, &created, true); err != nil {
		return models.Annotation{}, fmt.Errorf("create reminder: %w", err)
	}
	return created, nil
}
