package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"remindme/internal/client/models"
)

const remindAtLayout = "2006-01-02 15:04"

// createReminder walks the user through a new reminder: body, due time,
// optional category and optional related friends.
func (a *App) createReminder(ctx context.Context) error {
	content, err := getMultiline(a.reader, "Reminder text", a.out)
	if err != nil {
		return err
	}

	when, err := getSimpleText(a.reader, "Remind at (YYYY-MM-DD HH:MM)", a.out)
	if err != nil {
		return err
	}
	remindAt, err := time.ParseInLocation(remindAtLayout, when, time.Local)
	if err != nil {
		return fmt.Errorf("invalid time %q, expected YYYY-MM-DD HH:MM", when)
	}

	draft := models.AnnotationDraft{
		Content:  content,
		RemindAt: remindAt,
	}

	if err := a.loadPicker(ctx); err != nil {
		return err
	}
	if len(a.picker.Categories()) > 0 {
		a.printCategories()
		answer, err := getSimpleText(a.reader, "Category number (empty for none)", a.out)
		if err != nil {
			return err
		}
		if answer != "" {
			c, err := a.pickCategory(answer)
			if err != nil {
				return err
			}
			id := c.ID
			draft.CategoryID = &id
		}
	}

	related, err := a.pickRelatedFriends(ctx)
	if err != nil {
		return err
	}
	draft.RelatedUserIDs = related

	created, err := a.reminders.Create(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Reminder created for %s.\n", created.RemindAt.Local().Format(remindAtLayout))
	return nil
}

// pickRelatedFriends lets the user attach friends to the reminder by picking
// comma-separated list numbers. An empty answer attaches nobody.
func (a *App) pickRelatedFriends(ctx context.Context) ([]uuid.UUID, error) {
	d := a.friends.Directory()
	if len(d.Friends) == 0 {
		// Nothing fetched yet this run; a miss here is not worth failing
		// reminder creation over.
		if err := a.friends.Refresh(ctx); err != nil {
			return nil, nil
		}
		d = a.friends.Directory()
	}
	if len(d.Friends) == 0 {
		return nil, nil
	}

	fmt.Fprintln(a.out, "Friends:")
	for i, f := range d.Friends {
		fmt.Fprintf(a.out, "  %d. %s <%s>\n", i+1, f.Friend.Name, f.Friend.Email)
	}
	answer, err := getSimpleText(a.reader, "Share with (comma-separated numbers, empty for none)", a.out)
	if err != nil {
		return nil, err
	}
	if answer == "" {
		return nil, nil
	}

	var ids []uuid.UUID
	for _, part := range strings.Split(answer, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > len(d.Friends) {
			return nil, fmt.Errorf("no friend %q", strings.TrimSpace(part))
		}
		ids = append(ids, d.Friends[n-1].Friend.ID)
	}
	return ids, nil
}
