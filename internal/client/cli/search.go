package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// search runs the reminder search. With arguments it replaces the text query
// first (which also resets to the first page); without arguments it re-runs
// the current filter.
func (a *App) search(ctx context.Context, args []string) error {
	if len(args) > 0 {
		a.reminders.View().SetQuery(strings.Join(args, " "))
	}
	if err := a.reminders.Search(ctx); err != nil {
		return err
	}
	a.printResults()
	return nil
}

func (a *App) nextPage(ctx context.Context) error {
	if !a.reminders.View().Next() {
		fmt.Fprintln(a.out, "Already on the last page.")
		return nil
	}
	if err := a.reminders.Search(ctx); err != nil {
		return err
	}
	a.printResults()
	return nil
}

func (a *App) prevPage(ctx context.Context) error {
	if !a.reminders.View().Prev() {
		fmt.Fprintln(a.out, "Already on the first page.")
		return nil
	}
	if err := a.reminders.Search(ctx); err != nil {
		return err
	}
	a.printResults()
	return nil
}

// filterCategory picks a category for the search filter and re-runs the
// search. An empty answer clears the filter.
func (a *App) filterCategory(ctx context.Context) error {
	if err := a.loadPicker(ctx); err != nil {
		return err
	}

	a.printCategories()
	answer, err := getSimpleText(a.reader, "Category number (empty for no filter)", a.out)
	if err != nil {
		return err
	}

	if answer == "" {
		a.picker.ClearSelection()
		a.reminders.View().SetCategory(nil)
	} else {
		c, err := a.pickCategory(answer)
		if err != nil {
			return err
		}
		a.picker.Select(c.ID)
		id := c.ID
		a.reminders.View().SetCategory(&id)
	}

	if err := a.reminders.Search(ctx); err != nil {
		return err
	}
	a.printResults()
	return nil
}

func (a *App) printResults() {
	v := a.reminders.View()
	items, total := v.Results()

	if total == 0 {
		fmt.Fprintln(a.out, "No reminders found.")
		return
	}

	fmt.Fprintf(a.out, "Page %d/%d (%d total):\n", v.Page(), v.TotalPages(), total)
	for _, item := range items {
		line := fmt.Sprintf("  %s  %s  %s", item.ID, item.RemindAt.Local().Format(time.RFC822), item.Content)
		if item.Category != nil {
			line += "  [" + item.Category.Name + "]"
		}
		fmt.Fprintln(a.out, line)
		for _, ru := range item.RelatedUsers {
			fmt.Fprintf(a.out, "      with %s\n", ru.User.Name)
		}
	}

	nav := ""
	if v.CanPrev() {
		nav += "prev "
	}
	if v.CanNext() {
		nav += "next"
	}
	if nav != "" {
		fmt.Fprintf(a.out, "More: %s\n", strings.TrimSpace(nav))
	}
}
