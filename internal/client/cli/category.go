package cli

import (
	"context"
	"fmt"
	"strconv"

	"remindme/internal/client/models"
)

func (a *App) loadPicker(ctx context.Context) error {
	if a.picker.Loaded() {
		return nil
	}
	return a.picker.Load(ctx)
}

func (a *App) printCategories() {
	categories := a.picker.Categories()
	if len(categories) == 0 {
		fmt.Fprintln(a.out, "No categories yet.")
		return
	}
	selected := a.picker.Selected()
	for i, c := range categories {
		marker := " "
		if selected != nil && *selected == c.ID {
			marker = "*"
		}
		fmt.Fprintf(a.out, " %s %d. %s\n", marker, i+1, c.Name)
	}
}

// pickCategory resolves a 1-based list number entered by the user.
func (a *App) pickCategory(answer string) (models.Category, error) {
	categories := a.picker.Categories()
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(categories) {
		return models.Category{}, fmt.Errorf("no category %q", answer)
	}
	return categories[n-1], nil
}

func (a *App) listCategories(ctx context.Context) error {
	// Re-fetch so newly created categories from other devices show up.
	if err := a.picker.Load(ctx); err != nil {
		return err
	}
	a.printCategories()
	return nil
}

func (a *App) newCategory(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Category name", a.out)
	if err != nil {
		return err
	}

	c, err := a.picker.Create(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Category %q created and selected.\n", c.Name)
	return nil
}
