package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"remindme/internal/client/api"
	"remindme/internal/client/models"
)

// CategoryService lists and creates the session user's categories.
type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, name string) (models.Category, error)
}

type categoryService struct {
	gw Gateway
}

func NewCategoryService(gw Gateway) CategoryService {
	return &categoryService{gw: gw}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.gw.Get(ctx, "/category", nil, &categories, true); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) Create(ctx context.Context, name string) (models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return models.Category{}, api.Validationf("category name must not be empty")
	}

	body := struct {
		Name string `json:"name"`
	}{Name: name}

	var resp struct {
		ID uuid.UUID `json:"uuid"`
	}
	if err := s.gw.Post(ctx, "/category", body, &resp, true); err != nil {
		return models.Category{}, fmt.Errorf("create category: %w", err)
	}
	return models.Category{ID: resp.ID, Name: name}, nil
}

// Picker is the shared category-selection component used by both the search
// filter and reminder creation. A cleared selection means "no category",
// which is distinct from "categories not loaded yet".
type Picker struct {
	svc CategoryService

	mu         sync.Mutex
	categories []models.Category
	selected   *uuid.UUID
	loaded     bool
}

func NewPicker(svc CategoryService) *Picker {
	return &Picker{svc: svc}
}

// Load fetches the category list. On failure any previously loaded list is kept.
func (p *Picker) Load(ctx context.Context) error {
	categories, err := p.svc.List(ctx)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.categories = categories
	p.loaded = true
	p.mu.Unlock()
	return nil
}

// Create makes a new category, appends it locally and selects it.
func (p *Picker) Create(ctx context.Context, name string) (models.Category, error) {
	c, err := p.svc.Create(ctx, name)
	if err != nil {
		return models.Category{}, err
	}
	p.mu.Lock()
	p.categories = append(p.categories, c)
	id := c.ID
	p.selected = &id
	p.mu.Unlock()
	return c, nil
}

// Select picks a category by id and reports whether it is known.
func (p *Picker) Select(id uuid.UUID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range p.categories {
		if c.ID == id {
			v := id
			p.selected = &v
			return true
		}
	}
	return false
}

// ClearSelection resets the selection to "no category".
func (p *Picker) ClearSelection() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selected = nil
}

// Selected returns the selected category id, nil meaning "no category".
func (p *Picker) Selected() *uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.selected == nil {
		return nil
	}
	v := *p.selected
	return &v
}

// Loaded reports whether the list has been fetched at least once.
func (p *Picker) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

// Categories returns a copy of the loaded list.
func (p *Picker) Categories() []models.Category {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Category(nil), p.categories...)
}
