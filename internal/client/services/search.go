package services

import (
	"sync"

	"github.com/google/uuid"

	"remindme/internal/client/models"
)

// ViewState is the search view's lifecycle: Idle before the first request,
// Loading while one is in flight, Ready once data (or a kept last-good page)
// is displayable.
type ViewState int

const (
	ViewIdle ViewState = iota
	ViewLoading
	ViewReady
)

// SearchView is the filtered, paginated reminder view. Filter changes reset
// the page, page moves are clamped, and every issued request carries a
// sequence number so a late response from an earlier request can never
// overwrite a newer one.
type SearchView struct {
	mu sync.Mutex

	query      string
	categoryID *uuid.UUID
	page       int
	pageSize   int

	state       ViewState
	annotations []models.Annotation
	totalCount  int

	issued  uint64 // seq of the newest request handed out
	applied uint64 // seq of the newest response applied
}

func NewSearchView(pageSize int) *SearchView {
	if pageSize < 1 {
		pageSize = 1
	}
	return &SearchView{page: 1, pageSize: pageSize}
}

// SetQuery changes the text filter and resets pagination.
func (v *SearchView) SetQuery(q string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.query != q {
		v.query = q
		v.page = 1
	}
}

// SetCategory changes the category filter and resets pagination. A nil id
// means "no category filter".
func (v *SearchView) SetCategory(id *uuid.UUID) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !uuidPtrEqual(v.categoryID, id) {
		v.categoryID = cloneUUIDPtr(id)
		v.page = 1
	}
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func cloneUUIDPtr(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

// Next advances one page when possible and reports whether it moved.
func (v *SearchView) Next() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.page >= v.totalPagesLocked() {
		return false
	}
	v.page++
	return true
}

// Prev goes back one page when possible and reports whether it moved.
func (v *SearchView) Prev() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.page <= 1 {
		return false
	}
	v.page--
	return true
}

// CanNext reports whether a further page exists.
func (v *SearchView) CanNext() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page < v.totalPagesLocked()
}

// CanPrev reports whether an earlier page exists.
func (v *SearchView) CanPrev() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page > 1
}

// TotalPages is ceil(totalCount / pageSize).
func (v *SearchView) TotalPages() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.totalPagesLocked()
}

func (v *SearchView) totalPagesLocked() int {
	return (v.totalCount + v.pageSize - 1) / v.pageSize
}

func (v *SearchView) Page() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

func (v *SearchView) PageSize() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pageSize
}

func (v *SearchView) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Results returns the current page of annotations and the total match count.
func (v *SearchView) Results() ([]models.Annotation, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Annotation(nil), v.annotations...), v.totalCount
}

// begin snapshots the filter for one request and returns it together with
// the request's sequence number. The view transitions to Loading.
func (v *SearchView) begin() (models.SearchFilter, uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.issued++
	v.state = ViewLoading
	return models.SearchFilter{
		Query:      v.query,
		CategoryID: cloneUUIDPtr(v.categoryID),
		Page:       v.page,
		PageSize:   v.pageSize,
	}, v.issued
}

// complete applies a response if no newer request has been issued since seq.
// It reports whether the response was applied; stale responses are discarded.
func (v *SearchView) complete(seq uint64, page models.SearchPage) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if seq < v.issued || seq <= v.applied {
		return false
	}
	v.applied = seq
	v.annotations = page.Annotations
	v.totalCount = page.TotalCount
	v.state = ViewReady

	// Deleting the last item of the last page can leave the cursor past the
	// end; clamp it back into range.
	if tp := v.totalPagesLocked(); tp > 0 && v.page > tp {
		v.page = tp
	}
	return true
}

// fail leaves the last-good data in place and returns the view to Ready so
// it never hangs in Loading.
func (v *SearchView) fail(seq uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if seq < v.issued {
		return
	}
	if v.applied > 0 || v.state == ViewLoading {
		v.state = ViewReady
	}
}
