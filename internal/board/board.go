package board

import (
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/kestrelab/talkboard/internal/log"
)

// Board errors
var (
	ErrNoCategories     = errors.New("no categories available")
	ErrNoActiveCategory = errors.New("no active category")
	ErrAlreadyActive    = errors.New("category already active")
	ErrImageNotFound    = errors.New("image location not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// ReselectPolicy controls what Select does when the path is the
// currently active category.
type ReselectPolicy string

const (
	// ReselectError treats re-selecting the active category as a caller
	// error and fails with ErrAlreadyActive. This is the default.
	ReselectError ReselectPolicy = "error"
	// ReselectNoop treats re-selecting the active category as a no-op.
	ReselectNoop ReselectPolicy = "noop"
)

// IsValid returns true if the policy is a known value.
func (p ReselectPolicy) IsValid() bool {
	return p == ReselectError || p == ReselectNoop
}

// Option configures a Board at construction.
type Option func(*Board)

// WithReselectPolicy sets the policy for re-selecting the active category.
// Invalid values are ignored and the default kept.
func WithReselectPolicy(p ReselectPolicy) Option {
	return func(b *Board) {
		if p.IsValid() {
			b.reselect = p
		}
	}
}

// Board holds the two-level category hierarchy and the navigation state.
// Categories are kept in a single insertion-ordered collection; each
// category carries its own label, so identifier and label cannot drift apart.
type Board struct {
	cats     *orderedmap.OrderedMap[string, *Category]
	active   string
	reselect ReselectPolicy
}

// New creates an empty board in top-level view.
func New(opts ...Option) *Board {
	b := &Board{
		cats:     orderedmap.New[string, *Category](),
		reselect: ReselectError,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// CreateCategory ensures a category with the given identifier exists and
// returns it. An existing category is returned unchanged. An empty
// identifier is logged and dropped, returning nil.
func (b *Board) CreateCategory(id string) *Category {
	if id == "" {
		log.Warn(log.CatBoard, "empty category identifier dropped")
		return nil
	}
	if cat, ok := b.cats.Get(id); ok {
		return cat
	}
	cat := NewCategory(id)
	b.cats.Set(id, cat)
	return cat
}

// Category returns the category with the given identifier.
func (b *Board) Category(id string) (*Category, bool) {
	return b.cats.Get(id)
}

// Label returns the display label of the category with the given identifier.
func (b *Board) Label(id string) (string, error) {
	cat, ok := b.cats.Get(id)
	if !ok {
		return "", fmt.Errorf("category %q: %w", id, ErrCategoryNotFound)
	}
	return cat.Label(), nil
}

// SetLabel updates the display label of the category with the given identifier.
func (b *Board) SetLabel(id, label string) error {
	cat, ok := b.cats.Get(id)
	if !ok {
		return fmt.Errorf("category %q: %w", id, ErrCategoryNotFound)
	}
	cat.SetLabel(label)
	return nil
}

// AddItemToActive adds an image-to-caption pairing to the active category.
// Returns ErrNoActiveCategory when the board is in top-level view, or
// ErrCategoryNotFound when the active identifier is stale.
func (b *Board) AddItemToActive(imageLoc, caption string) error {
	if b.active == "" {
		return ErrNoActiveCategory
	}
	cat, ok := b.cats.Get(b.active)
	if !ok {
		return fmt.Errorf("active category %q: %w", b.active, ErrCategoryNotFound)
	}
	cat.AddItem(imageLoc, caption)
	return nil
}

// AddItem adds an item to the active category.
//
// Legacy dual-purpose behavior, kept for compatibility with the board file
// workflow: when no category is active, imageLoc is instead treated as a new
// category identifier, which is created (if absent) and made active. New
// callers should prefer the explicit CreateCategory and AddItemToActive.
func (b *Board) AddItem(imageLoc, caption string) error {
	if b.active == "" {
		if cat := b.CreateCategory(imageLoc); cat != nil {
			b.active = imageLoc
		}
		return nil
	}
	return b.AddItemToActive(imageLoc, caption)
}

// ActiveID returns the active category identifier, empty in top-level view.
func (b *Board) ActiveID() string {
	return b.active
}

// ActiveLabel returns the display label of the active category.
// Empty if no category is active or the active identifier is stale.
func (b *Board) ActiveLabel() string {
	if b.active == "" {
		return ""
	}
	cat, ok := b.cats.Get(b.active)
	if !ok {
		return ""
	}
	return cat.Label()
}

// ImageLocs returns the image locations of the active category, or the
// top-level category identifiers when no category is active. A stale
// active identifier degrades to an empty slice rather than an error.
func (b *Board) ImageLocs() []string {
	if b.active == "" {
		return b.TopLevelCategories()
	}
	cat, ok := b.cats.Get(b.active)
	if !ok {
		log.Warn(log.CatBoard, "active category missing", "id", b.active)
		return []string{}
	}
	return cat.ImageLocs()
}

// Reset clears the active category, returning the board to top-level view.
// Idempotent.
func (b *Board) Reset() {
	b.active = ""
}

// Select drives the navigation state machine.
//
// Selecting a registered category identifier activates that category and
// returns an empty caption. Selecting an image location within the active
// category returns its caption without changing state. Failure modes:
//   - ErrNoCategories: the board holds zero categories
//   - ErrAlreadyActive: path is the active category (ReselectError policy)
//   - ErrNoActiveCategory: path is not a category and no category is active,
//     or the active identifier is stale
//   - ErrImageNotFound: path is unknown within the active category
func (b *Board) Select(path string) (string, error) {
	if b.cats.Len() == 0 {
		return "", ErrNoCategories
	}

	if _, ok := b.cats.Get(path); ok {
		if b.active == path {
			if b.reselect == ReselectNoop {
				return "", nil
			}
			return "", fmt.Errorf("category %q: %w", path, ErrAlreadyActive)
		}
		b.active = path
		return "", nil // Selecting a category produces no speech
	}

	if b.active == "" {
		return "", ErrNoActiveCategory
	}

	cat, ok := b.cats.Get(b.active)
	if !ok {
		// Inconsistent state: active identifier not present in the
		// category collection. Reported, not a crash.
		return "", fmt.Errorf("active category %q: %w", b.active, ErrNoActiveCategory)
	}
	caption, err := cat.Select(path)
	if err != nil {
		return "", err
	}
	return caption, nil
}

// HasImage reports whether a category is active and its items contain
// the given image location. A stale active identifier logs a diagnostic
// and reports false.
func (b *Board) HasImage(imageLoc string) bool {
	if b.active == "" {
		return false
	}
	cat, ok := b.cats.Get(b.active)
	if !ok {
		log.Warn(log.CatBoard, "active category missing", "id", b.active)
		return false
	}
	return cat.HasImage(imageLoc)
}

// IsCategory reports whether the identifier is a registered category,
// regardless of active state.
func (b *Board) IsCategory(id string) bool {
	_, ok := b.cats.Get(id)
	return ok
}

// TopLevelCategories returns all category identifiers in insertion order.
func (b *Board) TopLevelCategories() []string {
	ids := make([]string, 0, b.cats.Len())
	for pair := b.cats.Oldest(); pair != nil; pair = pair.Next() {
		ids = append(ids, pair.Key)
	}
	return ids
}

// Categories returns all categories in insertion order.
func (b *Board) Categories() []*Category {
	cats := make([]*Category, 0, b.cats.Len())
	for pair := b.cats.Oldest(); pair != nil; pair = pair.Next() {
		cats = append(cats, pair.Value)
	}
	return cats
}

// Len returns the number of categories on the board.
func (b *Board) Len() int {
	return b.cats.Len()
}
