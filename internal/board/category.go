package board

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/kestrelab/talkboard/internal/log"
)

// Item is a single image-to-caption pairing within a category.
type Item struct {
	ImageLoc string // Image location, unique within the owning category
	Caption  string // Text spoken when the image is selected
}

// Category represents a single page of items on the board.
// The identifier is set at construction and immutable; the display label
// lives on the category itself so identifier and label cannot diverge.
type Category struct {
	name  string
	label string
	items *orderedmap.OrderedMap[string, string]
}

// NewCategory creates a new empty category with the given identifier.
func NewCategory(name string) *Category {
	return &Category{
		name:  name,
		items: orderedmap.New[string, string](),
	}
}

// AddItem adds the image location, caption pairing to the category.
// Re-adding an existing image location overwrites its caption.
// An empty image location is logged and dropped, never propagated.
func (c *Category) AddItem(imageLoc, caption string) {
	if imageLoc == "" {
		log.Warn(log.CatBoard, "empty image location dropped", "category", c.name)
		return
	}
	c.items.Set(imageLoc, caption)
}

// ImageLocs returns all image locations in the category, in insertion order.
// An empty category returns an empty slice.
func (c *Category) ImageLocs() []string {
	locs := make([]string, 0, c.items.Len())
	for pair := c.items.Oldest(); pair != nil; pair = pair.Next() {
		locs = append(locs, pair.Key)
	}
	return locs
}

// Items returns all image-to-caption pairings, in insertion order.
func (c *Category) Items() []Item {
	items := make([]Item, 0, c.items.Len())
	for pair := c.items.Oldest(); pair != nil; pair = pair.Next() {
		items = append(items, Item{ImageLoc: pair.Key, Caption: pair.Value})
	}
	return items
}

// Select returns the caption for the given image location.
// Returns ErrImageNotFound if the image is not in the category.
func (c *Category) Select(imageLoc string) (string, error) {
	caption, ok := c.items.Get(imageLoc)
	if !ok {
		return "", fmt.Errorf("image %q in category %q: %w", imageLoc, c.name, ErrImageNotFound)
	}
	return caption, nil
}

// HasImage reports whether the image location is stored in the category.
func (c *Category) HasImage(imageLoc string) bool {
	_, ok := c.items.Get(imageLoc)
	return ok
}

// Name returns the category's identifier.
func (c *Category) Name() string {
	return c.name
}

// Label returns the category's human-readable display label.
// Empty if no label has been set.
func (c *Category) Label() string {
	return c.label
}

// SetLabel sets the category's display label.
func (c *Category) SetLabel(label string) {
	c.label = label
}

// Len returns the number of items in the category.
func (c *Category) Len() int {
	return c.items.Len()
}
