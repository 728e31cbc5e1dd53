// Package board implements the domain model for a talkboard communication board.
//
// A board is a two-level hierarchy: named categories, each holding ordered
// image-to-caption items. At most one category is active at a time; the active
// category governs what AddItem, ImageLocs, and HasImage operate on. With no
// active category the board is in top-level view and exposes category
// identifiers instead of items.
//
// # Core Types
//
// Category is a single page of items. It owns its identifier, a display label,
// and an insertion-ordered item collection. Categories and items are never
// removed; re-adding an image location overwrites its caption.
//
// Board is the collection type. It provides:
//   - Select: the navigation/selection state machine
//   - CreateCategory/AddItemToActive: explicit mutation operations
//   - AddItem: the legacy dual-purpose operation kept for file-format
//     compatibility (creates and activates a category when none is active)
//   - Reset/TopLevelCategories: top-level view
//
// The package performs no I/O; encoding and decoding of the board file format
// live in the boardfile package.
package board
