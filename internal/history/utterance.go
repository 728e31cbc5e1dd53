// Package history provides the pure domain layer for the utterance log with
// no infrastructure dependencies.
//
// An utterance is one spoken selection made on the board: the item's caption
// together with where it came from and when it was spoken. Persistence is
// abstracted behind the Repository interface; the SQLite implementation lives
// in internal/infrastructure/sqlite.
package history

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Utterance errors
var (
	ErrEmptyImageLoc = errors.New("utterance image location cannot be empty")
	ErrEmptyCaption  = errors.New("utterance caption cannot be empty")
)

// Utterance represents a single spoken selection recorded from a board.
// All fields are unexported to enforce encapsulation; use the constructor
// and getter methods to access data.
type Utterance struct {
	id         int64 // Database ID, 0 until persisted
	guid       string
	categoryID string
	imageLoc   string
	caption    string
	spokenAt   time.Time
}

// NewUtterance creates an utterance for a just-spoken selection.
// The GUID and timestamp are assigned here.
func NewUtterance(categoryID, imageLoc, caption string) (*Utterance, error) {
	if imageLoc == "" {
		return nil, ErrEmptyImageLoc
	}
	if caption == "" {
		return nil, ErrEmptyCaption
	}
	return &Utterance{
		guid:       uuid.NewString(),
		categoryID: categoryID,
		imageLoc:   imageLoc,
		caption:    caption,
		spokenAt:   time.Now(),
	}, nil
}

// Rehydrate reconstructs an utterance from persisted state.
// Intended for repository implementations only.
func Rehydrate(id int64, guid, categoryID, imageLoc, caption string, spokenAt time.Time) *Utterance {
	return &Utterance{
		id:         id,
		guid:       guid,
		categoryID: categoryID,
		imageLoc:   imageLoc,
		caption:    caption,
		spokenAt:   spokenAt,
	}
}

// ID returns the internal database ID, 0 until persisted.
func (u *Utterance) ID() int64 {
	return u.id
}

// SetID assigns the database ID after the first save.
func (u *Utterance) SetID(id int64) {
	u.id = id
}

// GUID returns the utterance's globally unique identifier.
func (u *Utterance) GUID() string {
	return u.guid
}

// CategoryID returns the identifier of the category the item was spoken from.
func (u *Utterance) CategoryID() string {
	return u.categoryID
}

// ImageLoc returns the image location of the selected item.
func (u *Utterance) ImageLoc() string {
	return u.imageLoc
}

// Caption returns the spoken text.
func (u *Utterance) Caption() string {
	return u.caption
}

// SpokenAt returns when the selection was made.
func (u *Utterance) SpokenAt() time.Time {
	return u.spokenAt
}
