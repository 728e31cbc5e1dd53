package sqlite

import (
	"time"

	"github.com/kestrelab/talkboard/internal/history"
)

// UtteranceModel represents the database row for the utterances table.
// Fields map directly to SQL columns with Unix timestamps for time values.
type UtteranceModel struct {
	ID         int64
	GUID       string
	CategoryID string
	ImageLoc   string
	Caption    string
	SpokenAt   int64 // Unix timestamp
}

// toUtteranceModel converts a domain Utterance to a database UtteranceModel.
func toUtteranceModel(u *history.Utterance) *UtteranceModel {
	return &UtteranceModel{
		ID:         u.ID(),
		GUID:       u.GUID(),
		CategoryID: u.CategoryID(),
		ImageLoc:   u.ImageLoc(),
		Caption:    u.Caption(),
		SpokenAt:   u.SpokenAt().Unix(),
	}
}

// toDomain converts a database UtteranceModel to a domain Utterance.
func (m *UtteranceModel) toDomain() *history.Utterance {
	return history.Rehydrate(m.ID, m.GUID, m.CategoryID, m.ImageLoc, m.Caption, time.Unix(m.SpokenAt, 0))
}
