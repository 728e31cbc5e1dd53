package history

// Repository defines the persistence interface for Utterance entities.
// Implementations may use SQLite, in-memory storage, or other backends.
type Repository interface {
	// Record persists a new utterance and sets its database ID.
	Record(u *Utterance) error

	// Recent retrieves the most recent utterances, newest first.
	// A limit of 0 applies no limit.
	Recent(limit int) ([]*Utterance, error)

	// CountByCategory returns the number of recorded utterances per
	// category identifier.
	CountByCategory() (map[string]int, error)

	// Close releases any resources held by the repository.
	Close() error
}
