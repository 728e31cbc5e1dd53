package boardfile

import (
	"fmt"
	"os"

	"github.com/kestrelab/talkboard/internal/board"
	"github.com/kestrelab/talkboard/internal/log"
)

// Load reads and decodes the board file at path.
func Load(path string, opts ...board.Option) (*board.Board, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is a user-supplied board file
	if err != nil {
		return nil, fmt.Errorf("opening board file: %w", err)
	}
	defer func() { _ = f.Close() }()

	b, err := Decode(f, opts...)
	if err != nil {
		return b, fmt.Errorf("decoding %s: %w", path, err)
	}
	log.Debug(log.CatCodec, "board loaded", "path", path, "categories", b.Len())
	return b, nil
}

// LoadLenient loads the board file at path with the best-effort policy:
// any I/O or decode failure is logged and the call degrades to a partially
// or fully empty board instead of failing. Callers must treat the result as
// possibly empty and verify before use.
func LoadLenient(path string, opts ...board.Option) *board.Board {
	b, err := Load(path, opts...)
	if err != nil {
		log.ErrorErr(log.CatCodec, "board load degraded", err, "path", path)
		if b == nil {
			b = board.New(opts...)
		}
	}
	return b
}

// Save encodes the board to the file at path, replacing its contents.
func Save(path string, b *board.Board) error {
	f, err := os.Create(path) //nolint:gosec // G304: path is a user-supplied board file
	if err != nil {
		return fmt.Errorf("creating board file: %w", err)
	}

	if err := Encode(f, b); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing board file: %w", err)
	}
	log.Debug(log.CatCodec, "board saved", "path", path, "categories", b.Len())
	return nil
}

// SaveLenient saves the board with the best-effort policy: failures are
// logged and swallowed on the assumption that the in-memory board remains
// authoritative even if disk sync fails.
func SaveLenient(path string, b *board.Board) {
	if err := Save(path, b); err != nil {
		log.ErrorErr(log.CatCodec, "board save degraded", err, "path", path)
	}
}
