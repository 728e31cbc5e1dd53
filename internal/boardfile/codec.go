// Package boardfile implements the line-oriented board file format.
//
// A board file is UTF-8 text. A line not starting with ">" declares a
// category: "<id> <label>", split on the first space (the label may contain
// spaces). A line starting with ">" declares an item under the most recently
// declared category: "><imageLoc> <caption>", again split on the first space.
// Item lines before any category line are ignored, and lines that do not
// split into exactly two tokens are skipped.
package boardfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kestrelab/talkboard/internal/board"
	"github.com/kestrelab/talkboard/internal/log"
)

const itemPrefix = ">"

// Decode parses a board file from r.
//
// Malformed lines are skipped, so the only failure mode is a read error.
// On error the partially decoded board is returned alongside it, supporting
// the lenient best-effort loading path.
func Decode(r io.Reader, opts ...board.Option) (*board.Board, error) {
	b := board.New(opts...)

	var pending *board.Category
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if !strings.HasPrefix(line, itemPrefix) {
			// Category line: "<id> <label>"
			tokens := strings.SplitN(line, " ", 2)
			if len(tokens) != 2 {
				continue
			}
			cat := b.CreateCategory(tokens[0])
			if cat == nil {
				continue
			}
			cat.SetLabel(tokens[1])
			pending = cat
			continue
		}

		// Item line: ">" then "<imageLoc> <caption>"
		if pending == nil {
			log.Warn(log.CatCodec, "item line before any category, ignored", "line", line)
			continue
		}
		tokens := strings.SplitN(strings.TrimPrefix(line, itemPrefix), " ", 2)
		if len(tokens) != 2 {
			continue
		}
		pending.AddItem(tokens[0], tokens[1])
	}
	if err := scanner.Err(); err != nil {
		return b, fmt.Errorf("reading board file: %w", err)
	}

	return b, nil
}

// Encode writes the board to w in the line-oriented format, categories in
// insertion order, each followed by its items in insertion order.
// Encode is the exact inverse of Decode up to whitespace.
func Encode(w io.Writer, b *board.Board) error {
	bw := bufio.NewWriter(w)
	for _, cat := range b.Categories() {
		if _, err := fmt.Fprintf(bw, "%s %s\n", cat.Name(), cat.Label()); err != nil {
			return fmt.Errorf("writing category %q: %w", cat.Name(), err)
		}
		for _, item := range cat.Items() {
			if _, err := fmt.Fprintf(bw, "%s%s %s\n", itemPrefix, item.ImageLoc, item.Caption); err != nil {
				return fmt.Errorf("writing item %q: %w", item.ImageLoc, err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing board file: %w", err)
	}
	return nil
}
