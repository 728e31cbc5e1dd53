package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/kestrelab/talkboard/internal/history"
)

// utteranceColumns is the list of columns to select for utterance queries.
const utteranceColumns = `id, guid, category_id, image_loc, caption, spoken_at`

// utteranceRepository implements history.Repository using SQLite.
type utteranceRepository struct {
	db *sql.DB
}

// newUtteranceRepository creates a new utteranceRepository instance.
func newUtteranceRepository(db *sql.DB) *utteranceRepository {
	return &utteranceRepository{db: db}
}

// Ensure utteranceRepository implements history.Repository.
var _ history.Repository = (*utteranceRepository)(nil)

// scanUtterance scans a row into an UtteranceModel.
func scanUtterance(scanner interface{ Scan(...any) error }) (*UtteranceModel, error) {
	var model UtteranceModel
	err := scanner.Scan(
		&model.ID, &model.GUID, &model.CategoryID,
		&model.ImageLoc, &model.Caption, &model.SpokenAt,
	)
	return &model, err
}

// Record persists a new utterance and sets its database ID.
func (r *utteranceRepository) Record(u *history.Utterance) error {
	model := toUtteranceModel(u)

	result, err := r.db.Exec(
		`INSERT INTO utterances (guid, category_id, image_loc, caption, spoken_at)
		 VALUES (?, ?, ?, ?, ?)`,
		model.GUID, model.CategoryID, model.ImageLoc, model.Caption, model.SpokenAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert utterance: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	u.SetID(id)
	return nil
}

// Recent retrieves the most recent utterances, newest first.
// A limit of 0 applies no limit.
func (r *utteranceRepository) Recent(limit int) ([]*history.Utterance, error) {
	query := `SELECT ` + utteranceColumns + ` FROM utterances ORDER BY spoken_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list utterances: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var utterances []*history.Utterance
	for rows.Next() {
		model, err := scanUtterance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan utterance row: %w", err)
		}
		utterances = append(utterances, model.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating utterance rows: %w", err)
	}

	return utterances, nil
}

// CountByCategory returns the number of recorded utterances per category.
func (r *utteranceRepository) CountByCategory() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT category_id, COUNT(*) FROM utterances GROUP BY category_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to count utterances: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int)
	for rows.Next() {
		var categoryID string
		var count int
		if err := rows.Scan(&categoryID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count row: %w", err)
		}
		counts[categoryID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating count rows: %w", err)
	}

	return counts, nil
}

// Close releases any resources held by the repository.
// This is a no-op because the connection is owned by the DB struct.
func (r *utteranceRepository) Close() error {
	return nil
}
