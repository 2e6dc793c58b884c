package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"travelmate/internal/domain"
)

type ParticipantRepo struct {
	db *sql.DB
}

func NewParticipantRepo(db *sql.DB) *ParticipantRepo {
	return &ParticipantRepo{db: db}
}

var _ domain.ParticipantRepository = (*ParticipantRepo)(nil)

func (r *ParticipantRepo) IsParticipant(ctx context.Context, chatID, personID string) (bool, error) {
	var exists int
	err := r.db.QueryRowContext(ctx, `
		SELECT 1
		FROM chat_participants
		WHERE chat_id = ? AND person_id = ?
	`, chatID, personID).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("is participant: %w", err)
	}
	return true, nil
}

// listParticipants returns the members of a chat in the order they were added.
func listParticipants(ctx context.Context, db *sql.DB, chatID string) ([]*domain.Person, error) {
	query := `
		SELECT ` + personColumns + `
		FROM persons p
		JOIN chat_participants cp ON cp.person_id = p.id
		WHERE cp.chat_id = ?
		ORDER BY cp.rowid ASC
	`
	rows, err := db.QueryContext(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	persons := []*domain.Person{}
	for rows.Next() {
		p := &domain.Person{}
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.BirthDate, &p.Email, &p.HashedPassword, &p.Gender); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate participants: %w", err)
	}
	return persons, nil
}
