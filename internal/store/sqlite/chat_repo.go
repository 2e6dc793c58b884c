package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"travelmate/internal/domain"
)

type ChatRepo struct {
	db *sql.DB
}

func NewChatRepo(db *sql.DB) *ChatRepo {
	return &ChatRepo{db: db}
}

var _ domain.ChatRepository = (*ChatRepo)(nil)

func (r *ChatRepo) CreateWithMessage(ctx context.Context, c *domain.Chat, participantIDs []string, first *domain.Message) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	c.ParticipantKey = domain.ParticipantKey(participantIDs)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO chats (id, participant_key, created_at)
		VALUES (?, ?, ?)
	`, c.ID, c.ParticipantKey, c.CreatedAt)
	if isUniqueViolation(err) {
		return domain.Errorf(domain.ErrConflict, "chat already exists")
	}
	if err != nil {
		return fmt.Errorf("insert chat: %w", err)
	}

	for _, pid := range participantIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO chat_participants (chat_id, person_id)
			VALUES (?, ?)
		`, c.ID, pid); err != nil {
			return fmt.Errorf("insert participant: %w", err)
		}
	}

	if first != nil {
		first.ChatID = c.ID
		if err := insertMessage(ctx, tx, first); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *ChatRepo) GetByID(ctx context.Context, id string) (*domain.Chat, error) {
	c := &domain.Chat{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, participant_key, created_at
		FROM chats
		WHERE id = ?
	`, id).Scan(&c.ID, &c.ParticipantKey, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get chat: %w", err)
	}
	return c, nil
}

func (r *ChatRepo) GetWithRelations(ctx context.Context, id string) (*domain.Chat, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil || c == nil {
		return c, err
	}
	if c.Participants, err = listParticipants(ctx, r.db, id); err != nil {
		return nil, err
	}
	if c.Messages, err = listMessages(ctx, r.db, id); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ChatRepo) ListIntersecting(ctx context.Context, ids []string) ([]*domain.Chat, error) {
	if len(ids) == 0 {
		return []*domain.Chat{}, nil
	}
	// Candidates only: every chat sharing a member with ids, with its full participant list.
	query := `
		SELECT c.id, c.participant_key, c.created_at, ` + personColumns + `
		FROM chats c
		JOIN chat_participants cp ON cp.chat_id = c.id
		JOIN persons p ON p.id = cp.person_id
		WHERE c.id IN (
			SELECT chat_id FROM chat_participants WHERE person_id IN (` + placeholders(len(ids)) + `)
		)
		ORDER BY c.rowid ASC, cp.rowid ASC
	`
	rows, err := r.db.QueryContext(ctx, query, stringArgs(ids)...)
	if err != nil {
		return nil, fmt.Errorf("list intersecting chats: %w", err)
	}
	defer rows.Close()

	res := []*domain.Chat{}
	byID := map[string]*domain.Chat{}
	for rows.Next() {
		var c domain.Chat
		p := &domain.Person{}
		if err := rows.Scan(
			&c.ID, &c.ParticipantKey, &c.CreatedAt,
			&p.ID, &p.FirstName, &p.LastName, &p.BirthDate, &p.Email, &p.HashedPassword, &p.Gender,
		); err != nil {
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		existing, ok := byID[c.ID]
		if !ok {
			existing = &c
			byID[c.ID] = existing
			res = append(res, existing)
		}
		existing.Participants = append(existing.Participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chats: %w", err)
	}
	return res, nil
}

func (r *ChatRepo) ListIDsForPerson(ctx context.Context, personID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id
		FROM chats c
		JOIN chat_participants cp ON cp.chat_id = c.id
		WHERE cp.person_id = ?
		ORDER BY c.rowid ASC
	`, personID)
	if err != nil {
		return nil, fmt.Errorf("list chats for person: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan chat id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chat ids: %w", err)
	}
	return ids, nil
}
