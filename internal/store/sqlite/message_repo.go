package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"travelmate/internal/domain"
)

type MessageRepo struct {
	db *sql.DB
}

func NewMessageRepo(db *sql.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

var _ domain.MessageRepository = (*MessageRepo)(nil)

func (r *MessageRepo) Create(ctx context.Context, m *domain.Message) error {
	return insertMessage(ctx, r.db, m)
}

func (r *MessageRepo) ListForChat(ctx context.Context, chatID string) ([]*domain.Message, error) {
	return listMessages(ctx, r.db, chatID)
}

type execContexter interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertMessage(ctx context.Context, db execContexter, m *domain.Message) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO messages (id, content, timestamp, chat_id, sender_id)
		VALUES (?, ?, ?, ?, ?)
	`, m.ID, m.Content, m.Timestamp, m.ChatID, m.SenderID)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// listMessages returns the messages of a chat in insertion order, each with its sender.
func listMessages(ctx context.Context, db *sql.DB, chatID string) ([]*domain.Message, error) {
	query := `
		SELECT m.id, m.content, m.timestamp, m.chat_id, m.sender_id, ` + personColumns + `
		FROM messages m
		JOIN persons p ON p.id = m.sender_id
		WHERE m.chat_id = ?
		ORDER BY m.rowid ASC
	`
	rows, err := db.QueryContext(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	res := []*domain.Message{}
	for rows.Next() {
		m := &domain.Message{}
		s := &domain.Person{}
		if err := rows.Scan(
			&m.ID, &m.Content, &m.Timestamp, &m.ChatID, &m.SenderID,
			&s.ID, &s.FirstName, &s.LastName, &s.BirthDate, &s.Email, &s.HashedPassword, &s.Gender,
		); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.Sender = s
		res = append(res, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return res, nil
}
