package domain

import (
	"context"
)

// PersonRepository defines persistence operations for persons and their sub-records.
type PersonRepository interface {
	// Create writes the person and every non-nil sub-record in one transaction.
	Create(ctx context.Context, p *Person) error
	// GetByID returns the person with its address, or nil when absent.
	GetByID(ctx context.Context, id string) (*Person, error)
	// GetDetailsByID returns the person with all sub-records, or nil when absent.
	GetDetailsByID(ctx context.Context, id string) (*Person, error)
	// GetByIDs returns the persons that exist among ids, in no particular order.
	GetByIDs(ctx context.Context, ids []string) ([]*Person, error)
	List(ctx context.Context) ([]*Person, error)
	// Update rewrites the scalar columns and upserts every non-nil sub-record.
	Update(ctx context.Context, p *Person) error
	// Delete removes the person and cascades to sub-records, participations and
	// sent messages. Chats left with fewer than two participants are removed too.
	Delete(ctx context.Context, id string) error
}

// ChatRepository defines persistence operations for chats.
type ChatRepository interface {
	// CreateWithMessage writes the chat, its participant rows and the first
	// message in one transaction. A chat with the same participant key yields ErrConflict.
	CreateWithMessage(ctx context.Context, c *Chat, participantIDs []string, first *Message) error
	// GetByID returns the bare chat row, or nil when absent.
	GetByID(ctx context.Context, id string) (*Chat, error)
	// GetWithRelations returns the chat with participants and messages (each with sender).
	GetWithRelations(ctx context.Context, id string) (*Chat, error)
	// ListIntersecting returns every chat sharing at least one participant with ids,
	// with its participants loaded.
	ListIntersecting(ctx context.Context, ids []string) ([]*Chat, error)
	ListIDsForPerson(ctx context.Context, personID string) ([]string, error)
}

// MessageRepository defines persistence operations for messages.
type MessageRepository interface {
	Create(ctx context.Context, m *Message) error
	// ListForChat returns messages in insertion order, each with its sender.
	ListForChat(ctx context.Context, chatID string) ([]*Message, error)
}

// ParticipantRepository defines membership checks on chat participants.
type ParticipantRepository interface {
	IsParticipant(ctx context.Context, chatID, personID string) (bool, error)
}
