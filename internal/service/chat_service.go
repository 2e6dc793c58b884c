package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"

	"travelmate/internal/domain"
	"travelmate/internal/metrics"
)

// ChatService owns chat creation with participant-set dedup, message append
// and chat/message retrieval.
type ChatService struct {
	chats        domain.ChatRepository
	participants domain.ParticipantRepository
	messages     domain.MessageRepository
	persons      domain.PersonRepository
	metrics      *metrics.Metrics

	// EnforceSenderMembership rejects appends from persons outside the chat.
	EnforceSenderMembership bool
}

func NewChatService(
	chats domain.ChatRepository,
	participants domain.ParticipantRepository,
	messages domain.MessageRepository,
	persons domain.PersonRepository,
	m *metrics.Metrics,
	enforceSenderMembership bool,
) *ChatService {
	return &ChatService{
		chats:                   chats,
		participants:            participants,
		messages:                messages,
		persons:                 persons,
		metrics:                 m,
		EnforceSenderMembership: enforceSenderMembership,
	}
}

type CreateChatInput struct {
	ParticipantIDs []string
	Message        string
	SenderID       string
}

// CreateChat creates a chat for exactly the given participant set together
// with its first message. Validation finishes before anything is written.
func (s *ChatService) CreateChat(ctx context.Context, in CreateChatInput) (*domain.Chat, error) {
	if len(in.ParticipantIDs) < 2 {
		return nil, domain.Errorf(domain.ErrInvalidInput, "at least two participants required")
	}
	if in.Message == "" || in.SenderID == "" {
		return nil, domain.Errorf(domain.ErrInvalidInput, "message and senderId required")
	}

	// Duplicate ids are not collapsed: they make the counts differ.
	participants, err := s.persons.GetByIDs(ctx, in.ParticipantIDs)
	if err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}
	if len(participants) != len(in.ParticipantIDs) {
		return nil, domain.Errorf(domain.ErrNotFound, "one or more participants not found")
	}

	candidates, err := s.chats.ListIntersecting(ctx, in.ParticipantIDs)
	if err != nil {
		return nil, fmt.Errorf("find existing chats: %w", err)
	}
	if _, exists := lo.Find(candidates, func(c *domain.Chat) bool {
		return domain.SameParticipantSet(c.ParticipantIDs(), in.ParticipantIDs)
	}); exists {
		s.metrics.ChatConflict()
		return nil, domain.Errorf(domain.ErrConflict, "chat already exists")
	}

	sender, ok := lo.Find(participants, func(p *domain.Person) bool {
		return p.ID == in.SenderID
	})
	if !ok {
		return nil, domain.Errorf(domain.ErrInvalidInput, "sender must be a participant")
	}

	chat := &domain.Chat{}
	first := &domain.Message{
		Content:   in.Message,
		Timestamp: time.Now().UTC(),
		SenderID:  sender.ID,
	}
	if err := s.chats.CreateWithMessage(ctx, chat, in.ParticipantIDs, first); err != nil {
		// Lost a race with a concurrent create for the same set.
		if errors.Is(err, domain.ErrConflict) {
			s.metrics.ChatConflict()
			return nil, err
		}
		return nil, fmt.Errorf("create chat: %w", err)
	}
	s.metrics.ChatCreated()

	return s.loadChat(ctx, chat.ID)
}

type AddMessageInput struct {
	ChatID   string
	SenderID string
	Content  string
}

// AddMessage appends a message to an existing chat and returns the reloaded chat.
func (s *ChatService) AddMessage(ctx context.Context, in AddMessageInput) (*domain.Chat, error) {
	if in.ChatID == "" || in.SenderID == "" || in.Content == "" {
		return nil, domain.Errorf(domain.ErrInvalidInput, "chatId, senderId and content are required")
	}

	chat, err := s.chats.GetByID(ctx, in.ChatID)
	if err != nil {
		return nil, fmt.Errorf("get chat: %w", err)
	}
	if chat == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "chat not found")
	}

	sender, err := s.persons.GetByID(ctx, in.SenderID)
	if err != nil {
		return nil, fmt.Errorf("get sender: %w", err)
	}
	if sender == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "sender not found")
	}

	if s.EnforceSenderMembership {
		isParticipant, err := s.participants.IsParticipant(ctx, chat.ID, sender.ID)
		if err != nil {
			return nil, fmt.Errorf("check participant: %w", err)
		}
		if !isParticipant {
			return nil, domain.Errorf(domain.ErrInvalidInput, "sender must be a participant")
		}
	}

	msg := &domain.Message{
		Content:   in.Content,
		Timestamp: time.Now().UTC(),
		ChatID:    chat.ID,
		SenderID:  sender.ID,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	s.metrics.MessageAppended()

	return s.loadChat(ctx, chat.ID)
}

// GetChat returns the chat with participants and messages.
func (s *ChatService) GetChat(ctx context.Context, chatID string) (*domain.Chat, error) {
	return s.loadChat(ctx, chatID)
}

// ListChatIDsForPerson returns the id projection of every chat the person takes part in.
func (s *ChatService) ListChatIDsForPerson(ctx context.Context, personID string) ([]domain.ChatRef, error) {
	ids, err := s.chats.ListIDsForPerson(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	return lo.Map(ids, func(id string, _ int) domain.ChatRef {
		return domain.ChatRef{ID: id}
	}), nil
}

// ListMessages returns the messages of a chat in insertion order.
func (s *ChatService) ListMessages(ctx context.Context, chatID string) ([]*domain.Message, error) {
	chat, err := s.chats.GetByID(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("get chat: %w", err)
	}
	if chat == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "chat not found")
	}
	msgs, err := s.messages.ListForChat(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

func (s *ChatService) loadChat(ctx context.Context, chatID string) (*domain.Chat, error) {
	chat, err := s.chats.GetWithRelations(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("load chat: %w", err)
	}
	if chat == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "chat not found")
	}
	return chat, nil
}
