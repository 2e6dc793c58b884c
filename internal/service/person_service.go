package service

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"travelmate/internal/domain"
	"travelmate/internal/security"
)

// PersonService handles person profiles and their sub-records.
type PersonService struct {
	persons domain.PersonRepository
	chats   domain.ChatRepository
	hasher  *security.PasswordHasher
}

func NewPersonService(persons domain.PersonRepository, chats domain.ChatRepository, hasher *security.PasswordHasher) *PersonService {
	return &PersonService{
		persons: persons,
		chats:   chats,
		hasher:  hasher,
	}
}

type CreatePersonInput struct {
	FirstName string
	LastName  string
	BirthDate string
	Email     string
	Password  string
	Gender    string

	Address           *domain.Address
	TravelPreferences *domain.TravelPreferences
	MetaPreferences   *domain.MetaPreferences
	Interests         *domain.Interests
	Verification      *domain.Verification
}

// UpdatePersonInput is a merge patch: nil fields keep the stored value.
type UpdatePersonInput struct {
	FirstName *string
	LastName  *string
	BirthDate *string
	Email     *string
	Password  *string
	Gender    *string

	Address           *domain.Address
	TravelPreferences *domain.TravelPreferences
	MetaPreferences   *domain.MetaPreferences
	Interests         *domain.Interests
	Verification      *domain.Verification
}

func (s *PersonService) CreatePerson(ctx context.Context, in CreatePersonInput) (*domain.Person, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		return nil, domain.Errorf(domain.ErrInvalidInput, "firstName, lastName, email and password are required")
	}
	if err := checkPasswordLength(in.Password); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	p := &domain.Person{
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		BirthDate:         in.BirthDate,
		Email:             in.Email,
		HashedPassword:    hashed,
		Gender:            in.Gender,
		Address:           in.Address,
		TravelPreferences: in.TravelPreferences,
		MetaPreferences:   in.MetaPreferences,
		Interests:         in.Interests,
		Verification:      in.Verification,
	}
	if err := s.persons.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create person: %w", err)
	}
	return p, nil
}

func (s *PersonService) UpdatePerson(ctx context.Context, id string, in UpdatePersonInput) (*domain.Person, error) {
	p, err := s.persons.GetDetailsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get person: %w", err)
	}
	if p == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "person not found")
	}

	p.FirstName = lo.FromPtrOr(in.FirstName, p.FirstName)
	p.LastName = lo.FromPtrOr(in.LastName, p.LastName)
	p.BirthDate = lo.FromPtrOr(in.BirthDate, p.BirthDate)
	p.Email = lo.FromPtrOr(in.Email, p.Email)
	p.Gender = lo.FromPtrOr(in.Gender, p.Gender)

	if in.Password != nil && !s.hasher.Matches(*in.Password, p.HashedPassword) {
		if *in.Password == "" {
			return nil, domain.Errorf(domain.ErrInvalidInput, "password must not be empty")
		}
		if err := checkPasswordLength(*in.Password); err != nil {
			return nil, err
		}
		hashed, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		p.HashedPassword = hashed
	}

	// Provided sub-records replace the stored ones; the store keeps the
	// existing row id on conflict.
	if in.Address != nil {
		p.Address = in.Address
	}
	if in.TravelPreferences != nil {
		p.TravelPreferences = in.TravelPreferences
	}
	if in.MetaPreferences != nil {
		p.MetaPreferences = in.MetaPreferences
	}
	if in.Interests != nil {
		p.Interests = in.Interests
	}
	if in.Verification != nil {
		p.Verification = in.Verification
	}

	if err := s.persons.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update person: %w", err)
	}
	return p, nil
}

func (s *PersonService) DeletePerson(ctx context.Context, id string) error {
	if err := s.persons.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	return nil
}

func (s *PersonService) GetPerson(ctx context.Context, id string) (*domain.Person, error) {
	p, err := s.persons.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get person: %w", err)
	}
	if p == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "person not found")
	}
	return p, nil
}

// GetPersonDetails returns the person with every sub-record and the ids of its chats.
func (s *PersonService) GetPersonDetails(ctx context.Context, id string) (*domain.PersonDetails, error) {
	p, err := s.persons.GetDetailsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get person details: %w", err)
	}
	if p == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "person not found")
	}

	chatIDs, err := s.chats.ListIDsForPerson(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	return &domain.PersonDetails{
		Person: p,
		Chats: lo.Map(chatIDs, func(id string, _ int) domain.ChatRef {
			return domain.ChatRef{ID: id}
		}),
	}, nil
}

func (s *PersonService) ListPersons(ctx context.Context) ([]*domain.Person, error) {
	persons, err := s.persons.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	return persons, nil
}

func checkPasswordLength(password string) error {
	if len(password) > security.MaxPasswordBytes {
		return domain.Errorf(domain.ErrInvalidInput, "password must be at most %d bytes", security.MaxPasswordBytes)
	}
	return nil
}
