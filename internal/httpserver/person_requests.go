package httpserver

import (
	"travelmate/internal/domain"
	"travelmate/internal/service"
)

type addressRequest struct {
	Street      string `json:"street" validate:"max=200"`
	HouseNumber string `json:"houseNumber" validate:"max=20"`
	PostalCode  string `json:"postalCode" validate:"max=20"`
	City        string `json:"city" validate:"max=100"`
}

type travelPreferencesRequest struct {
	CityTrip     bool `json:"cityTrip"`
	BeachHoliday bool `json:"beachHoliday"`
	Cruise       bool `json:"cruise"`
	Mountains    bool `json:"mountains"`
	NoPreference bool `json:"noPreference"`
}

type metaPreferencesRequest struct {
	Smoking   bool `json:"smoking"`
	Drinking  bool `json:"drinking"`
	Religious bool `json:"religious"`
}

type interestsRequest struct {
	Sport      bool `json:"sport"`
	BoardGames bool `json:"boardGames"`
	Cooking    bool `json:"cooking"`
	Club       bool `json:"club"`
}

type verificationRequest struct {
	PassportNumber string `json:"passportNumber" validate:"max=50"`
	VideoAuthBonus bool   `json:"videoAuthBonus"`
}

type personCreateRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	BirthDate string `json:"birthDate" validate:"max=32"`
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required,max=72"`
	Gender    string `json:"gender" validate:"max=32"`

	Address           *addressRequest           `json:"address"`
	TravelPreferences *travelPreferencesRequest `json:"travelPreferences"`
	MetaPreferences   *metaPreferencesRequest   `json:"metaPreferences"`
	Interests         *interestsRequest         `json:"interests"`
	Verification      *verificationRequest      `json:"verification"`
}

type personUpdateRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	BirthDate *string `json:"birthDate" validate:"omitempty,max=32"`
	Email     *string `json:"email" validate:"omitempty,email,max=254"`
	Password  *string `json:"password" validate:"omitempty,min=1,max=72"`
	Gender    *string `json:"gender" validate:"omitempty,max=32"`

	Address           *addressRequest           `json:"address"`
	TravelPreferences *travelPreferencesRequest `json:"travelPreferences"`
	MetaPreferences   *metaPreferencesRequest   `json:"metaPreferences"`
	Interests         *interestsRequest         `json:"interests"`
	Verification      *verificationRequest      `json:"verification"`
}

func (r personCreateRequest) toInput() service.CreatePersonInput {
	in := service.CreatePersonInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		BirthDate: r.BirthDate,
		Email:     r.Email,
		Password:  r.Password,
		Gender:    r.Gender,
	}
	in.Address = r.Address.toDomain()
	in.TravelPreferences = r.TravelPreferences.toDomain()
	in.MetaPreferences = r.MetaPreferences.toDomain()
	in.Interests = r.Interests.toDomain()
	in.Verification = r.Verification.toDomain()
	return in
}

func (r personUpdateRequest) toInput() service.UpdatePersonInput {
	in := service.UpdatePersonInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		BirthDate: r.BirthDate,
		Email:     r.Email,
		Password:  r.Password,
		Gender:    r.Gender,
	}
	in.Address = r.Address.toDomain()
	in.TravelPreferences = r.TravelPreferences.toDomain()
	in.MetaPreferences = r.MetaPreferences.toDomain()
	in.Interests = r.Interests.toDomain()
	in.Verification = r.Verification.toDomain()
	return in
}

// The toDomain methods accept a nil receiver so absent sub-records stay nil.

func (a *addressRequest) toDomain() *domain.Address {
	if a == nil {
		return nil
	}
	return &domain.Address{
		Street:      a.Street,
		HouseNumber: a.HouseNumber,
		PostalCode:  a.PostalCode,
		City:        a.City,
	}
}

func (t *travelPreferencesRequest) toDomain() *domain.TravelPreferences {
	if t == nil {
		return nil
	}
	return &domain.TravelPreferences{
		CityTrip:     t.CityTrip,
		BeachHoliday: t.BeachHoliday,
		Cruise:       t.Cruise,
		Mountains:    t.Mountains,
		NoPreference: t.NoPreference,
	}
}

func (m *metaPreferencesRequest) toDomain() *domain.MetaPreferences {
	if m == nil {
		return nil
	}
	return &domain.MetaPreferences{
		Smoking:   m.Smoking,
		Drinking:  m.Drinking,
		Religious: m.Religious,
	}
}

func (i *interestsRequest) toDomain() *domain.Interests {
	if i == nil {
		return nil
	}
	return &domain.Interests{
		Sport:      i.Sport,
		BoardGames: i.BoardGames,
		Cooking:    i.Cooking,
		Club:       i.Club,
	}
}

func (v *verificationRequest) toDomain() *domain.Verification {
	if v == nil {
		return nil
	}
	return &domain.Verification{
		PassportNumber: v.PassportNumber,
		VideoAuthBonus: v.VideoAuthBonus,
	}
}
