package domain

import "time"

// Person is the identity and profile aggregate root.
type Person struct {
	ID             string `db:"id" json:"id"`
	FirstName      string `db:"first_name" json:"firstName"`
	LastName       string `db:"last_name" json:"lastName"`
	BirthDate      string `db:"birth_date" json:"birthDate"`
	Email          string `db:"email" json:"email"`
	HashedPassword string `db:"hashed_password" json:"-"`
	Gender         string `db:"gender" json:"gender"`

	Address           *Address           `json:"address,omitempty"`
	TravelPreferences *TravelPreferences `json:"travelPreferences,omitempty"`
	MetaPreferences   *MetaPreferences   `json:"metaPreferences,omitempty"`
	Interests         *Interests         `json:"interests,omitempty"`
	Verification      *Verification      `json:"verification,omitempty"`
}

// Address is owned by exactly one person.
type Address struct {
	ID          string `db:"id" json:"id"`
	Street      string `db:"street" json:"street"`
	HouseNumber string `db:"house_number" json:"houseNumber"`
	PostalCode  string `db:"postal_code" json:"postalCode"`
	City        string `db:"city" json:"city"`
}

// TravelPreferences records which kinds of trips a person is interested in.
type TravelPreferences struct {
	ID           string `db:"id" json:"id"`
	CityTrip     bool   `db:"city_trip" json:"cityTrip"`
	BeachHoliday bool   `db:"beach_holiday" json:"beachHoliday"`
	Cruise       bool   `db:"cruise" json:"cruise"`
	Mountains    bool   `db:"mountains" json:"mountains"`
	NoPreference bool   `db:"no_preference" json:"noPreference"`
}

type MetaPreferences struct {
	ID        string `db:"id" json:"id"`
	Smoking   bool   `db:"smoking" json:"smoking"`
	Drinking  bool   `db:"drinking" json:"drinking"`
	Religious bool   `db:"religious" json:"religious"`
}

type Interests struct {
	ID         string `db:"id" json:"id"`
	Sport      bool   `db:"sport" json:"sport"`
	BoardGames bool   `db:"board_games" json:"boardGames"`
	Cooking    bool   `db:"cooking" json:"cooking"`
	Club       bool   `db:"club" json:"club"`
}

type Verification struct {
	ID             string `db:"id" json:"id"`
	PassportNumber string `db:"passport_number" json:"passportNumber"`
	VideoAuthBonus bool   `db:"video_auth_bonus" json:"videoAuthBonus"`
}

// ChatRef is the id-only projection of a chat.
type ChatRef struct {
	ID string `json:"id"`
}

// PersonDetails is a person with every sub-record loaded plus the chats it takes part in.
type PersonDetails struct {
	*Person
	Chats []ChatRef `json:"chats"`
}

// Chat is a conversation tied to a fixed set of participants.
type Chat struct {
	ID             string    `db:"id" json:"id"`
	ParticipantKey string    `db:"participant_key" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"-"`

	Participants []*Person  `json:"participants"`
	Messages     []*Message `json:"messages"`
}

// ParticipantIDs returns the ids of the loaded participants.
func (c *Chat) ParticipantIDs() []string {
	ids := make([]string, 0, len(c.Participants))
	for _, p := range c.Participants {
		ids = append(ids, p.ID)
	}
	return ids
}

// Message is a single chat utterance.
type Message struct {
	ID        string    `db:"id" json:"id"`
	Content   string    `db:"content" json:"content"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
	ChatID    string    `db:"chat_id" json:"chatId"`
	SenderID  string    `db:"sender_id" json:"-"`

	Sender *Person `json:"sender,omitempty"`
}
