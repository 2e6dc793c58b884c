package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"travelmate/internal/domain"
)

const personColumns = `p.id, p.first_name, p.last_name, p.birth_date, p.email, p.hashed_password, p.gender`

type PersonRepo struct {
	db *sql.DB
}

func NewPersonRepo(db *sql.DB) *PersonRepo {
	return &PersonRepo{db: db}
}

var _ domain.PersonRepository = (*PersonRepo)(nil)

func (r *PersonRepo) Create(ctx context.Context, p *domain.Person) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO persons (id, first_name, last_name, birth_date, email, hashed_password, gender)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.FirstName, p.LastName, p.BirthDate, p.Email, p.HashedPassword, p.Gender)
	if err != nil {
		return fmt.Errorf("insert person: %w", err)
	}
	if err := upsertSubRecords(ctx, tx, p); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *PersonRepo) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	query := `
		SELECT ` + personColumns + `, a.id, a.street, a.house_number, a.postal_code, a.city
		FROM persons p
		LEFT JOIN addresses a ON a.person_id = p.id
		WHERE p.id = ?
	`
	p, err := scanPersonWithAddress(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get person: %w", err)
	}
	return p, nil
}

func (r *PersonRepo) List(ctx context.Context) ([]*domain.Person, error) {
	query := `
		SELECT ` + personColumns + `, a.id, a.street, a.house_number, a.postal_code, a.city
		FROM persons p
		LEFT JOIN addresses a ON a.person_id = p.id
		ORDER BY p.rowid ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	res := []*domain.Person{}
	for rows.Next() {
		p, err := scanPersonWithAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate persons: %w", err)
	}
	return res, nil
}

func (r *PersonRepo) GetByIDs(ctx context.Context, ids []string) ([]*domain.Person, error) {
	if len(ids) == 0 {
		return []*domain.Person{}, nil
	}
	query := `SELECT ` + personColumns + ` FROM persons p WHERE p.id IN (` + placeholders(len(ids)) + `)`
	rows, err := r.db.QueryContext(ctx, query, stringArgs(ids)...)
	if err != nil {
		return nil, fmt.Errorf("get persons by ids: %w", err)
	}
	defer rows.Close()

	res := []*domain.Person{}
	for rows.Next() {
		p := &domain.Person{}
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.BirthDate, &p.Email, &p.HashedPassword, &p.Gender); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate persons: %w", err)
	}
	return res, nil
}

func (r *PersonRepo) GetDetailsByID(ctx context.Context, id string) (*domain.Person, error) {
	query := `
		SELECT ` + personColumns + `,
			a.id, a.street, a.house_number, a.postal_code, a.city,
			t.id, t.city_trip, t.beach_holiday, t.cruise, t.mountains, t.no_preference,
			m.id, m.smoking, m.drinking, m.religious,
			i.id, i.sport, i.board_games, i.cooking, i.club,
			v.id, v.passport_number, v.video_auth_bonus
		FROM persons p
		LEFT JOIN addresses a ON a.person_id = p.id
		LEFT JOIN travel_preferences t ON t.person_id = p.id
		LEFT JOIN meta_preferences m ON m.person_id = p.id
		LEFT JOIN interests i ON i.person_id = p.id
		LEFT JOIN verifications v ON v.person_id = p.id
		WHERE p.id = ?
	`
	p := &domain.Person{}
	var a nullAddress
	var tID, mID, iID, vID, passport sql.NullString
	var cityTrip, beach, cruise, mountains, noPref sql.NullBool
	var smoking, drinking, religious sql.NullBool
	var sport, boardGames, cooking, club, video sql.NullBool
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.BirthDate, &p.Email, &p.HashedPassword, &p.Gender,
		&a.id, &a.street, &a.houseNumber, &a.postalCode, &a.city,
		&tID, &cityTrip, &beach, &cruise, &mountains, &noPref,
		&mID, &smoking, &drinking, &religious,
		&iID, &sport, &boardGames, &cooking, &club,
		&vID, &passport, &video,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get person details: %w", err)
	}

	p.Address = a.toDomain()
	if tID.Valid {
		p.TravelPreferences = &domain.TravelPreferences{
			ID:           tID.String,
			CityTrip:     cityTrip.Bool,
			BeachHoliday: beach.Bool,
			Cruise:       cruise.Bool,
			Mountains:    mountains.Bool,
			NoPreference: noPref.Bool,
		}
	}
	if mID.Valid {
		p.MetaPreferences = &domain.MetaPreferences{
			ID:        mID.String,
			Smoking:   smoking.Bool,
			Drinking:  drinking.Bool,
			Religious: religious.Bool,
		}
	}
	if iID.Valid {
		p.Interests = &domain.Interests{
			ID:         iID.String,
			Sport:      sport.Bool,
			BoardGames: boardGames.Bool,
			Cooking:    cooking.Bool,
			Club:       club.Bool,
		}
	}
	if vID.Valid {
		p.Verification = &domain.Verification{
			ID:             vID.String,
			PassportNumber: passport.String,
			VideoAuthBonus: video.Bool,
		}
	}
	return p, nil
}

func (r *PersonRepo) Update(ctx context.Context, p *domain.Person) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE persons
		SET first_name = ?, last_name = ?, birth_date = ?, email = ?, hashed_password = ?, gender = ?
		WHERE id = ?
	`, p.FirstName, p.LastName, p.BirthDate, p.Email, p.HashedPassword, p.Gender, p.ID)
	if err != nil {
		return fmt.Errorf("update person: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.Errorf(domain.ErrNotFound, "person not found")
	}
	if err := upsertSubRecords(ctx, tx, p); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *PersonRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `SELECT chat_id FROM chat_participants WHERE person_id = ?`, id)
	if err != nil {
		return fmt.Errorf("list chats of person: %w", err)
	}
	var chatIDs []string
	for rows.Next() {
		var chatID string
		if err := rows.Scan(&chatID); err != nil {
			rows.Close()
			return fmt.Errorf("scan chat id: %w", err)
		}
		chatIDs = append(chatIDs, chatID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate chat ids: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM persons WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.Errorf(domain.ErrNotFound, "person not found")
	}

	// A chat is defined by its participant set; once that drops below two
	// members the conversation no longer exists.
	if len(chatIDs) > 0 {
		query := `
			DELETE FROM chats
			WHERE id IN (` + placeholders(len(chatIDs)) + `)
			AND (SELECT COUNT(*) FROM chat_participants cp WHERE cp.chat_id = chats.id) < 2
		`
		if _, err := tx.ExecContext(ctx, query, stringArgs(chatIDs)...); err != nil {
			return fmt.Errorf("delete dissolved chats: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// upsertSubRecords writes every non-nil sub-record of p, keyed by person id.
// The stored row id is read back so callers see the id that survived the upsert.
func upsertSubRecords(ctx context.Context, tx *sql.Tx, p *domain.Person) error {
	if a := p.Address; a != nil {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO addresses (id, person_id, street, house_number, postal_code, city)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(person_id) DO UPDATE SET
				street = excluded.street,
				house_number = excluded.house_number,
				postal_code = excluded.postal_code,
				city = excluded.city
			RETURNING id
		`, newID(a.ID), p.ID, a.Street, a.HouseNumber, a.PostalCode, a.City).Scan(&a.ID)
		if err != nil {
			return fmt.Errorf("upsert address: %w", err)
		}
	}
	if t := p.TravelPreferences; t != nil {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO travel_preferences (id, person_id, city_trip, beach_holiday, cruise, mountains, no_preference)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(person_id) DO UPDATE SET
				city_trip = excluded.city_trip,
				beach_holiday = excluded.beach_holiday,
				cruise = excluded.cruise,
				mountains = excluded.mountains,
				no_preference = excluded.no_preference
			RETURNING id
		`, newID(t.ID), p.ID, t.CityTrip, t.BeachHoliday, t.Cruise, t.Mountains, t.NoPreference).Scan(&t.ID)
		if err != nil {
			return fmt.Errorf("upsert travel preferences: %w", err)
		}
	}
	if m := p.MetaPreferences; m != nil {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO meta_preferences (id, person_id, smoking, drinking, religious)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(person_id) DO UPDATE SET
				smoking = excluded.smoking,
				drinking = excluded.drinking,
				religious = excluded.religious
			RETURNING id
		`, newID(m.ID), p.ID, m.Smoking, m.Drinking, m.Religious).Scan(&m.ID)
		if err != nil {
			return fmt.Errorf("upsert meta preferences: %w", err)
		}
	}
	if i := p.Interests; i != nil {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO interests (id, person_id, sport, board_games, cooking, club)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(person_id) DO UPDATE SET
				sport = excluded.sport,
				board_games = excluded.board_games,
				cooking = excluded.cooking,
				club = excluded.club
			RETURNING id
		`, newID(i.ID), p.ID, i.Sport, i.BoardGames, i.Cooking, i.Club).Scan(&i.ID)
		if err != nil {
			return fmt.Errorf("upsert interests: %w", err)
		}
	}
	if v := p.Verification; v != nil {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO verifications (id, person_id, passport_number, video_auth_bonus)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(person_id) DO UPDATE SET
				passport_number = excluded.passport_number,
				video_auth_bonus = excluded.video_auth_bonus
			RETURNING id
		`, newID(v.ID), p.ID, v.PassportNumber, v.VideoAuthBonus).Scan(&v.ID)
		if err != nil {
			return fmt.Errorf("upsert verification: %w", err)
		}
	}
	return nil
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

type rowScanner interface {
	Scan(dest ...any) error
}

type nullAddress struct {
	id, street, houseNumber, postalCode, city sql.NullString
}

func (a nullAddress) toDomain() *domain.Address {
	if !a.id.Valid {
		return nil
	}
	return &domain.Address{
		ID:          a.id.String,
		Street:      a.street.String,
		HouseNumber: a.houseNumber.String,
		PostalCode:  a.postalCode.String,
		City:        a.city.String,
	}
}

func scanPersonWithAddress(row rowScanner) (*domain.Person, error) {
	p := &domain.Person{}
	var a nullAddress
	if err := row.Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.BirthDate, &p.Email, &p.HashedPassword, &p.Gender,
		&a.id, &a.street, &a.houseNumber, &a.postalCode, &a.city,
	); err != nil {
		return nil, err
	}
	p.Address = a.toDomain()
	return p, nil
}
