package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/sheet/internal/game/character"
)

// ErrCharacterNotFound is returned when a character lookup yields no results.
var ErrCharacterNotFound = errors.New("character not found")

// ErrCharacterNameTaken is returned when creating a character with a name that is already in use.
var ErrCharacterNameTaken = errors.New("character name already taken")

// CharacterRepository provides character persistence operations.
// The full record is stored as a JSONB document; name and level are
// lifted into columns for listing and indexing.
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a CharacterRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// Summary is the listing projection of a stored character.
type Summary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Create inserts a new character and returns it with ID and timestamps set.
//
// Precondition: c.Name must be non-empty.
// Postcondition: Returns the created character with a fresh UUID,
// or ErrCharacterNameTaken on duplicate name.
func (r *CharacterRepository) Create(ctx context.Context, c character.Character) (character.Character, error) {
	c.ID = uuid.NewString()
	doc, err := json.Marshal(c)
	if err != nil {
		return character.Character{}, fmt.Errorf("encoding character: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO characters (id, name, level, doc)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`,
		c.ID, c.Name, c.ClampedLevel(), doc,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return character.Character{}, ErrCharacterNameTaken
		}
		return character.Character{}, fmt.Errorf("inserting character: %w", err)
	}
	return c, nil
}

// GetByID retrieves a character by its primary key.
//
// Precondition: id must be a UUID string.
// Postcondition: Returns the Character or ErrCharacterNotFound.
func (r *CharacterRepository) GetByID(ctx context.Context, id string) (character.Character, error) {
	var (
		doc []byte
		c   character.Character
	)
	err := r.db.QueryRow(ctx, `
		SELECT doc, created_at, updated_at FROM characters WHERE id = $1`,
		id,
	).Scan(&doc, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return character.Character{}, ErrCharacterNotFound
		}
		return character.Character{}, fmt.Errorf("querying character: %w", err)
	}

	created, updated := c.CreatedAt, c.UpdatedAt
	if err := json.Unmarshal(doc, &c); err != nil {
		return character.Character{}, fmt.Errorf("decoding character %s: %w", id, err)
	}
	c.ID = id
	c.CreatedAt, c.UpdatedAt = created, updated
	return c, nil
}

// List returns summaries of all stored characters ordered by creation time.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *CharacterRepository) List(ctx context.Context) ([]Summary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, level FROM characters ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing characters: %w", err)
	}
	defer rows.Close()

	out := make([]Summary, 0)
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.Level); err != nil {
			return nil, fmt.Errorf("scanning character row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update replaces the stored document for the given character.
//
// Precondition: c.ID must be set.
// Postcondition: Returns the character with UpdatedAt refreshed,
// ErrCharacterNotFound if no row matched, or ErrCharacterNameTaken
// if renaming collides.
func (r *CharacterRepository) Update(ctx context.Context, c character.Character) (character.Character, error) {
	doc, err := json.Marshal(c)
	if err != nil {
		return character.Character{}, fmt.Errorf("encoding character: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		UPDATE characters SET name = $2, level = $3, doc = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`,
		c.ID, c.Name, c.ClampedLevel(), doc,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return character.Character{}, ErrCharacterNotFound
		}
		if isDuplicateKeyError(err) {
			return character.Character{}, ErrCharacterNameTaken
		}
		return character.Character{}, fmt.Errorf("updating character: %w", err)
	}
	return c, nil
}

// Delete removes a character by ID.
//
// Postcondition: Returns nil on success, ErrCharacterNotFound if no row matched.
func (r *CharacterRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM characters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting character: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCharacterNotFound
	}
	return nil
}

// isDuplicateKeyError checks if a pgx error is a unique constraint violation.
func isDuplicateKeyError(err error) bool {
	// pgx wraps PostgreSQL errors; check for SQLSTATE 23505 (unique_violation)
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}
