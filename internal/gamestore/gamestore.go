// Package gamestore provides optional SQLite-backed persistence for
// finished games, for the CLI's --save flag (spec §10.6). The engine
// itself never depends on this package; an Assembler result is a plain
// domain.Game whether or not it ever gets saved.
package gamestore

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"crosswordlayout/internal/domain"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrNotFound is returned when no game exists for a given ID.
var ErrNotFound = errors.New("gamestore: not found")

// Store is a SQLite-backed repository of finished games.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) a SQLite database at dsn. Use
// ":memory:" for an ephemeral store.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("gamestore: opening database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("gamestore: enabling foreign keys: %w", err)
	}
	if !strings.Contains(dsn, ":memory:") {
		if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("gamestore: enabling WAL mode: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Migrate applies the store's schema.
func (s *Store) Migrate(ctx context.Context) error {
	sqlBytes, err := migrationsFS.ReadFile("migrations/001_initial.sql")
	if err != nil {
		return fmt.Errorf("gamestore: reading migration: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, string(sqlBytes)); err != nil {
		return fmt.Errorf("gamestore: applying migration: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists a game, overwriting any existing row with the same ID.
func (s *Store) Save(ctx context.Context, g *domain.Game) error {
	payload, err := json.Marshal(toDTO(g))
	if err != nil {
		return fmt.Errorf("gamestore: marshaling game: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO games (id, language, payload, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			language = excluded.language,
			payload = excluded.payload,
			created_at = excluded.created_at
	`, g.ID, g.Language, payload, g.CreatedAt)
	if err != nil {
		return fmt.Errorf("gamestore: saving game: %w", err)
	}
	return nil
}

// Get retrieves a game by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Game, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM games WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("gamestore: getting game: %w", err)
	}

	var dto gameDTO
	if err := json.Unmarshal(payload, &dto); err != nil {
		return nil, fmt.Errorf("gamestore: unmarshaling game: %w", err)
	}
	return dto.toDomain(), nil
}

// gameDTO is the JSON-friendly shape of a domain.Game: domain.Grid.Cells
// is a [][]rune, which encoding/json would otherwise render as nested
// arrays of code points.
type gameDTO struct {
	ID          string               `json:"id"`
	Language    string               `json:"language"`
	GridWidth   int                  `json:"grid_width"`
	GridHeight  int                  `json:"grid_height"`
	Rows        []string             `json:"rows"`
	PlacedWords []domain.PlacedWord  `json:"placed_words"`
	Clues       []domain.Clue        `json:"clues"`
	CreatedAt   time.Time            `json:"created_at"`
}

func toDTO(g *domain.Game) gameDTO {
	rows := make([]string, g.Grid.Height)
	for y, row := range g.Grid.Cells {
		rows[y] = string(row)
	}
	return gameDTO{
		ID:          g.ID,
		Language:    g.Language,
		GridWidth:   g.Grid.Width,
		GridHeight:  g.Grid.Height,
		Rows:        rows,
		PlacedWords: g.Grid.PlacedWords,
		Clues:       g.Clues,
		CreatedAt:   g.CreatedAt,
	}
}

func (d gameDTO) toDomain() *domain.Game {
	grid := domain.NewGrid(d.GridWidth, d.GridHeight)
	for y, row := range d.Rows {
		for x, r := range []rune(row) {
			grid.Set(x, y, r)
		}
	}
	grid.PlacedWords = d.PlacedWords

	return &domain.Game{
		ID:        d.ID,
		Language:  d.Language,
		Grid:      grid,
		Clues:     d.Clues,
		CreatedAt: d.CreatedAt,
	}
}
