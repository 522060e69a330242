package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/necromap/cavemap"
	"github.com/katalvlaran/necromap/grid"
)

// ErrNotFound indicates no map with the requested ID.
var ErrNotFound = errors.New("store: map not found")

// ErrCorrupt indicates a stored row whose labels disagree with its layout.
var ErrCorrupt = errors.New("store: stored labels do not match layout")

// Record describes one archived map without its cell data.
type Record struct {
	ID          string    `json:"map_id"`
	Name        string    `json:"name"`
	Height      int       `json:"height"`
	Width       int       `json:"width"`
	Seed        *int64    `json:"seed,omitempty"`
	OpenCount   int       `json:"open_count"`
	RegionCount int       `json:"region_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store provides persistence for generated maps.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and migrates it to
// the latest schema. Use ":memory:" only with a single connection.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := migrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Printf("[store] opened map archive %s", path)

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save archives m under name and returns its record with a fresh UUID.
func (s *Store) Save(ctx context.Context, name string, m *cavemap.Map) (Record, error) {
	layout, err := m.Grid().MarshalText()
	if err != nil {
		return Record{}, fmt.Errorf("save map: %w", err)
	}
	rec := Record{
		ID:          uuid.New().String(),
		Name:        name,
		Height:      m.Height(),
		Width:       m.Width(),
		OpenCount:   m.OpenCount(),
		RegionCount: len(m.Regions()),
		CreatedAt:   time.Now().UTC(),
	}
	if seed, ok := m.Seed(); ok {
		rec.Seed = &seed
	}

	query := `
		INSERT INTO maps (
			map_id, name, height, width, seed,
			open_count, region_count, layout, labels, created_at_ns
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = s.db.ExecContext(ctx, query,
		rec.ID,
		rec.Name,
		rec.Height,
		rec.Width,
		nullInt64(rec.Seed),
		rec.OpenCount,
		rec.RegionCount,
		string(layout),
		m.LabelText(),
		rec.CreatedAt.UnixNano(),
	)
	if err != nil {
		return Record{}, fmt.Errorf("insert map: %w", err)
	}
	return rec, nil
}

// Load rebuilds the map stored under id.
// Returns ErrNotFound for unknown IDs and ErrCorrupt when the stored label
// overlay differs from the one recomputed from the layout.
func (s *Store) Load(ctx context.Context, id string) (*cavemap.Map, Record, error) {
	query := `
		SELECT map_id, name, height, width, seed,
			open_count, region_count, created_at_ns, layout, labels
		FROM maps WHERE map_id = ?
	`
	var layout, labels string
	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, id), &layout, &labels)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, Record{}, fmt.Errorf("load map %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, Record{}, fmt.Errorf("load map %s: %w", id, err)
	}

	g, err := grid.ParseLayout(layout)
	if err != nil {
		return nil, Record{}, fmt.Errorf("load map %s: %w", id, err)
	}
	var opts []cavemap.Option
	if rec.Seed != nil {
		opts = append(opts, cavemap.WithSeed(*rec.Seed))
	}
	m := cavemap.FromGrid(g, opts...)

	stored, err := cavemap.ParseLabels(labels)
	if err != nil {
		return nil, Record{}, fmt.Errorf("load map %s: %w", id, err)
	}
	if !cmp.Equal(m.Labels(), stored) {
		return nil, Record{}, fmt.Errorf("load map %s: %w", id, ErrCorrupt)
	}

	return m, rec, nil
}

// List returns every archived map, oldest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	query := `
		SELECT map_id, name, height, width, seed,
			open_count, region_count, created_at_ns
		FROM maps ORDER BY created_at_ns ASC, map_id ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list maps: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list maps: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list maps: %w", err)
	}
	return out, nil
}

// Delete removes the map stored under id, or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM maps WHERE map_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete map %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete map %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete map %s: %w", id, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanRecord reads the record columns followed by any extra destinations.
func scanRecord(row scanner, extra ...any) (Record, error) {
	var (
		rec       Record
		seed      sql.NullInt64
		createdNs int64
	)
	dest := append([]any{
		&rec.ID, &rec.Name, &rec.Height, &rec.Width, &seed,
		&rec.OpenCount, &rec.RegionCount, &createdNs,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return Record{}, err
	}
	if seed.Valid {
		v := seed.Int64
		rec.Seed = &v
	}
	rec.CreatedAt = time.Unix(0, createdNs).UTC()
	return rec, nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
