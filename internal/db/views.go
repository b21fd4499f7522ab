package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tgienger/lifeos/internal/query"
)

var (
	ErrViewNotFound = errors.New("saved view not found")
	ErrViewName     = errors.New("saved view name is required")
)

// SavedView is a named filter preset
type SavedView struct {
	ID        int64      `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Spec      query.Spec `json:"spec" yaml:"spec"`
	CreatedAt time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" yaml:"updated_at"`
}

const viewColumns = `id, name, completion, domains, deadline_window, sort_mode, search, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanView(row scanner) (*SavedView, error) {
	var (
		v       SavedView
		domains string
	)
	err := row.Scan(&v.ID, &v.Name, &v.Spec.Completion, &domains, &v.Spec.Window, &v.Spec.Sort, &v.Spec.Search, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(domains), &v.Spec.Domains); err != nil {
		v.Spec.Domains = nil
	}
	v.Spec = v.Spec.Normalize()
	return &v, nil
}

func encodeDomains(domains []string) (string, error) {
	if domains == nil {
		domains = []string{}
	}
	b, err := json.Marshal(domains)
	return string(b), err
}

// CreateView stores spec under name
func (db *DB) CreateView(name string, spec query.Spec) (*SavedView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrViewName
	}
	domains, err := encodeDomains(spec.Domains)
	if err != nil {
		return nil, err
	}

	result, err := db.Exec(`
		INSERT INTO saved_views (name, completion, domains, deadline_window, sort_mode, search)
		VALUES (?, ?, ?, ?, ?, ?)
	`, name, spec.Completion, domains, spec.Window, spec.Sort, spec.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to save view %q: %w", name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return db.GetView(id)
}

// GetView retrieves a saved view by ID
func (db *DB) GetView(id int64) (*SavedView, error) {
	v, err := scanView(db.QueryRow(`SELECT `+viewColumns+` FROM saved_views WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrViewNotFound
	}
	return v, err
}

// GetViewByName retrieves a saved view by its unique name
func (db *DB) GetViewByName(name string) (*SavedView, error) {
	v, err := scanView(db.QueryRow(`SELECT `+viewColumns+` FROM saved_views WHERE name = ?`, strings.TrimSpace(name)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrViewNotFound, name)
	}
	return v, err
}

// ListViews returns all saved views ordered by name
func (db *DB) ListViews() ([]SavedView, error) {
	rows, err := db.Query(`SELECT ` + viewColumns + ` FROM saved_views ORDER BY name COLLATE NOCASE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []SavedView
	for rows.Next() {
		v, err := scanView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, rows.Err()
}

// UpdateView replaces the filter stored in a saved view
func (db *DB) UpdateView(id int64, spec query.Spec) error {
	domains, err := encodeDomains(spec.Domains)
	if err != nil {
		return err
	}
	result, err := db.Exec(`
		UPDATE saved_views
		SET completion = ?, domains = ?, deadline_window = ?, sort_mode = ?, search = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, spec.Completion, domains, spec.Window, spec.Sort, spec.Search, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// SaveView creates name, or overwrites its filter if it already exists
func (db *DB) SaveView(name string, spec query.Spec) (*SavedView, error) {
	existing, err := db.GetViewByName(name)
	if errors.Is(err, ErrViewNotFound) {
		return db.CreateView(name, spec)
	}
	if err != nil {
		return nil, err
	}
	if err := db.UpdateView(existing.ID, spec); err != nil {
		return nil, err
	}
	return db.GetView(existing.ID)
}

// DeleteView deletes a saved view by name
func (db *DB) DeleteView(name string) error {
	result, err := db.Exec("DELETE FROM saved_views WHERE name = ?", strings.TrimSpace(name))
	if err != nil {
		return err
	}
	if err := requireRow(result); err != nil {
		return fmt.Errorf("%w: %q", err, name)
	}
	return nil
}

// ViewCount returns the number of saved views
func (db *DB) ViewCount() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM saved_views").Scan(&count)
	return count, err
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrViewNotFound
	}
	return nil
}
