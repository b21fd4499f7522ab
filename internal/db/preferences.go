package db

import (
	"encoding/json"
	"log"

	"github.com/tgienger/lifeos/internal/query"
)

const (
	SettingFilterSpec = "filter_spec"
	SettingLastView   = "last_view"
)

// SaveSpec persists the active filter selection
func (db *DB) SaveSpec(spec query.Spec) error {
	b, err := json.Marshal(spec)
	if err != nil {
		return err
	}
	return db.SetSetting(SettingFilterSpec, string(b))
}

// LoadSpec returns the persisted filter selection, or the default one when
// nothing has been saved. Unreadable values fall back to the default.
func (db *DB) LoadSpec() (query.Spec, error) {
	raw, err := db.GetSetting(SettingFilterSpec)
	if err != nil {
		return query.DefaultSpec(), err
	}
	if raw == "" {
		return query.DefaultSpec(), nil
	}

	var spec query.Spec
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		log.Printf("discarding stored filter: %v", err)
		return query.DefaultSpec(), nil
	}
	return spec.Normalize(), nil
}

// ResetSpec forgets the persisted filter selection
func (db *DB) ResetSpec() error {
	return db.DeleteSetting(SettingFilterSpec)
}
