// Package store persists the user profile and the last fortune record in a
// local key-value store (fyne Preferences in production). State survives
// restarts and is cleared only by explicit reset or corruption recovery.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/stacieblesley-tech/dailyluck/internal/config"
	"github.com/stacieblesley-tech/dailyluck/internal/engine"
)

// ErrCorrupt indicates a stored value could not be parsed back.
var ErrCorrupt = errors.New(config.ErrCorruptState)

// KeyValue is the minimal persistence contract. fyne.Preferences satisfies
// it; tests use an in-memory map.
type KeyValue interface {
	String(key string) string
	SetString(key, value string)
	RemoveValue(key string)
}

// Store owns the two persisted slots: user_profile and last_fortune.
type Store struct {
	prefs KeyValue
}

// New creates a Store over the given key-value backend.
func New(prefs KeyValue) *Store {
	return &Store{prefs: prefs}
}

// SaveProfile serializes the profile into its slot.
func (s *Store) SaveProfile(p *engine.UserProfile) {
	s.save(config.StoreKeyProfile, p)
}

// LoadProfile returns the stored profile, nil when none exists, or
// ErrCorrupt when the slot holds unparseable data.
func (s *Store) LoadProfile() (*engine.UserProfile, error) {
	var p engine.UserProfile
	ok, err := s.load(config.StoreKeyProfile, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

// SaveFortune replaces the cached fortune record wholesale.
func (s *Store) SaveFortune(r *engine.FortuneRecord) {
	s.save(config.StoreKeyFortune, r)
}

// LoadFortune returns the cached record, nil when none exists, or
// ErrCorrupt when the slot holds unparseable data.
func (s *Store) LoadFortune() (*engine.FortuneRecord, error) {
	var r engine.FortuneRecord
	ok, err := s.load(config.StoreKeyFortune, &r)
	if err != nil || !ok {
		return nil, err
	}
	return &r, nil
}

// Restore reconstructs startup state. Corrupt data under either key
// discards all persisted state and falls back to the unregistered state
// rather than crashing; the orphaned-fortune case (fortune without a
// profile) resolves to onboarding too.
func (s *Store) Restore() (*engine.UserProfile, *engine.FortuneRecord) {
	log := slog.With(config.LogKeyComponent, config.CompStore)

	profile, err := s.LoadProfile()
	if err != nil {
		log.Warn(config.MsgStateCorrupt, config.LogKeyKey, config.StoreKeyProfile, config.LogKeyError, err)
		s.Reset()
		return nil, nil
	}
	if profile == nil {
		return nil, nil
	}

	fortune, err := s.LoadFortune()
	if err != nil {
		log.Warn(config.MsgStateCorrupt, config.LogKeyKey, config.StoreKeyFortune, config.LogKeyError, err)
		s.Reset()
		return nil, nil
	}

	log.Info(config.MsgStateRestored, config.LogKeyName, profile.Name)
	return profile, fortune
}

// Reset clears both slots.
func (s *Store) Reset() {
	s.prefs.RemoveValue(config.StoreKeyProfile)
	s.prefs.RemoveValue(config.StoreKeyFortune)
	slog.Info(config.MsgStateReset, config.LogKeyComponent, config.CompStore)
}

func (s *Store) save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		// Marshalling these plain structs cannot realistically fail; log
		// instead of propagating so callers stay write-and-forget like the
		// underlying Preferences API.
		slog.Error(config.ErrCorruptState,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return
	}
	s.prefs.SetString(key, string(data))
}

func (s *Store) load(key string, v any) (bool, error) {
	raw := s.prefs.String(key)
	if raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return true, nil
}
