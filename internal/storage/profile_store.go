package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"lg/nutrition-tracker-go-api/internal/nutrition"
)

// ProfileStore reads and writes the single profile record.
type ProfileStore struct {
	kv KV
}

func NewProfileStore(kv KV) *ProfileStore {
	return &ProfileStore{kv: kv}
}

// Get returns the saved profile. A missing, unreadable or invalid record falls
// back to nutrition.DefaultProfile; only backend failures are returned as errors.
func (s *ProfileStore) Get(ctx context.Context) (nutrition.Profile, error) {
	raw, err := s.kv.Get(ctx, ProfileKey)
	if errors.Is(err, ErrNotFound) {
		return nutrition.DefaultProfile(), nil
	}
	if err != nil {
		return nutrition.Profile{}, fmt.Errorf("failed to load profile: %w", err)
	}

	var p nutrition.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		slog.Warn("Stored profile is malformed, using defaults", "error", err)
		return nutrition.DefaultProfile(), nil
	}
	if err := p.Validate(); err != nil {
		slog.Warn("Stored profile is invalid, using defaults", "error", err)
		return nutrition.DefaultProfile(), nil
	}
	return p, nil
}

// Set validates p and overwrites the stored record.
func (s *ProfileStore) Set(ctx context.Context, p nutrition.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := s.kv.Set(ctx, ProfileKey, raw); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
