package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"lg/nutrition-tracker-go-api/internal/nutrition"
)

// NewFoodEntry is the input to FoodLog.Add. Macros left nil are stored as 0.
type NewFoodEntry struct {
	Name     string
	Calories float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
	Date     nutrition.DateOnly
}

// FoodLog is the flat collection of food entries across every date. Each
// mutation rewrites the whole collection.
type FoodLog struct {
	kv    KV
	newID func() string

	// mu serializes read-modify-write cycles; handlers run concurrently.
	mu sync.Mutex
}

func NewFoodLog(kv KV) *FoodLog {
	return &FoodLog{kv: kv, newID: func() string { return uuid.New().String() }}
}

// All returns every entry in insertion order. A malformed stored log reads as empty.
func (l *FoodLog) All(ctx context.Context) ([]nutrition.FoodEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(ctx)
}

// Add appends an entry and persists the log. A blank name or non-positive
// calories is a no-op: ok is false and nothing is written.
func (l *FoodLog) Add(ctx context.Context, in NewFoodEntry) (entry nutrition.FoodEntry, ok bool, err error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Calories <= 0 {
		return nutrition.FoodEntry{}, false, nil
	}

	entry = nutrition.FoodEntry{
		ID:       l.newID(),
		Name:     name,
		Calories: in.Calories,
		Protein:  valueOrZero(in.Protein),
		Carbs:    valueOrZero(in.Carbs),
		Fat:      valueOrZero(in.Fat),
		Date:     in.Date,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	entries, err := l.load(ctx)
	if err != nil {
		return nutrition.FoodEntry{}, false, err
	}
	if err := l.save(ctx, append(entries, entry)); err != nil {
		return nutrition.FoodEntry{}, false, err
	}
	return entry, true, nil
}

// Remove deletes the entry with the given id. An unknown id is a no-op and
// reports removed=false without writing.
func (l *FoodLog) Remove(ctx context.Context, id string) (removed bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries, err := l.load(ctx)
	if err != nil {
		return false, err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return false, nil
	}
	return true, l.save(ctx, kept)
}

func (l *FoodLog) load(ctx context.Context) ([]nutrition.FoodEntry, error) {
	raw, err := l.kv.Get(ctx, FoodLogKey)
	if errors.Is(err, ErrNotFound) {
		return []nutrition.FoodEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load food log: %w", err)
	}

	var entries []nutrition.FoodEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		slog.Warn("Stored food log is malformed, starting empty", "error", err)
		return []nutrition.FoodEntry{}, nil
	}
	if entries == nil {
		entries = []nutrition.FoodEntry{}
	}
	return entries, nil
}

func (l *FoodLog) save(ctx context.Context, entries []nutrition.FoodEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode food log: %w", err)
	}
	if err := l.kv.Set(ctx, FoodLogKey, raw); err != nil {
		return fmt.Errorf("failed to save food log: %w", err)
	}
	return nil
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
