package storage

import (
	"context"
	"errors"
	"testing"

	"lg/nutrition-tracker-go-api/internal/nutrition"
)

func TestProfileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing profile returns defaults", func(t *testing.T) {
		p, err := NewProfileStore(NewMemoryKV()).Get(ctx)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if p != nutrition.DefaultProfile() {
			t.Errorf("Get = %+v, want defaults", p)
		}
	})

	t.Run("Set then Get round trips", func(t *testing.T) {
		store := NewProfileStore(NewMemoryKV())
		want := nutrition.Profile{
			Name: "Sam", Age: 41, Gender: nutrition.Male, Weight: 82.5, Height: 181,
			ActivityLevel: nutrition.VeryActive, Goal: nutrition.Gain,
		}
		if err := store.Set(ctx, want); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, err := store.Get(ctx)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got != want {
			t.Errorf("Get = %+v, want %+v", got, want)
		}
	})

	t.Run("Set rejects invalid profile without writing", func(t *testing.T) {
		kv := NewMemoryKV()
		bad := nutrition.DefaultProfile()
		bad.ActivityLevel = "couch"
		err := NewProfileStore(kv).Set(ctx, bad)
		if !errors.Is(err, nutrition.ErrInvalidProfile) {
			t.Errorf("Set err = %v, want ErrInvalidProfile", err)
		}
		if _, err := kv.Get(ctx, ProfileKey); !errors.Is(err, ErrNotFound) {
			t.Errorf("invalid profile was written, Get err = %v", err)
		}
	})

	t.Run("stored record uses camelCase keys", func(t *testing.T) {
		kv := NewMemoryKV()
		kv.Set(ctx, ProfileKey, []byte(`{"name":"Kim","age":25,"gender":"male","weight":60,"height":165,"activityLevel":"light","goal":"lose"}`))
		got, err := NewProfileStore(kv).Get(ctx)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Name != "Kim" || got.ActivityLevel != nutrition.Light || got.Goal != nutrition.Lose {
			t.Errorf("Get = %+v", got)
		}
	})

	t.Run("malformed or invalid record falls back to defaults", func(t *testing.T) {
		for _, raw := range []string{
			`not json`,
			`{"age":"thirty"}`,
			`{"name":"X","age":30,"gender":"female","weight":70,"height":170,"activityLevel":"extreme","goal":"maintain"}`,
		} {
			kv := NewMemoryKV()
			kv.Set(ctx, ProfileKey, []byte(raw))
			got, err := NewProfileStore(kv).Get(ctx)
			if err != nil {
				t.Fatalf("Get(%q): %v", raw, err)
			}
			if got != nutrition.DefaultProfile() {
				t.Errorf("Get(%q) = %+v, want defaults", raw, got)
			}
		}
	})
}
