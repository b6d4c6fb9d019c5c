package main

import "testing"

func TestDescriptionFromFilename(t *testing.T) {
	cases := map[string]string{
		"2026-10-18-001-create-migrations-table.sql": "create migrations table",
		"2026-10-18-002-create-kv-store.sql":         "create kv store",
		"no-prefix.sql":                              "no prefix",
	}
	for in, want := range cases {
		if got := descriptionFromFilename(in); got != want {
			t.Errorf("descriptionFromFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
