// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFlattenYAML(t *testing.T) {
	keys := make(map[string]struct{})
	flattenYAML("", map[string]any{
		"status.saved": "x",
		"top":          map[string]any{"sub": "v"},
	}, keys)
	if got := sortedKeys(keys); !reflect.DeepEqual(got, []string{"status.saved", "top.sub"}) {
		t.Fatalf("unexpected keys %v", got)
	}
}

func TestLint_ReportsMissingAndOrphaned(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ui", "a.go"), `package ui
func f() { _ = i18n.T("prompt"); _ = i18n.T("status.saved", "x") }`)
	writeFile(t, filepath.Join(dir, "ui", "a_test.go"), `package ui
func g() { _ = i18n.T("only.in.tests") }`)
	writeFile(t, filepath.Join(dir, "tools", "x.go"), `package x
func h() { _ = i18n.T("ignored.tool") }`)
	locales := filepath.Join(dir, "locales")
	writeFile(t, filepath.Join(locales, "en.yaml"), "prompt: a\nstatus.saved: b\nold.key: c\n")
	writeFile(t, filepath.Join(locales, "de.yaml"), "prompt: a\n")

	r, err := lint(dir, locales)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if !reflect.DeepEqual(r.Used, []string{"prompt", "status.saved"}) {
		t.Fatalf("unexpected used keys %v", r.Used)
	}
	if !reflect.DeepEqual(r.Orphaned, []string{"old.key"}) {
		t.Fatalf("unexpected orphans %v", r.Orphaned)
	}
	if !reflect.DeepEqual(r.Missing["de.yaml"], []string{"old.key", "status.saved"}) {
		t.Fatalf("unexpected missing keys %v", r.Missing)
	}
	if _, ok := r.Missing["en.yaml"]; ok || !r.failed() {
		t.Fatalf("unexpected report %+v", r)
	}
}

func TestLint_ProjectLocalesAreConsistent(t *testing.T) {
	r, err := lint(filepath.Join("..", ".."), filepath.Join("..", "..", localesDir))
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if r.failed() || len(r.Orphaned) != 0 {
		t.Fatalf("locale files out of sync: %+v", r)
	}
}
