package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/weapon-stats/internal/catalog"
	"github.com/atomicstack/weapon-stats/internal/i18n"
)

func TestPrepareDefaults(t *testing.T) {
	session, err := Prepare(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Category != "Assault Rifle" {
		t.Fatalf("expected default category, got %q", session.Category)
	}
	if session.Locale != i18n.EN {
		t.Fatalf("expected en, got %s", session.Locale)
	}
	if session.Dictionary != i18n.DefaultDictionary() {
		t.Fatalf("expected built-in dictionary")
	}
	if session.Source != catalog.DefaultSource {
		t.Fatalf("expected embedded source, got %q", session.Source)
	}
}

func TestNewModelStartsOnSessionState(t *testing.T) {
	session, err := Prepare(Config{Category: "Pistol", Locale: "pt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	model := NewModel(Config{TerminalWidth: 100, TerminalHeight: 30}, session)
	snap := model.Snapshot()
	if snap.Category() != "Pistol" || snap.Locale() != i18n.PT {
		t.Fatalf("expected Pistol/pt, got %s/%s", snap.Category(), snap.Locale())
	}
	if snap.Len() == 0 {
		t.Fatalf("expected pistols to be listed")
	}
}

func TestPrepareResolvesCategoryAndLocale(t *testing.T) {
	session, err := Prepare(Config{Category: "snip", Locale: "pt_BR.UTF-8"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Category != "Sniper Rifle" {
		t.Fatalf("expected Sniper Rifle, got %q", session.Category)
	}
	if session.Locale != i18n.PT {
		t.Fatalf("expected pt, got %s", session.Locale)
	}
}

func TestPrepareKeepsUnknownCategory(t *testing.T) {
	session, err := Prepare(Config{Category: "qqqq"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Category != "qqqq" {
		t.Fatalf("expected category kept verbatim, got %q", session.Category)
	}
	if got := session.Dataset.Weapons(session.Category); got != nil {
		t.Fatalf("expected no weapons, got %d", len(got))
	}
}

func TestPrepareRejectsBadInputs(t *testing.T) {
	if _, err := Prepare(Config{Locale: "de"}); err == nil {
		t.Fatalf("expected unsupported locale error")
	}
	if _, err := Prepare(Config{DataPath: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatalf("expected missing dataset error")
	}
	bad := filepath.Join(t.TempDir(), "dictionary.yaml")
	if err := os.WriteFile(bad, []byte("entries:\n  Dano:\n    fr: Dégâts\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Prepare(Config{DictionaryPath: bad}); err == nil {
		t.Fatalf("expected dictionary error")
	}
}

func TestPrepareMergesDictionaryOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.yaml")
	if err := os.WriteFile(path, []byte("entries:\n  Dano:\n    en: DMG\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	session, err := Prepare(Config{DictionaryPath: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := session.Dictionary.T("Dano", i18n.EN); got != "DMG" {
		t.Fatalf("expected override, got %q", got)
	}
	if got := session.Dictionary.T("Munição", i18n.EN); got != "Ammo" {
		t.Fatalf("expected built-in entries kept, got %q", got)
	}
}
