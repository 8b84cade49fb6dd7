package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testDefaults = `
default_variant: youtube
variants:
  - name: youtube
    endpoint: http://localhost:9778/search
    query_field: q
    items_key: Items
    items_required: true
  - name: keywords
    endpoint: http://localhost:9779/search
    query_field: keywords
    items_key: items
    echo_response: true
`

func TestLoadDefaultsAndFiles_DefaultsOnly(t *testing.T) {
	cfg, err := LoadDefaultsAndFiles([]byte(testDefaults), nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cfg.Variants) != 2 {
		t.Fatalf("want 2 variants, got %d", len(cfg.Variants))
	}
	v, err := cfg.Variant("")
	if err != nil {
		t.Fatalf("default variant: %v", err)
	}
	if v.Name != "youtube" || v.Endpoint != "http://localhost:9778/search" || !v.RequiresItems() {
		t.Fatalf("default variant not loaded correctly: %+v", v)
	}
	k, err := cfg.Variant("keywords")
	if err != nil {
		t.Fatalf("keywords variant: %v", err)
	}
	if k.QueryField != "keywords" || k.ItemsKey != "items" || k.RequiresItems() || !k.EchoesResponse() {
		t.Fatalf("keywords variant not loaded correctly: %+v", k)
	}
	if Get().DefaultVariant != "youtube" {
		t.Fatalf("current config not recorded")
	}
}

func TestLoadDefaultsAndFiles_OverlayVariant(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "user.yaml")
	os.WriteFile(f, []byte(`
variants:
  - name: youtube
    endpoint: http://search.internal:9778/search
    timeout: 5s
  - name: local
    endpoint: http://localhost:8080/search
    query_field: q
    items_key: items
telemetry:
  exporter_endpoint: localhost:4318
`), 0o644)

	cfg, err := LoadDefaultsAndFiles([]byte(testDefaults), []string{f})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cfg.Variants) != 3 {
		t.Fatalf("want 3 variants, got %d", len(cfg.Variants))
	}
	v, _ := cfg.Variant("youtube")
	if v.Endpoint != "http://search.internal:9778/search" {
		t.Fatalf("endpoint not overridden: %s", v.Endpoint)
	}
	if v.QueryField != "q" || v.ItemsKey != "Items" || !v.RequiresItems() {
		t.Fatalf("fields lost from defaults: %+v", v)
	}
	if v.Timeout.Std() != 5*time.Second {
		t.Fatalf("timeout not parsed: %v", v.Timeout.Std())
	}
	if cfg.Variants[2].Name != "local" {
		t.Fatalf("new variant should be appended, got %s", cfg.Variants[2].Name)
	}
	if cfg.Telemetry.ExporterEndpoint != "localhost:4318" {
		t.Fatalf("telemetry not merged: %+v", cfg.Telemetry)
	}
}

func TestLoadDefaultsAndFiles_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "a.yaml")
	f2 := filepath.Join(dir, "b.yml")
	os.WriteFile(f1, []byte(`
default_variant: keywords
variants:
  - name: keywords
    timeout: 3
`), 0o644)
	os.WriteFile(f2, []byte(`
variants:
  - name: keywords
    timeout: 10s
`), 0o644)
	cfg, err := LoadDefaultsAndFiles([]byte(testDefaults), []string{f2, f1, filepath.Join(dir, "notes.txt")})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	v, err := cfg.Variant("")
	if err != nil {
		t.Fatalf("variant: %v", err)
	}
	if v.Name != "keywords" {
		t.Fatalf("default variant not overridden: %s", v.Name)
	}
	if v.Timeout.Std() != 10*time.Second {
		t.Fatalf("b.yml should be applied after a.yaml, got %v", v.Timeout.Std())
	}
}

func TestLoadDefaultsAndFiles_DuplicateInFile_ErrorMentionsFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "dup.yaml")
	os.WriteFile(f, []byte(`
variants:
  - name: mine
    endpoint: http://localhost:1/search
  - name: mine
    endpoint: http://localhost:2/search
`), 0o644)
	_, err := LoadDefaultsAndFiles([]byte(testDefaults), []string{f})
	if err == nil {
		t.Fatalf("expected duplicate error")
	}
	if !strings.Contains(err.Error(), "dup.yaml") {
		t.Fatalf("error should mention the file, got: %v", err)
	}
}

func TestLoadDefaultsAndFiles_UnknownDefaultVariant(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "u.yaml")
	os.WriteFile(f, []byte("default_variant: nope\n"), 0o644)
	if _, err := LoadDefaultsAndFiles([]byte(testDefaults), []string{f}); err == nil {
		t.Fatalf("expected error for unknown default variant")
	}
}

func TestLoadDefaultsAndFiles_BadYAML(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "bad.yaml")
	os.WriteFile(f, []byte("variants: [\n"), 0o644)
	_, err := LoadDefaultsAndFiles([]byte(testDefaults), []string{f})
	if err == nil || !strings.Contains(err.Error(), "bad.yaml") {
		t.Fatalf("expected parse error naming the file, got: %v", err)
	}
}

func TestConfigVariant_Unknown(t *testing.T) {
	cfg := Config{Variants: []Variant{{Name: "youtube"}}}
	if _, err := cfg.Variant("other"); err == nil {
		t.Fatalf("expected unknown variant error")
	}
	v, err := cfg.Variant("")
	if err != nil || v.Name != "youtube" {
		t.Fatalf("first variant should be used without a default, got %+v %v", v, err)
	}
}
