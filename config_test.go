package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Maishelbayeh/BringUs-sub000/datatable"
)

func TestUIConfigRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, path := loadUIConfig()
	cfg.Lang = "ar"
	cfg.Direction = "rtl"
	cfg.setScreenColumns("products", map[string]bool{"updated": true, "price": false})
	if err := saveUIConfig(cfg, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, _ := loadUIConfig()
	if loaded.Lang != "ar" || loaded.Direction != "rtl" {
		t.Fatalf("loaded = %+v", loaded)
	}
	hidden := loaded.screenColumns("products")
	if hidden == nil || !hidden["updated"] || hidden["price"] {
		t.Fatalf("columns = %v", hidden)
	}
}

func TestLoadUIConfigToleratesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "bringus-admin", "ui.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(":\tnot yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ := loadUIConfig()
	if cfg == nil || cfg.Lang != "" {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestSetScreenColumnsCopiesInput(t *testing.T) {
	cfg := &uiConfig{}
	src := map[string]bool{"a": true}
	cfg.setScreenColumns("orders", src)
	src["a"] = false
	if !cfg.screenColumns("orders")["a"] {
		t.Fatal("stored map aliases caller's map")
	}
}

func TestResolveLanguage(t *testing.T) {
	cfg := &uiConfig{Lang: "ar"}
	lang, dir := resolveLanguage("", cfg)
	if lang != datatable.LangAr || dir != datatable.DirectionRTL {
		t.Fatalf("saved preference ignored: %v %v", lang, dir)
	}
	lang, dir = resolveLanguage("en", cfg)
	if lang != datatable.LangEn || dir != datatable.DirectionLTR {
		t.Fatalf("flag should win: %v %v", lang, dir)
	}
	lang, _ = resolveLanguage("AR", &uiConfig{})
	if lang != datatable.LangAr {
		t.Fatalf("flag should be case-insensitive: %v", lang)
	}
}
