package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Maishelbayeh/BringUs-sub000/datatable"
	"github.com/Maishelbayeh/BringUs-sub000/internal/catalog"
)

func main() {
	theme := flag.String("theme", "auto", "Markdown rendering theme: auto, light, or dark")
	langFlag := flag.String("lang", "", "UI language: en or ar (defaults to saved preference)")
	storePath := flag.String("store", "", "Path to the catalog sqlite file")
	exportDir := flag.String("export-dir", ".", "Directory for CSV/XLSX exports")
	flag.Parse()

	cfg, cfgPath := loadUIConfig()
	themeValue := strings.TrimSpace(*theme)
	if themeValue == "" || themeValue == "auto" {
		if cfg.Theme != "" {
			themeValue = cfg.Theme
		}
	} else if cfg.Theme != themeValue {
		cfg.Theme = themeValue
		_ = saveUIConfig(cfg, cfgPath)
	}
	setMarkdownTheme(markdownThemeFromString(themeValue))

	lang, direction := resolveLanguage(*langFlag, cfg)

	path := strings.TrimSpace(*storePath)
	if path == "" {
		path = filepath.Join(resolveConfigDir(), "catalog.sqlite")
	}
	store, err := catalog.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer store.Close()
	if err := store.SeedIfEmpty(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	telemetry := newTelemetryLogger(
		filepath.Join(resolveConfigDir(), "telemetry.ndjson"),
		newTelemetrySessionID(),
		resolveTelemetryUserID(),
	)
	telemetry.Emit(telemetryEvent{Event: "session_start"})

	if _, err := tea.NewProgram(
		newModel(store, cfg, cfgPath, lang, direction, *exportDir, telemetry),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func resolveLanguage(flagValue string, cfg *uiConfig) (datatable.Lang, datatable.TextDirection) {
	value := strings.ToLower(strings.TrimSpace(flagValue))
	if value == "" {
		value = cfg.Lang
	}
	if value == "ar" {
		return datatable.LangAr, datatable.DirectionRTL
	}
	return datatable.LangEn, datatable.DirectionLTR
}
