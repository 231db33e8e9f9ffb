package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/jontraum/ZilGmor/internal/config"
	"github.com/jontraum/ZilGmor/internal/sefaria"
	"github.com/jontraum/ZilGmor/internal/settings"
	"github.com/jontraum/ZilGmor/internal/tui"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	book := flag.String("book", "", "open this book directly (eg. Taanit)")
	settingsPath := flag.String("settings", cfg.SettingsPath, "path to the settings JSON file")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	flag.Parse()

	absPath, err := filepath.Abs(*settingsPath)
	if err != nil {
		fmt.Println("failed to resolve settings path:", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		fmt.Println("failed to create settings directory:", err)
		os.Exit(1)
	}

	if cfg.Debug {
		logFile, err := tea.LogToFile("zilgmor-debug.log", "zilgmor")
		if err != nil {
			fmt.Println("failed to open debug log:", err)
			os.Exit(1)
		}
		defer logFile.Close()
	}

	client := sefaria.NewClient(
		sefaria.WithBaseURL(cfg.APIBaseURL),
		sefaria.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second}),
	)
	store := settings.NewStore(absPath)

	opts := []tea.ProgramOption{}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Fetcher:     client,
			Store:       store,
			InitialBook: *book,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}
