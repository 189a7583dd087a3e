package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stokpilot/stokpilot/config"
	"github.com/stokpilot/stokpilot/internal/client/catalog"
	"github.com/stokpilot/stokpilot/internal/client/gateway"
	"github.com/stokpilot/stokpilot/internal/client/tui"
)

func main() {
	cfg := config.Load()

	// The terminal belongs to the UI; logs would tear the frames apart.
	slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	session := gateway.NewSession()
	gw := gateway.New(cfg.Client.ServerURL, session)
	ctrl := catalog.NewController(gw)

	model := tui.NewModel(gw, ctrl)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "stokcli: %v\n", err)
		os.Exit(1)
	}
}
