package main

import (
	"embed"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/knotbook/knot/pkg/style"
)

//go:embed all:frontend/dist
var assets embed.FS

const defaultBackendURL = "http://localhost:5001"

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	backendURL := os.Getenv("KNOT_BACKEND_URL")
	if backendURL == "" {
		backendURL = defaultBackendURL
	}

	resolver := style.NewResolver()
	if palettePath := os.Getenv("KNOT_PALETTE"); palettePath != "" {
		r, err := style.LoadPaletteFile(palettePath)
		if err != nil {
			logger.Error("palette file ignored", "path", palettePath, "err", err)
		} else {
			resolver = r
		}
	}

	app := NewApp(backendURL, resolver, logger)

	err := wails.Run(&options.App{
		Title:  "Knot",
		Width:  1280,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup: app.startup,
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		logger.Error("wails run failed", "err", err)
		os.Exit(1)
	}
}
