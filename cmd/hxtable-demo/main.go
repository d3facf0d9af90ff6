// Command hxtable-demo serves the users table on an Echo server.
package main

import (
	"encoding/hex"
	"flag"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	hxtableecho "github.com/pthm/hxtable/adapters/echo"
	"github.com/pthm/hxtable/config"
	"github.com/pthm/hxtable/table"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	configPath := flag.String("config", "", "path to hxtable.yaml (default: ./hxtable.yaml if present)")
	keyHex := flag.String("key", "", "hex-encoded state key (default: random)")
	firstLast := flag.Bool("first-last", false, "use first/last pagination")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("loading config", slog.Any("error", err))
		os.Exit(1)
	}

	var opts []hxtableecho.Option
	opts = append(opts, hxtableecho.WithLogger(logger))
	if *keyHex != "" {
		key, err := hex.DecodeString(*keyHex)
		if err != nil {
			logger.Error("decoding key", slog.Any("error", err))
			os.Exit(1)
		}
		opts = append(opts, hxtableecho.WithKey(key))
	}

	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	reg := hxtableecho.Mount(e, opts...)
	usersTable := newUsersTable(cfg, *firstLast, logger)
	reg.Add(usersTable)

	// Page route
	e.GET("/", func(c echo.Context) error {
		return hxtableecho.Render(c, page("Users", usersTable.View(table.State{})))
	})

	logger.Info("starting server", slog.String("addr", *addr))
	if err := e.Start(*addr); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadOptional(".")
}
