// Command migrate applies the SQL migrations under migrations/ to the
// configured database.
//
// Usage:
//
//	migrate up            apply all pending migrations
//	migrate down          roll back one migration
//	migrate version       print the current schema version
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/nyamoya/erp-backend/pkg/config"
	"github.com/nyamoya/erp-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	path := os.Getenv("MIGRATIONS_PATH")
	if path == "" {
		path = "migrations"
	}

	m, err := migrate.New("file://"+path, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("create migrator")
	}
	defer m.Close()

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "version":
		v, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			log.Fatal().Err(verr).Msg("read version")
		}
		fmt.Printf("version=%d dirty=%v\n", v, dirty)
		return
	default:
		log.Fatal().Str("command", cmd).Msg("unknown command (use: up, down, version)")
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Str("command", cmd).Msg("migration failed")
	}
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("nothing to apply")
		return
	}
	log.Info().Str("command", cmd).Msg("migrations applied")
}
