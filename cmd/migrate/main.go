package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/restaurant/backend/internal/infrastructure/config"
	"github.com/restaurant/backend/internal/infrastructure/logger"
	"github.com/restaurant/backend/internal/infrastructure/migration"
)

func main() {
	var (
		direction = flag.String("direction", "up", "Migration direction: up, down, version, force")
		steps     = flag.Int("steps", 0, "Number of migration steps (0 = all)")
		forceVer  = flag.Int("force-version", -1, "Version to force (for fixing dirty state)")
		path      = flag.String("path", "migrations", "Path to migration files")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	if cfg.Database.Driver != config.DriverPostgres {
		log.Fatal("Migrations require the postgres driver",
			zap.String("driver", cfg.Database.Driver))
	}

	migrator, err := migration.NewFromURL(cfg.Database.DSN(), *path, log)
	if err != nil {
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Error("Failed to close migrator", zap.Error(err))
		}
	}()

	switch *direction {
	case "up":
		if *steps > 0 {
			err = migrator.Steps(*steps)
		} else {
			err = migrator.Up()
		}
	case "down":
		if *steps > 0 {
			err = migrator.Steps(-*steps)
		} else {
			err = migrator.Down()
		}
	case "version":
		version, dirty, verr := migrator.Version()
		if verr != nil {
			log.Fatal("Failed to get version", zap.Error(verr))
		}
		log.Info("Current migration version",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty))
		return
	case "force":
		if *forceVer < 0 {
			log.Fatal("force requires -force-version")
		}
		err = migrator.Force(*forceVer)
	default:
		log.Fatal("Unknown direction", zap.String("direction", *direction))
	}

	if err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	log.Info("Migration completed")
}
