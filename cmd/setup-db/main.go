package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"solene-digital.backend/internal/config"
	"solene-digital.backend/internal/infrastructure/datasources"
	"solene-digital.backend/internal/infrastructure/repositories"
	"solene-digital.backend/internal/usecases"
)

type setupRuntime interface {
	Migrate() error
	Seed(ctx context.Context) (usecases.SeedReport, error)
}

type setupDeps struct {
	loadEnv func() error
	loadCfg func() (*config.Config, error)
	prepare func(cfg *config.Config) (setupRuntime, io.Closer, error)
	out     io.Writer
}

type setupRuntimeImpl struct {
	db   *gorm.DB
	seed *usecases.SeedUsecase
}

func (r setupRuntimeImpl) Migrate() error {
	return datasources.Migrate(r.db)
}

func (r setupRuntimeImpl) Seed(ctx context.Context) (usecases.SeedReport, error) {
	return r.seed.Seed(ctx)
}

type dbCloser struct{ db *gorm.DB }

func (c dbCloser) Close() error { return datasources.Close(c.db) }

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultSetupDeps() setupDeps {
	return setupDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (setupRuntime, io.Closer, error) {
			db, err := datasources.NewConnection(cfg.Database)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}
			data, err := usecases.DefaultSeedData()
			if err != nil {
				_ = datasources.Close(db)
				return nil, nil, err
			}
			storage := repositories.NewStorage(db)
			return setupRuntimeImpl{
				db:   db,
				seed: usecases.NewSeedUsecase(storage, storage, data, nil),
			}, dbCloser{db: db}, nil
		},
		out: os.Stdout,
	}
}

// runSetupDB creates the tables and, unless -skip-seed is given, inserts the
// default content into empty tables.
func runSetupDB(args []string, deps setupDeps) error {
	def := defaultSetupDeps()
	if deps.loadEnv == nil {
		deps.loadEnv = def.loadEnv
	}
	if deps.loadCfg == nil {
		deps.loadCfg = def.loadCfg
	}
	if deps.prepare == nil {
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = def.out
	}

	fs := flag.NewFlagSet("setup-db", flag.ContinueOnError)
	skipSeed := fs.Bool("skip-seed", false, "only create tables")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := deps.loadCfg()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	runtime, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	if err := runtime.Migrate(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(deps.out, "Database tables ready")

	if *skipSeed {
		return nil
	}

	report, err := runtime.Seed(context.Background())
	if err != nil {
		return fmt.Errorf("failed seeding defaults: %w", err)
	}
	_, _ = fmt.Fprintf(deps.out, "services_inserted=%d\n", report.ServicesInserted)
	_, _ = fmt.Fprintf(deps.out, "team_inserted=%d\n", report.TeamInserted)
	return nil
}

func main() {
	if err := runSetupDB(os.Args[1:], defaultSetupDeps()); err != nil {
		log.Fatal(err)
	}
}
