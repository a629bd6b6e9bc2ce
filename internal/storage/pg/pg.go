package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgres(ctx context.Context, logger *slog.Logger, postgresURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, postgresURL)
	if err != nil {
		return nil, fmt.Errorf("pg.NewPostgres: failed to create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg.NewPostgres: failed to ping: %w", err)
	}

	logger.Info("connected to postgres")

	return &Postgres{
		pool:   pool,
		logger: logger,
	}, nil
}

// Migrate applies pending schema migrations. ErrNoChange is not an error.
func (p *Postgres) Migrate(migrationsPath, postgresURL string) error {
	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), postgresURL)
	if err != nil {
		return fmt.Errorf("pg.Migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("pg.Migrate: %w", err)
	}

	p.logger.Info("migrations applied")
	return nil
}

func (p *Postgres) CloseConnection() {
	p.pool.Close()
}
