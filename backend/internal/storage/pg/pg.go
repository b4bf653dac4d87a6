package pg

import (
	"context"
	"database/sql"
	"embed"

	"github.com/itchan-dev/forum-api/shared/config"
	"github.com/itchan-dev/forum-api/shared/logger"
	sharedpg "github.com/itchan-dev/forum-api/shared/storage/pg"

	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Storage struct {
	db *sql.DB
}

func New(ctx context.Context, cfg config.Pg) (*Storage, error) {
	logger.Log.Info("connecting to postgres", "host", cfg.Host, "port", cfg.Port, "dbname", cfg.Dbname)
	db, err := sharedpg.Connect(ctx, cfg, sharedpg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to postgres")
	return &Storage{db: db}, nil
}

// Migrate brings the schema up to date.
func (s *Storage) Migrate() error {
	return sharedpg.Migrate(s.db, migrations, "migrations")
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}
