package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"maizonmarie_server/structs"
)

// snapshotRow is the one-row KV cell the Postgres backend keeps the payload in.
type snapshotRow struct {
	tableName struct{}  `bun:"table:state_snapshots,alias:ss"`
	Key       string    `bun:"key,pk" json:"key"`
	Payload   []byte    `bun:"payload,notnull" json:"payload"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

type postgresGateway struct {
	logger *gecho.Logger
	config *structs.Config
	db     *bun.DB
}

func newPostgresGateway(logger *gecho.Logger, cfg *structs.Config) (*postgresGateway, error) {
	dbCfg := cfg.Database

	connector := pgdriver.NewConnector(
		pgdriver.WithAddr(fmt.Sprintf("%s:%d", dbCfg.Host, dbCfg.Port)),
		pgdriver.WithUser(dbCfg.User),
		pgdriver.WithPassword(dbCfg.Password),
		pgdriver.WithDatabase(dbCfg.Name),
		pgdriver.WithInsecure(true),
		pgdriver.WithReadTimeout(dbCfg.ReadTimeout),
		pgdriver.WithWriteTimeout(dbCfg.WriteTimeout),
	)

	sqldb := sql.OpenDB(connector)
	sqldb.SetMaxOpenConns(dbCfg.MaxConns)

	db := bun.NewDB(sqldb, pgdialect.New())

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.NewCreateTable().
		Model((*snapshotRow)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure snapshot table: %w", err)
	}

	logger.Info("Connected to database successfully")

	return &postgresGateway{
		logger: logger,
		config: cfg,
		db:     db,
	}, nil
}

func (g *postgresGateway) Load(ctx context.Context) ([]byte, error) {
	row := new(snapshotRow)

	err := g.db.NewSelect().
		Model(row).
		Where("key = ?", g.config.Store.SnapshotKey).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return row.Payload, nil
}

func (g *postgresGateway) Save(ctx context.Context, payload []byte) error {
	row := &snapshotRow{
		Key:       g.config.Store.SnapshotKey,
		Payload:   payload,
		UpdatedAt: time.Now().UTC(),
	}

	_, err := g.db.NewInsert().
		Model(row).
		On("CONFLICT (key) DO UPDATE").
		Set("payload = EXCLUDED.payload").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (g *postgresGateway) Ping(ctx context.Context) error {
	return g.db.PingContext(ctx)
}

func (g *postgresGateway) Close() error {
	return g.db.Close()
}
