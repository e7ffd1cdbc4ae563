// Package database owns the MongoDB client.
//
// It handles:
//   - resolving the database name (config, then the URL path, then "test")
//   - connecting with a bounded timeout and pinging the primary
//   - wiring command logging (local env) and New Relic instrumentation (nrmongo)
//   - closing the client on shutdown
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/abacqu/people-api/internal/config"
	loggerConfig "github.com/abacqu/people-api/internal/logger"
	"github.com/newrelic/go-agent/v3/integrations/nrmongo"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// DefaultDatabaseName is what MongoDB drivers fall back to when neither
// config nor the connection string names a database.
const DefaultDatabaseName = "test"

// Database wraps the MongoDB client and the selected database.
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
	log    *zerolog.Logger
}

// New connects to MongoDB and pings it.
//
// The driver keeps its own pool and reconnects on its own; New only makes
// sure the first connection works so startup fails fast.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	cs, err := connstring.ParseAndValidate(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mongodb url: %w", err)
	}

	name := resolveDatabaseName(cfg.Database.Name, cs.Database)

	clientOpts := options.Client().
		ApplyURI(cfg.Database.URL).
		SetAppName(config.ServiceName)

	var monitor *event.CommandMonitor

	// Command logging is noisy, so only in local env.
	if cfg.Primary.Env == "local" {
		storageLogger := loggerConfig.NewStorageLogger(logger.GetLevel())
		monitor = NewCommandLogger(&storageLogger, cfg.Observability.Logging.SlowQueryThreshold)
	}

	// nrmongo wraps an existing monitor (or nil) so both run.
	if loggerService.GetApplication() != nil {
		monitor = nrmongo.NewCommandMonitor(monitor)
	}

	if monitor != nil {
		clientOpts.SetMonitor(monitor)
	}

	timeout := time.Duration(cfg.Database.ConnectTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongodb client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Str("database", name).Msg("connected to the database")

	return &Database{
		Client: client,
		DB:     client.Database(name),
		log:    logger,
	}, nil
}

func resolveDatabaseName(configured, fromURL string) string {
	switch {
	case configured != "":
		return configured
	case fromURL != "":
		return fromURL
	default:
		return DefaultDatabaseName
	}
}

// Collection returns a handle to the named collection.
func (db *Database) Collection(name string) *mongo.Collection {
	return db.DB.Collection(name)
}

// Ping checks the primary is reachable.
func (db *Database) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client, waiting for in-use connections until ctx
// is done.
func (db *Database) Close(ctx context.Context) error {
	db.log.Info().Msg("closing database connection")
	return db.Client.Disconnect(ctx)
}
