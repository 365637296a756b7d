package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"staybook/config"
	"staybook/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

// Migration actions understood by Runner.
const (
	ActionUp      = "up"
	ActionDown    = "down"
	ActionStepUp  = "step-up"
	ActionDrop    = "drop"
	ActionVersion = "version"
)

var ErrUnknownAction = errors.New("unknown migration action")

var steps = map[string]func(*migrate.Migrate) error{
	ActionUp:      (*migrate.Migrate).Up,
	ActionDown:    func(m *migrate.Migrate) error { return m.Steps(-1) },
	ActionStepUp:  func(m *migrate.Migrate) error { return m.Steps(1) },
	ActionDrop:    (*migrate.Migrate).Down,
	ActionVersion: func(*migrate.Migrate) error { return nil },
}

func migrationDSN(cfg *config.Config) string {
	pg := cfg.DB.Postgres
	query := url.Values{}
	query.Set("sslmode", pg.Write.SSLMode)
	query.Set("x-migrations-table", pg.MigrationTable)

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pg.Write.Username, pg.Write.Password),
		Host:     net.JoinHostPort(pg.Write.Host, pg.Write.Port),
		Path:     pg.Prefix + pg.Write.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func newMigrator(cfg *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.Postgres, migrations.PostgresDir)
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, migrationDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}

	return mig, nil
}

// Runner applies one migration action against the write database.
func Runner(cfg *config.Config, action string) error {
	step, ok := steps[action]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownAction, action)
	}

	mig, err := newMigrator(cfg)
	if err != nil {
		return err
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("Failed to close migrator")
		}
	}()

	if err = step(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s: %w", action, err)
	}

	return logVersion(mig, action)
}

func logVersion(mig *migrate.Migrate, action string) error {
	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Info().Str("action", action).Msg("Database schema is empty")

		return nil
	}

	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database schema version")

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}
