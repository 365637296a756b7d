package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"staybook/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Connection splits reads from writes. Repositories query Read and mutate through Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	role     string
	host     string
	port     string
	username string
	password string
	database string
	sslMode  string
	timezone string
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	read := endpoint{
		role: "read", host: pg.Read.Host, port: pg.Read.Port,
		username: pg.Read.Username, password: pg.Read.Password,
		database: pg.Prefix + pg.Read.Name, sslMode: pg.Read.SSLMode, timezone: pg.Read.Timezone,
	}
	write := endpoint{
		role: "write", host: pg.Write.Host, port: pg.Write.Port,
		username: pg.Write.Username, password: pg.Write.Password,
		database: pg.Prefix + pg.Write.Name, sslMode: pg.Write.SSLMode, timezone: pg.Write.Timezone,
	}

	return &Connection{
		Read:  connect(cfg, read),
		Write: connect(cfg, write),
	}
}

func (e endpoint) dsn() string {
	query := url.Values{}
	query.Set("sslmode", e.sslMode)

	if e.timezone != "" {
		query.Set("timezone", e.timezone)
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(e.username, e.password),
		Host:     net.JoinHostPort(e.host, e.port),
		Path:     e.database,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// connect retries DB_POSTGRES_MAX_RETRY times and aborts the process when the database never answers.
func connect(cfg *config.Config, e endpoint) *sqlx.DB {
	pg := cfg.DB.Postgres
	attempts := max(1, pg.MaxRetry)
	logger := log.With().Str("role", e.role).Str("host", e.host).Str("port", e.port).Str("db", e.database).Logger()

	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect(driverName, e.dsn())
		if err == nil {
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetMaxIdleConns(pg.MaxIdleConns)
			db.SetConnMaxLifetime(time.Duration(pg.ConnMaxLifeMin) * time.Minute)

			logger.Info().Int("attempt", attempt).Msg("Connected to postgres")

			return db
		}

		lastErr = err
		logger.Warn().Err(err).Int("attempt", attempt).Int("of", attempts).Msg("Postgres not reachable yet")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	logger.Fatal().Err(lastErr).Msg("Giving up on postgres")

	return nil
}
