package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"student-manager/config"
	"student-manager/logger"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // драйвер PostgreSQL
	_ "github.com/mattn/go-sqlite3" // драйвер SQLite
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite3"
)

// Options is what the provider needs besides the credentials.
type Options struct {
	Driver  string
	Port    int // 0 = порт драйвера по умолчанию
	SSLMode string

	// CreateIfMissing lets sqlite create the database file. Only migrations set it.
	CreateIfMissing bool
}

// Provider opens one fresh connection per operation. There is no pool and
// no retry: every Connect returns a new handle the caller must Close.
type Provider struct {
	creds config.Credentials
	opts  Options
	log   *logger.Logger
}

func NewProvider(creds config.Credentials, opts Options, log *logger.Logger) (*Provider, error) {
	switch opts.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
	if creds.Database == "" {
		return nil, fmt.Errorf("database name is required")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Provider{creds: creds, opts: opts, log: log.Component("database")}, nil
}

// NewProviderFromConfig is the usual way to build a provider.
func NewProviderFromConfig(cfg *config.Config, log *logger.Logger) (*Provider, error) {
	return NewProvider(cfg.DB, Options{
		Driver:  cfg.DBDriver,
		Port:    cfg.DBPort,
		SSLMode: cfg.DBSSLMode,
	}, log)
}

func (p *Provider) Driver() string {
	return p.opts.Driver
}

// WithCreate returns a copy of the provider allowed to create a missing
// sqlite file. Other drivers are unaffected.
func (p *Provider) WithCreate() *Provider {
	cp := *p
	cp.opts.CreateIfMissing = true
	return &cp
}

// Connect opens and pings a single-connection handle.
func (p *Provider) Connect(ctx context.Context) (*sqlx.DB, error) {
	db, err := sqlx.Open(p.opts.Driver, p.dsn())
	if err != nil {
		return nil, &ConnectionError{Driver: p.opts.Driver, Err: err}
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	// Проверяем подключение
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &ConnectionError{Driver: p.opts.Driver, Err: err}
	}

	p.log.Debug("connection opened", map[string]interface{}{
		"driver": p.opts.Driver, "host": p.creds.Host, "database": p.creds.Database,
	})
	return db, nil
}

func (p *Provider) dsn() string {
	switch p.opts.Driver {
	case DriverMySQL:
		cfg := mysql.NewConfig()
		cfg.User = p.creds.User
		cfg.Passwd = p.creds.Password
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(p.creds.Host, strconv.Itoa(p.port(3306)))
		cfg.DBName = p.creds.Database
		// UPDATE с теми же значениями должен считаться найденной строкой
		cfg.ClientFoundRows = true
		return cfg.FormatDSN()
	case DriverSQLite:
		// Файл должен существовать: mode=rw не создает базу молча
		mode := "rw"
		if p.opts.CreateIfMissing {
			mode = "rwc"
		}
		return fmt.Sprintf("file:%s?mode=%s", p.creds.Database, mode)
	default:
		sslMode := p.opts.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(p.creds.User, p.creds.Password),
			Host:     net.JoinHostPort(p.creds.Host, strconv.Itoa(p.port(5432))),
			Path:     "/" + p.creds.Database,
			RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
		}
		return u.String()
	}
}

func (p *Provider) port(fallback int) int {
	if p.opts.Port > 0 {
		return p.opts.Port
	}
	return fallback
}
