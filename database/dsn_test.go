package database

import (
	"net/url"
	"testing"

	"student-manager/config"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var awkwardCreds = config.Credentials{
	Host:     "db.local",
	User:     "max",
	Password: "p@ss/wo rd'\"",
	Database: "school",
}

func TestMySQLDSN(t *testing.T) {
	p, err := NewProvider(awkwardCreds, Options{Driver: DriverMySQL}, nil)
	require.NoError(t, err)

	cfg, err := mysql.ParseDSN(p.dsn())
	require.NoError(t, err)
	assert.Equal(t, "max", cfg.User)
	assert.Equal(t, awkwardCreds.Password, cfg.Passwd)
	assert.Equal(t, "db.local:3306", cfg.Addr)
	assert.Equal(t, "school", cfg.DBName)
	// rows matched, not rows changed
	assert.True(t, cfg.ClientFoundRows)
}

func TestPostgresDSN(t *testing.T) {
	p, err := NewProvider(awkwardCreds, Options{Driver: DriverPostgres, Port: 6543}, nil)
	require.NoError(t, err)

	u, err := url.Parse(p.dsn())
	require.NoError(t, err)
	pass, _ := u.User.Password()
	assert.Equal(t, awkwardCreds.Password, pass)
	assert.Equal(t, "max", u.User.Username())
	assert.Equal(t, "db.local:6543", u.Host)
	assert.Equal(t, "/school", u.Path)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))

	// lib/pq accepts it
	_, err = pq.ParseURL(p.dsn())
	assert.NoError(t, err)
}

func TestSQLiteDSNMode(t *testing.T) {
	p, err := NewProvider(config.Credentials{Database: "/tmp/s.db"}, Options{Driver: DriverSQLite}, nil)
	require.NoError(t, err)
	assert.Equal(t, "file:/tmp/s.db?mode=rw", p.dsn())
	assert.Equal(t, "file:/tmp/s.db?mode=rwc", p.WithCreate().dsn())
}
