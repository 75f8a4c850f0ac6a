package postgres

import (
	"testing"

	"f1-monk/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSNParses(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "monk",
		Password: "secret",
		DBName:   "f1_monk",
		SSLMode:  "disable",
	}

	parsed, err := pgxpool.ParseConfig(DSN(cfg))
	require.NoError(t, err)

	assert.Equal(t, "db", parsed.ConnConfig.Host)
	assert.Equal(t, uint16(5432), parsed.ConnConfig.Port)
	assert.Equal(t, "monk", parsed.ConnConfig.User)
	assert.Equal(t, "f1_monk", parsed.ConnConfig.Database)
}
