package postgres

import (
	"testing"
	"time"

	"skill-swap/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	got := DSN(config.DatabaseConfig{
		DBHost:     " localhost ",
		DBPort:     "5432",
		DBUser:     "swap",
		DBPassword: "secret",
		DBName:     "skillswap",
		DBSSLMode:  "disable",
	})
	assert.Equal(t, "host=localhost port=5432 user=swap password=secret dbname=skillswap sslmode=disable", got)
}

func TestDSN_QuotesPassword(t *testing.T) {
	got := DSN(config.DatabaseConfig{DBHost: "h", DBPort: "1", DBUser: "u", DBPassword: `it's a pass`, DBName: "d"})
	assert.Equal(t, `host=h port=1 user=u password='it\'s a pass' dbname=d`, got)

	pcfg, err := pgxpool.ParseConfig(got)
	require.NoError(t, err)
	assert.Equal(t, `it's a pass`, pcfg.ConnConfig.Password)
}

func TestApplyPoolSettings(t *testing.T) {
	pcfg, err := pgxpool.ParseConfig("host=h port=1 user=u password=p dbname=d")
	require.NoError(t, err)

	applyPoolSettings(pcfg, config.DatabaseConfig{
		ConnectTimeout:      2 * time.Second,
		PoolMaxConns:        7,
		PoolMaxConnLifetime: time.Minute,
	})
	assert.Equal(t, 2*time.Second, pcfg.ConnConfig.ConnectTimeout)
	assert.Equal(t, int32(7), pcfg.MaxConns)
	assert.Equal(t, time.Minute, pcfg.MaxConnLifetime)
}
