package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnStringPrefersDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://user:pw@db.example.supabase.co:5432/postgres")
	t.Setenv("DB_HOST", "ignored")

	connStr, err := ConnString()
	require.NoError(t, err)
	require.Equal(t, "postgres://user:pw@db.example.supabase.co:5432/postgres", connStr)
}

func TestConnStringFromParts(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "pav")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "catalog")
	t.Setenv("DB_SSLMODE", "disable")

	connStr, err := ConnString()
	require.NoError(t, err)
	require.Equal(t, "host=localhost port=5432 user=pav password=secret dbname=catalog sslmode=disable", connStr)
}

func TestConnStringMissing(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")

	_, err := ConnString()
	require.Error(t, err)
}
