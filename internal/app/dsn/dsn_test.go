package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "boatyard")
	t.Setenv("DB_PASS", "pw")
	t.Setenv("DB_NAME", "fleet")

	assert.Equal(t, "host=db port=5432 user=boatyard password=pw dbname=fleet sslmode=disable", FromEnv())
}

func TestFromEnv_NoHost(t *testing.T) {
	t.Setenv("DB_HOST", "")
	assert.Empty(t, FromEnv())
}
