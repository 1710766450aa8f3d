package pkg

import (
	"testing"

	"boatyard/internal/app/config"

	"github.com/stretchr/testify/assert"
)

func TestApplication_Address(t *testing.T) {
	app := NewApp(&config.Config{ServiceHost: "0.0.0.0", ServicePort: 8080}, nil, nil)
	assert.Equal(t, "0.0.0.0:8080", app.Address())
}
