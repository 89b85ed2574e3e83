package database

import (
	"testing"

	"hirafic/config"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseName(t *testing.T) {
	orig := config.AppConfig.DatabaseName
	t.Cleanup(func() { config.AppConfig.DatabaseName = orig })

	config.AppConfig.DatabaseName = ""
	assert.Equal(t, "hirafic", DatabaseName())

	config.AppConfig.DatabaseName = "hirafic_test"
	assert.Equal(t, "hirafic_test", DatabaseName())
}
