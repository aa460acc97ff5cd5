package db

import (
	"testing"

	"switchcfg/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigratePortNaturalKeyIdempotent(t *testing.T) {
	conn, err := Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer func() { _ = Close(conn) }()

	require.NoError(t, conn.AutoMigrate(&models.PortConfig{}))
	require.NoError(t, MigratePortNaturalKey(conn))
	require.NoError(t, MigratePortNaturalKey(conn), "second boot must not fail")

	first := models.PortConfig{ID: "a", SwitchNumber: 1, PortType: "access", PortName: "Gi1/0/1", ConfigType: "camera"}
	require.NoError(t, conn.Create(&first).Error)

	dup := models.PortConfig{ID: "b", SwitchNumber: 1, PortType: "access", PortName: "Gi1/0/1", ConfigType: "printer"}
	assert.Error(t, conn.Create(&dup).Error, "natural key duplicates must be rejected")
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("mongodb", "whatever")
	assert.Error(t, err)
}
