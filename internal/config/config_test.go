package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, c.Server.Port)
	assert.False(t, c.Server.LocalOnly)
	assert.Equal(t, 24, c.Sim.MaxQubits)
}

func TestLoadEnvOverride(t *testing.T) {
	os.Setenv("GRAPHSIM_SERVER_PORT", "9090")
	defer os.Unsetenv("GRAPHSIM_SERVER_PORT")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9090, c.Server.Port)
}

func TestLoadRejectsNonPositiveMaxQubits(t *testing.T) {
	os.Setenv("GRAPHSIM_SIM_MAXQUBITS", "0")
	defer os.Unsetenv("GRAPHSIM_SIM_MAXQUBITS")

	_, err := Load("")
	assert.Error(t, err)
}
