package injector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/ballchaser/internal/config"
	"github.com/zeusync/ballchaser/internal/core/observability/log"
)

func TestInitializeApp_Defaults(t *testing.T) {
	app, err := InitializeApp("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), app.Config)
	assert.NotNil(t, app.Logger)
	assert.NotNil(t, app.Server)
	assert.False(t, app.Server.Running())
}

func TestInitializeApp_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ballchaser.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\nbot:\n  name: kickoff-king\n"), 0o600))

	app, err := InitializeApp(ConfigPath(path))
	require.NoError(t, err)
	assert.Equal(t, "kickoff-king", app.Config.Bot.Name)
	assert.Equal(t, log.LevelWarn, app.Logger.GetLevel())
}

func TestInitializeApp_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ballchaser.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bot:\n  ball_radius: -1\n"), 0o600))

	_, err := InitializeApp(ConfigPath(path))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestProvideHostConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Host.Overlay = true
	hc := ProvideHostConfig(cfg)
	assert.True(t, hc.Overlay)
	assert.Equal(t, cfg.Bot.Name, hc.DefaultName)
	assert.Equal(t, cfg.BotOptions(), hc.Bot)
}
