package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServeCmdForTest(t *testing.T) *cobra.Command {
	t.Helper()

	viper.Reset()
	initConfig()
	cmd := &cobra.Command{Use: "serve"}
	addServeFlags(cmd)

	return cmd
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("IS_TEST_MODE", "")

	cfg, err := loadConfig(newServeCmdForTest(t))
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, ":4000", cfg.Addr())
	assert.Equal(t, ":9999", cfg.DiagAddr)
	assert.False(t, cfg.TestMode)
	assert.True(t, cfg.PersistenceEnabled())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("IS_TEST_MODE", "true")
	t.Setenv("FORUM_LOG_LEVEL", "debug")

	cfg, err := loadConfig(newServeCmdForTest(t))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.True(t, cfg.TestMode)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.PersistenceEnabled())
}

func TestLoadConfigAnyTestModeValue(t *testing.T) {
	for _, v := range []string{"1", "yes", "on"} {
		t.Setenv("IS_TEST_MODE", v)

		cfg, err := loadConfig(newServeCmdForTest(t))
		require.NoError(t, err)
		assert.True(t, cfg.TestMode, v)
		assert.False(t, cfg.PersistenceEnabled(), v)
	}

	t.Setenv("IS_TEST_MODE", "yes")
	cmd := newServeCmdForTest(t)
	require.NoError(t, cmd.Flags().Set("test-mode", "false"))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.False(t, cfg.TestMode)
}

func TestLoadConfigFlagsWin(t *testing.T) {
	t.Setenv("PORT", "5000")

	cmd := newServeCmdForTest(t)
	require.NoError(t, cmd.Flags().Set("port", "6000"))
	require.NoError(t, cmd.Flags().Set("data-file", ""))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "6000", cfg.Port)
	assert.False(t, cfg.PersistenceEnabled())
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("warn")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestRoutesDoc(t *testing.T) {
	doc := routesDoc()

	assert.Contains(t, doc, "/articles/{id}/upvote")
	assert.Contains(t, doc, "/users/{username}")
}
