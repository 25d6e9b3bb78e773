package ai

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveCredential(t *testing.T) {
	t.Run("explicit wins", func(t *testing.T) {
		t.Setenv(apiKeyEnv, "sk-env")
		c := ResolveCredential("sk-explicit", "sk-config")
		require.Equal(t, "sk-explicit", c.Token)
		require.Equal(t, "explicit", c.Desc)
	})

	t.Run("config over env", func(t *testing.T) {
		t.Setenv(apiKeyEnv, "sk-env")
		c := ResolveCredential("", "sk-config")
		require.Equal(t, "sk-config", c.Token)
		require.Equal(t, "config", c.Desc)
	})

	t.Run("env last", func(t *testing.T) {
		t.Setenv(apiKeyEnv, "sk-env")
		c := ResolveCredential("", "")
		require.Equal(t, "sk-env", c.Token)
		require.Equal(t, "env", c.Desc)
	})

	t.Run("nothing resolves", func(t *testing.T) {
		t.Setenv(apiKeyEnv, "")
		c := ResolveCredential("", "")
		require.True(t, c.Empty())
	})
}
