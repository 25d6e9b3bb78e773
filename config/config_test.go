package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const validYaml = `
storage_enabled: true
storage_supplier: ali_oss
url_expires: 168h
gemini:
  model: gemini-2.5-flash-image
  request_timeout: 2m
`

func TestInit(t *testing.T) {
	t.Run("env fills missing credential", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "sk-from-env")
		GConfig = nil
		Init([]byte(validYaml))
		require.Equal(t, "sk-from-env", GConfig.Gemini.APIKey)
		require.Equal(t, "gemini-2.5-flash-image", GConfig.Gemini.Model)
	})

	t.Run("file credential wins over env", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "sk-from-env")
		GConfig = nil
		Init([]byte(`
storage_enabled: true
storage_supplier: ali_oss
gemini:
  api_key: sk-from-file
`))
		require.Equal(t, "sk-from-file", GConfig.Gemini.APIKey)
	})

	t.Run("storage must be enabled", func(t *testing.T) {
		GConfig = nil
		require.Panics(t, func() {
			Init([]byte("storage_enabled: false\nstorage_supplier: ali_oss\n"))
		})
	})

	t.Run("bad timeout rejected", func(t *testing.T) {
		GConfig = nil
		require.Panics(t, func() {
			Init([]byte("storage_enabled: true\nstorage_supplier: ali_oss\ngemini:\n  request_timeout: soon\n"))
		})
	})
}
