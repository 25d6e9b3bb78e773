package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFullURL(t *testing.T) {
	require.Equal(t, "", FullURL("", "v1beta/models"))
	require.Equal(t, "https://example.com", FullURL("https://example.com", ""))
	require.Equal(t, "https://example.com/v1beta/models", FullURL("https://example.com", "v1beta/models"))
	require.Equal(t, "https://example.com/v1beta/models", FullURL("https://example.com/", "/v1beta/models"))
}
