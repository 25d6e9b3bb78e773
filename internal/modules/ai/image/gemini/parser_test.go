package gemini

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInlinePartStrategy(t *testing.T) {
	t.Run("first inline part wins order", func(t *testing.T) {
		body := `{"candidates":[{"content":{"parts":[
			{"text":"commentary"},
			{"inlineData":{"mimeType":"image/png","data":"Zmlyc3Q="}},
			{"inlineData":{"mimeType":"image/jpeg","data":"c2Vjb25k"}}
		]}}]}`
		blobs, err := (&InlinePartStrategy{}).ExtractBlobs([]byte(body))
		require.NoError(t, err)
		require.Len(t, blobs, 2)
		require.Equal(t, "image/png", blobs[0].MimeType)
		require.Equal(t, "Zmlyc3Q=", blobs[0].Data)
	})

	t.Run("text only parts yield nothing", func(t *testing.T) {
		body := `{"candidates":[{"content":{"parts":[{"text":"no image for you"}]}}]}`
		blobs, err := (&InlinePartStrategy{}).ExtractBlobs([]byte(body))
		require.NoError(t, err)
		require.Empty(t, blobs)
	})

	t.Run("empty inline data skipped", func(t *testing.T) {
		body := `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"image/png","data":""}}]}}]}`
		blobs, err := (&InlinePartStrategy{}).ExtractBlobs([]byte(body))
		require.NoError(t, err)
		require.Empty(t, blobs)
	})

	t.Run("malformed body errors", func(t *testing.T) {
		_, err := (&InlinePartStrategy{}).ExtractBlobs([]byte("not json"))
		require.Error(t, err)
	})
}

func TestErrorMessageStrategy(t *testing.T) {
	t.Run("structured error body", func(t *testing.T) {
		body := `{"error":{"code":400,"message":"Invalid argument: image","status":"INVALID_ARGUMENT"}}`
		message := (&ErrorMessageStrategy{}).ExtractMessage([]byte(body))
		require.Equal(t, "Invalid argument: image", message)
	})

	t.Run("unstructured body yields empty", func(t *testing.T) {
		message := (&ErrorMessageStrategy{}).ExtractMessage([]byte("<html>bad gateway</html>"))
		require.Empty(t, message)
	})
}
