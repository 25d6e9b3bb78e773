package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	stdimage "image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/retouch-hub/internal/modules/ai"
	"github.com/reusedev/retouch-hub/internal/modules/ai/image"
	"github.com/stretchr/testify/require"
)

func redPNG(t *testing.T) []byte {
	t.Helper()
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, 10, 10))
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func inlineDataResponse(mimeType, data string) string {
	body, _ := jsoniter.MarshalToString(map[string]any{
		"candidates": []map[string]any{
			{
				"content": map[string]any{
					"parts": []map[string]any{
						{"text": "here is your edit"},
						{"inlineData": map[string]string{"mimeType": mimeType, "data": data}},
					},
				},
			},
		},
	})
	return body
}

func TestClientEditImage(t *testing.T) {
	t.Run("inline data passed through byte for byte", func(t *testing.T) {
		source := redPNG(t)
		edited := redPNG(t)
		editedB64 := base64.StdEncoding.EncodeToString(edited)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Contains(t, r.URL.Path, ":generateContent")
			require.Equal(t, "sk-test", r.Header.Get("x-goog-api-key"))

			var body generateContentBody
			require.NoError(t, jsoniter.NewDecoder(r.Body).Decode(&body))
			require.Len(t, body.Contents, 1)
			require.Len(t, body.Contents[0].Parts, 2)
			require.NotNil(t, body.Contents[0].Parts[0].InlineData)
			require.Equal(t, "image/png", body.Contents[0].Parts[0].InlineData.MimeType)
			require.Equal(t, "make it blue", body.Contents[0].Parts[1].Text)
			// The modality hint is a required part of the request.
			require.NotNil(t, body.GenerationConfig)
			require.Equal(t, []string{"IMAGE"}, body.GenerationConfig.ResponseModalities)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(inlineDataResponse("image/png", editedB64)))
		}))
		defer server.Close()

		client := NewClient(ai.Credential{Token: "sk-test", Desc: "explicit"}, WithBaseURL(server.URL))
		blob, err := client.EditImage(context.Background(), image.EditRequest{
			Image:       image.BlobFromBytes(source),
			Instruction: "make it blue",
		})
		require.NoError(t, err)
		require.Equal(t, "image/png", blob.MimeType)

		got, err := blob.Bytes()
		require.NoError(t, err)
		require.Equal(t, edited, got)
		// Structural validity: the payload decodes as a PNG.
		decoded, err := png.Decode(bytes.NewReader(got))
		require.NoError(t, err)
		require.Equal(t, 10, decoded.Bounds().Dx())
	})

	t.Run("missing credential fails before network", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(ai.Credential{}, WithBaseURL(server.URL))
		_, err := client.EditImage(context.Background(), image.EditRequest{
			Image:       image.BlobFromBytes(redPNG(t)),
			Instruction: "make it blue",
		})
		require.ErrorIs(t, err, image.ErrMissingCredential)
		require.Equal(t, int32(0), calls.Load())
	})

	t.Run("no inline data is its own outcome", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"I cannot edit this image."}]}}]}`))
		}))
		defer server.Close()

		client := NewClient(ai.Credential{Token: "sk-test"}, WithBaseURL(server.URL))
		_, err := client.EditImage(context.Background(), image.EditRequest{
			Image:       image.BlobFromBytes(redPNG(t)),
			Instruction: "make it blue",
		})
		require.ErrorIs(t, err, image.ErrNoImageProduced)
		var svcErr *image.ServiceError
		require.False(t, errors.As(err, &svcErr))
	})

	t.Run("service failure preserves upstream message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"code":429,"message":"Resource has been exhausted","status":"RESOURCE_EXHAUSTED"}}`))
		}))
		defer server.Close()

		client := NewClient(ai.Credential{Token: "sk-test"}, WithBaseURL(server.URL))
		_, err := client.EditImage(context.Background(), image.EditRequest{
			Image:       image.BlobFromBytes(redPNG(t)),
			Instruction: "make it blue",
		})
		var svcErr *image.ServiceError
		require.True(t, errors.As(err, &svcErr))
		require.Equal(t, http.StatusTooManyRequests, svcErr.StatusCode)
		require.Contains(t, svcErr.Error(), "Resource has been exhausted")
	})

	t.Run("unreachable service wraps transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // connection refused from here on

		client := NewClient(ai.Credential{Token: "sk-test"}, WithBaseURL(server.URL))
		_, err := client.EditImage(context.Background(), image.EditRequest{
			Image:       image.BlobFromBytes(redPNG(t)),
			Instruction: "make it blue",
		})
		var svcErr *image.ServiceError
		require.True(t, errors.As(err, &svcErr))
	})
}

func TestClientEditRecordsInvocation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(inlineDataResponse("image/png", base64.StdEncoding.EncodeToString(redPNG(t)))))
	}))
	defer server.Close()

	client := NewClient(ai.Credential{Token: "sk-test", Desc: "config"}, WithBaseURL(server.URL), WithModel("gemini-2.5-flash-image"))
	response := client.Edit(context.Background(), image.EditRequest{
		Image:       image.BlobFromBytes(redPNG(t)),
		Instruction: "make it blue",
	}, 42)

	require.True(t, response.Succeed())
	require.Equal(t, 42, response.GetTaskID())
	require.Equal(t, "config", response.GetCredentialDesc())
	require.Equal(t, "gemini-2.5-flash-image", response.GetModel())
	require.Equal(t, http.StatusOK, response.GetStatusCode())
	require.NotEmpty(t, response.GetRespBody())
	require.GreaterOrEqual(t, response.ReqConsumeMs(), int64(0))
}
