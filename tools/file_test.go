package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectImageType(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want ImageType
	}{
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}, ImageTypePNG},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0, 0, 0, 0, 0, 0, 0}, ImageTypeJPEG},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), ImageTypeWEBP},
		{"gif", []byte("GIF89a\x00\x00\x00\x00\x00\x00"), ImageTypeGIF},
		{"garbage", []byte("hello world!"), ImageTypeUnknown},
		{"short", []byte{0x89}, ImageTypeUnknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, DetectImageType(c.data))
		})
	}
}

func TestImageTypeMIME(t *testing.T) {
	require.Equal(t, "image/png", ImageTypePNG.MIME())
	require.Equal(t, "image/jpeg", ImageTypeJPEG.MIME())
	require.Equal(t, "image/webp", ImageTypeWEBP.MIME())
	require.Equal(t, "application/octet-stream", ImageTypeUnknown.MIME())
}
