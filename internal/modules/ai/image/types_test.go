package image

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlobFromBytes(t *testing.T) {
	pngHeader := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0}
	blob := BlobFromBytes(pngHeader)
	require.Equal(t, "image/png", blob.MimeType)
	require.False(t, blob.Empty())

	decoded, err := blob.Bytes()
	require.NoError(t, err)
	require.Equal(t, pngHeader, decoded)
}

func TestClassify(t *testing.T) {
	require.NoError(t, Classify(nil))

	require.ErrorIs(t, Classify(ErrMissingCredential), ErrMissingCredential)
	require.ErrorIs(t, Classify(ErrNoImageProduced), ErrNoImageProduced)

	svcErr := NewServiceError(500, "boom")
	require.Equal(t, svcErr, Classify(svcErr))

	unknown := Classify(errors.New("disk on fire"))
	require.ErrorContains(t, unknown, "unexpected image edit failure")
	require.ErrorContains(t, unknown, "disk on fire")

	wrapped := Classify(fmt.Errorf("context: %w", ErrNoImageProduced))
	require.ErrorIs(t, wrapped, ErrNoImageProduced)
}

func TestBaseResponseSucceed(t *testing.T) {
	r := &BaseResponse{}
	require.False(t, r.Succeed())
	require.True(t, r.FirstBlob().Empty())

	r.SetBlobs([]Blob{{MimeType: "image/png", Data: "aGk="}})
	require.True(t, r.Succeed())
	require.Equal(t, "image/png", r.FirstBlob().MimeType)

	r.SetError(ErrNoImageProduced)
	require.False(t, r.Succeed())
}
