package image

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/reusedev/retouch-hub/tools"
)

// Blob is one encoded image: base64 content plus its MIME type.
type Blob struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

func (b Blob) Empty() bool {
	return b.Data == ""
}

func (b Blob) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(b.Data)
}

func BlobFromBytes(data []byte) Blob {
	return Blob{
		MimeType: tools.DetectImageType(data).MIME(),
		Data:     base64.StdEncoding.EncodeToString(data),
	}
}

// EditRequest is one image plus the instruction describing the edit.
// Constructed, sent once, discarded.
type EditRequest struct {
	Image       Blob   `json:"image"`
	Instruction string `json:"instruction"`
}

type Request[T any] interface {
	BodyContentType() (io.Reader, string, error)
	Path() string
	InitResponse(credentialDesc string) T
}

type Parser[T any] interface {
	Parse(resp *http.Response, response T) error
}
