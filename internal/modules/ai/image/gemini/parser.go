package gemini

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/retouch-hub/internal/modules/ai/image"
)

// InlinePartStrategy scans candidate content parts, in order, for inline
// binary data. Text-only parts are skipped; payload bytes are passed
// through untouched.
type InlinePartStrategy struct{}

func (s *InlinePartStrategy) ExtractBlobs(body []byte) ([]image.Blob, error) {
	var result generateContentResult
	if err := jsoniter.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	var blobs []image.Blob
	for _, candidate := range result.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				blobs = append(blobs, image.Blob{
					MimeType: part.InlineData.MimeType,
					Data:     part.InlineData.Data,
				})
			}
		}
	}
	return blobs, nil
}

// ErrorMessageStrategy extracts the service's message from a structured
// error body, e.g. {"error":{"code":429,"message":"..."}}.
type ErrorMessageStrategy struct{}

func (s *ErrorMessageStrategy) ExtractMessage(body []byte) string {
	var e errorBody
	if err := jsoniter.Unmarshal(body, &e); err != nil {
		return ""
	}
	return e.Error.Message
}

type EditContentParser struct {
	*image.GenericParser
}

func NewEditContentParser() *EditContentParser {
	return &EditContentParser{
		GenericParser: image.NewGenericParser(&InlinePartStrategy{}, &ErrorMessageStrategy{}),
	}
}
