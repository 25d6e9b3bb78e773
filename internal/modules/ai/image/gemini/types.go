package gemini

import (
	"bytes"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/retouch-hub/internal/modules/ai/image"
)

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type contentPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type content struct {
	Parts []contentPart `json:"parts"`
	Role  string        `json:"role,omitempty"`
}

type generationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type generateContentBody struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateContentResult struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text       string      `json:"text,omitempty"`
				InlineData *inlineData `json:"inlineData,omitempty"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type errorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// EditContentRequest is one generateContent call: the source image inline,
// the instruction as text, and the image response modality declared.
// Without the modality hint the service may answer text-only, so it is
// always part of the request.
type EditContentRequest struct {
	Model       string     `json:"model"`
	Image       image.Blob `json:"image"`
	Instruction string     `json:"instruction"`
}

func (e *EditContentRequest) BodyContentType() (io.Reader, string, error) {
	body := generateContentBody{
		Contents: []content{
			{
				Parts: []contentPart{
					{
						InlineData: &inlineData{
							MimeType: e.Image.MimeType,
							Data:     e.Image.Data,
						},
					},
					{Text: e.Instruction},
				},
				Role: "user",
			},
		},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"IMAGE"},
		},
	}
	data, err := jsoniter.Marshal(body)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewBuffer(data), "application/json", nil
}

func (e *EditContentRequest) Path() string {
	return "v1beta/models/" + e.Model + ":generateContent"
}

func (e *EditContentRequest) InitResponse(credentialDesc string) image.Response {
	return &EditContentResponse{
		BaseResponse: image.BaseResponse{
			CredentialDesc: credentialDesc,
			Model:          e.Model,
		},
	}
}

type EditContentResponse struct {
	image.BaseResponse
}
