package gemini

import (
	"context"
	"time"

	"github.com/reusedev/retouch-hub/config"
	"github.com/reusedev/retouch-hub/internal/consts"
	"github.com/reusedev/retouch-hub/internal/modules/ai"
	"github.com/reusedev/retouch-hub/internal/modules/ai/image"
	"github.com/reusedev/retouch-hub/internal/modules/logs"
)

// Client edits images through the Gemini generateContent endpoint.
// One invocation is one round trip: no retries, no polling, no shared
// mutable state, so concurrent Edit calls are independent.
type Client struct {
	credential ai.Credential
	baseURL    string
	model      string
	timeout    time.Duration
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

func NewClient(credential ai.Credential, opts ...Option) *Client {
	c := &Client{
		credential: credential,
		baseURL:    consts.GeminiBaseURL,
		model:      consts.GeminiFlashImage.String(),
		timeout:    image.DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromConfig builds a client from the gemini config section,
// resolving the credential as config key first, process env second.
func NewClientFromConfig(cfg config.Gemini) *Client {
	opts := []Option{WithBaseURL(cfg.BaseURL), WithModel(cfg.Model)}
	if cfg.RequestTimeout != "" {
		if timeout, err := time.ParseDuration(cfg.RequestTimeout); err == nil {
			opts = append(opts, WithTimeout(timeout))
		}
	}
	return NewClient(ai.ResolveCredential("", cfg.APIKey), opts...)
}

// Edit performs one edit round trip and reports the full outcome,
// including timing and the raw body, for invoke-history recording.
func (c *Client) Edit(ctx context.Context, request image.EditRequest, taskID int) image.Response {
	logs.Logger.Info().Int("task_id", taskID).Str("model", c.model).
		Str("credential_desc", c.credential.Desc).Msg("attempting image edit request")
	content := EditContentRequest{
		Model:       c.model,
		Image:       request.Image,
		Instruction: request.Instruction,
	}
	requester := image.NewRequester(ctx, c.credential, c.baseURL, &content, NewEditContentParser()).
		SetTaskID(taskID).
		SetTimeout(c.timeout)
	response := requester.Do()
	if response.Succeed() {
		logs.Logger.Info().Int("task_id", taskID).Str("model", c.model).
			Int("blobs", len(response.GetBlobs())).Msg("image edit request succeeded")
	} else {
		logs.Logger.Warn().Err(response.GetError()).Int("task_id", taskID).
			Str("model", c.model).Msg("image edit request failed")
	}
	return response
}

// EditImage is the single-call surface: the first inline image part on
// success, or one error from the closed set {ErrMissingCredential,
// *ServiceError, ErrNoImageProduced, wrapped unknown}.
func (c *Client) EditImage(ctx context.Context, request image.EditRequest) (image.Blob, error) {
	response := c.Edit(ctx, request, 0)
	if err := response.GetError(); err != nil {
		return image.Blob{}, err
	}
	if !response.Succeed() {
		return image.Blob{}, image.ErrNoImageProduced
	}
	return response.FirstBlob(), nil
}

func (c *Client) Model() string {
	return c.model
}
