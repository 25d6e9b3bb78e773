package image

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/reusedev/retouch-hub/internal/modules/logs"
)

// BlobParseStrategy extracts inline image payloads from a 200 body.
type BlobParseStrategy interface {
	ExtractBlobs(body []byte) ([]Blob, error)
}

// MessageParseStrategy pulls a human-readable failure message out of an
// error body. Empty return means the raw body is used.
type MessageParseStrategy interface {
	ExtractMessage(body []byte) string
}

type GenericParser struct {
	blobStrategy    BlobParseStrategy
	messageStrategy MessageParseStrategy
}

func NewGenericParser(blobStrategy BlobParseStrategy, messageStrategy MessageParseStrategy) *GenericParser {
	return &GenericParser{
		blobStrategy:    blobStrategy,
		messageStrategy: messageStrategy,
	}
}

func (g *GenericParser) Parse(resp *http.Response, response Response) error {
	if resp.StatusCode != http.StatusOK {
		// Read the error body with a watchdog; some upstreams hold the
		// connection open for hundreds of seconds on failure paths.
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*90)
		defer cancel()
		type result struct {
			data []byte
			err  error
		}
		resultCh := make(chan result, 1)
		go func() {
			data, err := io.ReadAll(resp.Body)
			resultCh <- result{data: data, err: err}
		}()
		var respBody []byte
		select {
		case res := <-resultCh:
			if res.err != nil {
				return res.err
			}
			respBody = res.data
		case <-ctx.Done():
		}
		response.SetBasicResponse(resp.StatusCode, string(respBody))
		message := g.messageStrategy.ExtractMessage(respBody)
		if message == "" {
			message = string(respBody)
		}
		response.SetError(NewServiceError(resp.StatusCode, message))
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	response.SetBasicResponse(resp.StatusCode, string(body))
	blobs, err := g.blobStrategy.ExtractBlobs(body)
	if err != nil {
		logs.Logger.Error().Err(err).Int("task_id", response.GetTaskID()).
			Msg("extract inline image data error")
	}
	response.SetBlobs(blobs)
	if len(blobs) == 0 {
		logs.Logger.Warn().
			Int("task_id", response.GetTaskID()).
			Str("credential_desc", response.GetCredentialDesc()).
			Str("model", response.GetModel()).
			Int("status_code", resp.StatusCode).
			Int64("req_consume_ms", response.ReqConsumeMs()).
			Str("body", string(body)).
			Msg("image resp carried no inline data")
		// A clean 200 without an image is its own outcome, distinct
		// from a transport failure.
		response.SetError(ErrNoImageProduced)
	}
	return nil
}
