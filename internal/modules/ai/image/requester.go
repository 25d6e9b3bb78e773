package image

import (
	"context"
	"net/http"
	"time"

	"github.com/reusedev/retouch-hub/internal/modules/ai"
	"github.com/reusedev/retouch-hub/internal/modules/http_client"
	"github.com/reusedev/retouch-hub/internal/modules/logs"
	"github.com/reusedev/retouch-hub/tools"
)

// DefaultRequestTimeout bounds a single round trip to the image service.
// The transport default alone is unbounded, which is unacceptable for a
// queue worker holding a task slot.
const DefaultRequestTimeout = 2 * time.Minute

// SyncRequester issues exactly one request per Do call. No retries; a
// failed invocation is reported on the response and the caller decides.
type SyncRequester struct {
	ctx        context.Context
	credential ai.Credential
	baseURL    string
	timeout    time.Duration
	Request    Request[Response]
	Parser     Parser[Response]
	TaskID     int
}

func NewRequester(ctx context.Context, credential ai.Credential, baseURL string, request Request[Response], parser Parser[Response]) *SyncRequester {
	return &SyncRequester{
		ctx:        ctx,
		credential: credential,
		baseURL:    baseURL,
		timeout:    DefaultRequestTimeout,
		Request:    request,
		Parser:     parser,
	}
}

func (r *SyncRequester) SetTaskID(taskID int) *SyncRequester {
	r.TaskID = taskID
	return r
}

func (r *SyncRequester) SetTimeout(timeout time.Duration) *SyncRequester {
	if timeout > 0 {
		r.timeout = timeout
	}
	return r
}

func (r *SyncRequester) Do() Response {
	ret := r.Request.InitResponse(r.credential.Desc)
	ret.SetTaskID(r.TaskID)

	// Precondition: fail before any network I/O when no credential resolved.
	if r.credential.Empty() {
		ret.SetError(ErrMissingCredential)
		return ret
	}

	client := http_client.NewWithTimeout(r.timeout)
	body, contentType, err := r.Request.BodyContentType()
	if err != nil {
		ret.SetError(Classify(err))
		return ret
	}
	req, err := client.NewRequest(
		http.MethodPost,
		tools.FullURL(r.baseURL, r.Request.Path()),
		http_client.WithHeader("x-goog-api-key", r.credential.Token),
		http_client.WithHeader("Content-Type", contentType),
		http_client.WithBody(body),
		http_client.WithContext(r.ctx),
	)
	if err != nil {
		ret.SetError(Classify(err))
		return ret
	}
	reqAt := time.Now()
	resp, err := client.Do(req)
	respAt := time.Now()
	ret.SetReqAt(reqAt)
	ret.SetRespAt(respAt)
	if err != nil {
		ret.SetError(NewServiceError(0, err.Error()))
		return ret
	}
	defer resp.Body.Close()
	logs.Logger.Info().
		Int("task_id", r.TaskID).
		Str("credential_desc", r.credential.Desc).
		Str("path", r.Request.Path()).
		Str("method", req.Method).
		Int("status_code", resp.StatusCode).
		Dur("req_consume_ms", respAt.Sub(reqAt)).
		Msg("image edit request")
	err = r.Parser.Parse(resp, ret)
	if err != nil {
		ret.SetError(Classify(err))
		return ret
	}
	return ret
}
