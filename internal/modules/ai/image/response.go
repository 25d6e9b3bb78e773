package image

import "time"

type Response interface {
	GetModel() string
	GetCredentialDesc() string
	GetStatusCode() int
	GetRespAt() time.Time
	GetRespBody() string
	ReqConsumeMs() int64
	GetTaskID() int
	Succeed() bool
	GetBlobs() []Blob
	FirstBlob() Blob
	GetError() error // nil when Succeed() is true

	SetBasicResponse(statusCode int, respBody string)
	SetReqAt(reqAt time.Time)
	SetRespAt(respAt time.Time)
	SetBlobs(blobs []Blob)
	SetError(err error)
	SetTaskID(taskID int)
}

type BaseResponse struct {
	CredentialDesc string    `json:"credential_desc"`
	Model          string    `json:"model"`
	StatusCode     int       `json:"status_code"`
	RespBody       string    `json:"resp_body"`
	ReqAt          time.Time `json:"req_at"`
	RespAt         time.Time `json:"resp_at"`
	Blobs          []Blob    `json:"blobs"`
	Error          error     `json:"error,omitempty"`
	TaskID         int       `json:"task_id"`
}

func (r *BaseResponse) GetCredentialDesc() string { return r.CredentialDesc }
func (r *BaseResponse) GetModel() string          { return r.Model }
func (r *BaseResponse) GetStatusCode() int        { return r.StatusCode }
func (r *BaseResponse) GetRespAt() time.Time      { return r.RespAt }
func (r *BaseResponse) GetRespBody() string       { return r.RespBody }
func (r *BaseResponse) GetTaskID() int            { return r.TaskID }
func (r *BaseResponse) GetBlobs() []Blob          { return r.Blobs }
func (r *BaseResponse) GetError() error           { return r.Error }
func (r *BaseResponse) Succeed() bool             { return len(r.Blobs) != 0 && r.Error == nil }
func (r *BaseResponse) ReqConsumeMs() int64       { return r.RespAt.Sub(r.ReqAt).Milliseconds() }

func (r *BaseResponse) FirstBlob() Blob {
	if len(r.Blobs) == 0 {
		return Blob{}
	}
	return r.Blobs[0]
}

func (r *BaseResponse) SetBasicResponse(statusCode int, respBody string) {
	r.StatusCode = statusCode
	r.RespBody = respBody
}
func (r *BaseResponse) SetReqAt(reqAt time.Time)   { r.ReqAt = reqAt }
func (r *BaseResponse) SetRespAt(respAt time.Time) { r.RespAt = respAt }
func (r *BaseResponse) SetBlobs(blobs []Blob)      { r.Blobs = blobs }
func (r *BaseResponse) SetError(err error)         { r.Error = err }
func (r *BaseResponse) SetTaskID(taskID int)       { r.TaskID = taskID }
