package task

import (
	"github.com/reusedev/retouch-hub/internal/components/mysql"
	"github.com/reusedev/retouch-hub/internal/modules/ai/image"
	"github.com/reusedev/retouch-hub/internal/modules/logs"
	"github.com/reusedev/retouch-hub/internal/modules/model"
	"github.com/reusedev/retouch-hub/internal/modules/observer"
)

// InvokeHistoryRecorder persists one model_invoke_history row per remote
// invocation. Failure bodies are kept only for failed invocations.
type InvokeHistoryRecorder struct{}

func (r *InvokeHistoryRecorder) Update(event observer.Event, data interface{}) {
	if event != observer.EventInvocation {
		return
	}
	response, ok := data.(image.Response)
	if !ok {
		return
	}
	record := model.ModelInvokeHistory{
		TaskId:         response.GetTaskID(),
		ModelName:      response.GetModel(),
		CredentialDesc: response.GetCredentialDesc(),
		StatusCode:     response.GetStatusCode(),
		DurationMs:     response.ReqConsumeMs(),
		CreatedAt:      response.GetRespAt(),
	}
	if !response.Succeed() {
		record.FailedRespBody = response.GetRespBody()
	}
	if err := mysql.DB.Model(&model.ModelInvokeHistory{}).Create(&record).Error; err != nil {
		logs.Logger.Error().Err(err).Int("task_id", response.GetTaskID()).Msg("record invoke history failed")
	}
}
