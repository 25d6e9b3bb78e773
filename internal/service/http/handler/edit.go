package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/retouch-hub/config"
	"github.com/reusedev/retouch-hub/internal/components/mysql"
	"github.com/reusedev/retouch-hub/internal/consts"
	"github.com/reusedev/retouch-hub/internal/modules/ai"
	"github.com/reusedev/retouch-hub/internal/modules/ai/image/gemini"
	"github.com/reusedev/retouch-hub/internal/modules/dao"
	"github.com/reusedev/retouch-hub/internal/modules/logs"
	"github.com/reusedev/retouch-hub/internal/modules/model"
	"github.com/reusedev/retouch-hub/internal/modules/queue"
	"github.com/reusedev/retouch-hub/internal/modules/task"
	"github.com/reusedev/retouch-hub/internal/service/http/handler/request"
	"github.com/reusedev/retouch-hub/internal/service/http/handler/response"
)

// credentialHeader optionally carries a caller-supplied API key, which
// takes precedence over the configured one.
const credentialHeader = "X-Api-Key"

func SubmitEdit(c *gin.Context) {
	form := request.SubmitEdit{}
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	form.Credential = c.GetHeader(credentialHeader)
	if err := form.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	if _, err := dao.InputImageById(form.ImageId); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("input image not found"))
		return
	}

	client := editClient(form.Credential)
	taskRecord := model.Task{
		TaskGroupId: form.GroupId,
		Instruction: form.Instruction,
		Model:       client.Model(),
		Status:      consts.TaskStatusQueued.String(),
	}
	if err := mysql.DB.Model(&model.Task{}).Create(&taskRecord).Error; err != nil {
		logs.Logger.Err(err).Msg("create task record failed")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	taskImageRecord := model.TaskImage{
		ImageId: form.ImageId,
		TaskId:  taskRecord.Id,
		Type:    model.TaskImageTypeInput.String(),
	}
	if err := mysql.DB.Model(&model.TaskImage{}).Create(&taskImageRecord).Error; err != nil {
		logs.Logger.Err(err).Msg("create task image record failed")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}

	editTask := task.NewEditTask(taskRecord.Id, client, &task.InvokeHistoryRecorder{})
	select {
	case queue.EditTaskQueue <- editTask:
	default:
		logs.Logger.Warn().Int("task_id", taskRecord.Id).Msg("edit task queue full")
		if err := dao.UpdateTaskStatus(taskRecord.Id, consts.TaskStatusFailed, "task queue full"); err != nil {
			logs.Logger.Err(err).Int("task_id", taskRecord.Id).Msg("mark task failed failed")
		}
		c.JSON(http.StatusServiceUnavailable, response.InternalError)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(taskRecord))
}

func editClient(explicitCredential string) *gemini.Client {
	cfg := config.GConfig.Gemini
	if explicitCredential == "" {
		return gemini.NewClientFromConfig(cfg)
	}
	opts := []gemini.Option{gemini.WithBaseURL(cfg.BaseURL), gemini.WithModel(cfg.Model)}
	if cfg.RequestTimeout != "" {
		if timeout, err := time.ParseDuration(cfg.RequestTimeout); err == nil {
			opts = append(opts, gemini.WithTimeout(timeout))
		}
	}
	return gemini.NewClient(ai.ResolveCredential(explicitCredential, cfg.APIKey), opts...)
}

// EnqueueUnfinishedTask re-enqueues tasks interrupted by a restart.
func EnqueueUnfinishedTask() {
	tasks, err := dao.UnfinishedTasks()
	if err != nil {
		logs.Logger.Err(err).Msg("load unfinished tasks failed")
		return
	}
	client := gemini.NewClientFromConfig(config.GConfig.Gemini)
	for _, t := range tasks {
		if err := dao.UpdateTaskStatus(t.Id, consts.TaskStatusQueued, ""); err != nil {
			logs.Logger.Err(err).Int("task_id", t.Id).Msg("requeue task failed")
			continue
		}
		queue.EditTaskQueue <- task.NewEditTask(t.Id, client, &task.InvokeHistoryRecorder{})
		logs.Logger.Info().Int("task_id", t.Id).Msg("requeued unfinished task")
	}
}
