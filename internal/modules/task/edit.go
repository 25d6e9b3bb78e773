package task

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/reusedev/retouch-hub/config"
	"github.com/reusedev/retouch-hub/internal/components/mysql"
	"github.com/reusedev/retouch-hub/internal/consts"
	"github.com/reusedev/retouch-hub/internal/modules/ai/image"
	"github.com/reusedev/retouch-hub/internal/modules/ai/image/gemini"
	"github.com/reusedev/retouch-hub/internal/modules/dao"
	"github.com/reusedev/retouch-hub/internal/modules/logs"
	"github.com/reusedev/retouch-hub/internal/modules/model"
	"github.com/reusedev/retouch-hub/internal/modules/observer"
	"github.com/reusedev/retouch-hub/internal/modules/storage/ali"
	"github.com/reusedev/retouch-hub/internal/modules/storage/local"
	"github.com/reusedev/retouch-hub/tools"
)

const thumbnailRatio = 0.3

// EditTask runs one instruction-driven image edit end to end: fetch the
// stored input, one model round trip, store the output, record the
// outcome. Implements queue.Task.
type EditTask struct {
	TaskID    int
	Client    *gemini.Client
	Observers []observer.Observer
}

func NewEditTask(taskID int, client *gemini.Client, observers ...observer.Observer) *EditTask {
	return &EditTask{
		TaskID:    taskID,
		Client:    client,
		Observers: observers,
	}
}

func (t *EditTask) Notify(event observer.Event, data interface{}) {
	for _, o := range t.Observers {
		o.Update(event, data)
	}
}

func (t *EditTask) Execute(ctx context.Context) {
	taskRecord, err := dao.TaskById(t.TaskID)
	if err != nil {
		logs.Logger.Error().Err(err).Int("task_id", t.TaskID).Msg("load task failed")
		return
	}
	if err := dao.UpdateTaskStatus(t.TaskID, consts.TaskStatusRunning, ""); err != nil {
		logs.Logger.Error().Err(err).Int("task_id", t.TaskID).Msg("mark task running failed")
		return
	}

	inputBlob, err := t.loadInput(taskRecord)
	if err != nil {
		t.fail(err.Error())
		return
	}

	response := t.Client.Edit(ctx, image.EditRequest{
		Image:       inputBlob,
		Instruction: taskRecord.Instruction,
	}, t.TaskID)
	t.Notify(observer.EventInvocation, response)

	if !response.Succeed() {
		reason := "image edit failed"
		if response.GetError() != nil {
			reason = response.GetError().Error()
		}
		t.fail(reason)
		return
	}
	if err := t.saveOutput(taskRecord, response); err != nil {
		t.fail(err.Error())
		return
	}
	if err := dao.UpdateTaskStatus(t.TaskID, consts.TaskStatusSucceed, ""); err != nil {
		logs.Logger.Error().Err(err).Int("task_id", t.TaskID).Msg("mark task succeed failed")
		return
	}
	t.Notify(observer.EventTaskFinished, t.TaskID)
}

func (t *EditTask) fail(reason string) {
	if err := dao.UpdateTaskStatus(t.TaskID, consts.TaskStatusFailed, reason); err != nil {
		logs.Logger.Error().Err(err).Int("task_id", t.TaskID).Msg("mark task failed failed")
	}
	t.Notify(observer.EventTaskFinished, t.TaskID)
}

func (t *EditTask) loadInput(taskRecord model.Task) (image.Blob, error) {
	for _, taskImage := range taskRecord.TaskImages {
		if taskImage.Type != model.TaskImageTypeInput.String() {
			continue
		}
		data, err := ali.OssClient.Fetch(taskImage.InputImage.Key)
		if err != nil {
			return image.Blob{}, err
		}
		return image.BlobFromBytes(data), nil
	}
	return image.Blob{}, fmt.Errorf("task %d has no input image", taskRecord.Id)
}

func (t *EditTask) saveOutput(taskRecord model.Task, response image.Response) error {
	imgBytes, err := response.FirstBlob().Bytes()
	if err != nil {
		return err
	}
	key, err := ali.OssClient.UploadImage(imgBytes)
	if err != nil {
		t.salvageOutput(imgBytes)
		return err
	}
	thumbnailKey := t.uploadThumbnail(imgBytes)
	duration, _ := time.ParseDuration(config.GConfig.URLExpires)
	url, err := ali.OssClient.URL(key, duration)
	if err != nil {
		return err
	}
	imageRecord := model.OutputImage{
		StorageSupplierName: config.GConfig.StorageSupplier,
		Key:                 key,
		ThumbnailKey:        thumbnailKey,
		MimeType:            response.FirstBlob().MimeType,
		URL:                 url,
		ModelName:           response.GetModel(),
	}
	if err := mysql.DB.Model(&model.OutputImage{}).Create(&imageRecord).Error; err != nil {
		return err
	}
	taskImageRecord := model.TaskImage{
		TaskId:  taskRecord.Id,
		ImageId: imageRecord.Id,
		Type:    model.TaskImageTypeOutput.String(),
	}
	return mysql.DB.Model(&model.TaskImage{}).Create(&taskImageRecord).Error
}

// salvageOutput spools the model output to local disk when the upload to
// object storage fails, so the image survives for manual recovery.
func (t *EditTask) salvageOutput(imgBytes []byte) {
	name := fmt.Sprintf("task-%d-%s.%s", t.TaskID, uuid.NewString(), tools.DetectImageType(imgBytes).String())
	path := filepath.Join("salvage", name)
	if err := local.SaveFile(bytes.NewReader(imgBytes), path); err != nil {
		logs.Logger.Error().Err(err).Int("task_id", t.TaskID).Msg("salvage output failed")
		return
	}
	logs.Logger.Warn().Int("task_id", t.TaskID).Str("path", path).Msg("output salvaged to local disk")
}

// uploadThumbnail is best effort; a missing thumbnail never fails the task.
func (t *EditTask) uploadThumbnail(imgBytes []byte) string {
	compressed, err := tools.ConvertAndCompressToJPEG(imgBytes, 80)
	if err != nil {
		logs.Logger.Warn().Err(err).Int("task_id", t.TaskID).Msg("compress output failed")
		return ""
	}
	thumbnail, err := tools.Thumbnail(bytes.NewReader(compressed), thumbnailRatio, imaging.JPEG)
	if err != nil {
		logs.Logger.Warn().Err(err).Int("task_id", t.TaskID).Msg("thumbnail output failed")
		return ""
	}
	key, err := ali.OssClient.UploadFileWithName("thumbnail.jpeg", thumbnail)
	if err != nil {
		logs.Logger.Warn().Err(err).Int("task_id", t.TaskID).Msg("upload thumbnail failed")
		return ""
	}
	return key
}
