package dao

import (
	"github.com/reusedev/retouch-hub/internal/components/mysql"
	"github.com/reusedev/retouch-hub/internal/consts"
	"github.com/reusedev/retouch-hub/internal/modules/model"
)

func TaskById(id int) (model.Task, error) {
	var task model.Task
	err := mysql.DB.Model(&model.Task{}).
		Preload("TaskImages").
		Preload("TaskImages.InputImage").
		Preload("TaskImages.OutputImage").
		Where("id = ?", id).First(&task).Error
	if err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func TasksByGroupId(groupId string) ([]model.Task, error) {
	var tasks []model.Task
	err := mysql.DB.Model(&model.Task{}).
		Preload("TaskImages").
		Preload("TaskImages.InputImage").
		Preload("TaskImages.OutputImage").
		Where("task_group_id = ?", groupId).
		Order("created_at asc").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// UnfinishedTasks are tasks interrupted before reaching a terminal
// status, re-enqueued at boot.
func UnfinishedTasks() ([]model.Task, error) {
	var tasks []model.Task
	err := mysql.DB.Model(&model.Task{}).
		Where("status IN ?", []string{
			consts.TaskStatusPending.String(),
			consts.TaskStatusQueued.String(),
			consts.TaskStatusRunning.String(),
		}).Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func UpdateTaskStatus(id int, status consts.TaskStatus, failedReason string) error {
	updates := map[string]interface{}{"status": status.String()}
	if failedReason != "" {
		updates["failed_reason"] = failedReason
	}
	return mysql.DB.Model(&model.Task{}).Where("id = ?", id).Updates(updates).Error
}
