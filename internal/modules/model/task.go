package model

import (
	"time"

	"github.com/jinzhu/copier"
)

type Task struct {
	Id           int         `json:"id" gorm:"primaryKey"`
	TaskGroupId  string      `json:"task_group_id" gorm:"column:task_group_id;type:varchar(50)"`
	Instruction  string      `json:"instruction" gorm:"column:instruction;type:varchar(5000)"`
	Model        string      `json:"model" gorm:"column:model;type:varchar(40)"`
	Status       string      `json:"status" gorm:"column:status;type:enum('pending', 'queued', 'running', 'succeed', 'failed')"`
	FailedReason string      `json:"failed_reason" gorm:"column:failed_reason;type:varchar(1000)"`
	CreatedAt    time.Time   `json:"created_at" gorm:"column:created_at;type:datetime;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time   `json:"updated_at" gorm:"column:updated_at;type:datetime;not null;default:CURRENT_TIMESTAMP"`
	TaskImages   []TaskImage `json:"task_images" gorm:"foreignKey:TaskId"`
}

func (*Task) TableName() string {
	return "task"
}

// TidyImageTask returns a deep copy with only the image record matching
// each task-image's side populated, so the API response carries no
// zero-valued sibling rows.
func (t *Task) TidyImageTask() *Task {
	c := t.DeepCopy()
	c.TidyImage()
	return c
}

func (t *Task) DeepCopy() *Task {
	newT := Task{}
	copier.CopyWithOption(&newT, &t, copier.Option{
		DeepCopy: true,
	})
	return &newT
}

func (t *Task) TidyImage() {
	for i := range t.TaskImages {
		if t.TaskImages[i].Type == TaskImageTypeInput.String() {
			t.TaskImages[i].OutputImage = OutputImage{}
		} else if t.TaskImages[i].Type == TaskImageTypeOutput.String() {
			t.TaskImages[i].InputImage = InputImage{}
		}
	}
}

type TaskImage struct {
	TaskId      int         `json:"task_id" gorm:"column:task_id;type:int;primaryKey"`
	ImageId     int         `json:"image_id" gorm:"column:image_id;type:int;primaryKey"`
	Type        string      `json:"type" gorm:"column:type;type:enum('input', 'output');primaryKey"`
	InputImage  InputImage  `json:"input_image" gorm:"foreignKey:ImageId;references:Id"`
	OutputImage OutputImage `json:"output_image" gorm:"foreignKey:ImageId;references:Id"`
}

func (TaskImage) TableName() string {
	return "task_image"
}

type TaskImageType string

const (
	TaskImageTypeInput  TaskImageType = "input"
	TaskImageTypeOutput TaskImageType = "output"
)

func (t TaskImageType) String() string {
	return string(t)
}

// ModelInvokeHistory records one remote model invocation for a task.
type ModelInvokeHistory struct {
	Id             int       `json:"id" gorm:"primaryKey"`
	TaskId         int       `json:"task_id" gorm:"column:task_id;type:int"`
	ModelName      string    `json:"model_name" gorm:"column:model_name;type:varchar(40)"`
	CredentialDesc string    `json:"credential_desc" gorm:"column:credential_desc;type:varchar(20)"`
	StatusCode     int       `json:"status_code" gorm:"column:status_code;type:int"`
	FailedRespBody string    `json:"failed_resp_body" gorm:"column:failed_resp_body;type:varchar(2000)"`
	DurationMs     int64     `json:"duration_ms" gorm:"column:duration_ms;type:int"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at;type:datetime;not null;default:CURRENT_TIMESTAMP"`
}

func (ModelInvokeHistory) TableName() string {
	return "model_invoke_history"
}
