package model

import (
	"time"
)

type InputImage struct {
	Id                  int       `json:"id" gorm:"primaryKey"`
	StorageSupplierName string    `json:"storage_supplier_name" gorm:"column:storage_supplier_name;type:varchar(20)"`
	Key                 string    `json:"key" gorm:"column:key;type:varchar(100)"`
	MimeType            string    `json:"mime_type" gorm:"column:mime_type;type:varchar(30)"`
	URL                 string    `json:"url" gorm:"column:url;type:varchar(500)"`
	CreatedAt           time.Time `json:"created_at" gorm:"column:created_at;type:datetime;not null;default:CURRENT_TIMESTAMP"`
}

func (InputImage) TableName() string {
	return "input_image"
}

type OutputImage struct {
	Id                  int       `json:"id" gorm:"primaryKey"`
	StorageSupplierName string    `json:"storage_supplier_name" gorm:"column:storage_supplier_name;type:varchar(20)"`
	Key                 string    `json:"key" gorm:"column:key;type:varchar(100)"`
	ThumbnailKey        string    `json:"thumbnail_key" gorm:"column:thumbnail_key;type:varchar(100)"`
	MimeType            string    `json:"mime_type" gorm:"column:mime_type;type:varchar(30)"`
	URL                 string    `json:"url" gorm:"column:url;type:varchar(500)"`
	ModelName           string    `json:"model_name" gorm:"column:model_name;type:varchar(40)"`
	CreatedAt           time.Time `json:"created_at" gorm:"column:created_at;type:datetime;not null;default:CURRENT_TIMESTAMP"`
}

func (OutputImage) TableName() string {
	return "output_image"
}
