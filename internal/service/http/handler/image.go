package handler

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/retouch-hub/config"
	"github.com/reusedev/retouch-hub/internal/components/mysql"
	"github.com/reusedev/retouch-hub/internal/consts"
	"github.com/reusedev/retouch-hub/internal/modules/cache"
	"github.com/reusedev/retouch-hub/internal/modules/dao"
	"github.com/reusedev/retouch-hub/internal/modules/logs"
	"github.com/reusedev/retouch-hub/internal/modules/model"
	"github.com/reusedev/retouch-hub/internal/modules/storage/ali"
	"github.com/reusedev/retouch-hub/internal/service/http/handler/request"
	"github.com/reusedev/retouch-hub/internal/service/http/handler/response"
	"github.com/reusedev/retouch-hub/tools"
)

func UploadImage(c *gin.Context) {
	form := request.UploadImage{}
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	if err := form.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}

	var content []byte
	var fName string
	if form.File != nil {
		file, err := form.File.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ParamError)
			return
		}
		defer file.Close()
		content, err = io.ReadAll(file)
		if err != nil {
			logs.Logger.Err(err).Msg("read upload file failed")
			c.JSON(http.StatusInternalServerError, response.InternalError)
			return
		}
		fName = form.File.Filename
	} else {
		var err error
		content, fName, err = tools.GetOnlineImage(form.URL)
		if err != nil {
			logs.Logger.Err(err).Str("url", form.URL).Msg("download online image failed")
			c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("can not download image from url"))
			return
		}
	}

	imageType := tools.DetectImageType(content)
	if !consts.SupportedImageMIMEType(imageType.MIME()) {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("unsupported image type: "+imageType.String()))
		return
	}

	key, err := ali.OssClient.UploadFileWithName(fName, bytes.NewReader(content))
	if err != nil {
		logs.Logger.Err(err).Msg("upload image to storage failed")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	record := model.InputImage{
		StorageSupplierName: config.GConfig.StorageSupplier,
		Key:                 key,
		MimeType:            imageType.MIME(),
	}
	if err := mysql.DB.Model(&model.InputImage{}).Create(&record).Error; err != nil {
		logs.Logger.Err(err).Msg("create input image record failed")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(record))
}

func GetImage(c *gin.Context) {
	form := request.GetImage{}
	if err := c.ShouldBindQuery(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	if err := form.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	form.FullWithDefault()

	if cached, err := cache.ImageCacheManager().GetValue(form.CacheKey()); err == nil && cached != "" {
		if result, err := response.UnmarshalGetImage(cached); err == nil {
			c.JSON(http.StatusOK, response.SuccessWithData(result))
			return
		}
	}

	var key string
	if form.Type == "input" {
		record, err := dao.InputImageById(form.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("image not found"))
			return
		}
		key = record.Key
	} else {
		record, err := dao.OutputImageById(form.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("image not found"))
			return
		}
		key = record.Key
		if form.Thumbnail && record.ThumbnailKey != "" {
			key = record.ThumbnailKey
		}
	}

	expire, _ := time.ParseDuration(form.Expire)
	url, err := ali.OssClient.URL(key, expire)
	if err != nil {
		logs.Logger.Err(err).Int("image_id", form.ID).Msg("presign image url failed")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	result := response.GetImage{URL: url}
	if marshaled, err := result.Marsh(); err == nil {
		if err := cache.ImageCacheManager().SetWithExpiration(form.CacheKey(), marshaled, expire/2); err != nil {
			logs.Logger.Warn().Err(err).Msg("cache image url failed")
		}
	}
	c.JSON(http.StatusOK, response.SuccessWithData(&result))
}
