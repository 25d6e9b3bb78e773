package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/retouch-hub/internal/modules/dao"
	"github.com/reusedev/retouch-hub/internal/modules/model"
	"github.com/reusedev/retouch-hub/internal/service/http/handler/request"
	"github.com/reusedev/retouch-hub/internal/service/http/handler/response"
)

func TaskQuery(c *gin.Context) {
	form := request.TaskQuery{}
	if err := c.ShouldBindQuery(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	if err := form.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}

	if form.ID > 0 {
		taskRecord, err := dao.TaskById(form.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("task not found"))
			return
		}
		c.JSON(http.StatusOK, response.SuccessWithData(taskRecord.TidyImageTask()))
		return
	}

	tasks, err := dao.TasksByGroupId(form.GroupId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	tidied := make([]*model.Task, 0, len(tasks))
	for i := range tasks {
		tidied = append(tidied, tasks[i].TidyImageTask())
	}
	c.JSON(http.StatusOK, response.SuccessWithData(tidied))
}
