package http

import (
	"github.com/gin-gonic/gin"
	"github.com/reusedev/retouch-hub/internal/service/http/handler"
	"github.com/reusedev/retouch-hub/internal/service/http/middleware"
)

func Serve(port string) {
	e := gin.New()
	initRouter(e)
	if err := e.Run(port); err != nil {
		panic(err)
	}
}

func initRouter(e *gin.Engine) {
	e.Use(gin.Recovery())
	e.Use(middleware.RequestLogger())
	v1 := e.Group("/v1")

	edits := v1.Group("/edits")
	{
		edits.POST("", handler.SubmitEdit)
	}

	tasks := v1.Group("/tasks")
	{
		tasks.GET("", handler.TaskQuery)
	}

	images := v1.Group("/images")
	{
		images.POST("", handler.UploadImage)
		images.GET("", handler.GetImage)
	}
}
