package http

import (
	"github.com/labstack/echo/v4"
	"github.com/vidtube/vidtube-backend/internal/middleware"
	"github.com/vidtube/vidtube-backend/internal/videos"
)

func MapVideoRoutes(videoGroup *echo.Group, h videos.Handlers, mw *middleware.MiddlewareManager) {
	videoGroup.Use(mw.AuthSessionMiddleware)
	videoGroup.POST("/upload", h.UploadVideo())
	videoGroup.GET("/search", h.SearchVideos())
	videoGroup.GET("/:video_id", h.GetVideoByID())
	videoGroup.PUT("/:video_id", h.UpdateVideo())
	videoGroup.DELETE("/:video_id", h.DeleteVideo())
	videoGroup.PATCH("/:video_id/publish", h.TogglePublish())
	videoGroup.POST("/:video_id/view", h.AddView())
}
