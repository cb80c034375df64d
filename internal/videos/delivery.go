package videos

import "github.com/labstack/echo/v4"

type Handlers interface {
	UploadVideo() echo.HandlerFunc
	GetVideoByID() echo.HandlerFunc
	UpdateVideo() echo.HandlerFunc
	DeleteVideo() echo.HandlerFunc
	TogglePublish() echo.HandlerFunc
	AddView() echo.HandlerFunc
	SearchVideos() echo.HandlerFunc
}
