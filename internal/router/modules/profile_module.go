package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/peopledesk/internal/container"
	handlers "github.com/oksasatya/peopledesk/internal/interface/http"
	"github.com/oksasatya/peopledesk/internal/interface/middleware"
	"github.com/oksasatya/peopledesk/pkg/helpers"
)

// ProfileModule wires the authenticated profile and upload routes.
type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/profile", m.Handler.GetProfile)
		auth.PATCH("/profile", m.Handler.UpdateProfile)
		auth.POST("/profile/upload-url", m.Handler.UploadURL)
		auth.POST("/profile/picture", m.Handler.ConfirmPicture)
		auth.GET("/users/search", m.Handler.Search)
	}
}
