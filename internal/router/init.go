package router

import (
	"github.com/oksasatya/peopledesk/internal/application"
	"github.com/oksasatya/peopledesk/internal/container"
	"github.com/oksasatya/peopledesk/internal/infrastructure/cache"
	"github.com/oksasatya/peopledesk/internal/infrastructure/objectstore"
	pginfra "github.com/oksasatya/peopledesk/internal/infrastructure/postgres"
	"github.com/oksasatya/peopledesk/internal/infrastructure/search"
	handlers "github.com/oksasatya/peopledesk/internal/interface/http"
	"github.com/oksasatya/peopledesk/internal/router/modules"
)

// InitModules builds all services from the container singletons and registers
// their feature modules with the router registry. Call once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	leaveRepo := pginfra.NewLeaveRepository(container.GetPGPool())
	otpCache := cache.NewRedisOTPCache(container.GetRedis())

	var index application.UserIndex
	if es := container.GetES(); es != nil && cfg.ESUsersIndex != "" {
		index = search.NewESUserIndex(es, cfg.ESUsersIndex)
	}

	notifier := application.NewNotificationService(
		userRepo,
		otpCache,
		container.GetRabbitPub(),
		logger,
		cfg.MailSendEnabled,
	)
	authSvc := application.NewAuthService(userRepo, container.GetJWT(), notifier, logger)
	profileSvc := application.NewProfileService(
		userRepo,
		objectstore.NewGCSStore(container.GetGCS(), cfg.GCSBucket),
		index,
		logger,
	)
	leaveSvc := application.NewLeaveService(leaveRepo, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), container.GetJWT()))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(profileSvc, logger), container.GetJWT()))
	r.Add(modules.NewLeaveModule(handlers.NewLeaveHandler(leaveSvc, logger), container.GetJWT()))
}
