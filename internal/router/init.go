package router

import (
	"github.com/mitrabahan/backend/internal/application"
	"github.com/mitrabahan/backend/internal/container"
	handlers "github.com/mitrabahan/backend/internal/interface/http"
	pginfra "github.com/mitrabahan/backend/internal/infrastructure/postgres"
	"github.com/mitrabahan/backend/internal/router/modules"
)

// InitModules builds services and handlers from the container singletons
// and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	jwt := container.GetJWT()

	accounts := pginfra.NewAccountRepository(pool)
	materials := pginfra.NewMaterialRepository(pool)
	products := pginfra.NewProductRepository(pool)

	authSvc := application.NewAuthService(accounts, jwt, container.GetRabbitPub(), logger, cfg.AppName, cfg.MailSendEnabled)
	materialSvc := application.NewMaterialService(materials, container.GetGCS(), cfg.GCSBucket, container.GetES(), cfg.ESMaterialsIndex, logger)
	productSvc := application.NewProductService(products, container.GetRabbitPub(), logger, cfg.MailSendEnabled)
	adminSvc := application.NewAdminService(accounts)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), jwt))
	r.Add(modules.NewMaterialModule(handlers.NewMaterialHandler(materialSvc, authSvc, logger), jwt))
	r.Add(modules.NewProductModule(handlers.NewProductHandler(productSvc, authSvc, logger), jwt))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(adminSvc, logger), jwt))
}
