package fx

import (
	"go.uber.org/fx"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/config"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/user"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/middleware"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config, userSvc *user.Service) (*middleware.JwtService, error) {
	return middleware.NewJwtService(cfg.JWT, userSvc)
}
