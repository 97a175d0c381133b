package fx

import (
	"time"

	"go.uber.org/fx"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/auth"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/fundraiser"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/need"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/pledge"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/report"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/reward"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/template"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/user"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/middleware"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/routes"
)

// RoutesModule provides the HTTP handler and rate limiters.
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAuthRateLimiter,
	),
)

func newHandler(
	userSvc *user.Service,
	authSvc *auth.Service,
	jwtSvc *middleware.JwtService,
	fundraiserSvc *fundraiser.Service,
	needSvc *need.Service,
	rewardSvc *reward.Service,
	pledgeSvc *pledge.Service,
	templateSvc *template.Service,
	reportSvc *report.Service,
) *routes.Handler {
	return &routes.Handler{
		UserService:       userSvc,
		AuthService:       authSvc,
		JwtService:        jwtSvc,
		FundraiserService: fundraiserSvc,
		NeedService:       needSvc,
		RewardService:     rewardSvc,
		PledgeService:     pledgeSvc,
		TemplateService:   templateSvc,
		ReportService:     reportSvc,
	}
}

func newAuthRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
