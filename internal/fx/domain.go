package fx

import (
	"go.uber.org/fx"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/auth"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/fundraiser"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/need"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/pledge"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/report"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/reward"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/shared"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/template"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/user"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/infrastructure"
)

// DomainModule provides every domain service.
var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newUserCheckerService,
		newAuthService,
		newFundraiserService,
		newNeedService,
		newRewardService,
		newRewardEngine,
		newPledgeService,
		newTemplateService,
		newReportService,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newUserCheckerService(userSvc *user.Service) *shared.UserCheckerService {
	return shared.NewUserCheckerService(userSvc)
}

func newAuthService(repo *infrastructure.UserRepository, userSvc *user.Service) *auth.Service {
	return auth.NewService(repo, userSvc)
}

func newFundraiserService(
	repo *infrastructure.FundraiserRepository,
	userChecker *shared.UserCheckerService,
) *fundraiser.Service {
	return fundraiser.NewService(repo, userChecker)
}

func newNeedService(
	repo *infrastructure.NeedRepository,
	fundraiserSvc *fundraiser.Service,
) *need.Service {
	return need.NewService(repo, fundraiserSvc)
}

func newRewardService(
	repo *infrastructure.RewardTierRepository,
	fundraiserSvc *fundraiser.Service,
) *reward.Service {
	return reward.NewService(repo, fundraiserSvc)
}

// The pledge repository doubles as the engine's tier store so the recompute
// runs inside a single database transaction.
func newRewardEngine(repo *infrastructure.PledgeRepository) *reward.Engine {
	return reward.NewEngine(repo)
}

func newPledgeService(
	repo *infrastructure.PledgeRepository,
	fundraiserSvc *fundraiser.Service,
	needSvc *need.Service,
	rewardSvc *reward.Service,
	engine *reward.Engine,
) *pledge.Service {
	return pledge.NewService(repo, fundraiserSvc, needSvc, rewardSvc, engine)
}

func newTemplateService(
	repo *infrastructure.TemplateRepository,
	fundraiserRepo *infrastructure.FundraiserRepository,
	userSvc *user.Service,
) *template.Service {
	return template.NewService(repo, fundraiserRepo, userSvc)
}

func newReportService(
	repo *infrastructure.ReportRepository,
	fundraiserSvc *fundraiser.Service,
	needSvc *need.Service,
	pledgeSvc *pledge.Service,
) *report.Service {
	return report.NewService(repo, fundraiserSvc, needSvc, pledgeSvc)
}
