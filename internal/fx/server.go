package fx

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/config"
	docs "github.com/Rebecca-de-Winter/crowdfunding-back-end/docs"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/logger"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/middleware"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/routes"
)

// ServerModule provides the HTTP server setup.
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	authRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := router.Group("/api")
	public.Use(middleware.RateLimit(authRateLimiter))
	{
		public.POST("/auth/login", handler.Authenticate)
		public.POST("/auth/register", handler.Registration)
	}

	// Read-only endpoints open to unauthenticated visitors.
	open := router.Group("/api")
	{
		open.GET("/fundraisers", handler.ListFundraisers)
		open.GET("/fundraisers/:id", handler.GetFundraiser)
		open.GET("/fundraisers/:id/needs", handler.ListNeedsByFundraiser)
		open.GET("/fundraisers/:id/reward-tiers", handler.ListRewardTiersByFundraiser)
		open.GET("/fundraisers/:id/summary", handler.GetFundraiserSummary)
		open.GET("/needs/:id", handler.GetNeed)
		open.GET("/needs/:id/progress", handler.GetNeedProgress)
		open.GET("/reward-tiers/:id", handler.GetRewardTier)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	private.Use(middleware.RateLimitByUser())
	{
		private.GET("/users/me", handler.GetCurrentUser)

		fundraisers := private.Group("/fundraisers")
		{
			fundraisers.POST("", handler.CreateFundraiser)
			fundraisers.PATCH("/:id", handler.UpdateFundraiser)
			fundraisers.DELETE("/:id", handler.DeleteFundraiser)
			fundraisers.GET("/mine", handler.ListMyFundraisers)
			fundraisers.POST("/:id/apply-template", handler.ApplyTemplate)
			fundraisers.GET("/:id/pledges", handler.ListFundraiserPledges)
		}

		needs := private.Group("/needs")
		{
			needs.POST("", handler.CreateNeed)
			needs.PATCH("/:id", handler.UpdateNeed)
			needs.DELETE("/:id", handler.DeleteNeed)
			needs.POST("/money", handler.CreateMoneyNeed)
			needs.PATCH("/money/:id", handler.UpdateMoneyNeed)
			needs.DELETE("/money/:id", handler.DeleteMoneyNeed)
			needs.POST("/time", handler.CreateTimeNeed)
			needs.PATCH("/time/:id", handler.UpdateTimeNeed)
			needs.DELETE("/time/:id", handler.DeleteTimeNeed)
			needs.POST("/item", handler.CreateItemNeed)
			needs.PATCH("/item/:id", handler.UpdateItemNeed)
			needs.DELETE("/item/:id", handler.DeleteItemNeed)
		}

		rewardTiers := private.Group("/reward-tiers")
		{
			rewardTiers.POST("", handler.CreateRewardTier)
			rewardTiers.PATCH("/:id", handler.UpdateRewardTier)
			rewardTiers.DELETE("/:id", handler.DeleteRewardTier)
		}

		pledges := private.Group("/pledges")
		{
			pledges.POST("", handler.CreatePledge)
			pledges.GET("/mine", handler.ListMyPledges)
			pledges.GET("/rewards", handler.ListMyRewards)
			pledges.GET("/:id", handler.GetPledge)
			pledges.PATCH("/:id", handler.UpdatePledge)
			pledges.POST("/:id/transition", handler.TransitionPledge)
			pledges.DELETE("/:id", handler.DeletePledge)
			pledges.PATCH("/money/:id", handler.UpdateMoneyPledge)
			pledges.DELETE("/money/:id", handler.DeleteMoneyPledge)
			pledges.PATCH("/time/:id", handler.UpdateTimePledge)
			pledges.DELETE("/time/:id", handler.DeleteTimePledge)
			pledges.PATCH("/item/:id", handler.UpdateItemPledge)
			pledges.DELETE("/item/:id", handler.DeleteItemPledge)
		}

		templates := private.Group("/templates")
		{
			templates.POST("", handler.CreateTemplate)
			templates.GET("", handler.ListTemplates)
			templates.GET("/:id", handler.GetTemplate)
			templates.PATCH("/:id", handler.UpdateTemplate)
			templates.DELETE("/:id", handler.DeleteTemplate)
			templates.POST("/:id/needs", handler.CreateTemplateNeed)
			templates.POST("/:id/reward-tiers", handler.CreateTemplateRewardTier)
			templates.DELETE("/needs/:id", handler.DeleteTemplateNeed)
			templates.DELETE("/reward-tiers/:id", handler.DeleteTemplateRewardTier)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("server starting")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("server stopping...")
			return nil
		},
	})
}
