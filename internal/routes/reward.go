package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/contracts"
	domaincontracts "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/contracts"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

func (h *Handler) CreateRewardTier(c *gin.Context) {
	var body contracts.RewardTierCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	fundraiserID, err := pkg.ParseULID(body.FundraiserId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("fundraiser_id", "invalid format"))
		return
	}

	req := domaincontracts.RewardTierCreateRequest{
		ActorId:                  userID,
		FundraiserId:             fundraiserID,
		RewardType:               body.RewardType,
		Name:                     body.Name,
		Description:              body.Description,
		MinimumContributionValue: body.MinimumContributionValue,
		ImageURL:                 body.ImageURL,
		SortOrder:                body.SortOrder,
		MaxBackers:               body.MaxBackers,
	}

	ctx := c.Request.Context()
	entity, err := h.RewardService.Create(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.RewardTierResponse{RewardTier: entity})
}

func (h *Handler) UpdateRewardTier(c *gin.Context) {
	var body contracts.RewardTierUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	tierID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.RewardTierUpdateRequest{
		Id:                       tierID,
		ActorId:                  userID,
		Name:                     body.Name,
		Description:              body.Description,
		MinimumContributionValue: body.MinimumContributionValue,
		ClearMinimum:             body.ClearMinimum,
		ImageURL:                 body.ImageURL,
		SortOrder:                body.SortOrder,
		MaxBackers:               body.MaxBackers,
	}

	ctx := c.Request.Context()
	entity, err := h.RewardService.Update(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.RewardTierResponse{RewardTier: entity})
}

func (h *Handler) GetRewardTier(c *gin.Context) {
	tierID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.RewardService.GetByID(ctx, tierID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.RewardTierResponse{RewardTier: entity})
}

func (h *Handler) ListRewardTiersByFundraiser(c *gin.Context) {
	fundraiserID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	tiers, err := h.RewardService.GetByFundraiserID(ctx, fundraiserID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.RewardTierListResponse{RewardTiers: tiers})
}

func (h *Handler) DeleteRewardTier(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	tierID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.RewardService.Delete(ctx, tierID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "reward tier deleted"})
}
