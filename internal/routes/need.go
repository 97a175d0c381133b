package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/contracts"
	domaincontracts "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/contracts"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

func (h *Handler) CreateNeed(c *gin.Context) {
	var body contracts.NeedCreateRequest
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

	req := domaincontracts.NeedCreateRequest{
		ActorId:      userID,
		FundraiserId: fundraiserID,
		NeedType:     body.NeedType,
		Title:        body.Title,
		Description:  body.Description,
		Status:       body.Status,
		Priority:     body.Priority,
		SortOrder:    body.SortOrder,
	}

	ctx := c.Request.Context()
	entity, err := h.NeedService.Create(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.NeedResponse{Need: entity})
}

func (h *Handler) UpdateNeed(c *gin.Context) {
	var body contracts.NeedUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	needID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.NeedUpdateRequest{
		Id:          needID,
		ActorId:     userID,
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
		Priority:    body.Priority,
		SortOrder:   body.SortOrder,
	}

	ctx := c.Request.Context()
	entity, err := h.NeedService.Update(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.NeedResponse{Need: entity})
}

func (h *Handler) GetNeed(c *gin.Context) {
	needID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.NeedService.GetByID(ctx, needID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.NeedResponse{Need: entity})
}

func (h *Handler) ListNeedsByFundraiser(c *gin.Context) {
	fundraiserID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	needs, err := h.NeedService.GetByFundraiserID(ctx, fundraiserID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"needs": needs})
}

func (h *Handler) DeleteNeed(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	needID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.NeedService.Delete(ctx, needID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "need deleted"})
}

func (h *Handler) CreateMoneyNeed(c *gin.Context) {
	var body contracts.MoneyNeedCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	needID, err := pkg.ParseULID(body.NeedId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("need_id", "invalid format"))
		return
	}

	req := domaincontracts.MoneyNeedCreateRequest{
		ActorId:      userID,
		NeedId:       needID,
		TargetAmount: body.TargetAmount,
		Comment:      body.Comment,
	}

	ctx := c.Request.Context()
	entity, err := h.NeedService.CreateMoneyDetail(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.MoneyNeedResponse{Detail: entity})
}

func (h *Handler) UpdateMoneyNeed(c *gin.Context) {
	var body contracts.MoneyNeedUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	detailID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.MoneyNeedUpdateRequest{
		Id:           detailID,
		ActorId:      userID,
		TargetAmount: body.TargetAmount,
		Comment:      body.Comment,
	}

	ctx := c.Request.Context()
	entity, err := h.NeedService.UpdateMoneyDetail(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MoneyNeedResponse{Detail: entity})
}

func (h *Handler) DeleteMoneyNeed(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	detailID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.NeedService.DeleteMoneyDetail(ctx, detailID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "money need detail deleted"})
}

func (h *Handler) CreateTimeNeed(c *gin.Context) {
	var body contracts.TimeNeedCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	needID, err := pkg.ParseULID(body.NeedId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("need_id", "invalid format"))
		return
	}

	rewardTierID, err := pkg.ParseULIDPtr(body.RewardTierId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("reward_tier_id", "invalid format"))
		return
	}

	req := domaincontracts.TimeNeedCreateRequest{
		ActorId:          userID,
		NeedId:           needID,
		StartDatetime:    body.StartDatetime,
		EndDatetime:      body.EndDatetime,
		VolunteersNeeded: body.VolunteersNeeded,
		RoleTitle:        body.RoleTitle,
		Location:         body.Location,
		RewardTierId:     rewardTierID,
	}

	ctx := c.Request.Context()
	entity, err := h.NeedService.CreateTimeDetail(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TimeNeedResponse{Detail: entity})
}

func (h *Handler) UpdateTimeNeed(c *gin.Context) {
	var body contracts.TimeNeedUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	detailID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	rewardTierID, err := pkg.ParseULIDPtr(body.RewardTierId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("reward_tier_id", "invalid format"))
		return
	}

	req := domaincontracts.TimeNeedUpdateRequest{
		Id:               detailID,
		ActorId:          userID,
		StartDatetime:    body.StartDatetime,
		EndDatetime:      body.EndDatetime,
		VolunteersNeeded: body.VolunteersNeeded,
		RoleTitle:        body.RoleTitle,
		Location:         body.Location,
		RewardTierId:     rewardTierID,
		ClearRewardTier:  body.ClearRewardTier,
	}

	ctx := c.Request.Context()
	entity, err := h.NeedService.UpdateTimeDetail(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TimeNeedResponse{Detail: entity})
}

func (h *Handler) DeleteTimeNeed(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	detailID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.NeedService.DeleteTimeDetail(ctx, detailID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "time need detail deleted"})
}

func (h *Handler) CreateItemNeed(c *gin.Context) {
	var body contracts.ItemNeedCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	needID, err := pkg.ParseULID(body.NeedId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("need_id", "invalid format"))
		return
	}

	donationTierID, err := pkg.ParseULIDPtr(body.DonationRewardTierId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("donation_reward_tier_id", "invalid format"))
		return
	}
	loanTierID, err := pkg.ParseULIDPtr(body.LoanRewardTierId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("loan_reward_tier_id", "invalid format"))
		return
	}

	req := domaincontracts.ItemNeedCreateRequest{
		ActorId:              userID,
		NeedId:               needID,
		ItemName:             body.ItemName,
		QuantityNeeded:       body.QuantityNeeded,
		Mode:                 body.Mode,
		Notes:                body.Notes,
		DonationRewardTierId: donationTierID,
		LoanRewardTierId:     loanTierID,
	}

	ctx := c.Request.Context()
	entity, err := h.NeedService.CreateItemDetail(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ItemNeedResponse{Detail: entity})
}

func (h *Handler) UpdateItemNeed(c *gin.Context) {
	var body contracts.ItemNeedUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	detailID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	donationTierID, err := pkg.ParseULIDPtr(body.DonationRewardTierId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("donation_reward_tier_id", "invalid format"))
		return
	}
	loanTierID, err := pkg.ParseULIDPtr(body.LoanRewardTierId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("loan_reward_tier_id", "invalid format"))
		return
	}

	req := domaincontracts.ItemNeedUpdateRequest{
		Id:                   detailID,
		ActorId:              userID,
		ItemName:             body.ItemName,
		QuantityNeeded:       body.QuantityNeeded,
		Mode:                 body.Mode,
		Notes:                body.Notes,
		DonationRewardTierId: donationTierID,
		LoanRewardTierId:     loanTierID,
		ClearDonationTier:    body.ClearDonationTier,
		ClearLoanTier:        body.ClearLoanTier,
	}

	ctx := c.Request.Context()
	entity, err := h.NeedService.UpdateItemDetail(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ItemNeedResponse{Detail: entity})
}

func (h *Handler) DeleteItemNeed(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	detailID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.NeedService.DeleteItemDetail(ctx, detailID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "item need detail deleted"})
}
