package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/contracts"
	domaincontracts "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/contracts"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

func (h *Handler) CreateTemplate(c *gin.Context) {
	var body contracts.TemplateCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.TemplateCreateRequest{
		ActorId:       userID,
		Name:          body.Name,
		Description:   body.Description,
		IsActive:      body.IsActive,
		Title:         body.Title,
		Goal:          body.Goal,
		ImageURL:      body.ImageURL,
		Location:      body.Location,
		EnableRewards: body.EnableRewards,
	}

	ctx := c.Request.Context()
	entity, err := h.TemplateService.Create(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TemplateResponse{Template: entity})
}

func (h *Handler) UpdateTemplate(c *gin.Context) {
	var body contracts.TemplateUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	templateID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.TemplateUpdateRequest{
		Id:            templateID,
		ActorId:       userID,
		Name:          body.Name,
		Description:   body.Description,
		IsActive:      body.IsActive,
		Title:         body.Title,
		Goal:          body.Goal,
		ImageURL:      body.ImageURL,
		Location:      body.Location,
		EnableRewards: body.EnableRewards,
	}

	ctx := c.Request.Context()
	entity, err := h.TemplateService.Update(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TemplateResponse{Template: entity})
}

func (h *Handler) GetTemplate(c *gin.Context) {
	templateID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.TemplateService.GetByID(ctx, templateID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TemplateResponse{Template: entity})
}

func (h *Handler) ListTemplates(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	templates, total, err := h.TemplateService.List(ctx, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(templates, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) DeleteTemplate(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	templateID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.TemplateService.Delete(ctx, templateID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "template deleted"})
}

func (h *Handler) CreateTemplateNeed(c *gin.Context) {
	var body contracts.TemplateNeedCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	templateID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	rewardTierRef, err := pkg.ParseULIDPtr(body.RewardTierRef)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("reward_tier_ref", "invalid format"))
		return
	}
	donationRef, err := pkg.ParseULIDPtr(body.DonationRewardTierRef)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("donation_reward_tier_ref", "invalid format"))
		return
	}
	loanRef, err := pkg.ParseULIDPtr(body.LoanRewardTierRef)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("loan_reward_tier_ref", "invalid format"))
		return
	}

	req := domaincontracts.TemplateNeedCreateRequest{
		ActorId:               userID,
		TemplateId:            templateID,
		NeedType:              body.NeedType,
		Title:                 body.Title,
		Description:           body.Description,
		Priority:              body.Priority,
		SortOrder:             body.SortOrder,
		TargetAmount:          body.TargetAmount,
		StartDatetime:         body.StartDatetime,
		EndDatetime:           body.EndDatetime,
		VolunteersNeeded:      body.VolunteersNeeded,
		RoleTitle:             body.RoleTitle,
		Location:              body.Location,
		RewardTierRef:         rewardTierRef,
		ItemName:              body.ItemName,
		QuantityNeeded:        body.QuantityNeeded,
		Mode:                  body.Mode,
		Notes:                 body.Notes,
		DonationRewardTierRef: donationRef,
		LoanRewardTierRef:     loanRef,
	}

	ctx := c.Request.Context()
	entity, err := h.TemplateService.CreateNeed(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"template_need": entity})
}

func (h *Handler) DeleteTemplateNeed(c *gin.Context) {
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
	if err := h.TemplateService.DeleteNeed(ctx, needID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "template need deleted"})
}

func (h *Handler) CreateTemplateRewardTier(c *gin.Context) {
	var body contracts.TemplateRewardTierCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	templateID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.TemplateRewardTierCreateRequest{
		ActorId:                  userID,
		TemplateId:               templateID,
		RewardType:               body.RewardType,
		Name:                     body.Name,
		Description:              body.Description,
		MinimumContributionValue: body.MinimumContributionValue,
		ImageURL:                 body.ImageURL,
		SortOrder:                body.SortOrder,
		MaxBackers:               body.MaxBackers,
	}

	ctx := c.Request.Context()
	entity, err := h.TemplateService.CreateTier(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"template_reward_tier": entity})
}

func (h *Handler) DeleteTemplateRewardTier(c *gin.Context) {
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
	if err := h.TemplateService.DeleteTier(ctx, tierID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "template reward tier deleted"})
}
