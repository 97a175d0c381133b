package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/contracts"
	domaincontracts "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/contracts"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

func (h *Handler) CreateFundraiser(c *gin.Context) {
	var body contracts.FundraiserCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.FundraiserCreateRequest{
		OwnerId:         userID,
		Title:           body.Title,
		Description:     body.Description,
		Goal:            body.Goal,
		ImageURL:        body.ImageURL,
		Location:        body.Location,
		StartDate:       body.StartDate,
		EndDate:         body.EndDate,
		Status:          body.Status,
		EnableRewards:   body.EnableRewards,
		RequireApproval: body.RequireApproval,
		SortOrder:       body.SortOrder,
	}

	ctx := c.Request.Context()
	entity, err := h.FundraiserService.Create(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.FundraiserResponse{Fundraiser: entity})
}

func (h *Handler) UpdateFundraiser(c *gin.Context) {
	var body contracts.FundraiserUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	fundraiserID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.FundraiserUpdateRequest{
		Id:              fundraiserID,
		ActorId:         userID,
		Title:           body.Title,
		Description:     body.Description,
		Goal:            body.Goal,
		ImageURL:        body.ImageURL,
		Location:        body.Location,
		StartDate:       body.StartDate,
		EndDate:         body.EndDate,
		Status:          body.Status,
		EnableRewards:   body.EnableRewards,
		RequireApproval: body.RequireApproval,
		SortOrder:       body.SortOrder,
	}

	ctx := c.Request.Context()
	entity, err := h.FundraiserService.Update(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.FundraiserResponse{Fundraiser: entity})
}

func (h *Handler) GetFundraiser(c *gin.Context) {
	fundraiserID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.FundraiserService.GetByID(ctx, fundraiserID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.FundraiserResponse{Fundraiser: entity})
}

func (h *Handler) ListFundraisers(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	fundraisers, total, err := h.FundraiserService.List(ctx, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(fundraisers, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) ListMyFundraisers(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	fundraisers, total, err := h.FundraiserService.GetByOwnerID(ctx, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(fundraisers, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) DeleteFundraiser(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	fundraiserID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.FundraiserService.Delete(ctx, fundraiserID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "fundraiser deleted"})
}

func (h *Handler) ApplyTemplate(c *gin.Context) {
	var body contracts.ApplyTemplateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	fundraiserID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	templateID, err := pkg.ParseULID(body.TemplateId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("template_id", "invalid format"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.TemplateService.Apply(ctx, fundraiserID, templateID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ApplyTemplateResponse{Fundraiser: entity})
}
