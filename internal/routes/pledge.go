package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/contracts"
	domaincontracts "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/contracts"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/pledge"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

func (h *Handler) CreatePledge(c *gin.Context) {
	var body contracts.PledgeCreateRequest
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

	needID, err := pkg.ParseULIDPtr(body.NeedId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("need_id", "invalid format"))
		return
	}

	req := domaincontracts.PledgeCreateRequest{
		SupporterId:  userID,
		FundraiserId: fundraiserID,
		NeedId:       needID,
		Comment:      body.Comment,
		Anonymous:    body.Anonymous,
	}
	if body.Money != nil {
		req.Money = &domaincontracts.MoneyPledgePayload{
			Amount:  body.Money.Amount,
			Comment: body.Money.Comment,
		}
	}
	if body.Time != nil {
		req.Time = &domaincontracts.TimePledgePayload{
			StartDatetime:  body.Time.StartDatetime,
			EndDatetime:    body.Time.EndDatetime,
			HoursCommitted: body.Time.HoursCommitted,
			Comment:        body.Time.Comment,
		}
	}
	if body.Item != nil {
		req.Item = &domaincontracts.ItemPledgePayload{
			Quantity: body.Item.Quantity,
			Mode:     body.Item.Mode,
			Comment:  body.Item.Comment,
		}
	}

	ctx := c.Request.Context()
	entity, err := h.PledgeService.Create(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.PledgeResponse{Pledge: entity})
}

func (h *Handler) UpdatePledge(c *gin.Context) {
	var body contracts.PledgeUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pledgeID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.PledgeUpdateRequest{
		Id:        pledgeID,
		ActorId:   userID,
		Comment:   body.Comment,
		Anonymous: body.Anonymous,
	}

	ctx := c.Request.Context()
	entity, err := h.PledgeService.Update(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.PledgeResponse{Pledge: entity})
}

func (h *Handler) GetPledge(c *gin.Context) {
	pledgeID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.PledgeService.GetByID(ctx, pledgeID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.PledgeResponse{Pledge: entity})
}

// TransitionPledge moves a pledge through its status machine. The service
// derives the actor's role from the pledge itself.
func (h *Handler) TransitionPledge(c *gin.Context) {
	var body contracts.PledgeTransitionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pledgeID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.PledgeService.Transition(ctx, pledgeID, pledge.Status(body.Status), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.PledgeResponse{Pledge: entity})
}

func (h *Handler) DeletePledge(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pledgeID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.PledgeService.Delete(ctx, pledgeID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "pledge deleted"})
}

func (h *Handler) UpdateMoneyPledge(c *gin.Context) {
	var body contracts.MoneyPledgeUpdateRequest
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

	req := domaincontracts.MoneyPledgeUpdateRequest{
		Id:      detailID,
		ActorId: userID,
		Amount:  body.Amount,
		Comment: body.Comment,
	}

	ctx := c.Request.Context()
	entity, err := h.PledgeService.UpdateMoneyDetail(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": entity})
}

func (h *Handler) UpdateTimePledge(c *gin.Context) {
	var body contracts.TimePledgeUpdateRequest
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

	req := domaincontracts.TimePledgeUpdateRequest{
		Id:             detailID,
		ActorId:        userID,
		StartDatetime:  body.StartDatetime,
		EndDatetime:    body.EndDatetime,
		HoursCommitted: body.HoursCommitted,
		Comment:        body.Comment,
	}

	ctx := c.Request.Context()
	entity, err := h.PledgeService.UpdateTimeDetail(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": entity})
}

func (h *Handler) UpdateItemPledge(c *gin.Context) {
	var body contracts.ItemPledgeUpdateRequest
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

	req := domaincontracts.ItemPledgeUpdateRequest{
		Id:       detailID,
		ActorId:  userID,
		Quantity: body.Quantity,
		Mode:     body.Mode,
		Comment:  body.Comment,
	}

	ctx := c.Request.Context()
	entity, err := h.PledgeService.UpdateItemDetail(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": entity})
}

func (h *Handler) DeleteMoneyPledge(c *gin.Context) {
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
	if err := h.PledgeService.DeleteMoneyDetail(ctx, detailID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "money pledge detail deleted"})
}

func (h *Handler) DeleteTimePledge(c *gin.Context) {
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
	if err := h.PledgeService.DeleteTimeDetail(ctx, detailID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "time pledge detail deleted"})
}

func (h *Handler) DeleteItemPledge(c *gin.Context) {
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
	if err := h.PledgeService.DeleteItemDetail(ctx, detailID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "item pledge detail deleted"})
}
