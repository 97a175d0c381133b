package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/contracts"
)

func (h *Handler) GetFundraiserSummary(c *gin.Context) {
	fundraiserID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	summary, err := h.ReportService.FundraiserSummary(ctx, fundraiserID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.FundraiserSummaryResponse{Summary: summary})
}

func (h *Handler) GetNeedProgress(c *gin.Context) {
	needID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	progress, err := h.ReportService.NeedProgress(ctx, needID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.NeedProgressResponse{Progress: progress})
}

func (h *Handler) ListMyPledges(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	pledges, err := h.ReportService.MyPledges(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.PledgeViewListResponse{Pledges: pledges})
}

// ListFundraiserPledges is the owner's view, including supporter identities
// for non-anonymous pledges.
func (h *Handler) ListFundraiserPledges(c *gin.Context) {
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
	pledges, err := h.ReportService.FundraiserPledges(ctx, fundraiserID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.PledgeViewListResponse{Pledges: pledges})
}

func (h *Handler) ListMyRewards(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	rewards, err := h.ReportService.MyRewards(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.EarnedRewardListResponse{Rewards: rewards})
}
