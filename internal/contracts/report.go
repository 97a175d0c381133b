package contracts

import (
	domainReport "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/report"
)

type FundraiserSummaryResponse struct {
	Summary *domainReport.FundraiserSummary `json:"summary"`
}

type NeedProgressResponse struct {
	Progress *domainReport.NeedProgress `json:"progress"`
}

type PledgeViewListResponse struct {
	Pledges []*domainReport.PledgeView `json:"pledges"`
}

type EarnedRewardListResponse struct {
	Rewards []*domainReport.EarnedReward `json:"rewards"`
}
