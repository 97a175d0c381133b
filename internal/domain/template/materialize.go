package template

import (
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/fundraiser"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/need"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/reward"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

// Materialization is everything applying a template produces: the fundraiser
// with template scalars copied in, the cloned reward tiers, and the cloned
// needs with their typed details. The repository persists it in one
// transaction.
type Materialization struct {
	Fundraiser *fundraiser.Fundraiser
	Tiers      []*reward.Tier
	Needs      []*MaterializedNeed
}

// MaterializedNeed pairs a cloned need with the single typed detail matching
// its NeedType.
type MaterializedNeed struct {
	Need  *need.Need
	Money *need.MoneyNeed
	Time  *need.TimeNeed
	Item  *need.ItemNeed
}

// BuildMaterialization turns a template and its children into rows for the
// target fundraiser. It is pure: validation failures return before anything
// is produced, and nothing is persisted here. Tier references on template
// needs that point at tiers of the same template are remapped to the ids of
// the tiers just cloned; references to anything else pass through untouched.
func BuildMaterialization(
	tpl *FundraiserTemplate,
	templateNeeds []*TemplateNeed,
	templateTiers []*TemplateRewardTier,
	target *fundraiser.Fundraiser,
) (*Materialization, error) {
	for _, n := range templateNeeds {
		if missing := missingRequiredFields(n); len(missing) > 0 {
			return nil, appErrors.NewValidationError(
				"template_needs",
				fmt.Sprintf("template need %q is missing required fields: %s", n.Title, strings.Join(missing, ", ")),
			)
		}
	}

	out := &Materialization{Fundraiser: target}
	now := time.Now()

	if tpl.Title != "" {
		target.Title = tpl.Title
	}
	if tpl.Description != "" {
		target.Description = tpl.Description
	}
	if tpl.Goal > 0 {
		target.Goal = tpl.Goal
	}
	if tpl.ImageURL != "" {
		target.ImageURL = tpl.ImageURL
	}
	if tpl.Location != "" {
		target.Location = tpl.Location
	}
	if tpl.EnableRewards {
		target.EnableRewards = true
	}
	target.UpdatedAt = now

	tierIds := make(map[ulid.ULID]ulid.ULID, len(templateTiers))
	for _, t := range templateTiers {
		tier := &reward.Tier{
			Id:                       pkg.GenerateULIDObject(),
			FundraiserId:             target.Id,
			RewardType:               reward.Type(t.RewardType),
			Name:                     t.Name,
			Description:              t.Description,
			MinimumContributionValue: t.MinimumContributionValue,
			ImageURL:                 t.ImageURL,
			SortOrder:                t.SortOrder,
			MaxBackers:               t.MaxBackers,
			CreatedAt:                now,
			UpdatedAt:                now,
			FundraiserOwnerId:        target.OwnerId,
		}
		tier.Normalize()
		tierIds[t.Id] = tier.Id
		out.Tiers = append(out.Tiers, tier)
	}

	resolve := func(ref *ulid.ULID) *ulid.ULID {
		if ref == nil {
			return nil
		}
		if mapped, ok := tierIds[*ref]; ok {
			return &mapped
		}
		return ref
	}

	for _, n := range templateNeeds {
		priority := need.Priority(n.Priority)
		if !priority.IsValid() {
			priority = need.PriorityMedium
		}

		cloned := &need.Need{
			Id:                pkg.GenerateULIDObject(),
			FundraiserId:      target.Id,
			NeedType:          need.Type(n.NeedType),
			Title:             n.Title,
			Description:       n.Description,
			Status:            need.StatusOpen,
			Priority:          priority,
			SortOrder:         n.SortOrder,
			CreatedAt:         now,
			UpdatedAt:         now,
			FundraiserOwnerId: target.OwnerId,
		}
		materialized := &MaterializedNeed{Need: cloned}

		switch need.Type(n.NeedType) {
		case need.TypeMoney:
			materialized.Money = &need.MoneyNeed{
				Id:           pkg.GenerateULIDObject(),
				NeedId:       cloned.Id,
				TargetAmount: *n.TargetAmount,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
		case need.TypeTime:
			materialized.Time = &need.TimeNeed{
				Id:               pkg.GenerateULIDObject(),
				NeedId:           cloned.Id,
				StartDatetime:    *n.StartDatetime,
				EndDatetime:      *n.EndDatetime,
				VolunteersNeeded: *n.VolunteersNeeded,
				RoleTitle:        n.RoleTitle,
				Location:         n.Location,
				RewardTierId:     resolve(n.RewardTierRef),
				CreatedAt:        now,
				UpdatedAt:        now,
			}
		case need.TypeItem:
			materialized.Item = &need.ItemNeed{
				Id:                   pkg.GenerateULIDObject(),
				NeedId:               cloned.Id,
				ItemName:             n.ItemName,
				QuantityNeeded:       *n.QuantityNeeded,
				Mode:                 need.ItemMode(n.Mode),
				Notes:                n.Notes,
				DonationRewardTierId: resolve(n.DonationRewardTierRef),
				LoanRewardTierId:     resolve(n.LoanRewardTierRef),
				CreatedAt:            now,
				UpdatedAt:            now,
			}
		}

		out.Needs = append(out.Needs, materialized)
	}

	return out, nil
}

// missingRequiredFields lists the detail fields a template need must carry for
// its type but does not.
func missingRequiredFields(n *TemplateNeed) []string {
	var missing []string
	switch need.Type(n.NeedType) {
	case need.TypeMoney:
		if n.TargetAmount == nil || *n.TargetAmount <= 0 {
			missing = append(missing, "target_amount")
		}
	case need.TypeTime:
		if n.StartDatetime == nil {
			missing = append(missing, "start_datetime")
		}
		if n.EndDatetime == nil {
			missing = append(missing, "end_datetime")
		}
		if n.VolunteersNeeded == nil || *n.VolunteersNeeded <= 0 {
			missing = append(missing, "volunteers_needed")
		}
		if strings.TrimSpace(n.RoleTitle) == "" {
			missing = append(missing, "role_title")
		}
		if strings.TrimSpace(n.Location) == "" {
			missing = append(missing, "location")
		}
	case need.TypeItem:
		if strings.TrimSpace(n.ItemName) == "" {
			missing = append(missing, "item_name")
		}
		if n.QuantityNeeded == nil || *n.QuantityNeeded <= 0 {
			missing = append(missing, "quantity_needed")
		}
		if !need.ItemMode(n.Mode).IsValid() {
			missing = append(missing, "mode")
		}
	default:
		missing = append(missing, "need_type")
	}
	return missing
}
