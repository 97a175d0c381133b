package template_test

import (
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/fundraiser"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/need"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/template"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
)

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func ulidPtr(id ulid.ULID) *ulid.ULID { return &id }

func validTimeNeed() *template.TemplateNeed {
	start := time.Now().Add(24 * time.Hour)
	return &template.TemplateNeed{
		Id:               ulid.Make(),
		NeedType:         "time",
		Title:            "Event marshals",
		StartDatetime:    timePtr(start),
		EndDatetime:      timePtr(start.Add(4 * time.Hour)),
		VolunteersNeeded: intPtr(6),
		RoleTitle:        "Marshal",
		Location:         "Town hall",
	}
}

func TestBuildMaterializationValidatesBeforeProducing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		need        *template.TemplateNeed
		wantMissing string
	}{
		{
			name:        "money need without target amount",
			need:        &template.TemplateNeed{NeedType: "money", Title: "Venue hire"},
			wantMissing: "target_amount",
		},
		{
			name: "time need without role or location",
			need: func() *template.TemplateNeed {
				n := validTimeNeed()
				n.RoleTitle = ""
				n.Location = " "
				return n
			}(),
			wantMissing: "role_title, location",
		},
		{
			name:        "item need with bad mode",
			need:        &template.TemplateNeed{NeedType: "item", Title: "Chairs", ItemName: "Chair", QuantityNeeded: intPtr(40), Mode: "rental"},
			wantMissing: "mode",
		},
		{
			name:        "unknown need type",
			need:        &template.TemplateNeed{NeedType: "services", Title: "Cleanup"},
			wantMissing: "need_type",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tpl := &template.FundraiserTemplate{Id: ulid.Make(), IsActive: true}
			target := &fundraiser.Fundraiser{Id: ulid.Make(), OwnerId: ulid.Make()}

			_, err := template.BuildMaterialization(tpl, []*template.TemplateNeed{tt.need}, nil, target)
			appErr, _ := appErrors.AsAppError(err)
			if appErr == nil || appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !strings.Contains(appErr.Message, tt.need.Title) {
				t.Errorf("expected message to name the offending need, got %q", appErr.Message)
			}
			if !strings.Contains(appErr.Message, tt.wantMissing) {
				t.Errorf("expected message to list %q, got %q", tt.wantMissing, appErr.Message)
			}
		})
	}
}

func TestBuildMaterializationCopiesScalarsWhenSet(t *testing.T) {
	t.Parallel()

	tpl := &template.FundraiserTemplate{
		Id:            ulid.Make(),
		Title:         "School garden",
		Description:   "Raised beds and tools",
		Goal:          1500,
		Location:      "Back field",
		EnableRewards: true,
	}
	target := &fundraiser.Fundraiser{
		Id:          ulid.Make(),
		OwnerId:     ulid.Make(),
		Title:       "Untitled",
		Description: "keep me if template is silent",
		ImageURL:    "https://example.com/existing.png",
		Goal:        10,
	}

	m, err := template.BuildMaterialization(tpl, nil, nil, target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f := m.Fundraiser
	if f.Title != "School garden" || f.Goal != 1500 || !f.EnableRewards {
		t.Fatalf("expected template scalars copied, got %+v", f)
	}
	if f.ImageURL != "https://example.com/existing.png" {
		t.Fatalf("empty template fields must not clobber the target, got %q", f.ImageURL)
	}
}

func TestBuildMaterializationRemapsTierReferences(t *testing.T) {
	t.Parallel()

	tpl := &template.FundraiserTemplate{Id: ulid.Make()}
	target := &fundraiser.Fundraiser{Id: ulid.Make(), OwnerId: ulid.Make()}

	templateTier := &template.TemplateRewardTier{
		Id:         ulid.Make(),
		RewardType: "time",
		Name:       "Volunteer badge",
	}
	foreignTier := ulid.Make()

	timeNeed := validTimeNeed()
	timeNeed.RewardTierRef = ulidPtr(templateTier.Id)

	itemNeed := &template.TemplateNeed{
		Id:                    ulid.Make(),
		NeedType:              "item",
		Title:                 "Folding tables",
		ItemName:              "Table",
		QuantityNeeded:        intPtr(10),
		Mode:                  "donation",
		DonationRewardTierRef: ulidPtr(foreignTier),
	}

	m, err := template.BuildMaterialization(
		tpl,
		[]*template.TemplateNeed{timeNeed, itemNeed},
		[]*template.TemplateRewardTier{templateTier},
		target,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(m.Tiers) != 1 || len(m.Needs) != 2 {
		t.Fatalf("expected 1 tier and 2 needs, got %d and %d", len(m.Tiers), len(m.Needs))
	}
	cloned := m.Tiers[0]
	if cloned.Id == templateTier.Id {
		t.Fatalf("cloned tier must get a fresh id")
	}
	if cloned.FundraiserId != target.Id || cloned.FundraiserOwnerId != target.OwnerId {
		t.Fatalf("cloned tier must belong to the target fundraiser")
	}

	gotTime := m.Needs[0].Time
	if gotTime == nil || gotTime.RewardTierId == nil || *gotTime.RewardTierId != cloned.Id {
		t.Fatalf("expected the time need's tier ref remapped to the cloned tier")
	}
	gotItem := m.Needs[1].Item
	if gotItem == nil || gotItem.DonationRewardTierId == nil || *gotItem.DonationRewardTierId != foreignTier {
		t.Fatalf("references outside the template must pass through untouched")
	}
}

func TestBuildMaterializationNeedDefaults(t *testing.T) {
	t.Parallel()

	tpl := &template.FundraiserTemplate{Id: ulid.Make()}
	target := &fundraiser.Fundraiser{Id: ulid.Make(), OwnerId: ulid.Make()}

	moneyNeed := &template.TemplateNeed{
		Id:           ulid.Make(),
		NeedType:     "money",
		Title:        "Venue hire",
		Priority:     "not-a-priority",
		TargetAmount: floatPtr(800),
	}

	m, err := template.BuildMaterialization(tpl, []*template.TemplateNeed{moneyNeed}, nil, target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cloned := m.Needs[0].Need
	if cloned.Status != need.StatusOpen {
		t.Fatalf("cloned needs start open, got %s", cloned.Status)
	}
	if cloned.Priority != need.PriorityMedium {
		t.Fatalf("invalid priority falls back to medium, got %s", cloned.Priority)
	}
	if m.Needs[0].Money == nil || m.Needs[0].Money.TargetAmount != 800 {
		t.Fatalf("expected money detail carried over")
	}
	if m.Needs[0].Time != nil || m.Needs[0].Item != nil {
		t.Fatalf("only the detail matching the need type may be produced")
	}
}
