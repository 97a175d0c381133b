package pledge_test

import (
	"testing"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/pledge"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
)

func TestEnsureAllowedTransitionExhaustive(t *testing.T) {
	t.Parallel()

	statuses := []pledge.Status{
		pledge.StatusPending,
		pledge.StatusApproved,
		pledge.StatusDeclined,
		pledge.StatusCancelled,
	}

	allowed := map[pledge.ActorRole]map[pledge.Status][]pledge.Status{
		pledge.RoleSupporter: {
			pledge.StatusPending: {pledge.StatusCancelled},
		},
		pledge.RoleOwner: {
			pledge.StatusPending:  {pledge.StatusApproved, pledge.StatusDeclined, pledge.StatusCancelled},
			pledge.StatusApproved: {pledge.StatusCancelled},
		},
	}

	for _, role := range []pledge.ActorRole{pledge.RoleSupporter, pledge.RoleOwner} {
		for _, current := range statuses {
			for _, target := range statuses {
				wantOK := false
				for _, ok := range allowed[role][current] {
					if ok == target {
						wantOK = true
					}
				}

				err := pledge.EnsureAllowedTransition(current, target, role)
				if wantOK && err != nil {
					t.Errorf("%s: %s -> %s should be allowed, got %v", role, current, target, err)
				}
				if !wantOK && err == nil {
					t.Errorf("%s: %s -> %s should be rejected", role, current, target)
				}
			}
		}
	}
}

func TestEnsureAllowedTransitionErrorKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		current  pledge.Status
		target   pledge.Status
		role     pledge.ActorRole
		wantCode string
	}{
		{
			name:     "supporter approving is a permission error",
			current:  pledge.StatusPending,
			target:   pledge.StatusApproved,
			role:     pledge.RoleSupporter,
			wantCode: "FORBIDDEN",
		},
		{
			name:     "supporter declining is a permission error",
			current:  pledge.StatusPending,
			target:   pledge.StatusDeclined,
			role:     pledge.RoleSupporter,
			wantCode: "FORBIDDEN",
		},
		{
			name:     "supporter cancelling approved is a conflict",
			current:  pledge.StatusApproved,
			target:   pledge.StatusCancelled,
			role:     pledge.RoleSupporter,
			wantCode: "CONFLICT",
		},
		{
			name:     "owner approving approved is a conflict",
			current:  pledge.StatusApproved,
			target:   pledge.StatusApproved,
			role:     pledge.RoleOwner,
			wantCode: "CONFLICT",
		},
		{
			name:     "owner cannot target pending",
			current:  pledge.StatusApproved,
			target:   pledge.StatusPending,
			role:     pledge.RoleOwner,
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "unknown target status",
			current:  pledge.StatusPending,
			target:   pledge.Status("bogus"),
			role:     pledge.RoleOwner,
			wantCode: "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := pledge.EnsureAllowedTransition(tt.current, tt.target, tt.role)
			if err == nil {
				t.Fatalf("expected error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != tt.wantCode {
				t.Fatalf("expected code %s, got %s", tt.wantCode, appErr.Code)
			}
		})
	}
}
