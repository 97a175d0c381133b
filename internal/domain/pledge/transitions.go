package pledge

import (
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
)

// EnsureAllowedTransition enforces the pledge status rules:
//
//   - supporters can cancel only while pending, and can never
//     approve or decline;
//   - owners approve/decline only pending pledges, and cancel
//     pending or approved ones.
//
// It is a pure function of (current, target, role) with no side effects; the
// caller persists the new status on success.
func EnsureAllowedTransition(current, target Status, role ActorRole) error {
	if !target.IsValid() {
		return appErrors.NewValidationError("status", "unknown target status")
	}

	switch role {
	case RoleSupporter:
		if target == StatusCancelled {
			if current != StatusPending {
				return appErrors.NewConflictError("supporters can only cancel pending pledges")
			}
			return nil
		}
		return appErrors.NewPermissionError("supporters cannot approve/decline pledges")

	case RoleOwner:
		switch target {
		case StatusApproved:
			if current != StatusPending {
				return appErrors.NewConflictError("only pending pledges can be approved")
			}
			return nil
		case StatusDeclined:
			if current != StatusPending {
				return appErrors.NewConflictError("only pending pledges can be declined")
			}
			return nil
		case StatusCancelled:
			if current != StatusPending && current != StatusApproved {
				return appErrors.NewConflictError("only pending or approved pledges can be cancelled")
			}
			return nil
		}
		return appErrors.NewValidationError("status", "unknown target status")
	}

	return appErrors.NewPermissionError("invalid actor role")
}
