package services

import (
	"hockey-playdate/clubhouse/internal/constants"
	models "hockey-playdate/clubhouse/internal/models/gorm"
)

// DenyReason distinguishes denial causes internally. Only self-management,
// sole-manager and rate-limit denials map to specific user-facing messages;
// everything else collapses to the generic failure message.
type DenyReason int

const (
	DenyNone DenyReason = iota
	DenyNotPermitted
	DenySelfManagement
	DenySoleManager
	DenyInvalidRole
)

func (r DenyReason) String() string {
	switch r {
	case DenyNone:
		return "none"
	case DenySelfManagement:
		return "self_management"
	case DenySoleManager:
		return "sole_manager"
	case DenyInvalidRole:
		return "invalid_role"
	}
	return "not_permitted"
}

// Decision is the outcome of one transition authorization check.
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

func allow() Decision            { return Decision{Allowed: true} }
func deny(r DenyReason) Decision { return Decision{Reason: r} }

// AuthorizeJoin checks whether the actor may request to join (or re-apply
// to) a chapter. First-time visitors, current applicants and previously
// removed members may attempt; everyone else is refused.
func AuthorizeJoin(class constants.ActorClassification) Decision {
	switch class {
	case constants.ClassAuthenticatedVisitor, constants.ClassApplicant, constants.ClassRemovedMember:
		return allow()
	}
	return deny(DenyNotPermitted)
}

// AuthorizeCancel checks whether the actor may withdraw a pending join
// request. Only the applicant themselves can.
func AuthorizeCancel(class constants.ActorClassification) Decision {
	if class == constants.ClassApplicant {
		return allow()
	}
	return deny(DenyNotPermitted)
}

// AuthorizeLeave checks whether the actor may voluntarily leave a chapter.
// managerCount is the chapter's live MANAGER count and is only consulted
// when the actor is a manager: a chapter must never reach zero managers
// through a leave action.
func AuthorizeLeave(class constants.ActorClassification, managerCount int) Decision {
	switch class {
	case constants.ClassGeneralMember:
		return allow()
	case constants.ClassManagerMember:
		if managerCount <= 1 {
			return deny(DenySoleManager)
		}
		return allow()
	}
	return deny(DenyNotPermitted)
}

// AuthorizeRoleAssignment checks whether the actor may set newRole on the
// target membership record. The self-management check runs before the
// actor-role check so a caller targeting their own record always gets the
// self-management refusal, whatever their current role.
func AuthorizeRoleAssignment(class constants.ActorClassification, actorUserID string, target *models.Member, newRole constants.MemberRole) Decision {
	if target == nil {
		return deny(DenyNotPermitted)
	}
	if target.UserID == actorUserID {
		return deny(DenySelfManagement)
	}
	if class != constants.ClassManagerMember {
		return deny(DenyNotPermitted)
	}
	if !newRole.IsAssignable() {
		return deny(DenyInvalidRole)
	}
	return allow()
}
