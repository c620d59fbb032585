package services

import (
	"testing"

	"hockey-playdate/clubhouse/internal/constants"
	models "hockey-playdate/clubhouse/internal/models/gorm"
)

func TestAuthorizeJoin(t *testing.T) {
	cases := []struct {
		class   constants.ActorClassification
		allowed bool
	}{
		{constants.ClassAuthenticatedVisitor, true},
		{constants.ClassApplicant, true},
		{constants.ClassRemovedMember, true},
		{constants.ClassAnonymousVisitor, false},
		{constants.ClassGeneralMember, false},
		{constants.ClassManagerMember, false},
		{constants.ClassBlockedMember, false},
	}

	for _, tc := range cases {
		decision := AuthorizeJoin(tc.class)
		if decision.Allowed != tc.allowed {
			t.Errorf("AuthorizeJoin(%s): expected allowed=%v, got %v", tc.class, tc.allowed, decision.Allowed)
		}
	}
}

func TestAuthorizeCancel(t *testing.T) {
	for _, class := range []constants.ActorClassification{
		constants.ClassAnonymousVisitor,
		constants.ClassAuthenticatedVisitor,
		constants.ClassGeneralMember,
		constants.ClassManagerMember,
		constants.ClassBlockedMember,
		constants.ClassRemovedMember,
	} {
		if AuthorizeCancel(class).Allowed {
			t.Errorf("AuthorizeCancel(%s): expected denial", class)
		}
	}

	if !AuthorizeCancel(constants.ClassApplicant).Allowed {
		t.Error("AuthorizeCancel(Applicant): expected allow")
	}
}

func TestAuthorizeLeave_Member(t *testing.T) {
	if !AuthorizeLeave(constants.ClassGeneralMember, 0).Allowed {
		t.Error("Expected general member to be allowed to leave")
	}
}

func TestAuthorizeLeave_SoleManagerDenied(t *testing.T) {
	decision := AuthorizeLeave(constants.ClassManagerMember, 1)

	if decision.Allowed {
		t.Error("Expected sole manager leave to be denied")
	}
	if decision.Reason != DenySoleManager {
		t.Errorf("Expected DenySoleManager, got %s", decision.Reason)
	}
}

func TestAuthorizeLeave_ManagerWithPeersAllowed(t *testing.T) {
	if !AuthorizeLeave(constants.ClassManagerMember, 2).Allowed {
		t.Error("Expected manager with a peer to be allowed to leave")
	}
}

func TestAuthorizeLeave_NonMembersDenied(t *testing.T) {
	for _, class := range []constants.ActorClassification{
		constants.ClassAnonymousVisitor,
		constants.ClassAuthenticatedVisitor,
		constants.ClassApplicant,
		constants.ClassBlockedMember,
		constants.ClassRemovedMember,
	} {
		if AuthorizeLeave(class, 5).Allowed {
			t.Errorf("AuthorizeLeave(%s): expected denial", class)
		}
	}
}

func TestAuthorizeRoleAssignment_SelfAlwaysDenied(t *testing.T) {
	target := &models.Member{ID: "m1", UserID: "u1", Role: constants.RoleManager}

	// The self check fires whatever the actor's current classification is.
	for _, class := range []constants.ActorClassification{
		constants.ClassManagerMember,
		constants.ClassGeneralMember,
		constants.ClassApplicant,
		constants.ClassBlockedMember,
	} {
		for _, role := range []constants.MemberRole{
			constants.RoleMember,
			constants.RoleManager,
			constants.RoleBlocked,
			constants.RoleRemoved,
		} {
			decision := AuthorizeRoleAssignment(class, "u1", target, role)
			if decision.Allowed {
				t.Errorf("self assignment (%s -> %s): expected denial", class, role)
			}
			if decision.Reason != DenySelfManagement {
				t.Errorf("self assignment (%s -> %s): expected DenySelfManagement, got %s", class, role, decision.Reason)
			}
		}
	}
}

func TestAuthorizeRoleAssignment_ApplicantNeverAssignable(t *testing.T) {
	target := &models.Member{ID: "m2", UserID: "u2", Role: constants.RoleMember}

	decision := AuthorizeRoleAssignment(constants.ClassManagerMember, "u1", target, constants.RoleApplicant)

	if decision.Allowed {
		t.Error("Expected APPLICANT assignment to be denied")
	}
	if decision.Reason != DenyInvalidRole {
		t.Errorf("Expected DenyInvalidRole, got %s", decision.Reason)
	}
}

func TestAuthorizeRoleAssignment_NonManagerDenied(t *testing.T) {
	target := &models.Member{ID: "m2", UserID: "u2", Role: constants.RoleMember}

	for _, class := range []constants.ActorClassification{
		constants.ClassAuthenticatedVisitor,
		constants.ClassApplicant,
		constants.ClassGeneralMember,
		constants.ClassBlockedMember,
		constants.ClassRemovedMember,
	} {
		decision := AuthorizeRoleAssignment(class, "u1", target, constants.RoleBlocked)
		if decision.Allowed {
			t.Errorf("AuthorizeRoleAssignment(%s): expected denial", class)
		}
	}
}

func TestAuthorizeRoleAssignment_ManagerOnOther(t *testing.T) {
	target := &models.Member{ID: "m2", UserID: "u2", Role: constants.RoleApplicant}

	for _, role := range []constants.MemberRole{
		constants.RoleMember,
		constants.RoleManager,
		constants.RoleBlocked,
		constants.RoleRemoved,
	} {
		decision := AuthorizeRoleAssignment(constants.ClassManagerMember, "u1", target, role)
		if !decision.Allowed {
			t.Errorf("AuthorizeRoleAssignment(manager -> %s): expected allow, got %s", role, decision.Reason)
		}
	}
}

func TestAuthorizeRoleAssignment_UnknownRoleDenied(t *testing.T) {
	target := &models.Member{ID: "m2", UserID: "u2", Role: constants.RoleMember}

	decision := AuthorizeRoleAssignment(constants.ClassManagerMember, "u1", target, constants.MemberRole("OWNER"))

	if decision.Allowed {
		t.Error("Expected unknown role assignment to be denied")
	}
}

func TestAuthorizeRoleAssignment_MissingTargetDenied(t *testing.T) {
	decision := AuthorizeRoleAssignment(constants.ClassManagerMember, "u1", nil, constants.RoleMember)

	if decision.Allowed {
		t.Error("Expected missing target to be denied")
	}
}
