package constants

import (
	"database/sql/driver"
	"fmt"
)

// MemberRole mirrors the Postgres ENUM 'member_role'
type MemberRole string

const (
	RoleApplicant MemberRole = "APPLICANT"
	RoleMember    MemberRole = "MEMBER"
	RoleManager   MemberRole = "MANAGER"
	RoleBlocked   MemberRole = "BLOCKED"
	RoleRemoved   MemberRole = "REMOVED"
)

// String satisfies fmt.Stringer for logs.
func (r MemberRole) String() string { return string(r) }

// IsValid reports whether r is one of the five enumerated roles.
func (r MemberRole) IsValid() bool {
	switch r {
	case RoleApplicant, RoleMember, RoleManager, RoleBlocked, RoleRemoved:
		return true
	}
	return false
}

// IsAssignable reports whether a manager may set r on another member.
// APPLICANT is reachable only through the join/rejoin paths.
func (r MemberRole) IsAssignable() bool {
	switch r {
	case RoleMember, RoleManager, RoleBlocked, RoleRemoved:
		return true
	}
	return false
}

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *MemberRole) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = MemberRole(v)
	case []byte:
		*r = MemberRole(v)
	default:
		return fmt.Errorf("MemberRole: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r MemberRole) Value() (driver.Value, error) { return string(r), nil }

// ActorClassification is the derived categorical view of a caller's
// relationship to a chapter. Recomputed on every request, never persisted.
type ActorClassification string

const (
	ClassAnonymousVisitor     ActorClassification = "ANONYMOUS_VISITOR"
	ClassAuthenticatedVisitor ActorClassification = "AUTHENTICATED_VISITOR"
	ClassApplicant            ActorClassification = "APPLICANT"
	ClassGeneralMember        ActorClassification = "GENERAL_MEMBER"
	ClassManagerMember        ActorClassification = "MANAGER_MEMBER"
	ClassBlockedMember        ActorClassification = "BLOCKED_MEMBER"
	ClassRemovedMember        ActorClassification = "REMOVED_MEMBER"
)

func (c ActorClassification) String() string { return string(c) }

// ClassifyRole maps a stored member role to its actor classification.
func ClassifyRole(r MemberRole) ActorClassification {
	switch r {
	case RoleApplicant:
		return ClassApplicant
	case RoleMember:
		return ClassGeneralMember
	case RoleManager:
		return ClassManagerMember
	case RoleBlocked:
		return ClassBlockedMember
	case RoleRemoved:
		return ClassRemovedMember
	}
	return ClassAuthenticatedVisitor
}
