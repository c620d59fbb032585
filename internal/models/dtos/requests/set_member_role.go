package requests

// SetMemberRoleRequest is the body of PUT .../members/{member_id}/role
type SetMemberRoleRequest struct {
	Role string `json:"role"`
}
