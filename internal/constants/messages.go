package constants

// User-facing operation messages. Authorization, validation and persistence
// failures all surface MsgUnableToProcess so callers cannot probe which
// precondition failed. Rate-limit and sole-manager denials are the two
// deliberate exceptions.
const (
	MsgUnableToProcess = "Unable to process request"
	MsgTooManyRequests = "Too many join requests. Please try again in 24 hours"
	MsgSoleManager     = "Cannot leave - you are the only manager"
	MsgSelfManagement  = "You cannot manage your own membership"
	MsgJoinRequested   = "Join request submitted"
	MsgJoinCancelled   = "Join request cancelled"
	MsgLeftChapter     = "You have left the chapter"
	MsgRoleUpdated     = "Member role updated"
)
