package gorm

import (
	"time"

	"hockey-playdate/clubhouse/internal/constants"
)

// Member binds one user to one chapter. Rows are never hard-deleted;
// leaving and removal are represented by RoleRemoved.
type Member struct {
	ID               string               `gorm:"column:id;primaryKey;type:uuid"`
	ChapterID        string               `gorm:"column:chapter_id;type:uuid;uniqueIndex:idx_members_chapter_user"`
	UserID           string               `gorm:"column:user_id;type:uuid;uniqueIndex:idx_members_chapter_user"`
	Role             constants.MemberRole `gorm:"column:role;type:member_role"`
	JoinedAt         time.Time            `gorm:"column:joined_at"`
	JoinWindowStart  *time.Time           `gorm:"column:join_window_start"`
	JoinRequestCount int                  `gorm:"column:join_request_count;default:0"`
	UpdatedBy        string               `gorm:"column:updated_by;type:uuid"`
	CreatedAt        time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time            `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Chapter Chapter `gorm:"foreignKey:ChapterID"`
	User    User    `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for GORM
func (Member) TableName() string {
	return "members"
}
