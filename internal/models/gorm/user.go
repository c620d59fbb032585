package gorm

import "time"

type User struct {
	ID             string    `gorm:"column:id;primaryKey;type:uuid"`
	AuthProviderID string    `gorm:"column:auth_provider_id;uniqueIndex"`
	Email          string    `gorm:"column:email"`
	Name           *string   `gorm:"column:name"`
	IsActive       bool      `gorm:"column:is_active;default:true"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Memberships []Member `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
