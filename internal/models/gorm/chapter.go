package gorm

import "time"

type Chapter struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	Slug      string    `gorm:"column:slug;uniqueIndex"`
	Name      string    `gorm:"column:name"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Members []Member `gorm:"foreignKey:ChapterID"`
}

// TableName specifies the table name for GORM
func (Chapter) TableName() string {
	return "chapters"
}
