package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hockey-playdate/clubhouse/internal/constants"
	models "hockey-playdate/clubhouse/internal/models/gorm"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrStaleMember is returned when a conditional role update matches no row,
// meaning the record changed between authorization and commit.
var ErrStaleMember = errors.New("member record changed since it was read")

// ErrMemberNotFound is returned when no membership record exists.
var ErrMemberNotFound = errors.New("member not found")

// MemberRepository manages chapter membership records with GORM
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// GetByID retrieves a membership record by its primary key
func (r *MemberRepository) GetByID(ctx context.Context, id string) (*models.Member, error) {
	var member models.Member

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&member).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to fetch member: %w", err)
	}

	return &member, nil
}

// GetByChapterAndUser retrieves a user's membership record in a chapter
func (r *MemberRepository) GetByChapterAndUser(ctx context.Context, chapterID, userID string) (*models.Member, error) {
	var member models.Member

	err := r.db.WithContext(ctx).
		Where("chapter_id = ? AND user_id = ?", chapterID, userID).
		First(&member).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to fetch member: %w", err)
	}

	return &member, nil
}

// GetAllByChapterID retrieves all membership records for a chapter,
// applicants first, then by join time.
func (r *MemberRepository) GetAllByChapterID(ctx context.Context, chapterID string) ([]models.Member, error) {
	var members []models.Member

	err := r.db.WithContext(ctx).
		Preload("User").
		Where("chapter_id = ?", chapterID).
		Order("joined_at ASC").
		Find(&members).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch chapter members: %w", err)
	}

	return members, nil
}

// Create inserts a new membership record
func (r *MemberRepository) Create(ctx context.Context, member *models.Member) error {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	err := r.db.WithContext(ctx).Create(member).Error
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

// MemberMutation carries all fields committed by one role transition. Role,
// UpdatedBy and the rate-limiter fields are applied in a single statement.
type MemberMutation struct {
	Role             constants.MemberRole
	JoinedAt         time.Time
	JoinWindowStart  *time.Time
	JoinRequestCount int
	UpdatedBy        string
}

// ApplyTransition commits a mutation conditioned on the role observed during
// authorization. Zero rows affected means another writer got there first.
func (r *MemberRepository) ApplyTransition(ctx context.Context, memberID string, observedRole constants.MemberRole, m MemberMutation) error {
	res := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("id = ? AND role = ?", memberID, observedRole).
		Updates(map[string]interface{}{
			"role":               m.Role,
			"joined_at":          m.JoinedAt,
			"join_window_start":  m.JoinWindowStart,
			"join_request_count": m.JoinRequestCount,
			"updated_by":         m.UpdatedBy,
		})

	if res.Error != nil {
		return fmt.Errorf("failed to apply transition: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrStaleMember
	}
	return nil
}

// CountActive counts members currently holding a standing role.
func (r *MemberRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("role IN ?", []constants.MemberRole{constants.RoleMember, constants.RoleManager}).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count active members: %w", err)
	}

	return count, nil
}

// CountApplicants counts members currently awaiting approval.
func (r *MemberRepository) CountApplicants(ctx context.Context) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("role = ?", constants.RoleApplicant).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count applicants: %w", err)
	}

	return count, nil
}
