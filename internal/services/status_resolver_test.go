package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hockey-playdate/clubhouse/internal/constants"
	"hockey-playdate/clubhouse/internal/db/repositories"
	gormModels "hockey-playdate/clubhouse/internal/models/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(&gormModels.Chapter{}, &gormModels.User{}, &gormModels.Member{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func seedMember(t *testing.T, db *gorm.DB, chapterID, userID string, role constants.MemberRole, windowStart *time.Time, count int) *gormModels.Member {
	t.Helper()

	member := &gormModels.Member{
		ID:               uuid.NewString(),
		ChapterID:        chapterID,
		UserID:           userID,
		Role:             role,
		JoinedAt:         time.Now().Add(-48 * time.Hour),
		JoinWindowStart:  windowStart,
		JoinRequestCount: count,
		UpdatedBy:        userID,
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("Failed to seed member: %v", err)
	}
	return member
}

func TestStatusResolver_Anonymous(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewStatusResolver(repositories.NewMemberRepository(db))

	class, member, err := resolver.Resolve(context.Background(), "chapter-1", "")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if class != constants.ClassAnonymousVisitor {
		t.Errorf("Expected AnonymousVisitor, got %s", class)
	}
	if member != nil {
		t.Error("Expected no member record for anonymous caller")
	}
}

func TestStatusResolver_NoRecord(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewStatusResolver(repositories.NewMemberRepository(db))

	class, member, err := resolver.Resolve(context.Background(), "chapter-1", "user-1")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if class != constants.ClassAuthenticatedVisitor {
		t.Errorf("Expected AuthenticatedVisitor, got %s", class)
	}
	if member != nil {
		t.Error("Expected no member record")
	}
}

func TestStatusResolver_RoleMapping(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewStatusResolver(repositories.NewMemberRepository(db))

	cases := []struct {
		role     constants.MemberRole
		expected constants.ActorClassification
	}{
		{constants.RoleApplicant, constants.ClassApplicant},
		{constants.RoleMember, constants.ClassGeneralMember},
		{constants.RoleManager, constants.ClassManagerMember},
		{constants.RoleBlocked, constants.ClassBlockedMember},
		{constants.RoleRemoved, constants.ClassRemovedMember},
	}

	for i, tc := range cases {
		chapterID := uuid.NewString()
		userID := uuid.NewString()
		seeded := seedMember(t, db, chapterID, userID, tc.role, nil, 0)

		class, member, err := resolver.Resolve(context.Background(), chapterID, userID)
		if err != nil {
			t.Fatalf("case %d: unexpected error: %v", i, err)
		}
		if class != tc.expected {
			t.Errorf("case %d: expected %s, got %s", i, tc.expected, class)
		}
		if member == nil || member.ID != seeded.ID {
			t.Errorf("case %d: expected member record %s returned", i, seeded.ID)
		}
	}
}
