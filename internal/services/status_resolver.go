package services

import (
	"context"
	"errors"

	"hockey-playdate/clubhouse/internal/constants"
	"hockey-playdate/clubhouse/internal/db/repositories"
	models "hockey-playdate/clubhouse/internal/models/gorm"
)

// StatusResolver computes the categorical standing of a caller in a chapter.
// Absence of a membership record is a valid classification, not an error.
type StatusResolver struct {
	members *repositories.MemberRepository
}

func NewStatusResolver(members *repositories.MemberRepository) *StatusResolver {
	return &StatusResolver{members: members}
}

// Resolve returns the actor classification for userID in chapterID, plus the
// membership record when one exists. An empty userID marks an anonymous
// caller. No side effects; deterministic given current stored state.
func (s *StatusResolver) Resolve(ctx context.Context, chapterID, userID string) (constants.ActorClassification, *models.Member, error) {
	if userID == "" {
		return constants.ClassAnonymousVisitor, nil, nil
	}

	member, err := s.members.GetByChapterAndUser(ctx, chapterID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return constants.ClassAuthenticatedVisitor, nil, nil
		}
		return "", nil, err
	}

	return constants.ClassifyRole(member.Role), member, nil
}
