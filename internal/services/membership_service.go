package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"hockey-playdate/clubhouse/internal/common"
	"hockey-playdate/clubhouse/internal/constants"
	"hockey-playdate/clubhouse/internal/db/repositories"
	"hockey-playdate/clubhouse/internal/logging"
	"hockey-playdate/clubhouse/internal/metrics"
	"hockey-playdate/clubhouse/internal/models/entities"
	models "hockey-playdate/clubhouse/internal/models/gorm"
)

// ChapterDirectory looks up chapters and their live manager counts.
// Implemented by repositories.ChapterRepository in production.
type ChapterDirectory interface {
	GetBySlug(ctx context.Context, slug string) (*entities.Chapter, error)
	CountManagers(ctx context.Context, chapterID string) (int, error)
}

// OperationResult is the structured outcome of one lifecycle operation.
// Failures carry a short user-facing message; diagnostic detail is logged,
// never returned.
type OperationResult struct {
	OK      bool
	Message string
	Member  *models.Member
}

func succeeded(message string, member *models.Member) OperationResult {
	return OperationResult{OK: true, Message: message, Member: member}
}

func failed(message string) OperationResult {
	return OperationResult{Message: message}
}

var chapterSlugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)

var errInvalidSlug = errors.New("malformed chapter slug")

// MembershipService runs the chapter membership lifecycle: join requests,
// cancellations, voluntary leaves and manager-driven role assignment.
type MembershipService struct {
	chapters ChapterDirectory
	members  *repositories.MemberRepository
	resolver *StatusResolver
	cache    common.CacheInterface
	metrics  *metrics.MetricsRegistry
}

func NewMembershipService(
	chapters ChapterDirectory,
	members *repositories.MemberRepository,
	resolver *StatusResolver,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
) *MembershipService {
	return &MembershipService{
		chapters: chapters,
		members:  members,
		resolver: resolver,
		cache:    cache,
		metrics:  metricsReg,
	}
}

// lookupChapter validates the slug before any state is read, then resolves
// the chapter through the cache. Lookups are cacheable; manager counts are
// not (see ChapterDirectory.CountManagers).
func (s *MembershipService) lookupChapter(ctx context.Context, slug string) (*entities.Chapter, error) {
	if !chapterSlugPattern.MatchString(slug) {
		return nil, errInvalidSlug
	}

	val, err := s.cache.GetOrSet(
		string(constants.CachePrefixChapter)+slug,
		5*time.Minute,
		func() (any, error) {
			return s.chapters.GetBySlug(ctx, slug)
		},
	)
	if err != nil {
		return nil, err
	}

	chapter, ok := val.(*entities.Chapter)
	if !ok {
		// The Redis cache backend round-trips values through JSON and
		// hands back generic maps; fall through to a direct lookup.
		return s.chapters.GetBySlug(ctx, slug)
	}
	return chapter, nil
}

func (s *MembershipService) countTransition(operation, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.MembershipTransitionsTotal.WithLabelValues(operation, outcome).Inc()
}

func (s *MembershipService) countJoinDenial(reason string) {
	if s.metrics == nil {
		return
	}
	s.metrics.JoinDenialsTotal.WithLabelValues(reason).Inc()
}

// RequestJoin handles a join or re-application attempt. First-time callers
// get a fresh APPLICANT record; applicants and removed members re-apply
// against the fixed-window rate limiter. Nothing is persisted on a denied
// attempt.
func (s *MembershipService) RequestJoin(ctx context.Context, chapterSlug, actorUserID string) OperationResult {
	now := time.Now()
	log := logging.WithOperation("request_join", chapterSlug, actorUserID)

	chapter, err := s.lookupChapter(ctx, chapterSlug)
	if err != nil {
		log.Warnw("chapter lookup failed", "error", err.Error())
		s.countTransition("request_join", "failed")
		return failed(constants.MsgUnableToProcess)
	}

	class, member, err := s.resolver.Resolve(ctx, chapter.ID, actorUserID)
	if err != nil {
		log.Errorw("status resolution failed", "error", err.Error())
		s.countTransition("request_join", "failed")
		return failed(constants.MsgUnableToProcess)
	}

	if decision := AuthorizeJoin(class); !decision.Allowed {
		log.Warnw("join refused",
			"classification", class.String(),
			"reason", decision.Reason.String(),
		)
		s.countJoinDenial(decision.Reason.String())
		s.countTransition("request_join", "denied")
		return failed(constants.MsgUnableToProcess)
	}

	attempt := EvaluateJoinAttempt(member, now)
	if !attempt.Allowed {
		s.countJoinDenial("rate_limited")
		s.countTransition("request_join", "denied")
		return failed(constants.MsgTooManyRequests)
	}

	windowStart := attempt.WindowStart

	if member == nil {
		created := &models.Member{
			ChapterID:        chapter.ID,
			UserID:           actorUserID,
			Role:             constants.RoleApplicant,
			JoinedAt:         now,
			JoinWindowStart:  &windowStart,
			JoinRequestCount: attempt.Count,
			UpdatedBy:        actorUserID,
		}
		if err := s.members.Create(ctx, created); err != nil {
			log.Errorw("insert failed", "error", err.Error())
			s.countTransition("request_join", "failed")
			return failed(constants.MsgUnableToProcess)
		}
		s.countTransition("request_join", "ok")
		return succeeded(constants.MsgJoinRequested, created)
	}

	// Re-application keeps JoinedAt when the role is already APPLICANT;
	// a rejoin from REMOVED starts a new role period.
	joinedAt := now
	if member.Role == constants.RoleApplicant {
		joinedAt = member.JoinedAt
	}

	mutation := repositories.MemberMutation{
		Role:             constants.RoleApplicant,
		JoinedAt:         joinedAt,
		JoinWindowStart:  &windowStart,
		JoinRequestCount: attempt.Count,
		UpdatedBy:        actorUserID,
	}
	if err := s.members.ApplyTransition(ctx, member.ID, member.Role, mutation); err != nil {
		log.Errorw("transition failed", "member_id", member.ID, "error", err.Error())
		s.countTransition("request_join", "failed")
		return failed(constants.MsgUnableToProcess)
	}

	s.countTransition("request_join", "ok")
	return succeeded(constants.MsgJoinRequested, member)
}

// CancelJoinRequest withdraws a pending application. Only the applicant
// themselves may cancel; the record becomes REMOVED, and the rate-limiter
// window survives so cancel/rejoin cycles stay throttled.
func (s *MembershipService) CancelJoinRequest(ctx context.Context, chapterSlug, actorUserID string) OperationResult {
	now := time.Now()
	log := logging.WithOperation("cancel_join", chapterSlug, actorUserID)

	chapter, err := s.lookupChapter(ctx, chapterSlug)
	if err != nil {
		log.Warnw("chapter lookup failed", "error", err.Error())
		s.countTransition("cancel_join", "failed")
		return failed(constants.MsgUnableToProcess)
	}

	class, member, err := s.resolver.Resolve(ctx, chapter.ID, actorUserID)
	if err != nil {
		log.Errorw("status resolution failed", "error", err.Error())
		s.countTransition("cancel_join", "failed")
		return failed(constants.MsgUnableToProcess)
	}

	if decision := AuthorizeCancel(class); !decision.Allowed {
		s.countTransition("cancel_join", "denied")
		return failed(constants.MsgUnableToProcess)
	}

	mutation := repositories.MemberMutation{
		Role:             constants.RoleRemoved,
		JoinedAt:         now,
		JoinWindowStart:  member.JoinWindowStart,
		JoinRequestCount: member.JoinRequestCount,
		UpdatedBy:        actorUserID,
	}
	if err := s.members.ApplyTransition(ctx, member.ID, member.Role, mutation); err != nil {
		log.Errorw("transition failed", "member_id", member.ID, "error", err.Error())
		s.countTransition("cancel_join", "failed")
		return failed(constants.MsgUnableToProcess)
	}

	s.countTransition("cancel_join", "ok")
	return succeeded(constants.MsgJoinCancelled, member)
}

// LeaveChapter handles a voluntary departure by a member or manager. A
// manager may only leave while at least one other manager remains.
func (s *MembershipService) LeaveChapter(ctx context.Context, chapterSlug, actorUserID string) OperationResult {
	now := time.Now()
	log := logging.WithOperation("leave", chapterSlug, actorUserID)

	chapter, err := s.lookupChapter(ctx, chapterSlug)
	if err != nil {
		log.Warnw("chapter lookup failed", "error", err.Error())
		s.countTransition("leave", "failed")
		return failed(constants.MsgUnableToProcess)
	}

	class, member, err := s.resolver.Resolve(ctx, chapter.ID, actorUserID)
	if err != nil {
		log.Errorw("status resolution failed", "error", err.Error())
		s.countTransition("leave", "failed")
		return failed(constants.MsgUnableToProcess)
	}

	managerCount := 0
	if class == constants.ClassManagerMember {
		managerCount, err = s.chapters.CountManagers(ctx, chapter.ID)
		if err != nil {
			log.Errorw("manager count failed", "error", err.Error())
			s.countTransition("leave", "failed")
			return failed(constants.MsgUnableToProcess)
		}
	}

	decision := AuthorizeLeave(class, managerCount)
	if !decision.Allowed {
		s.countTransition("leave", "denied")
		if decision.Reason == DenySoleManager {
			return failed(constants.MsgSoleManager)
		}
		return failed(constants.MsgUnableToProcess)
	}

	mutation := repositories.MemberMutation{
		Role:             constants.RoleRemoved,
		JoinedAt:         now,
		JoinWindowStart:  member.JoinWindowStart,
		JoinRequestCount: member.JoinRequestCount,
		UpdatedBy:        actorUserID,
	}
	if err := s.members.ApplyTransition(ctx, member.ID, member.Role, mutation); err != nil {
		log.Errorw("transition failed", "member_id", member.ID, "error", err.Error())
		s.countTransition("leave", "failed")
		return failed(constants.MsgUnableToProcess)
	}

	s.countTransition("leave", "ok")
	return succeeded(constants.MsgLeftChapter, member)
}

// SetMemberRole applies a manager-driven role assignment to another member.
// Assignment clears the target's rate-limiter fields: the application
// lifecycle is over once a manager has decided.
func (s *MembershipService) SetMemberRole(ctx context.Context, chapterSlug, targetMemberID, newRole, actorUserID string) OperationResult {
	now := time.Now()
	log := logging.WithOperation("set_role", chapterSlug, actorUserID)

	chapter, err := s.lookupChapter(ctx, chapterSlug)
	if err != nil {
		log.Warnw("chapter lookup failed", "error", err.Error())
		s.countTransition("set_role", "failed")
		return failed(constants.MsgUnableToProcess)
	}

	target, err := s.members.GetByID(ctx, targetMemberID)
	if err != nil {
		log.Warnw("target lookup failed", "target_member_id", targetMemberID, "error", err.Error())
		s.countTransition("set_role", "failed")
		return failed(constants.MsgUnableToProcess)
	}
	if target.ChapterID != chapter.ID {
		log.Warnw("target belongs to another chapter", "target_member_id", targetMemberID)
		s.countTransition("set_role", "denied")
		return failed(constants.MsgUnableToProcess)
	}

	class, _, err := s.resolver.Resolve(ctx, chapter.ID, actorUserID)
	if err != nil {
		log.Errorw("status resolution failed", "error", err.Error())
		s.countTransition("set_role", "failed")
		return failed(constants.MsgUnableToProcess)
	}

	role := constants.MemberRole(strings.ToUpper(newRole))

	decision := AuthorizeRoleAssignment(class, actorUserID, target, role)
	if !decision.Allowed {
		log.Warnw("assignment refused",
			"target_member_id", targetMemberID,
			"classification", class.String(),
			"reason", decision.Reason.String(),
		)
		s.countTransition("set_role", "denied")
		if decision.Reason == DenySelfManagement {
			return failed(constants.MsgSelfManagement)
		}
		return failed(constants.MsgUnableToProcess)
	}

	// Reassigning the role a member already holds is idempotent at the
	// record level: the role period start is preserved.
	joinedAt := now
	if target.Role == role {
		joinedAt = target.JoinedAt
	}

	mutation := repositories.MemberMutation{
		Role:             role,
		JoinedAt:         joinedAt,
		JoinWindowStart:  nil,
		JoinRequestCount: 0,
		UpdatedBy:        actorUserID,
	}
	if err := s.members.ApplyTransition(ctx, target.ID, target.Role, mutation); err != nil {
		log.Errorw("transition failed", "target_member_id", target.ID, "error", err.Error())
		s.countTransition("set_role", "failed")
		return failed(constants.MsgUnableToProcess)
	}

	s.countTransition("set_role", "ok")
	return succeeded(constants.MsgRoleUpdated, target)
}

// Status resolves the caller's standing in a chapter for read-only display.
func (s *MembershipService) Status(ctx context.Context, chapterSlug, userID string) (constants.ActorClassification, *models.Member, error) {
	chapter, err := s.lookupChapter(ctx, chapterSlug)
	if err != nil {
		return "", nil, err
	}
	return s.resolver.Resolve(ctx, chapter.ID, userID)
}

// Roster lists a chapter's membership records. Authorization is the
// caller's concern (manager-gated route).
func (s *MembershipService) Roster(ctx context.Context, chapterSlug string) ([]models.Member, error) {
	chapter, err := s.lookupChapter(ctx, chapterSlug)
	if err != nil {
		return nil, err
	}
	return s.members.GetAllByChapterID(ctx, chapter.ID)
}
