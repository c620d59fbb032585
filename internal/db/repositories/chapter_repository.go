package repositories

import (
	"context"

	"hockey-playdate/clubhouse/internal/constants"
	"hockey-playdate/clubhouse/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// ChapterRepository reads chapter data. Chapters are owned by another part
// of the platform; this service only looks them up.
type ChapterRepository struct {
	db *sqlx.DB
}

func NewChapterRepository(db *sqlx.DB) *ChapterRepository {
	return &ChapterRepository{db}
}

func (r *ChapterRepository) GetBySlug(ctx context.Context, slug string) (*entities.Chapter, error) {

	var chapter entities.Chapter

	err := r.db.QueryRowxContext(ctx, constants.GetChapterBySlug, slug).StructScan(&chapter)
	if err != nil {
		return nil, err
	}

	return &chapter, nil
}

// CountManagers returns the live MANAGER count for a chapter. Always a
// direct query; the sole-manager check must never read a cached value.
func (r *ChapterRepository) CountManagers(ctx context.Context, chapterID string) (int, error) {

	var count int

	err := r.db.QueryRowxContext(ctx, constants.CountChapterManagers, chapterID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
