package constants

const (
	GetChapterBySlug = `
	SELECT id, slug, name, is_active, created_at, updated_at
	FROM chapters WHERE slug = $1 AND is_active = TRUE
	`

	CountChapterManagers = `
	SELECT COUNT(*) FROM members WHERE chapter_id = $1 AND role = 'MANAGER'
	`
)
