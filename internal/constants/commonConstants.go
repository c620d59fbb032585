package constants

type (
	RequestSource string
	CachePrefix   string
)

const (
	RequestSourceSession RequestSource = "SESSION"
	RequestSourceBearer  RequestSource = "BEARER"

	CachePrefixChapter CachePrefix = "CHAPTER_"
)
