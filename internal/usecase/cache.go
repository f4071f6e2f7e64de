package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const directoryCachePattern = "directory:*"

// DirectoryCache is the read-through cache over directory pages. A nil
// implementation or an unavailable backend degrades to querying the store.
type DirectoryCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

func directoryCacheKey(page, limit int, skillName, skillType string) string {
	name := strings.ToLower(strings.TrimSpace(skillName))
	typ := strings.ToLower(strings.TrimSpace(skillType))
	if typ == "" {
		typ = "all"
	}
	return fmt.Sprintf("directory:p%d:l%d:s%s:t%s", page, limit, name, typ)
}
