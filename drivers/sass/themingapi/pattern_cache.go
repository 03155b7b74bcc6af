package themingapi

import (
	"fmt"

	"github.com/dlclark/regexp2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultPatternCacheSize bounds how many compiled patterns a Migrator keeps.
// The built-in tables need roughly one pattern per symbol and namespace.
const DefaultPatternCacheSize = 2048

// patternCache memoizes compiled patterns by their source text. It is safe
// for concurrent use, so one Migrator can serve many files in parallel.
type patternCache struct {
	cache *lru.Cache[string, *regexp2.Regexp]
}

func newPatternCache(size int) (*patternCache, error) {
	if size <= 0 {
		size = DefaultPatternCacheSize
	}
	cache, err := lru.New[string, *regexp2.Regexp](size)
	if err != nil {
		return nil, fmt.Errorf("creating pattern cache: %w", err)
	}
	return &patternCache{cache: cache}, nil
}

// compile returns the compiled form of expr. A nil cache compiles every time.
func (c *patternCache) compile(expr string) (*regexp2.Regexp, error) {
	if c == nil {
		return regexp2.Compile(expr, regexp2.None)
	}
	if re, ok := c.cache.Get(expr); ok {
		return re, nil
	}
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, err
	}
	c.cache.Add(expr, re)
	return re, nil
}

// Len reports how many compiled patterns are cached.
func (c *patternCache) Len() int {
	if c == nil {
		return 0
	}
	return c.cache.Len()
}
