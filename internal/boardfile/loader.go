package boardfile

import (
	"context"
	"time"

	"github.com/kestrelab/talkboard/internal/board"
	"github.com/kestrelab/talkboard/internal/cachemanager"
)

// DefaultTTL is how long a parsed board stays cached per path.
const DefaultTTL = 5 * time.Minute

// CachedLoader memoizes parsed boards per path so repeated lookups don't
// reparse unchanged files. Invalidate on watcher reload signals.
type CachedLoader struct {
	rtc *cachemanager.ReadThroughCache[string, *board.Board, string]
	ttl time.Duration
}

// NewCachedLoader builds a loader with its own in-memory cache.
// Board options apply to every board it parses.
func NewCachedLoader(opts ...board.Option) *CachedLoader {
	cache := cachemanager.NewInMemoryCacheManager[string, *board.Board](
		"boardfile", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	load := func(ctx context.Context, path string) (*board.Board, error) {
		return Load(path, opts...)
	}
	return &CachedLoader{
		rtc: cachemanager.NewReadThroughCache(cache, load, false),
		ttl: DefaultTTL,
	}
}

// Get returns the board for path, parsing it on a cache miss.
func (l *CachedLoader) Get(ctx context.Context, path string) (*board.Board, error) {
	return l.rtc.Get(ctx, path, path, l.ttl)
}

// Invalidate drops the cached board for path, forcing a reparse on next Get.
func (l *CachedLoader) Invalidate(ctx context.Context, path string) error {
	return l.rtc.Invalidate(ctx, path)
}
