package cache

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang/snappy"
	"github.com/railzwaylabs/envelope/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Redis  *redis.Client `optional:"true"`
	Config config.Config
	Log    *zap.Logger
}

// PageCache stores encoded list envelopes keyed by query. Redis failures are
// logged and treated as misses so reads never fail because of the cache.
type PageCache struct {
	redis  *redis.Client
	ttl    time.Duration
	prefix string
	log    *zap.Logger
}

var Module = fx.Module("cache",
	fx.Provide(New),
)

func New(p Params) *PageCache {
	return &PageCache{
		redis:  p.Redis,
		ttl:    p.Config.Cache.TTL,
		prefix: p.Config.Cache.Prefix,
		log:    p.Log.Named("cache"),
	}
}

func (c *PageCache) Enabled() bool {
	return c != nil && c.redis != nil
}

// Key builds a page key under the current cache generation. Invalidate bumps
// the generation, so a page read before a write and stored after the
// invalidation sits under a generation no reader asks for and expires by TTL.
// An empty key means the page must not be cached.
func (c *PageCache) Key(ctx context.Context, parts ...string) string {
	if !c.Enabled() {
		return ""
	}

	gen, err := c.redis.Get(ctx, c.generationKey()).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.log.Warn("cache generation read failed", zap.Error(err))
		return ""
	}
	return c.prefix + ":" + strconv.FormatInt(gen, 10) + ":" + strings.Join(parts, ":")
}

func (c *PageCache) generationKey() string {
	return c.prefix + ":gen"
}

func (c *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if !c.Enabled() || key == "" {
		return nil, false
	}

	raw, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	body, err := snappy.Decode(nil, raw)
	if err != nil {
		c.log.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		_ = c.redis.Del(ctx, key).Err()
		return nil, false
	}
	return body, true
}

func (c *PageCache) Set(ctx context.Context, key string, body []byte) {
	if !c.Enabled() || key == "" {
		return
	}
	if err := c.redis.Set(ctx, key, snappy.Encode(nil, body), c.ttl).Err(); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate moves readers to a new generation and drops the pages stored so
// far. Pages of the old generation that are written afterwards are never read.
func (c *PageCache) Invalidate(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}

	genKey := c.generationKey()
	if err := c.redis.Incr(ctx, genKey).Err(); err != nil {
		return err
	}

	iter := c.redis.Scan(ctx, 0, c.prefix+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		if key := iter.Val(); key != genKey {
			keys = append(keys, key)
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.redis.Del(ctx, keys...).Err()
}
