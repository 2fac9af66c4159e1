// Package analysiscache caches DXF analysis reports in a key-value
// store, keyed by a content hash of the uploaded file. Repeat uploads
// of the same file skip the full geometry pass.
package analysiscache

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Arkcutt12/Ark-ai-agent/internal/db"
	"github.com/Arkcutt12/Ark-ai-agent/internal/usecase/analyze"
)

const (
	cacheKeyPrefix = "arkcutt:analysis:"
	statsKeyPrefix = "arkcutt:stats:analyses:"
	statsTTL       = 30 * 24 * time.Hour
)

// Analyzer is the inner analysis engine being decorated.
type Analyzer interface {
	Analyze(ctx context.Context, r io.Reader) (analyze.Report, error)
}

// store is the consumer interface for the analysis cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	IncrBy(ctx context.Context, key string, val int64) error
	Expire(ctx context.Context, key string, ttl time.Duration, nx bool) error
}

// CachedAnalyzer caches analysis reports in a key-value store.
type CachedAnalyzer struct {
	inner      Analyzer
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner Analyzer,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedAnalyzer {
	return &CachedAnalyzer{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Analyze returns a cached report when the same file content was seen
// before, otherwise runs the inner analyzer and stores the result.
// Every call, hit or miss, bumps the daily analysis tally.
func (c *CachedAnalyzer) Analyze(ctx context.Context, r io.Reader) (analyze.Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return analyze.Report{}, fmt.Errorf("read upload: %w", err)
	}

	key := c.cacheKey(data)
	c.recordAnalysis(ctx)

	if report, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return report, nil
	}
	c.incCache("miss")

	report, err := c.inner.Analyze(ctx, bytes.NewReader(data))
	if err != nil {
		return analyze.Report{}, err
	}

	c.putToCache(ctx, key, report)
	return report, nil
}

func (c *CachedAnalyzer) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachedAnalyzer) cacheKey(data []byte) string {
	h := sha256.Sum256(data)
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}

func (c *CachedAnalyzer) getFromCache(ctx context.Context, key string) (analyze.Report, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached report", zap.String("key", key), zap.Error(err))
		}
		return analyze.Report{}, false
	}
	if len(data) == 0 {
		return analyze.Report{}, false
	}

	var report analyze.Report
	if err := json.Unmarshal(data, &report); err != nil {
		c.logger.Warn("Failed to parse cached report", zap.String("key", key), zap.Error(err))
		return analyze.Report{}, false
	}
	return report, true
}

func (c *CachedAnalyzer) putToCache(ctx context.Context, key string, report analyze.Report) {
	data, err := json.Marshal(report)
	if err != nil {
		c.logger.Warn("Failed to encode report", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache report", zap.String("key", key), zap.Error(err))
	}
}

// recordAnalysis bumps a per-day counter with a rolling expiry so the
// tally cleans itself up.
func (c *CachedAnalyzer) recordAnalysis(ctx context.Context) {
	key := statsKeyPrefix + time.Now().UTC().Format("2006-01-02")
	if err := c.store.IncrBy(ctx, key, 1); err != nil {
		c.logger.Warn("Failed to record analysis", zap.Error(err))
		return
	}
	if err := c.store.Expire(ctx, key, statsTTL, true); err != nil {
		c.logger.Warn("Failed to expire analysis tally", zap.Error(err))
	}
}
