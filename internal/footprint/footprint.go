// Package footprint accounts for the disk space taken by renditions, per
// photo and for the whole store.
package footprint

import (
	"context"
	"log/slog"
	"math"
	"strconv"

	"github.com/google/uuid"

	"photofolio/internal/lib/logger/sl"
)

const DefaultQuotaBytes int64 = 5 << 30

type DirSizer interface {
	DirectorySize(imageID uuid.UUID) int64
	TotalSize() int64
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UsageCache
type UsageCache interface {
	GetTotal(ctx context.Context) (int64, bool, error)
	SetTotal(ctx context.Context, total int64) error
	Invalidate(ctx context.Context) error
}

type Usage struct {
	UsedBytes  int64   `json:"used_bytes"`
	LimitBytes int64   `json:"limit_bytes"`
	Percentage float64 `json:"percentage"`
}

type Accountant struct {
	log   *slog.Logger
	sizer DirSizer
	cache UsageCache
	limit int64
}

// New builds an accountant; cache may be nil and limit <= 0 selects the
// default quota.
func New(log *slog.Logger, sizer DirSizer, cache UsageCache, limit int64) *Accountant {
	if limit <= 0 {
		limit = DefaultQuotaBytes
	}

	return &Accountant{
		log:   log,
		sizer: sizer,
		cache: cache,
		limit: limit,
	}
}

func (a *Accountant) ComputeFootprint(imageID uuid.UUID) int64 {
	return a.sizer.DirectorySize(imageID)
}

func (a *Accountant) UsageSummary(ctx context.Context) Usage {
	const op = "footprint.Accountant.UsageSummary"

	used, ok := int64(0), false
	if a.cache != nil {
		var err error
		used, ok, err = a.cache.GetTotal(ctx)
		if err != nil {
			a.log.Warn("usage cache read failed", slog.String("op", op), sl.Err(err))
			ok = false
		}
	}

	if !ok {
		used = a.sizer.TotalSize()
		if a.cache != nil {
			if err := a.cache.SetTotal(ctx, used); err != nil {
				a.log.Warn("usage cache write failed", slog.String("op", op), sl.Err(err))
			}
		}
	}

	return Usage{
		UsedBytes:  used,
		LimitBytes: a.limit,
		Percentage: percentage(used, a.limit),
	}
}

// Invalidate drops the cached store total after renditions changed.
func (a *Accountant) Invalidate(ctx context.Context) {
	const op = "footprint.Accountant.Invalidate"

	if a.cache == nil {
		return
	}

	if err := a.cache.Invalidate(ctx); err != nil {
		a.log.Warn("usage cache invalidation failed", slog.String("op", op), sl.Err(err))
	}
}

func percentage(used, limit int64) float64 {
	if limit <= 0 {
		return 0
	}

	p := float64(used) / float64(limit) * 100

	return math.Min(100, math.Max(0, p))
}

var units = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders n in 1024-based units with at most two decimals,
// e.g. 1536 -> "1.5 KB".
func FormatBytes(n int64) string {
	if n <= 0 {
		return "0 B"
	}

	v, i := float64(n), 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}
	v = math.Round(v*100) / 100
	if v >= 1024 && i < len(units)-1 {
		v = math.Round(v/1024*100) / 100
		i++
	}

	return strconv.FormatFloat(v, 'f', -1, 64) + " " + units[i]
}
