package footprint_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photofolio/internal/footprint"
	"photofolio/internal/footprint/mocks"
	"photofolio/internal/lib/logger/handlers/slogdiscard"
)

type fixedSizer struct {
	dirs  map[uuid.UUID]int64
	total int64
	walks int
}

func (f *fixedSizer) DirectorySize(id uuid.UUID) int64 { return f.dirs[id] }

func (f *fixedSizer) TotalSize() int64 {
	f.walks++
	return f.total
}

func TestComputeFootprint(t *testing.T) {
	id := uuid.New()
	a := footprint.New(slogdiscard.NewDiscardLogger(), &fixedSizer{dirs: map[uuid.UUID]int64{id: 4096}}, nil, 0)

	require.Equal(t, int64(4096), a.ComputeFootprint(id))
	require.Equal(t, int64(0), a.ComputeFootprint(uuid.New()))
}

func TestUsageSummary(t *testing.T) {
	tests := []struct {
		name    string
		used    int64
		limit   int64
		wantPct float64
		wantLim int64
	}{
		{name: "Empty", used: 0, limit: 0, wantPct: 0, wantLim: 5 << 30},
		{name: "Half", used: 512, limit: 1024, wantPct: 50, wantLim: 1024},
		{name: "Over quota is clamped", used: 4096, limit: 1024, wantPct: 100, wantLim: 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := footprint.New(slogdiscard.NewDiscardLogger(), &fixedSizer{total: tt.used}, nil, tt.limit)

			u := a.UsageSummary(context.Background())
			require.Equal(t, tt.used, u.UsedBytes)
			require.Equal(t, tt.wantLim, u.LimitBytes)
			require.InDelta(t, tt.wantPct, u.Percentage, 0.0001)
		})
	}
}

func TestUsageSummaryCache(t *testing.T) {
	sizer := &fixedSizer{total: 2048}
	cache := mocks.NewUsageCache(t)
	a := footprint.New(slogdiscard.NewDiscardLogger(), sizer, cache, 4096)
	ctx := context.Background()

	cache.On("GetTotal", mock.Anything).Return(int64(0), false, nil).Once()
	cache.On("SetTotal", mock.Anything, int64(2048)).Return(nil).Once()

	require.Equal(t, int64(2048), a.UsageSummary(ctx).UsedBytes)
	require.Equal(t, 1, sizer.walks)

	cache.On("GetTotal", mock.Anything).Return(int64(1000), true, nil).Once()

	u := a.UsageSummary(ctx)
	require.Equal(t, int64(1000), u.UsedBytes)
	require.Equal(t, 1, sizer.walks, "cache hit must not walk the tree")

	cache.On("GetTotal", mock.Anything).Return(int64(0), false, errors.New("redis down")).Once()
	cache.On("SetTotal", mock.Anything, int64(2048)).Return(errors.New("redis down")).Once()

	require.Equal(t, int64(2048), a.UsageSummary(ctx).UsedBytes)
	require.Equal(t, 2, sizer.walks)

	cache.On("Invalidate", mock.Anything).Return(errors.New("redis down")).Once()
	a.Invalidate(ctx)
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{-5, "0 B"},
		{1, "1 B"},
		{1023, "1023 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1_000_000, "976.56 KB"},
		{1048575, "1 MB"},
		{1073741814, "1 GB"},
		{5 << 20, "5 MB"},
		{5 << 30, "5 GB"},
		{3 << 40, "3 TB"},
		{2048 << 40, "2048 TB"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, footprint.FormatBytes(tt.in), "FormatBytes(%d)", tt.in)
	}
}
