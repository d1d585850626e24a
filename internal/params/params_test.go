package params

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/reticle/internal/cache"
)

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestResolve(t *testing.T) {
	cached := &cache.CachedParams{TargetX: 7, TargetY: 9, Opacity: 0.4}

	tests := []struct {
		name      string
		overrides Overrides
		cached    *cache.CachedParams
		want      Params
	}{
		{
			name: "defaults center the image",
			want: Params{TargetX: 32, TargetY: 16, Opacity: 1},
		},
		{
			name:   "cache beats defaults",
			cached: cached,
			want:   Params{TargetX: 7, TargetY: 9, Opacity: 0.4},
		},
		{
			name:      "flags beat cache",
			overrides: Overrides{TargetX: intPtr(1), TargetY: intPtr(2), Opacity: floatPtr(0.9)},
			cached:    cached,
			want:      Params{TargetX: 1, TargetY: 2, Opacity: 0.9},
		},
		{
			name:      "partial flags mix with cache",
			overrides: Overrides{TargetY: intPtr(3)},
			cached:    cached,
			want:      Params{TargetX: 7, TargetY: 3, Opacity: 0.4},
		},
		{
			name:      "partial flags mix with defaults",
			overrides: Overrides{TargetX: intPtr(0), Opacity: floatPtr(0)},
			want:      Params{TargetX: 0, TargetY: 16, Opacity: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.overrides, tt.cached, 64, 33, 1)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveOpacity_ConfiguredDefault(t *testing.T) {
	assert.Equal(t, 0.6, ResolveOpacity(Overrides{}, nil, 0.6))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Overrides{}.Validate())
	assert.NoError(t, Overrides{Opacity: floatPtr(0), TargetX: intPtr(0), TargetY: intPtr(0)}.Validate())
	assert.NoError(t, Overrides{Opacity: floatPtr(1)}.Validate())

	assert.ErrorIs(t, Overrides{Opacity: floatPtr(1.01)}.Validate(), ErrOpacityRange)
	assert.ErrorIs(t, Overrides{Opacity: floatPtr(-0.1)}.Validate(), ErrOpacityRange)
	assert.ErrorIs(t, Overrides{Opacity: floatPtr(math.NaN())}.Validate(), ErrOpacityRange)
	assert.ErrorIs(t, Overrides{TargetX: intPtr(-1)}.Validate(), ErrNegativeTarget)
	assert.ErrorIs(t, Overrides{TargetY: intPtr(-5)}.Validate(), ErrNegativeTarget)
}

func TestParamsCached(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	p := Params{TargetX: 3, TargetY: 4, Opacity: 0.5}

	c := p.Cached("/tmp/cross.png", now)
	require.Equal(t, "/tmp/cross.png", c.PathForReadability)
	assert.Equal(t, 3, c.TargetX)
	assert.Equal(t, 4, c.TargetY)
	assert.Equal(t, 0.5, c.Opacity)
	assert.Equal(t, now, c.UpdatedAt)
}
