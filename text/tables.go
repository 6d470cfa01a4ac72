package text

import (
	"github.com/gogpu/replay/internal/cache"
)

// LineHeightCache memoizes line heights per font descriptor. It is meant
// to live as long as the session that shares it between replays.
//
// LineHeightCache is safe for concurrent use.
type LineHeightCache struct {
	m       LineHeighter
	heights *cache.ShardedCache[string, float64]
}

// NewLineHeightCache creates a cache in front of m.
func NewLineHeightCache(m LineHeighter) *LineHeightCache {
	return &LineHeightCache{
		m:       m,
		heights: cache.NewSharded[string, float64](0, cache.StringHasher),
	}
}

// LineHeight returns the line height of font, measuring it on first use.
func (c *LineHeightCache) LineHeight(font string) float64 {
	return c.heights.GetOrCreate(font, func() float64 {
		return c.m.LineHeight(font)
	})
}

// Len returns the number of cached fonts.
func (c *LineHeightCache) Len() int { return c.heights.Len() }

// Stats returns hit and miss counters.
func (c *LineHeightCache) Stats() Stats { return statsOf(c.heights.Stats()) }

// DefaultWidthTableSize bounds a WidthTable.
const DefaultWidthTableSize = 4096

type widthKey struct {
	font, text string
}

// WidthTable memoizes text widths keyed by font and text. Each replay owns
// one; executors read character widths from it when laying text along
// lines.
//
// WidthTable is safe for concurrent use.
type WidthTable struct {
	m      WidthMeasurer
	widths *cache.Cache[widthKey, float64]
}

// NewWidthTable creates a table in front of m holding at most size
// entries. size <= 0 selects DefaultWidthTableSize.
func NewWidthTable(m WidthMeasurer, size int) *WidthTable {
	if size <= 0 {
		size = DefaultWidthTableSize
	}
	return &WidthTable{m: m, widths: cache.New[widthKey, float64](size)}
}

// Width returns the width of text in font, measuring it on first use.
func (t *WidthTable) Width(font, text string) float64 {
	return t.widths.GetOrCreate(widthKey{font, text}, func() float64 {
		return t.m.MeasureWidth(font, text)
	})
}

// MeasureWidth implements WidthMeasurer.
func (t *WidthTable) MeasureWidth(font, text string) float64 {
	return t.Width(font, text)
}

// Len returns the number of cached widths.
func (t *WidthTable) Len() int { return t.widths.Len() }

// Stats returns hit and miss counters.
func (t *WidthTable) Stats() Stats { return statsOf(t.widths.Stats()) }

// Stats reports measurement cache usage.
type Stats struct {
	Len    int
	Hits   uint64
	Misses uint64
}

func statsOf(s cache.Stats) Stats {
	return Stats{Len: s.Len, Hits: s.Hits, Misses: s.Misses}
}
