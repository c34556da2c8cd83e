package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"portfolio-site/domain/model"
)

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"PT1H2M10S", 3730},
		{"PT4M10S", 250},
		{"PT45S", 45},
		{"PT2M5S", 125},
		{"PT1H", 3600},
		{"PT3M", 180},
		{"PT0M58S", 58},
		{"PT10H0M0S", 36000},
		{"", 0},
		{"garbage", 0},
		{"P1D", 0},
		{"PT", 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.ParseISODuration(tt.input))
		})
	}
}

func TestIsShort(t *testing.T) {
	// Marker in title wins regardless of duration.
	long := model.YouTubeVideo{Title: "Behind the scenes #Shorts", Duration: "PT10M"}
	assert.True(t, long.IsShort())

	// Duration <= 60s regardless of title.
	trick := model.YouTubeVideo{Title: "Cool trick", Duration: "PT45S"}
	assert.True(t, trick.IsShort())

	boundary := model.YouTubeVideo{Title: "Exactly a minute", Duration: "PT1M"}
	assert.True(t, boundary.IsShort())

	over := model.YouTubeVideo{Title: "Just over", Duration: "PT1M1S"}
	assert.False(t, over.IsShort())

	// Missing duration parses to 0 seconds, which counts as short by duration.
	empty := model.YouTubeVideo{Title: "No duration"}
	assert.True(t, empty.IsShort())
}

func TestIsLongform(t *testing.T) {
	long := model.YouTubeVideo{Title: "Documentary", Duration: "PT1H2M10S"}
	assert.True(t, long.IsLongform())
	assert.False(t, long.IsShort())

	boundary := model.YouTubeVideo{Title: "Three minutes flat", Duration: "PT3M"}
	assert.False(t, boundary.IsLongform())

	justOver := model.YouTubeVideo{Title: "Three minutes and one", Duration: "PT3M1S"}
	assert.True(t, justOver.IsLongform())

	empty := model.YouTubeVideo{Title: "No duration"}
	assert.False(t, empty.IsLongform())
}

// Videos between 61 and 180 seconds belong to neither bucket. That gap comes
// straight from the two independently chosen thresholds and is preserved.
func TestClassificationGap(t *testing.T) {
	mid := model.YouTubeVideo{Title: "Two minute video", Duration: "PT2M5S"}
	assert.False(t, mid.IsShort())
	assert.False(t, mid.IsLongform())
}

func TestFilters(t *testing.T) {
	videos := []model.YouTubeVideo{
		{ID: "a", Title: "Long one", Duration: "PT6M55S"},
		{ID: "b", Title: "Short one", Duration: "PT58S"},
		{ID: "c", Title: "In the gap", Duration: "PT2M"},
		{ID: "d", Title: "Tagged #shorts", Duration: "PT4M"},
	}

	long := model.FilterLongform(videos)
	if assert.Len(t, long, 2) {
		assert.Equal(t, "a", long[0].ID)
		assert.Equal(t, "d", long[1].ID)
	}

	shorts := model.FilterShorts(videos)
	if assert.Len(t, shorts, 2) {
		assert.Equal(t, "b", shorts[0].ID)
		assert.Equal(t, "d", shorts[1].ID)
	}

	assert.Equal(t, 2, model.CountLongform(videos))
}

func TestFormatISODuration(t *testing.T) {
	assert.Equal(t, "1:02:10", model.FormatISODuration("PT1H2M10S"))
	assert.Equal(t, "4:10", model.FormatISODuration("PT4M10S"))
	assert.Equal(t, "0:45", model.FormatISODuration("PT45S"))
	assert.Equal(t, "", model.FormatISODuration(""))
	assert.Equal(t, "", model.FormatISODuration("nonsense"))
}

func TestFormatViews(t *testing.T) {
	assert.Equal(t, "950", model.FormatViews(950))
	assert.Equal(t, "1.5K", model.FormatViews(1500))
	assert.Equal(t, "99K", model.FormatViews(99000))
	assert.Equal(t, "2M", model.FormatViews(2000000))
	assert.Equal(t, "1.2M", model.FormatViews(1200000))
	assert.Equal(t, "0", model.FormatViews(0))
}
