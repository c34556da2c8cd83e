package usecase

import (
	"time"

	"portfolio-site/domain/model"
)

// Static fallback data served when both the generated site-data file and the
// live API are unavailable. Pages always have something to render.

func mockChannel() *model.YouTubeChannel {
	return &model.YouTubeChannel{
		Title:       "El1as.F (Offline Mode)",
		Description: "Static fallback data, the API is not reachable.",
		Thumbnails: model.Thumbnails{
			Default: model.Thumbnail{URL: "/src/assets/images/portrait.jpg"},
			High:    model.Thumbnail{URL: "/src/assets/images/portrait.jpg"},
		},
		SubscriberCount: 10000,
		ViewCount:       42000,
		VideoCount:      150,
	}
}

func mockVideos() []model.YouTubeVideo {
	return []model.YouTubeVideo{
		{
			ID:          "go-touch-grass",
			Title:       "Go Touch Grass",
			PublishedAt: time.Date(2024, 10, 1, 10, 0, 0, 0, time.UTC),
			ViewCount:   2500,
			Duration:    "PT6M55S",
			Thumbnails: model.Thumbnails{
				High: model.Thumbnail{URL: "https://via.placeholder.com/480x360?text=Go+Touch+Grass"},
			},
		},
		{
			ID:          "the-sketch",
			Title:       "The Sketch",
			PublishedAt: time.Date(2023, 12, 15, 10, 0, 0, 0, time.UTC),
			ViewCount:   1200,
			Duration:    "PT4M10S",
			Thumbnails: model.Thumbnails{
				High: model.Thumbnail{URL: "https://via.placeholder.com/480x360?text=The+Sketch"},
			},
		},
		{
			ID:          "dummyShort1",
			Title:       "Shorts: Lackieren wie ein Pro #shorts",
			PublishedAt: time.Date(2025, 12, 20, 10, 0, 0, 0, time.UTC),
			ViewCount:   99000,
			Duration:    "PT0M58S",
			Thumbnails: model.Thumbnails{
				High: model.Thumbnail{URL: "https://via.placeholder.com/480x360?text=Short+1"},
			},
		},
	}
}
