package model

import (
	"sort"
	"strings"
)

// Project is one portfolio entry (film project or other project). The JSON
// data files on disk are the source of truth; fields not listed here are
// dropped at load time.
type Project struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Date        string   `json:"date,omitempty"` // free-form: "2024-05", "2023-2024", "2022-heute"
	Roles       []string `json:"roles,omitempty"`
	Description string   `json:"description,omitempty"`
	Link        string   `json:"link,omitempty"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	VideoURL    string   `json:"video_url,omitempty"`
}

// TimelineEntry is one station of the CV timeline.
type TimelineEntry struct {
	Date        string   `json:"date,omitempty"`
	Title       string   `json:"title"`
	Institution string   `json:"institution,omitempty"`
	Description string   `json:"description,omitempty"`
	Tasks       []string `json:"tasks,omitempty"`
}

// Skill is a single skill with an optional proficiency level.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Level    int    `json:"level,omitempty"`
}

// Social is one social media profile shown next to the channel card.
type Social struct {
	Platform  string `json:"platform"`
	Username  string `json:"username"`
	URL       string `json:"url"`
	Followers int64  `json:"followers,omitempty"`
}

// SortProjectsByDateDesc orders projects newest first. Dates are free-form
// strings; comparison uses the leading year and, when both entries carry
// one, the month component. Entries without a date sink to the end.
func SortProjectsByDateDesc(projects []Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		yi, mi := splitDate(projects[i].Date)
		yj, mj := splitDate(projects[j].Date)
		if yi != yj {
			return yi > yj
		}
		return mi > mj
	})
}

func splitDate(s string) (year, month string) {
	parts := strings.SplitN(s, "-", 3)
	if len(parts) > 0 {
		year = parts[0]
	}
	if len(parts) > 1 && len(parts[1]) == 2 {
		month = parts[1]
	}
	return year, month
}
