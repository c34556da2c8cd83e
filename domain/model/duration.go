package model

import (
	"fmt"
	"strings"
)

const (
	// ShortMaxSeconds is the inclusive upper bound for a video to count as a
	// short by duration.
	ShortMaxSeconds = 60
	// LongformMinSeconds is the exclusive lower bound for longform. Videos
	// between 61 and 180 seconds fall into neither bucket; see DESIGN.md.
	LongformMinSeconds = 180

	shortsMarker = "#shorts"
)

// ParseISODuration parses a YouTube-style ISO-8601 duration of the form
// PT[nH][nM][nS] (any subset of the three parts, in H,M,S order) into total
// seconds. A missing or unparseable string yields 0.
func ParseISODuration(s string) int {
	rest, ok := strings.CutPrefix(s, "PT")
	if !ok {
		return 0
	}
	total := 0
	num := 0
	haveDigits := false
	for _, r := range rest {
		switch {
		case r >= '0' && r <= '9':
			num = num*10 + int(r-'0')
			haveDigits = true
		case r == 'H' && haveDigits:
			total += num * 3600
			num, haveDigits = 0, false
		case r == 'M' && haveDigits:
			total += num * 60
			num, haveDigits = 0, false
		case r == 'S' && haveDigits:
			total += num
			num, haveDigits = 0, false
		default:
			// Fractional seconds, week/day designators etc. are not produced
			// by the API for videos; treat the whole string as unparseable.
			return 0
		}
	}
	return total
}

// DurationSeconds returns the video length in seconds, 0 when the duration
// string is absent or malformed.
func (v *YouTubeVideo) DurationSeconds() int {
	return ParseISODuration(v.Duration)
}

// IsShort reports whether the video is a YouTube short: either the title
// carries the #shorts marker (checked first, duration is not consulted) or
// the duration is at most 60 seconds.
func (v *YouTubeVideo) IsShort() bool {
	if strings.Contains(strings.ToLower(v.Title), shortsMarker) {
		return true
	}
	return v.DurationSeconds() <= ShortMaxSeconds
}

// IsLongform reports whether the video is strictly longer than 3 minutes.
func (v *YouTubeVideo) IsLongform() bool {
	return v.DurationSeconds() > LongformMinSeconds
}

// CountLongform returns how many of the given videos satisfy IsLongform.
func CountLongform(videos []YouTubeVideo) int {
	n := 0
	for i := range videos {
		if videos[i].IsLongform() {
			n++
		}
	}
	return n
}

// FilterLongform returns the longform videos in input order.
func FilterLongform(videos []YouTubeVideo) []YouTubeVideo {
	out := make([]YouTubeVideo, 0, len(videos))
	for i := range videos {
		if videos[i].IsLongform() {
			out = append(out, videos[i])
		}
	}
	return out
}

// FilterShorts returns the shorts in input order.
func FilterShorts(videos []YouTubeVideo) []YouTubeVideo {
	out := make([]YouTubeVideo, 0, len(videos))
	for i := range videos {
		if videos[i].IsShort() {
			out = append(out, videos[i])
		}
	}
	return out
}

// FormatISODuration renders an ISO-8601 duration for display:
// "PT1H2M10S" -> "1:02:10", "PT2M5S" -> "2:05", "PT45S" -> "0:45".
// Malformed input renders as the empty string.
func FormatISODuration(s string) string {
	total := ParseISODuration(s)
	if total == 0 {
		return ""
	}
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}

// FormatViews renders a count in compact form: 950 -> "950",
// 1500 -> "1.5K", 2000000 -> "2M".
func FormatViews(n int64) string {
	format := func(v float64, suffix string) string {
		s := fmt.Sprintf("%.1f", v)
		s = strings.TrimSuffix(s, ".0")
		return s + suffix
	}
	switch {
	case n >= 1_000_000:
		return format(float64(n)/1_000_000, "M")
	case n >= 1_000:
		return format(float64(n)/1_000, "K")
	default:
		return fmt.Sprintf("%d", n)
	}
}
