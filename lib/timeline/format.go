package timeline

import (
	"fmt"
	"time"

	"github.com/gitfeed/gitfeed.go/common"
	"github.com/gitfeed/gitfeed.go/db/models"
)

// Format renders an event as the one-line timeline sentence. An action outside
// the closed set renders empty text: the normalizer never stores such events,
// but the formatter must not blow up on one either.
func Format(event models.Event) string {
	date := FormatTimestamp(event.Timestamp)
	switch event.Action {
	case common.ActionPush:
		return fmt.Sprintf("%q pushed to %q on %s", event.Author, event.ToBranch, date)
	case common.ActionPullRequest:
		return fmt.Sprintf("%q submitted a pull request from %q to %q on %s", event.Author, event.FromBranch, event.ToBranch, date)
	case common.ActionMerge:
		return fmt.Sprintf("%q merged branch %q to %q on %s", event.Author, event.FromBranch, event.ToBranch, date)
	}
	return ""
}

// FormatTimestamp renders a stored (UTC) timestamp as
// "July 3rd, 2025 - 1:17 AM UTC".
func FormatTimestamp(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%s %d%s, %d - %d:%02d %s UTC",
		t.Month().String(),
		t.Day(),
		ordinalSuffix(t.Day()),
		t.Year(),
		hour12(t.Hour()),
		t.Minute(),
		meridiem(t.Hour()),
	)
}

func ordinalSuffix(day int) string {
	// the teens are all "th", including 11, 12 and 13
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

func hour12(hour int) int {
	h := hour % 12
	if h == 0 {
		return 12
	}
	return h
}

func meridiem(hour int) string {
	if hour < 12 {
		return "AM"
	}
	return "PM"
}
