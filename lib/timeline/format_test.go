package timeline

import (
	"testing"
	"time"

	"github.com/gitfeed/gitfeed.go/common"
	"github.com/gitfeed/gitfeed.go/db/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatPush(t *testing.T) {
	event := models.Event{
		Author:    "alice",
		Action:    common.ActionPush,
		ToBranch:  "main",
		Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, `"alice" pushed to "main" on January 1st, 2025 - 12:00 AM UTC`, Format(event))
}

func TestFormatPullRequest(t *testing.T) {
	event := models.Event{
		Author:     "carol",
		Action:     common.ActionPullRequest,
		FromBranch: "feature-x",
		ToBranch:   "main",
		Timestamp:  time.Date(2025, 7, 3, 1, 17, 32, 0, time.UTC),
	}

	assert.Equal(t, `"carol" submitted a pull request from "feature-x" to "main" on July 3rd, 2025 - 1:17 AM UTC`, Format(event))
}

func TestFormatMerge(t *testing.T) {
	event := models.Event{
		Author:     "dave",
		Action:     common.ActionMerge,
		FromBranch: "feature-x",
		ToBranch:   "main",
		Timestamp:  time.Date(2025, 4, 21, 13, 5, 0, 0, time.UTC),
	}

	assert.Equal(t, `"dave" merged branch "feature-x" to "main" on April 21st, 2025 - 1:05 PM UTC`, Format(event))
}

func TestFormatUnknownActionRendersEmpty(t *testing.T) {
	event := models.Event{Author: "mallory", Action: "FORCE_PUSH", ToBranch: "main"}
	assert.Equal(t, "", Format(event))
}

func TestFormatTimestampNormalizesToUTC(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	got := FormatTimestamp(time.Date(2025, 7, 2, 20, 17, 32, 0, est))
	assert.Equal(t, "July 3rd, 2025 - 1:17 AM UTC", got)
}

func TestFormatTimestampNoonAndMidnight(t *testing.T) {
	assert.Equal(t, "June 5th, 2025 - 12:00 PM UTC", FormatTimestamp(time.Date(2025, 6, 5, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "June 5th, 2025 - 12:00 AM UTC", FormatTimestamp(time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)))
}

func TestOrdinalSuffixes(t *testing.T) {
	cases := map[int]string{
		1: "st", 2: "nd", 3: "rd", 4: "th",
		11: "th", 12: "th", 13: "th",
		21: "st", 22: "nd", 23: "rd", 24: "th",
		31: "st",
	}
	for day, want := range cases {
		assert.Equal(t, want, ordinalSuffix(day), "day %d", day)
	}
}
