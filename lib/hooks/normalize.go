package hooks

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gitfeed/gitfeed.go/common"
	"github.com/gitfeed/gitfeed.go/db/models"
)

var (
	// ErrBadPayload : the body is not valid JSON for the claimed event type
	ErrBadPayload = errors.New("unparseable webhook payload")
	// ErrUnsupportedEvent : the discriminator (or pull request sub-action) is
	// not one we store. The normalizer never guesses.
	ErrUnsupportedEvent = errors.New("unsupported event type")
	// ErrIncompletePayload : a required field was empty after extraction
	ErrIncompletePayload = errors.New("incomplete webhook payload")
)

// Normalize turns a raw webhook delivery into a canonical Event, dispatching
// on the event-type header. A pull_request delivery whose payload says it was
// merged is classified as MERGE rather than PULL_REQUEST; the header alone is
// not enough to tell the two apart. receivedAt is used when the host did not
// provide a usable timestamp. Stored timestamps are always UTC.
func Normalize(eventType string, body []byte, receivedAt time.Time) (*models.Event, error) {
	switch eventType {
	case common.EventTypePush:
		return normalizePush(body, receivedAt)
	case common.EventTypePullRequest:
		return normalizePullRequest(body, receivedAt)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEvent, eventType)
	}
}

func normalizePush(body []byte, receivedAt time.Time) (*models.Event, error) {
	var payload PushPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	timestamp := receivedAt
	if !payload.HeadCommit.Timestamp.IsZero() {
		timestamp = payload.HeadCommit.Timestamp
	}

	event := &models.Event{
		RequestID: payload.After,
		Author:    payload.Pusher.Username(),
		Action:    common.ActionPush,
		ToBranch:  strings.TrimPrefix(payload.Ref, common.BranchRefPrefix),
		Timestamp: timestamp.UTC(),
	}
	return event, requireFields(event)
}

func normalizePullRequest(body []byte, receivedAt time.Time) (*models.Event, error) {
	var payload PullRequestPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	pr := payload.PullRequest

	event := &models.Event{
		RequestID:  strconv.Itoa(pr.Number),
		FromBranch: pr.Head.Ref,
		ToBranch:   pr.Base.Ref,
		Timestamp:  receivedAt.UTC(),
	}
	if pr.Number == 0 {
		event.RequestID = ""
	}

	switch {
	case payload.Action == "opened" || payload.Action == "reopened":
		event.Action = common.ActionPullRequest
		event.Author = pr.User.Username()
		if pr.CreatedAt != nil && !pr.CreatedAt.IsZero() {
			event.Timestamp = pr.CreatedAt.UTC()
		}
	case payload.Action == "closed" && pr.Merged:
		event.Action = common.ActionMerge
		event.Author = pr.User.Username()
		if pr.MergedBy != nil && pr.MergedBy.Username() != "" {
			event.Author = pr.MergedBy.Username()
		}
		if pr.MergedAt != nil && !pr.MergedAt.IsZero() {
			event.Timestamp = pr.MergedAt.UTC()
		}
	default:
		return nil, fmt.Errorf("%w: pull_request action %q (merged=%t)", ErrUnsupportedEvent, payload.Action, pr.Merged)
	}

	return event, requireFields(event)
}

func requireFields(event *models.Event) error {
	missing := ""
	switch {
	case event.RequestID == "":
		missing = "request_id"
	case event.Author == "":
		missing = "author"
	case event.ToBranch == "":
		missing = "to_branch"
	case event.FromBranch == "" && event.Action != common.ActionPush:
		missing = "from_branch"
	}
	if missing != "" {
		return fmt.Errorf("%w: missing %s", ErrIncompletePayload, missing)
	}
	return nil
}
