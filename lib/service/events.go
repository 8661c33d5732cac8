package service

import (
	"context"
	"time"

	"github.com/gitfeed/gitfeed.go/db/models"
	"github.com/uptrace/bun"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// SaveEvent writes a normalized event. Redelivery of the same
// (request_id, action) updates the existing row instead of inserting a second
// one, so the source host can retry a delivery as often as it likes. Last write
// wins on the incidental fields.
func (svc *GitfeedService) SaveEvent(ctx context.Context, event *models.Event) error {
	ctx, cancel := svc.storeContext(ctx)
	defer cancel()

	_, err := svc.DB.NewInsert().
		Model(event).
		On("CONFLICT (request_id, action) DO UPDATE").
		Set("author = EXCLUDED.author").
		Set("from_branch = EXCLUDED.from_branch").
		Set("to_branch = EXCLUDED.to_branch").
		Set("timestamp = EXCLUDED.timestamp").
		Set("updated_at = now()").
		Returning("id").
		Exec(ctx)
	return err
}

// ListEvents re-queries the store on every call, ordered by timestamp.
// A store failure surfaces as an error, never as an empty slice.
func (svc *GitfeedService) ListEvents(ctx context.Context, limit int, order string) ([]models.Event, error) {
	ctx, cancel := svc.storeContext(ctx)
	defer cancel()

	direction := "ASC"
	if order == OrderDesc {
		direction = "DESC"
	}

	events := []models.Event{}
	err := svc.DB.NewSelect().
		Model(&events).
		OrderExpr("timestamp ?", bun.Safe(direction)).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// store calls are bounded so a database outage turns into a 5xx instead of a
// request that hangs until the source host gives up
func (svc *GitfeedService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, time.Duration(svc.Config.DatabaseTimeout)*time.Second)
}
