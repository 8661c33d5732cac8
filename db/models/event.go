package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Event : a single normalized repository event.
// (request_id, action) is the idempotency key: the source host may redeliver
// the same webhook and we must end up with one visible row.
type Event struct {
	ID         int64        `json:"id" bun:",pk,autoincrement"`
	RequestID  string       `json:"request_id" bun:",notnull" validate:"required"`
	Author     string       `json:"author" bun:",notnull" validate:"required"`
	Action     string       `json:"action" bun:",notnull" validate:"required"`
	FromBranch string       `json:"from_branch" bun:",nullzero"`
	ToBranch   string       `json:"to_branch" bun:",notnull" validate:"required"`
	Timestamp  time.Time    `json:"timestamp" bun:",notnull"`
	CreatedAt  time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt  bun.NullTime `json:"updated_at"`
}

func (e *Event) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		e.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Event)(nil)
