package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {

		if db.Dialect().Name().String() != "pg" {
			fmt.Printf("\033[1;31m%s\033[0m", "You are not using PostgreSQL. DB level checks can not be enabled!\n")
			return nil
		}
		// (request_id, action) is the redelivery key. The unique index makes
		// two racing upserts of the same delivery resolve to a single row.
		sql := `
			CREATE UNIQUE INDEX IF NOT EXISTS events_request_id_action_idx
			ON events (request_id, action);

			CREATE INDEX IF NOT EXISTS events_timestamp_idx
			ON events (timestamp);
		`
		if _, err := db.Exec(sql); err != nil {
			return err
		}
		return nil
	}, nil)
}
