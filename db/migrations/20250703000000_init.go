package migrations

import (
	"context"

	"github.com/gitfeed/gitfeed.go/db/models"
	"github.com/uptrace/bun"
)

/* This init reflects the latest model fields when run on a fresh db.
When adding/removing columns in subsequent migrations make sure
IfNotExists/IfExists is used, otherwise it's going to result in errors. */
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().Model((*models.Event)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	}, nil)
}
