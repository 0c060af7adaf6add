package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// WithSQLTx returns a gorm handle whose statements run on tx, so gorm
// repositories share the *sql.Tx opened by services (and by the outbox
// repository) instead of auto-committing on their own connection.
func WithSQLTx(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	scoped := db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	scoped.Statement.ConnPool = tx
	return scoped
}
