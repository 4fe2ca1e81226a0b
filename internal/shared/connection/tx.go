package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Conn returns a gorm handle bound to ctx. When tx is set, statements run on
// that transaction so gorm repositories and raw sql repositories can share
// one unit of work opened with (*sql.DB).BeginTx.
func Conn(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db.WithContext(ctx)
	}
	s := db.Session(&gorm.Session{Context: ctx, SkipDefaultTransaction: true})
	s.Statement.ConnPool = tx
	return s
}
