package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// DriverName is the database/sql driver registered by this package. It is the
// stock go-sqlite3 driver with per-connection pragmas applied on connect.
const DriverName = "sqlite3_daybook"

// BusyTimeoutMillis bounds how long a writer waits on a lock held by another
// daybook process before giving up.
const BusyTimeoutMillis = 5000

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			for _, pragma := range []string{
				fmt.Sprintf("PRAGMA busy_timeout = %d", BusyTimeoutMillis),
				"PRAGMA journal_mode = WAL",
				"PRAGMA foreign_keys = ON",
			} {
				if _, err := conn.Exec(pragma, nil); err != nil {
					return err
				}
			}
			return nil
		},
	})
}
