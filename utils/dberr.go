package utils

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// IsDuplicateEntry reports whether err is MySQL's unique-constraint
// violation (error 1062). Handlers pre-check uniqueness before inserting,
// but a concurrent request can win the race between the check and the
// insert; the constraint violation is the authoritative signal and gets
// mapped back to the same conflict response.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
