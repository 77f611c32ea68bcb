package mysqlrepos

import (
	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

// MySQL error 1062: duplicate entry for a unique key. Uniqueness is enforced
// by the storage constraints alone; repositories catch the violation and
// remap it to the resource's duplicate error.
const erDupEntry = 1062

func isDuplicate(err error) bool {
	if myErr, ok := errors.Cause(err).(*mysql.MySQLError); ok {
		return myErr.Number == erDupEntry
	}
	return false
}
