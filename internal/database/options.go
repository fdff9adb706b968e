package database

import (
	"fmt"

	"github.com/devdigger/digkit/domain/record"
	"gorm.io/gorm"
)

// ApplyOptions builds a record.Query from the given options and applies it
// to a GORM session. Column names come from the domain option helpers, not
// from user input.
func ApplyOptions(db *gorm.DB, options ...record.Option) *gorm.DB {
	q := record.Build(options...)

	for _, cond := range q.Conditions() {
		switch cond.Operator() {
		case "LIKE":
			db = db.Where(fmt.Sprintf("%s LIKE ?", cond.Field()), "%"+fmt.Sprint(cond.Value())+"%")
		case "IS NOT NULL":
			db = db.Where(fmt.Sprintf("%s IS NOT NULL", cond.Field()))
		default:
			db = db.Where(fmt.Sprintf("%s = ?", cond.Field()), cond.Value())
		}
	}

	for _, ord := range q.Orders() {
		dir := "ASC"
		if !ord.Ascending() {
			dir = "DESC"
		}
		db = db.Order(fmt.Sprintf("%s %s", ord.Field(), dir))
	}

	if q.LimitValue() > 0 {
		db = db.Limit(q.LimitValue())
	}

	return db
}
