// Package reporting demonstrates faking a DB-backed query function: the real
// implementation builds SQL with goqu and executes it through sqlx, while
// tests substitute a fake implementation so no database is needed. Fakes keep
// no call log, which is why the raw multi-parameter signature - connection
// handle included - needs no parameter struct.
package reporting

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/jmoiron/sqlx"

	"github.com/jakob-rzeppa/fnmock/double"
	"github.com/jakob-rzeppa/fnmock/double/registry"
)

const dailyTotalsFuncName = "reporting.dailyTotals"

const dialectPostgres = "postgres"

// DailyTotal is one day's order volume.
type DailyTotal struct {
	Day   string `db:"day"`
	Total int    `db:"total"`
}

// DailyTotalsFunc is the signature of the fakeable query function.
type DailyTotalsFunc func(ctx context.Context, db *sqlx.DB, since string) ([]DailyTotal, error)

// ReportStore aggregates order data through a swappable query path.
type ReportStore struct {
	db          *sqlx.DB
	dailyTotals func() DailyTotalsFunc
}

// NewReportStore wires the store's fakeable query against the doubles of the
// given execution context.
func NewReportStore(mode double.Mode, store *registry.Store, db *sqlx.DB) (*ReportStore, error) {
	fake, err := registry.FakeFor[DailyTotalsFunc](store, dailyTotalsFuncName)
	if err != nil {
		return nil, err
	}

	return &ReportStore{
		db:          db,
		dailyTotals: double.WireFake(mode, fake, dailyTotals),
	}, nil
}

// DailyTotals returns the order volume per day since the given date.
func (rs *ReportStore) DailyTotals(ctx context.Context, since string) ([]DailyTotal, error) {
	return rs.dailyTotals()(ctx, rs.db, since)
}

// dailyTotals is the real implementation, querying Postgres through sqlx with
// a goqu-built statement.
func dailyTotals(ctx context.Context, db *sqlx.DB, since string) ([]DailyTotal, error) {
	sqlQuery, args, buildErr := goqu.Dialect(dialectPostgres).
		From("orders").
		Select(
			goqu.L("created_at::date::text").As("day"),
			goqu.SUM("amount").As("total"),
		).
		Where(goqu.C("created_at").Gte(goqu.L("?::timestamp with time zone", since))).
		GroupBy(goqu.L("created_at::date")).
		Order(goqu.L("day").Asc()).
		Prepared(true).
		ToSQL()
	if buildErr != nil {
		return nil, buildErr
	}

	var totals []DailyTotal
	if queryErr := db.SelectContext(ctx, &totals, sqlQuery, args...); queryErr != nil {
		return nil, queryErr
	}

	return totals, nil
}
