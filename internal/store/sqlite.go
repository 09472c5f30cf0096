// Package store is the read-only SQLite access layer. The dashboard data
// lives in two tables: countries (one row per country) and indicators
// (one row per country/indicator/year observation).
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

// Open opens the SQLite file read-only. This is the only fatal failure
// in the whole load path; everything downstream degrades instead.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// CountryRow mirrors one countries row. Columns the table does not have
// come back as invalid Null values rather than failing the query.
type CountryRow struct {
	Name          sql.NullString
	ISO3          sql.NullString
	ISO2          sql.NullString
	Region        sql.NullString
	Subregion     sql.NullString
	Capital       sql.NullString
	Population    sql.NullFloat64
	Area          sql.NullFloat64
	LanguageCount sql.NullInt64
}

// IndicatorRow is one observation. Value is NULL for years the source
// had no data for.
type IndicatorRow struct {
	CountryCode string
	Indicator   string
	Year        int32
	Value       sql.NullFloat64
}

// Countries reads the full countries table. SELECT * plus positional
// coercion keeps the read working against stores written by older
// exporter revisions that lack some of the optional columns.
func (s *Store) Countries(ctx context.Context) ([]CountryRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT * FROM countries`)
	if err != nil {
		return nil, fmt.Errorf("query countries: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	idx := make(map[string]int, len(cols))
	for i, c := range cols {
		idx[c] = i
	}

	var out []CountryRow
	raw := make([]any, len(cols))
	for i := range raw {
		raw[i] = new(any)
	}
	for rows.Next() {
		if err := rows.Scan(raw...); err != nil {
			return nil, err
		}
		cell := func(name string) any {
			i, ok := idx[name]
			if !ok {
				return nil
			}
			return *(raw[i].(*any))
		}
		out = append(out, CountryRow{
			Name:          nullString(cell("name_common")),
			ISO3:          nullString(cell("cca3")),
			ISO2:          nullString(cell("cca2")),
			Region:        nullString(cell("region")),
			Subregion:     nullString(cell("subregion")),
			Capital:       nullString(cell("capital")),
			Population:    nullFloat(cell("population")),
			Area:          nullFloat(cell("area")),
			LanguageCount: nullInt(cell("language_count")),
		})
	}
	return out, rows.Err()
}

// Indicators reads the full indicators table in one pass; the engine
// dictionary-encodes it, so there is no point querying per country.
func (s *Store) Indicators(ctx context.Context) ([]IndicatorRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT country_code, indicator, year, value FROM indicators`)
	if err != nil {
		return nil, fmt.Errorf("query indicators: %w", err)
	}
	defer rows.Close()

	var out []IndicatorRow
	for rows.Next() {
		var r IndicatorRow
		var code, ind sql.NullString
		var year sql.NullInt64
		if err := rows.Scan(&code, &ind, &year, &r.Value); err != nil {
			return nil, err
		}
		r.CountryCode = code.String
		r.Indicator = ind.String
		r.Year = int32(year.Int64)
		out = append(out, r)
	}
	return out, rows.Err()
}

// SQLite columns are dynamically typed, so every cell coercion has to
// accept whatever the driver hands back.

func nullString(v any) sql.NullString {
	switch t := v.(type) {
	case nil:
		return sql.NullString{}
	case string:
		return sql.NullString{String: t, Valid: true}
	case []byte:
		return sql.NullString{String: string(t), Valid: true}
	case int64:
		return sql.NullString{String: strconv.FormatInt(t, 10), Valid: true}
	case float64:
		return sql.NullString{String: strconv.FormatFloat(t, 'f', -1, 64), Valid: true}
	}
	return sql.NullString{}
}

func nullFloat(v any) sql.NullFloat64 {
	switch t := v.(type) {
	case nil:
		return sql.NullFloat64{}
	case float64:
		return sql.NullFloat64{Float64: t, Valid: true}
	case int64:
		return sql.NullFloat64{Float64: float64(t), Valid: true}
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return sql.NullFloat64{Float64: f, Valid: true}
		}
	case []byte:
		if f, err := strconv.ParseFloat(string(t), 64); err == nil {
			return sql.NullFloat64{Float64: f, Valid: true}
		}
	}
	return sql.NullFloat64{}
}

func nullInt(v any) sql.NullInt64 {
	switch t := v.(type) {
	case nil:
		return sql.NullInt64{}
	case int64:
		return sql.NullInt64{Int64: t, Valid: true}
	case float64:
		return sql.NullInt64{Int64: int64(t), Valid: true}
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return sql.NullInt64{Int64: n, Valid: true}
		}
	}
	return sql.NullInt64{}
}
