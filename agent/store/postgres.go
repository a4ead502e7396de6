package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "github.com/nileshdh/restaurant-agent/agent/contract"
)

type PostgresConfig struct {
	DSN string `envconfig:"DSN" split_words:"true" required:"true"`
}

// sheetRecord keeps the row-oriented sheet model in a relational backend:
// one jsonb document per data row, ordered by position within a collection.
type sheetRecord struct {
	bun.BaseModel `bun:"table:sheet_records"`

	ID         int64           `bun:"id,pk,autoincrement"`
	Collection string          `bun:"collection,notnull"`
	Position   int             `bun:"position,notnull"`
	Fields     json.RawMessage `bun:"fields,type:jsonb,notnull"`
}

// PostgresStore is the relational record store backend. Positions are append
// only, so they stay contiguous and 1-based like spreadsheet data rows.
type PostgresStore struct {
	db *bun.DB
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(cfg PostgresConfig) (*PostgresStore, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, fmt.Errorf("%w: postgres dsn is required", contractx.ErrConfiguration)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	return &PostgresStore{db: db}, nil
}

// Init verifies connectivity and creates the backing table. Fails fast at
// startup when the database is unreachable.
func (s *PostgresStore) Init(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: postgres unreachable: %v", contractx.ErrConfiguration, err)
	}
	if _, err := s.db.NewCreateTable().
		Model((*sheetRecord)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("create sheet_records table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) Records(ctx context.Context, collection string) ([]Record, error) {
	rows, err := s.rows(ctx, collection)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		var rec Record
		if err := json.Unmarshal(row.Fields, &rec); err != nil {
			return nil, fmt.Errorf("decode row %d of %s: %w", row.Position, collection, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *PostgresStore) AppendRow(ctx context.Context, collection string, row []any) error {
	headers := Headers(collection)
	if headers == nil {
		return fmt.Errorf("%w: %s", ErrCollectionMissing, collection)
	}

	fields, err := json.Marshal(recordFromRow(headers, row))
	if err != nil {
		return fmt.Errorf("encode row for %s: %w", collection, err)
	}

	var maxPos int
	if err := s.db.NewSelect().
		Model((*sheetRecord)(nil)).
		ColumnExpr("coalesce(max(position), 0)").
		Where("collection = ?", collection).
		Scan(ctx, &maxPos); err != nil {
		return fmt.Errorf("next position for %s: %w", collection, err)
	}

	if _, err := s.db.NewInsert().Model(&sheetRecord{
		Collection: collection,
		Position:   maxPos + 1,
		Fields:     fields,
	}).Exec(ctx); err != nil {
		return fmt.Errorf("append row to %s: %w", collection, err)
	}
	return nil
}

func (s *PostgresStore) FindRow(ctx context.Context, collection string, value string) (int, error) {
	rows, err := s.rows(ctx, collection)
	if err != nil {
		return 0, err
	}

	want := strings.TrimSpace(value)
	for i, row := range rows {
		var rec Record
		if err := json.Unmarshal(row.Fields, &rec); err != nil {
			return 0, fmt.Errorf("decode row %d of %s: %w", row.Position, collection, err)
		}
		for _, cell := range rec {
			if strings.TrimSpace(fmt.Sprint(cell)) == want {
				return i + 1, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q in %s", ErrRowNotFound, value, collection)
}

func (s *PostgresStore) UpdateCell(ctx context.Context, collection string, row, col int, value any) error {
	headers := Headers(collection)
	if headers == nil {
		return fmt.Errorf("%w: %s", ErrCollectionMissing, collection)
	}
	if col < 1 || col > len(headers) {
		return fmt.Errorf("invalid column %d for %s", col, collection)
	}

	rows, err := s.rows(ctx, collection)
	if err != nil {
		return err
	}
	if row < 1 || row > len(rows) {
		return fmt.Errorf("%w: row %d in %s", ErrRowNotFound, row, collection)
	}

	target := rows[row-1]
	var rec Record
	if err := json.Unmarshal(target.Fields, &rec); err != nil {
		return fmt.Errorf("decode row %d of %s: %w", row, collection, err)
	}
	rec[headers[col-1]] = value

	fields, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode row %d of %s: %w", row, collection, err)
	}

	target.Fields = fields
	if _, err := s.db.NewUpdate().
		Model(&target).
		Column("fields").
		WherePK().
		Exec(ctx); err != nil {
		return fmt.Errorf("update row %d of %s: %w", row, collection, err)
	}
	return nil
}

// recordFromRow maps a positional row onto the canonical headers. Missing
// trailing cells become empty strings; extra cells are dropped.
func recordFromRow(headers []string, row []any) Record {
	rec := make(Record, len(headers))
	for i, header := range headers {
		if i < len(row) {
			rec[header] = row[i]
		} else {
			rec[header] = ""
		}
	}
	return rec
}

func (s *PostgresStore) rows(ctx context.Context, collection string) ([]sheetRecord, error) {
	var rows []sheetRecord
	if err := s.db.NewSelect().
		Model(&rows).
		Where("collection = ?", collection).
		Order("position ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", collection, err)
	}
	return rows, nil
}
