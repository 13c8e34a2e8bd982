package finance

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type Store struct{ db DBTX }

type DBTX interface {
	ExecContext(ctx context.Context, q string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, q string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, q string, args ...any) *sql.Row
}

func NewStore(db DBTX) *Store { return &Store{db: db} }

type OfertaRow struct {
	RelatorioID string
	DataAula    time.Time
	Valor       decimal.Decimal
}

// ListOfertas fetches every report with a positive offering, largest first.
// The ordering mirrors the read path the dashboard always used; the
// aggregation itself does not rely on it.
func (s *Store) ListOfertas(ctx context.Context) ([]OfertaRow, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT relatorio_id, data_aula, oferta_total
	FROM relatorios_aula
	WHERE oferta_total > 0
	ORDER BY oferta_total DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OfertaRow
	for rows.Next() {
		var (
			r  OfertaRow
			dt sql.NullTime
		)
		if err := rows.Scan(&r.RelatorioID, &dt, &r.Valor); err != nil {
			return nil, err
		}
		if dt.Valid {
			r.DataAula = dt.Time
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
