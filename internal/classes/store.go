package classes

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type DBTX interface {
	ExecContext(ctx context.Context, q string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, q string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, q string, args ...any) *sql.Row
}

type Store struct{ db DBTX }

func NewStore(db DBTX) *Store { return &Store{db: db} }

type turmaRow struct {
	TurmaID   string
	Attrs     []byte // JSON object
	CreatedAt time.Time
}

// toResponse merges the stored attribute JSON with the assigned id. A corrupt
// attrs blob degrades to an id-only document instead of failing the list.
func (r turmaRow) toResponse() TurmaResponse {
	out := TurmaResponse{}
	if len(r.Attrs) > 0 {
		_ = json.Unmarshal(r.Attrs, &out)
	}
	out["id"] = r.TurmaID
	return out
}

func (s *Store) Insert(ctx context.Context, id string, attrs map[string]any) error {
	buf, err := json.Marshal(attrs)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
	INSERT INTO turmas (turma_id, attrs, criado_em)
	VALUES (?, ?, NOW(6))`, id, buf)
	return err
}

func (s *Store) List(ctx context.Context) ([]turmaRow, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT turma_id, attrs, criado_em
	FROM turmas
	ORDER BY criado_em ASC, turma_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []turmaRow
	for rows.Next() {
		var r turmaRow
		if err := rows.Scan(&r.TurmaID, &r.Attrs, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
