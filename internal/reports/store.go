package reports

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	ulid "github.com/oklog/ulid/v2"
)

type DBTX interface {
	ExecContext(ctx context.Context, q string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, q string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, q string, args ...any) *sql.Row
}

type Store struct{ db DBTX }

func NewStore(db DBTX) *Store { return &Store{db: db} }

const dateTimeLayout = "2006-01-02 15:04:05"

const relatorioColumns = `
	relatorio_id, turma_id, DATE_FORMAT(dia_aula, '%Y-%m-%d') AS dia_aula, data_aula,
	oferta_total, professor, observacoes, presentes, biblias, revistas,
	visitantes, detalhes_alunos`

// Upsert writes the report for (turma_id, dia_aula) in a single statement.
// The UNIQUE key makes the write atomic: no find-then-insert window.
// RowsAffected: 1 = inserted, 2 = updated, 0 = updated with identical values.
func (s *Store) Upsert(ctx context.Context, r Relatorio) (Relatorio, bool, error) {
	visitantes, err := json.Marshal(r.Resumo.Visitantes)
	if err != nil {
		return Relatorio{}, false, err
	}

	const q = `
	INSERT INTO relatorios_aula
		(relatorio_id, turma_id, dia_aula, data_aula, oferta_total, professor,
		 observacoes, presentes, biblias, revistas, visitantes, detalhes_alunos,
		 criado_em, atualizado_em)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(6), NOW(6))
	ON DUPLICATE KEY UPDATE
	data_aula       = VALUES(data_aula),
	oferta_total    = VALUES(oferta_total),
	professor       = VALUES(professor),
	observacoes     = VALUES(observacoes),
	presentes       = VALUES(presentes),
	biblias         = VALUES(biblias),
	revistas        = VALUES(revistas),
	visitantes      = VALUES(visitantes),
	detalhes_alunos = VALUES(detalhes_alunos),
	atualizado_em   = NOW(6)`

	res, err := s.db.ExecContext(ctx, q,
		ulid.Make().String(), r.TurmaID, r.DiaAula, r.DataAula.UTC().Format(dateTimeLayout),
		r.OfertaTotal, r.Professor, r.Observacoes,
		r.Resumo.Presentes, r.Resumo.Biblias, r.Resumo.Revistas,
		visitantes, []byte(r.DetalhesAlunos))
	if err != nil {
		return Relatorio{}, false, err
	}
	aff, _ := res.RowsAffected()
	created := aff == 1

	// fetch the final row (id included) via the unique key
	row := s.db.QueryRowContext(ctx, `
	SELECT`+relatorioColumns+`
	FROM relatorios_aula
	WHERE turma_id = ? AND dia_aula = ?`, r.TurmaID, r.DiaAula)

	saved, err := scanRelatorio(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Relatorio{}, created, ErrInternal("inserted but not found")
		}
		return Relatorio{}, created, err
	}
	return saved, created, nil
}

// dayRange returns the half-open [start, next) bounds covering every instant
// of the calendar day, fractional seconds included.
func dayRange(day string) (start, next string, err error) {
	d, err := time.ParseInLocation(DateLayout, day, time.UTC)
	if err != nil {
		return "", "", err
	}
	return day + " 00:00:00", d.AddDate(0, 0, 1).Format(DateLayout) + " 00:00:00", nil
}

// FindByTurmaAndDay scans the full calendar-day range of data_aula instead of
// matching an exact instant; legacy rows were stored with varying times of day.
func (s *Store) FindByTurmaAndDay(ctx context.Context, turmaID, day string) (*Relatorio, error) {
	start, next, err := dayRange(day)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(ctx, `
	SELECT`+relatorioColumns+`
	FROM relatorios_aula
	WHERE turma_id = ? AND data_aula >= ? AND data_aula < ?
	LIMIT 1`, turmaID, start, next)

	r, err := scanRelatorio(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// List returns every report, newest session first.
func (s *Store) List(ctx context.Context) ([]Relatorio, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT`+relatorioColumns+`
	FROM relatorios_aula
	ORDER BY data_aula DESC, relatorio_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Relatorio
	for rows.Next() {
		r, err := scanRelatorio(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
	DELETE FROM relatorios_aula WHERE relatorio_id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRelatorio(row scanner) (Relatorio, error) {
	var (
		r          Relatorio
		visitantes []byte
		detalhes   []byte
	)
	if err := row.Scan(
		&r.RelatorioID, &r.TurmaID, &r.DiaAula, &r.DataAula,
		&r.OfertaTotal, &r.Professor, &r.Observacoes,
		&r.Resumo.Presentes, &r.Resumo.Biblias, &r.Resumo.Revistas,
		&visitantes, &detalhes,
	); err != nil {
		return Relatorio{}, err
	}
	if len(visitantes) > 0 {
		_ = json.Unmarshal(visitantes, &r.Resumo.Visitantes)
	}
	r.DetalhesAlunos = detalhes
	return r, nil
}
