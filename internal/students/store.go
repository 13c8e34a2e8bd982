package students

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

type DBTX interface {
	ExecContext(ctx context.Context, q string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, q string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, q string, args ...any) *sql.Row
}

type Store struct{ db DBTX }

func NewStore(db DBTX) *Store { return &Store{db: db} }

type Aluno struct {
	AlunoID        string
	Nome           string
	TurmaID        string
	Ativo          bool
	DataNascimento *string // "YYYY-MM-DD", stored as given
	CriadoEm       time.Time
}

func (a Aluno) toDTO() AlunoResponse {
	return AlunoResponse{
		ID:             a.AlunoID,
		Nome:           a.Nome,
		TurmaID:        a.TurmaID,
		Ativo:          a.Ativo,
		DataNascimento: a.DataNascimento,
		CriadoEm:       a.CriadoEm.UTC(),
	}
}

func (s *Store) Insert(ctx context.Context, a Aluno) error {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO alunos (aluno_id, nome, turma_id, ativo, data_nascimento, criado_em)
	VALUES (?, ?, ?, ?, ?, NOW(6))`,
		a.AlunoID, a.Nome, a.TurmaID, a.Ativo, a.DataNascimento)
	return err
}

func (s *Store) ListByTurma(ctx context.Context, turmaID string) ([]Aluno, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT aluno_id, nome, turma_id, ativo, data_nascimento, criado_em
	FROM alunos
	WHERE turma_id = ?
	ORDER BY nome ASC, aluno_id ASC`, turmaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Aluno
	for rows.Next() {
		var a Aluno
		var ativoInt int
		if err := rows.Scan(&a.AlunoID, &a.Nome, &a.TurmaID, &ativoInt, &a.DataNascimento, &a.CriadoEm); err != nil {
			return nil, err
		}
		a.Ativo = ativoInt != 0
		out = append(out, a)
	}
	return out, rows.Err()
}

// ExistsForUpdate locks the row for the rest of the transaction.
func (s *Store) ExistsForUpdate(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `
	SELECT 1 FROM alunos WHERE aluno_id = ? FOR UPDATE`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Update writes only the fields present in the request (dynamic SET).
func (s *Store) Update(ctx context.Context, id string, in UpdateAlunoRequest) error {
	var (
		sets []string
		args []any
	)
	if in.Nome != nil {
		sets = append(sets, "nome = ?")
		args = append(args, *in.Nome)
	}
	if in.TurmaID != nil {
		sets = append(sets, "turma_id = ?")
		args = append(args, *in.TurmaID)
	}
	if in.Ativo != nil {
		sets = append(sets, "ativo = ?")
		args = append(args, *in.Ativo)
	}
	if in.DataNascimento != nil {
		sets = append(sets, "data_nascimento = ?")
		if strings.TrimSpace(*in.DataNascimento) == "" {
			args = append(args, nil)
		} else {
			args = append(args, *in.DataNascimento)
		}
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	_, err := s.db.ExecContext(ctx,
		"UPDATE alunos SET "+strings.Join(sets, ", ")+" WHERE aluno_id = ?", args...)
	return err
}
