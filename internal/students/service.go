package students

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	mysql "github.com/go-sql-driver/mysql"
	ulid "github.com/oklog/ulid/v2"

	platformdb "EBD-backend/internal/platform/db"
)

// ===== Error model (same shape across feature packages) =====

type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT"
	CodeUnavailable     Code = "UNAVAILABLE"
	CodeInternal        Code = "INTERNAL"
)

type APIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string         { return fmt.Sprintf("%s: %s", e.Code, e.Message) }
func ErrInvalid(msg string) *APIError     { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func ErrNotFound(msg string) *APIError    { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrUnavailable(msg string) *APIError { return &APIError{Code: CodeUnavailable, Message: msg} }
func ErrInternal(msg string) *APIError    { return &APIError{Code: CodeInternal, Message: msg} }

func toHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument:
			return 400
		case CodeNotFound:
			return 404
		case CodeConflict:
			return 409
		case CodeUnavailable:
			return 503
		default:
			return 500
		}
	}
	return 500
}

const storeTimeout = 5 * time.Second

func storeErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrUnavailable("store timed out")
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) {
		return ErrUnavailable("store unreachable")
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return ErrUnavailable("store unreachable")
	}
	return err
}

// ===== Service =====

type Service struct {
	db    *sql.DB
	store *Store
}

func NewService(db *sql.DB) *Service { return &Service{db: db, store: NewStore(db)} }

// POST /alunos
func (s *Service) CreateAluno(ctx context.Context, in CreateAlunoRequest) (MutationResponse, error) {
	if strings.TrimSpace(in.Nome) == "" || strings.TrimSpace(in.TurmaID) == "" {
		return MutationResponse{}, ErrInvalid("nome and turma_id are required")
	}

	ativo := true
	if in.Ativo != nil {
		ativo = *in.Ativo
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	if err := s.store.Insert(ctx, Aluno{
		AlunoID:        ulid.Make().String(),
		Nome:           in.Nome,
		TurmaID:        in.TurmaID,
		Ativo:          ativo,
		DataNascimento: emptyToNil(in.DataNascimento),
	}); err != nil {
		return MutationResponse{}, storeErr(err)
	}
	return MutationResponse{Sucesso: true}, nil
}

// GET /turmas/:turma_id/alunos
func (s *Service) ListByTurma(ctx context.Context, turmaID string) ([]AlunoResponse, error) {
	if strings.TrimSpace(turmaID) == "" {
		return nil, ErrInvalid("turma_id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	rows, err := s.store.ListByTurma(ctx, turmaID)
	if err != nil {
		return nil, storeErr(err)
	}
	out := make([]AlunoResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDTO())
	}
	return out, nil
}

// PUT /alunos/:id
// Read and write run in one transaction so a concurrent delete cannot slip
// between the existence check and the update.
func (s *Service) UpdateAluno(ctx context.Context, id string, in UpdateAlunoRequest) (MutationResponse, error) {
	if in.Nome == nil && in.TurmaID == nil && in.Ativo == nil && in.DataNascimento == nil {
		return MutationResponse{}, ErrInvalid("no fields to update")
	}
	if in.Nome != nil && strings.TrimSpace(*in.Nome) == "" {
		return MutationResponse{}, ErrInvalid("nome must not be blank")
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	err := platformdb.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx platformdb.DBTX) error {
		st := NewStore(tx)
		ok, err := st.ExistsForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound("aluno not found")
		}
		return st.Update(ctx, id, in)
	})
	if err != nil {
		return MutationResponse{}, storeErr(err)
	}
	return MutationResponse{Sucesso: true}, nil
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
