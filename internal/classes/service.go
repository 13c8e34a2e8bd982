package classes

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"time"

	mysql "github.com/go-sql-driver/mysql"
	ulid "github.com/oklog/ulid/v2"
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

// Every store call runs under a bounded deadline; an expired deadline or a
// dead connection is reported as UNAVAILABLE, not INTERNAL.
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

// POST /turmas
func (s *Service) CreateTurma(ctx context.Context, in CreateTurmaRequest) (CreateTurmaResponse, error) {
	if len(in) == 0 {
		return CreateTurmaResponse{}, ErrInvalid("request body must not be empty")
	}
	delete(in, "id") // the id is ours to assign

	id := ulid.Make().String()

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	if err := s.store.Insert(ctx, id, map[string]any(in)); err != nil {
		return CreateTurmaResponse{}, storeErr(err)
	}
	return CreateTurmaResponse{ID: id, Sucesso: true}, nil
}

// GET /turmas
func (s *Service) ListTurmas(ctx context.Context) ([]TurmaResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	rows, err := s.store.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	out := make([]TurmaResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toResponse())
	}
	return out, nil
}
