package reports

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

// storeErr classifies store failures: expired deadlines and connectivity
// errors are UNAVAILABLE (retryable by the caller), anything else passes
// through as INTERNAL.
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

// ReportStore is what the service needs from the storage layer.
type ReportStore interface {
	Upsert(ctx context.Context, r Relatorio) (Relatorio, bool, error)
	FindByTurmaAndDay(ctx context.Context, turmaID, day string) (*Relatorio, error)
	List(ctx context.Context) ([]Relatorio, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type Service struct {
	store ReportStore
	now   func() time.Time
}

func NewService(db *sql.DB) *Service {
	return &Service{store: NewStore(db), now: time.Now}
}

// POST /chamada
// One report per (turma, day): the store upsert rides the UNIQUE
// (turma_id, dia_aula) key, so concurrent submissions for the same session
// collapse into a single row instead of racing a find-then-write.
func (s *Service) SalvarChamada(ctx context.Context, in CreateChamadaRequest) (ChamadaResult, error) {
	if strings.TrimSpace(in.TurmaID) == "" {
		return ChamadaResult{}, ErrInvalid("turma_id is required")
	}
	entries, err := parseRoster(in.Alunos)
	if err != nil {
		return ChamadaResult{}, ErrInvalid("alunos must be a JSON array")
	}

	var dataStr string
	if in.DataAula != nil {
		dataStr = strings.TrimSpace(*in.DataAula)
	}
	dataAula, dia, err := normalizeDataAula(dataStr, s.now().UTC())
	if err != nil {
		return ChamadaResult{}, ErrInvalid("data_aula must be YYYY-MM-DD")
	}

	rel := Relatorio{
		TurmaID:        in.TurmaID,
		DiaAula:        dia,
		DataAula:       dataAula,
		OfertaTotal:    in.Oferta.Decimal,
		Professor:      strOrEmpty(in.Professor),
		Observacoes:    strOrEmpty(in.Observacoes),
		Resumo:         summarize(entries, in.Visitantes),
		DetalhesAlunos: in.Alunos,
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	saved, created, err := s.store.Upsert(ctx, rel)
	if err != nil {
		return ChamadaResult{}, storeErr(err)
	}

	msg := "Chamada atualizada!"
	if created {
		msg = "Nova chamada salva!"
	}
	return ChamadaResult{Sucesso: true, Mensagem: msg, ID: saved.RelatorioID}, nil
}

// GET /chamada/verificar?turma_id=&data=
// Matches by day range on the stored instant, not by exact timestamp, so
// rows written by older versions with a drifting time-of-day still match.
func (s *Service) VerificarChamada(ctx context.Context, turmaID, data string) (*RelatorioResponse, error) {
	if strings.TrimSpace(turmaID) == "" {
		return nil, ErrInvalid("turma_id is required")
	}
	if _, err := time.ParseInLocation(DateLayout, data, time.UTC); err != nil {
		return nil, ErrInvalid("data must be YYYY-MM-DD")
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	rel, err := s.store.FindByTurmaAndDay(ctx, turmaID, data)
	if err != nil {
		return nil, storeErr(err)
	}
	if rel == nil {
		return nil, nil
	}
	dto := rel.toDTO()
	return &dto, nil
}

// GET /relatorios
func (s *Service) ListRelatorios(ctx context.Context) ([]RelatorioResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	rows, err := s.store.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	out := make([]RelatorioResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDTO())
	}
	return out, nil
}

// DELETE /relatorios/:id
func (s *Service) DeleteRelatorio(ctx context.Context, id string) (DeleteResponse, error) {
	if strings.TrimSpace(id) == "" {
		return DeleteResponse{}, ErrInvalid("id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return DeleteResponse{}, storeErr(err)
	}
	if n == 0 {
		return DeleteResponse{}, ErrNotFound("relatorio not found")
	}
	return DeleteResponse{Sucesso: true}, nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
