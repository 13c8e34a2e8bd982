package finance

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"log"
	"net"
	"sort"
	"time"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

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

var quarterLabels = map[int]string{
	1: "Jan-Mar",
	2: "Apr-Jun",
	3: "Jul-Sep",
	4: "Oct-Dec",
}

// quarterOf maps a month to its quarter: Jan-Mar -> 1, ..., Oct-Dec -> 4.
func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// The summary always reads through a transaction-scoped store (ReadOnly tx),
// so the service only holds the handle.
type Service struct {
	db *sql.DB
}

func NewService(db *sql.DB) *Service { return &Service{db: db} }

// GET /financeiro/resumo
func (s *Service) ResumoTrimestral(ctx context.Context) (ResumoFinanceiro, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var rows []OfertaRow
	err := platformdb.ReadOnly(ctx, s.db, func(ctx context.Context, tx platformdb.DBTX) error {
		var err error
		rows, err = NewStore(tx).ListOfertas(ctx)
		return err
	})
	if err != nil {
		return ResumoFinanceiro{}, storeErr(err)
	}
	return aggregate(rows), nil
}

type periodKey struct {
	Ano       int
	Trimestre int
}

// aggregate buckets offering totals by (year, quarter). The input order is
// whatever the read path produced; correctness does not depend on it. A row
// with no usable session date is skipped, never fails the whole summary.
func aggregate(rows []OfertaRow) ResumoFinanceiro {
	buckets := map[periodKey]decimal.Decimal{}
	total := decimal.Zero

	for _, r := range rows {
		if r.DataAula.IsZero() {
			log.Printf("[WARN] resumo: relatorio %s has no session date, skipped", r.RelatorioID)
			continue
		}
		d := r.DataAula.UTC()
		k := periodKey{Ano: d.Year(), Trimestre: quarterOf(d)}
		buckets[k] = buckets[k].Add(r.Valor)
		total = total.Add(r.Valor)
	}

	historico := make([]PeriodoTotal, 0, len(buckets))
	for k, v := range buckets {
		historico = append(historico, PeriodoTotal{
			Periodo:        fmt.Sprintf("%s/%d", quarterLabels[k.Trimestre], k.Ano),
			Ano:            k.Ano,
			Trimestre:      k.Trimestre,
			Total:          v,
			TotalFormatado: formatBRL(v),
		})
	}
	// chronological, not label order: the display string does not sort
	sort.Slice(historico, func(i, j int) bool {
		if historico[i].Ano != historico[j].Ano {
			return historico[i].Ano < historico[j].Ano
		}
		return historico[i].Trimestre < historico[j].Trimestre
	})

	return ResumoFinanceiro{
		TotalAcumulado: total,
		TotalFormatado: formatBRL(total),
		Historico:      historico,
	}
}

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

func formatBRL(d decimal.Decimal) string {
	f, _ := d.Float64()
	return ptBR.Sprintf("R$ %.2f", f)
}
