package finance

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func at(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 12, 0, 0, 0, time.UTC)
}

func TestQuarterOf(t *testing.T) {
	want := map[time.Month]int{
		time.January: 1, time.February: 1, time.March: 1,
		time.April: 2, time.May: 2, time.June: 2,
		time.July: 3, time.August: 3, time.September: 3,
		time.October: 4, time.November: 4, time.December: 4,
	}
	for m, q := range want {
		if got := quarterOf(at(2024, m, 15)); got != q {
			t.Errorf("%s: got %d, want %d", m, got, q)
		}
	}
}

func TestAggregateSameQuarter(t *testing.T) {
	rows := []OfertaRow{
		{RelatorioID: "a", DataAula: at(2024, time.April, 7), Valor: d("100")},
		{RelatorioID: "b", DataAula: at(2024, time.June, 30), Valor: d("50")},
	}
	res := aggregate(rows)

	if len(res.Historico) != 1 {
		t.Fatalf("got %d periods, want 1", len(res.Historico))
	}
	p := res.Historico[0]
	if p.Periodo != "Apr-Jun/2024" {
		t.Errorf("periodo = %q, want Apr-Jun/2024", p.Periodo)
	}
	if !p.Total.Equal(d("150")) {
		t.Errorf("period total = %s, want 150", p.Total)
	}
	if !res.TotalAcumulado.Equal(d("150")) {
		t.Errorf("grand total = %s, want 150", res.TotalAcumulado)
	}
}

func TestAggregateGrandTotalEqualsPeriodSum(t *testing.T) {
	rows := []OfertaRow{
		{RelatorioID: "a", DataAula: at(2023, time.November, 5), Valor: d("10.10")},
		{RelatorioID: "b", DataAula: at(2024, time.January, 7), Valor: d("20.20")},
		{RelatorioID: "c", DataAula: at(2024, time.February, 4), Valor: d("0.30")},
		{RelatorioID: "d", DataAula: at(2024, time.August, 11), Valor: d("150.5")},
	}
	res := aggregate(rows)

	sum := decimal.Zero
	for _, p := range res.Historico {
		sum = sum.Add(p.Total)
	}
	if !sum.Equal(res.TotalAcumulado) {
		t.Errorf("period sum %s != grand total %s", sum, res.TotalAcumulado)
	}
	if !res.TotalAcumulado.Equal(d("181.10")) {
		t.Errorf("grand total = %s, want 181.10", res.TotalAcumulado)
	}
}

func TestAggregateSortsChronologically(t *testing.T) {
	// string-sorting the labels would put Jan-Mar/2024 before Oct-Dec/2023
	rows := []OfertaRow{
		{RelatorioID: "a", DataAula: at(2024, time.January, 7), Valor: d("1")},
		{RelatorioID: "b", DataAula: at(2023, time.October, 1), Valor: d("2")},
		{RelatorioID: "c", DataAula: at(2024, time.July, 14), Valor: d("3")},
	}
	res := aggregate(rows)

	want := []string{"Oct-Dec/2023", "Jan-Mar/2024", "Jul-Sep/2024"}
	if len(res.Historico) != len(want) {
		t.Fatalf("got %d periods, want %d", len(res.Historico), len(want))
	}
	for i, p := range res.Historico {
		if p.Periodo != want[i] {
			t.Errorf("historico[%d] = %q, want %q", i, p.Periodo, want[i])
		}
	}
}

func TestAggregateSkipsRowsWithoutDate(t *testing.T) {
	rows := []OfertaRow{
		{RelatorioID: "a", Valor: d("99")}, // zero DataAula
		{RelatorioID: "b", DataAula: at(2024, time.May, 5), Valor: d("1")},
	}
	res := aggregate(rows)

	if len(res.Historico) != 1 {
		t.Fatalf("got %d periods, want 1", len(res.Historico))
	}
	if !res.TotalAcumulado.Equal(d("1")) {
		t.Errorf("grand total = %s, want 1 (bad row must not count)", res.TotalAcumulado)
	}
}

func TestAggregateEmpty(t *testing.T) {
	res := aggregate(nil)
	if !res.TotalAcumulado.IsZero() {
		t.Errorf("grand total = %s, want 0", res.TotalAcumulado)
	}
	if len(res.Historico) != 0 {
		t.Errorf("historico should be empty, got %d", len(res.Historico))
	}
}

func TestStoreErr(t *testing.T) {
	for _, in := range []error{
		context.DeadlineExceeded,
		driver.ErrBadConn,
		&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
	} {
		err := storeErr(in)
		var api *APIError
		if !errors.As(err, &api) || api.Code != CodeUnavailable {
			t.Errorf("%v: got %v, want UNAVAILABLE", in, err)
		}
	}

	plain := errors.New("bad query")
	if got := storeErr(plain); got != plain {
		t.Errorf("non-connectivity error was rewritten: %v", got)
	}
}

func TestFormatBRL(t *testing.T) {
	if got := formatBRL(d("150.5")); got != "R$ 150,50" {
		t.Errorf("got %q, want R$ 150,50", got)
	}
}
