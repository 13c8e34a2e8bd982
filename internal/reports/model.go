package reports

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// rosterEntry reads only the attendance flags; the rest of each aluno object
// is opaque and kept verbatim in detalhes_alunos.
type rosterEntry struct {
	Presente      bool `json:"presente"`
	TrouxeBiblia  bool `json:"trouxe_biblia"`
	TrouxeRevista bool `json:"trouxe_revista"`
}

func parseRoster(raw json.RawMessage) ([]rosterEntry, error) {
	if len(raw) == 0 {
		return nil, errors.New("missing roster")
	}
	var entries []rosterEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// summarize computes the per-session counters from the roster flags.
func summarize(entries []rosterEntry, visitantes *Visitantes) Resumo {
	var r Resumo
	for _, e := range entries {
		if e.Presente {
			r.Presentes++
		}
		if e.TrouxeBiblia {
			r.Biblias++
		}
		if e.TrouxeRevista {
			r.Revistas++
		}
	}
	if visitantes != nil {
		r.Visitantes = *visitantes
	}
	return r
}

// normalizeDataAula pins a "YYYY-MM-DD" session date to noon so that storing
// the instant can never relabel the session to the previous calendar day.
// Returns the instant and the day bucket string.
func normalizeDataAula(s string, now time.Time) (time.Time, string, error) {
	if s == "" {
		return now, now.Format(DateLayout), nil
	}
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, "", err
	}
	noon := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC)
	return noon, s, nil
}

func formatDataPtBR(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
}

// Relatorio is the Service/Store model.
type Relatorio struct {
	RelatorioID    string
	TurmaID        string
	DiaAula        string // "YYYY-MM-DD" bucket backing the unique key
	DataAula       time.Time
	OfertaTotal    decimal.Decimal
	Professor      string
	Observacoes    string
	Resumo         Resumo
	DetalhesAlunos json.RawMessage
}

func (r Relatorio) toDTO() RelatorioResponse {
	return RelatorioResponse{
		ID:             r.RelatorioID,
		TurmaID:        r.TurmaID,
		DataAula:       r.DataAula.UTC(),
		DataFormatada:  formatDataPtBR(r.DataAula.UTC()),
		OfertaTotal:    r.OfertaTotal,
		Professor:      r.Professor,
		Observacoes:    r.Observacoes,
		Resumo:         r.Resumo,
		DetalhesAlunos: r.DetalhesAlunos,
	}
}
