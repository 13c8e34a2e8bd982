package reports

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

// ===== Requests =====

type CreateChamadaRequest struct {
	TurmaID     string          `json:"turma_id"`
	DataAula    *string         `json:"data_aula,omitempty"` // "YYYY-MM-DD"; absent = today
	Oferta      Oferta          `json:"oferta"`
	Alunos      json.RawMessage `json:"alunos"` // roster, stored verbatim
	Visitantes  *Visitantes     `json:"visitantes,omitempty"`
	Professor   *string         `json:"professor,omitempty"`
	Observacoes *string         `json:"observacoes,omitempty"`
}

// Oferta accepts a JSON number or a numeric string. Malformed or negative
// values coerce to zero; that is the documented policy for this field, not
// silent error swallowing.
type Oferta struct {
	decimal.Decimal
}

func (o *Oferta) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		o.Decimal = decimal.Zero
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		o.Decimal = decimal.Zero
		return nil
	}
	o.Decimal = d
	return nil
}

type Visitantes struct {
	Quantidade int `json:"quantidade"`
	Biblias    int `json:"biblias"`
	Revistas   int `json:"revistas"`
}

// ===== Responses =====

type Resumo struct {
	Presentes  int        `json:"presentes"`
	Biblias    int        `json:"biblias"`
	Revistas   int        `json:"revistas"`
	Visitantes Visitantes `json:"visitantes"`
}

type ChamadaResult struct {
	Sucesso  bool   `json:"sucesso"`
	Mensagem string `json:"mensagem"`
	ID       string `json:"id"`
}

type RelatorioResponse struct {
	ID             string          `json:"id"`
	TurmaID        string          `json:"turma_id"`
	DataAula       time.Time       `json:"data_aula"`
	DataFormatada  string          `json:"data_formatada"` // dd/mm/yyyy for the dashboard
	OfertaTotal    decimal.Decimal `json:"oferta_total"`
	Professor      string          `json:"professor"`
	Observacoes    string          `json:"observacoes"`
	Resumo         Resumo          `json:"resumo"`
	DetalhesAlunos json.RawMessage `json:"detalhes_alunos"`
}

// VerificarResponse flattens the report into the lookup reply when a chamada
// already exists for the requested day.
type VerificarResponse struct {
	Encontrada bool `json:"encontrada"`
	RelatorioResponse
}

type DeleteResponse struct {
	Sucesso bool `json:"sucesso"`
}
