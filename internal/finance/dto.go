package finance

import "github.com/shopspring/decimal"

// ===== Responses =====

type PeriodoTotal struct {
	Periodo        string          `json:"periodo"` // e.g. "Apr-Jun/2024"
	Ano            int             `json:"ano"`
	Trimestre      int             `json:"trimestre"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatado string          `json:"total_formatado"`
}

type ResumoFinanceiro struct {
	TotalAcumulado decimal.Decimal `json:"total_acumulado"`
	TotalFormatado string          `json:"total_formatado"`
	Historico      []PeriodoTotal  `json:"historico"`
}
