package students

import "time"

// ===== Requests =====

type CreateAlunoRequest struct {
	Nome           string  `json:"nome" binding:"required"`
	TurmaID        string  `json:"turma_id" binding:"required"`
	Ativo          *bool   `json:"ativo,omitempty"` // default true
	DataNascimento *string `json:"data_nascimento,omitempty"`
}

// UpdateAlunoRequest is a partial update: only the fields present in the body
// are written. turma_id is a loose reference, never checked against turmas.
type UpdateAlunoRequest struct {
	Nome           *string `json:"nome,omitempty"`
	TurmaID        *string `json:"turma_id,omitempty"`
	Ativo          *bool   `json:"ativo,omitempty"`
	DataNascimento *string `json:"data_nascimento,omitempty"`
}

// ===== Responses =====

type AlunoResponse struct {
	ID             string    `json:"id"`
	Nome           string    `json:"nome"`
	TurmaID        string    `json:"turma_id"`
	Ativo          bool      `json:"ativo"`
	DataNascimento *string   `json:"data_nascimento,omitempty"`
	CriadoEm       time.Time `json:"criado_em"`
}

type MutationResponse struct {
	Sucesso bool `json:"sucesso"`
}
