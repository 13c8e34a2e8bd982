package classes

// ===== Requests =====

// Turmas carry a free-form attribute set (name, schedule, room, ...). The
// request body is taken as-is, minus any client-sent "id".
type CreateTurmaRequest map[string]any

// ===== Responses =====

// TurmaResponse is the stored attribute map with "id" injected, matching the
// document shape the front end consumes.
type TurmaResponse map[string]any

type CreateTurmaResponse struct {
	ID      string `json:"id"`
	Sucesso bool   `json:"sucesso"`
}
