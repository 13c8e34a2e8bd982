package classes

import "testing"

func TestTurmaRowToResponse(t *testing.T) {
	r := turmaRow{
		TurmaID: "01HZX0000000000000000000TA",
		Attrs:   []byte(`{"nome":"Juniores","horario":"09:00","id":"spoofed"}`),
	}
	out := r.toResponse()

	if out["id"] != r.TurmaID {
		t.Errorf("id = %v, want %v (stored attrs must not override it)", out["id"], r.TurmaID)
	}
	if out["nome"] != "Juniores" || out["horario"] != "09:00" {
		t.Errorf("attrs not merged: %v", out)
	}
}

func TestTurmaRowToResponseCorruptAttrs(t *testing.T) {
	r := turmaRow{TurmaID: "t1", Attrs: []byte(`{broken`)}
	out := r.toResponse()

	if out["id"] != "t1" {
		t.Errorf("corrupt attrs must still yield the id, got %v", out)
	}
}
