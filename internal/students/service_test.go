package students

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"testing"
)

func wantInvalid(t *testing.T, err error) {
	t.Helper()
	var api *APIError
	if !errors.As(err, &api) || api.Code != CodeInvalidArgument {
		t.Fatalf("want INVALID_ARGUMENT, got %v", err)
	}
}

func TestCreateAlunoValidation(t *testing.T) {
	svc := &Service{}

	_, err := svc.CreateAluno(context.Background(), CreateAlunoRequest{TurmaID: "t1"})
	wantInvalid(t, err)

	_, err = svc.CreateAluno(context.Background(), CreateAlunoRequest{Nome: "Ana"})
	wantInvalid(t, err)

	_, err = svc.CreateAluno(context.Background(), CreateAlunoRequest{Nome: "   ", TurmaID: "t1"})
	wantInvalid(t, err)
}

func TestUpdateAlunoValidation(t *testing.T) {
	svc := &Service{}

	_, err := svc.UpdateAluno(context.Background(), "a1", UpdateAlunoRequest{})
	wantInvalid(t, err)

	blank := "  "
	_, err = svc.UpdateAluno(context.Background(), "a1", UpdateAlunoRequest{Nome: &blank})
	wantInvalid(t, err)
}

func TestListByTurmaValidation(t *testing.T) {
	svc := &Service{}

	_, err := svc.ListByTurma(context.Background(), " ")
	wantInvalid(t, err)
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

	plain := errors.New("duplicate entry")
	if got := storeErr(plain); got != plain {
		t.Errorf("non-connectivity error was rewritten: %v", got)
	}
}

func TestEmptyToNil(t *testing.T) {
	if emptyToNil(nil) != nil {
		t.Error("nil in, nil out")
	}
	blank := "   "
	if emptyToNil(&blank) != nil {
		t.Error("blank strings normalize to nil")
	}
	v := "2010-05-01"
	if got := emptyToNil(&v); got == nil || *got != v {
		t.Errorf("got %v, want %q", got, v)
	}
}
