package classes

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"testing"
)

func TestStoreErr(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want Code
	}{
		{"deadline", context.DeadlineExceeded, CodeUnavailable},
		{"bad conn", driver.ErrBadConn, CodeUnavailable},
		{"dial refused", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, CodeUnavailable},
	}
	for _, tc := range cases {
		err := storeErr(tc.in)
		var api *APIError
		if !errors.As(err, &api) || api.Code != tc.want {
			t.Errorf("%s: got %v, want code %s", tc.name, err, tc.want)
		}
	}

	// everything else passes through untouched
	plain := errors.New("syntax error")
	if got := storeErr(plain); got != plain {
		t.Errorf("non-connectivity error was rewritten: %v", got)
	}
}
