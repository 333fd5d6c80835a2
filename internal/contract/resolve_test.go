package contract

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/7jrxt42BxFZo4iAnN4CX/ibkr-go/internal/figi"
)

// scriptedConn is a Conn whose reply is fixed in advance.
type scriptedConn struct {
	sent    []Query
	reply   Contract
	sendErr error
	recvErr error
}

func (c *scriptedConn) SendContractQuery(ctx context.Context, q Query) error {
	if c.sendErr != nil {
		return c.sendErr
	}
	c.sent = append(c.sent, q)
	return nil
}

func (c *scriptedConn) RecvContract(ctx context.Context) (Contract, error) {
	if c.recvErr != nil {
		return nil, c.recvErr
	}
	return c.reply, nil
}

func figiQuery(t *testing.T, s string) FIGIQuery {
	t.Helper()
	f, err := figi.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", s, err)
	}
	return FIGIQuery{FIGI: f}
}

func TestResolveMatchingType(t *testing.T) {
	stock := sampleStock()
	conn := &scriptedConn{reply: stock}
	q := figiQuery(t, "BBG000B9XRY4")

	got, err := Resolve[Stock](context.Background(), conn, q)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !reflect.DeepEqual(got, stock) {
		t.Errorf("Resolve returned %+v, want the reply unmodified", got)
	}
	if len(conn.sent) != 1 || conn.sent[0] != Query(q) {
		t.Errorf("sent queries = %v, want exactly [%v]", conn.sent, q)
	}
}

func TestResolveAsUnion(t *testing.T) {
	stock := sampleStock()
	conn := &scriptedConn{reply: stock}

	got, err := Resolve[Contract](context.Background(), conn, figiQuery(t, "BBG000B9XRY4"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if TypeOf(got) != TypeStock {
		t.Errorf("TypeOf = %s, want STK", TypeOf(got))
	}
}

func TestResolveWrongType(t *testing.T) {
	conn := &scriptedConn{reply: sampleStock()}
	q := figiQuery(t, "BBG000B9XRY4")

	_, err := Resolve[Forex](context.Background(), conn, q)
	var uerr *UnexpectedSecurityTypeError
	if !errors.As(err, &uerr) {
		t.Fatalf("error = %v (%T), want *UnexpectedSecurityTypeError", err, err)
	}
	if uerr.Want != TypeForex || uerr.Got != TypeStock {
		t.Errorf("error = %v, want want=CASH got=STK", uerr)
	}
	if uerr.Query != Query(q) {
		t.Errorf("error carries query %v, want %v", uerr.Query, q)
	}
}

func TestResolveSendFailure(t *testing.T) {
	sendErr := errors.New("socket closed")
	conn := &scriptedConn{sendErr: sendErr}

	_, err := Resolve[Stock](context.Background(), conn, figiQuery(t, "BBG000B9XRY4"))
	if !errors.Is(err, sendErr) {
		t.Errorf("error = %v, want wrapped send error", err)
	}
	if len(conn.sent) != 0 {
		t.Errorf("sent = %v, want none", conn.sent)
	}
}

func TestResolveRecvFailure(t *testing.T) {
	recvErr := errors.New("read timeout")
	conn := &scriptedConn{reply: sampleStock(), recvErr: recvErr}

	_, err := Resolve[Stock](context.Background(), conn, figiQuery(t, "BBG000B9XRY4"))
	if !errors.Is(err, recvErr) {
		t.Errorf("error = %v, want wrapped receive error", err)
	}
}
