package contract

import (
	"context"
	"fmt"
)

// Conn is the connection a contract lookup travels over: enqueue one typed
// query, then await the next contract reply. Transport, framing and
// authentication are the implementation's concern, as is the guarantee that
// the next value received corresponds to the query just sent.
type Conn interface {
	// SendContractQuery serializes and dispatches a contract lookup.
	SendContractQuery(ctx context.Context, q Query) error
	// RecvContract blocks until the next contract reply arrives.
	RecvContract(ctx context.Context) (Contract, error)
}

// UnexpectedSecurityTypeError reports a resolution whose reply held a
// different security type than the caller asked for. It carries the query
// that produced the mismatch so callers can log which lookup went wrong.
type UnexpectedSecurityTypeError struct {
	Query Query
	Want  ContractType
	Got   ContractType
}

func (e *UnexpectedSecurityTypeError) Error() string {
	return fmt.Sprintf("unexpected security type resolving %s: want %s, got %s", e.Query, e.Want, e.Got)
}

// Resolve looks up the fully-defined contract for q over conn and narrows it
// to the security type S. It consumes exactly one reply per call.
//
// Transport failures from conn are wrapped and propagated, never retried. A
// reply holding a security type other than S fails with an
// *UnexpectedSecurityTypeError. Resolve imposes no ordering between
// concurrent callers; request/reply pairing is conn's responsibility.
func Resolve[S Security](ctx context.Context, conn Conn, q Query) (S, error) {
	var zero S

	if err := conn.SendContractQuery(ctx, q); err != nil {
		return zero, fmt.Errorf("send contract query: %w", err)
	}

	c, err := conn.RecvContract(ctx)
	if err != nil {
		return zero, fmt.Errorf("receive contract: %w", err)
	}

	s, err := Narrow[S](c)
	if err != nil {
		return zero, &UnexpectedSecurityTypeError{Query: q, Want: typeFor[S](), Got: TypeOf(c)}
	}
	return s, nil
}
