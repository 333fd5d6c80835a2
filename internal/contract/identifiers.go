package contract

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/7jrxt42BxFZo4iAnN4CX/ibkr-go/internal/exchange"
	"github.com/7jrxt42BxFZo4iAnN4CX/ibkr-go/internal/figi"
)

// ContractID uniquely identifies a contract within the broker's systems.
// It is distinct from industry identifiers such as FIGIs or ISINs.
type ContractID int64

// ParseContractID parses the decimal text form of a contract ID.
func ParseContractID(s string) (ContractID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return ContractID(n), nil
}

// String returns the decimal text form.
func (id ContractID) String() string { return strconv.FormatInt(int64(id), 10) }

// SecurityIDScheme names the issuing scheme of an industry security
// identifier.
type SecurityIDScheme string

// Supported identifier schemes.
const (
	SchemeCUSIP SecurityIDScheme = "CUSIP"
	SchemeSEDOL SecurityIDScheme = "SEDOL"
	SchemeISIN  SecurityIDScheme = "ISIN"
	SchemeRIC   SecurityIDScheme = "RIC"
)

// SecurityID is an industry or regulatory identifier attached to a security,
// tagged by its issuing scheme.
type SecurityID struct {
	Scheme SecurityIDScheme `json:"scheme"`
	Value  string           `json:"value"`
}

// NewCUSIP tags v as a CUSIP.
func NewCUSIP(v string) SecurityID { return SecurityID{Scheme: SchemeCUSIP, Value: v} }

// NewSEDOL tags v as a SEDOL.
func NewSEDOL(v string) SecurityID { return SecurityID{Scheme: SchemeSEDOL, Value: v} }

// NewISIN tags v as an ISIN.
func NewISIN(v string) SecurityID { return SecurityID{Scheme: SchemeISIN, Value: v} }

// NewRIC tags v as a RIC.
func NewRIC(v string) SecurityID { return SecurityID{Scheme: SchemeRIC, Value: v} }

// Query is a contract lookup key: either a broker contract ID with a routing
// destination, or a FIGI. Build one directly or with ParseQuery.
type Query interface {
	fmt.Stringer
	isQuery()
}

// ContractIDQuery looks a contract up by its broker contract ID.
type ContractIDQuery struct {
	ID      ContractID
	Routing exchange.Routing
}

func (ContractIDQuery) isQuery() {}

func (q ContractIDQuery) String() string {
	return fmt.Sprintf("contract id %d via %s", int64(q.ID), q.Routing)
}

// FIGIQuery looks a contract up by its FIGI.
type FIGIQuery struct {
	FIGI figi.FIGI
}

func (FIGIQuery) isQuery() {}

func (q FIGIQuery) String() string { return "FIGI " + q.FIGI.String() }

// ErrEmptyQuery reports a blank lookup string: there is no way to tell
// whether a contract ID or a FIGI was intended, so neither branch is tried.
var ErrEmptyQuery = errors.New("empty query: cannot tell a contract ID from a FIGI")

// InvalidQueryError reports free-text input that failed to parse as the
// query form its first character selected. It wraps either an integer parse
// error or a *figi.InvalidFIGIError.
type InvalidQueryError struct {
	Input string
	Err   error
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid contract query %q: %v", e.Input, e.Err)
}

func (e *InvalidQueryError) Unwrap() error { return e.Err }

// ParseQuery parses free text as a Query. A FIGI always begins with a
// letter, so input whose first character is numeric is read as a contract ID
// (routed via exchange.Smart) and everything else is validated as a FIGI.
// Empty input fails with ErrEmptyQuery.
func ParseQuery(s string) (Query, error) {
	if s == "" {
		return nil, ErrEmptyQuery
	}
	first, _ := utf8.DecodeRuneInString(s)
	if unicode.IsDigit(first) {
		id, err := ParseContractID(s)
		if err != nil {
			return nil, &InvalidQueryError{Input: s, Err: err}
		}
		return ContractIDQuery{ID: id, Routing: exchange.Smart}, nil
	}
	f, err := figi.Parse(s)
	if err != nil {
		return nil, &InvalidQueryError{Input: s, Err: err}
	}
	return FIGIQuery{FIGI: f}, nil
}
