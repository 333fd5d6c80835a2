package connection

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/7jrxt42BxFZo4iAnN4CX/ibkr-go/internal/contract"
)

// Errors
var (
	ErrNotConnected    = errors.New("not connected")
	ErrAlreadyClosed   = errors.New("already closed")
	ErrStaleConnection = errors.New("connection stale (no ping)")
)

// Frame type tags exchanged with the gateway.
const (
	frameHello         = "hello"
	frameContractQuery = "contract_query"
	frameContract      = "contract"
	frameError         = "error"
)

// helloFrame identifies a session to the gateway right after connecting.
type helloFrame struct {
	Type    string `json:"type"`
	Session string `json:"session"`
	Version string `json:"version"`
}

// queryFrame is a contract lookup request.
type queryFrame struct {
	ID    int64        `json:"id"`
	Type  string       `json:"type"`
	Query queryPayload `json:"query"`
}

// queryPayload carries one of the two lookup forms: a broker contract ID
// with routing, or a FIGI.
type queryPayload struct {
	ConID   int64  `json:"con_id,omitempty"`
	Routing string `json:"routing,omitempty"`
	FIGI    string `json:"figi,omitempty"`
}

// encodeQuery maps a typed query onto its wire payload.
func encodeQuery(q contract.Query) (queryPayload, error) {
	switch q := q.(type) {
	case contract.ContractIDQuery:
		return queryPayload{ConID: int64(q.ID), Routing: q.Routing.String()}, nil
	case contract.FIGIQuery:
		return queryPayload{FIGI: q.FIGI.String()}, nil
	default:
		return queryPayload{}, fmt.Errorf("unsupported query type %T", q)
	}
}

// replyFrame is a gateway response to a contract query.
type replyFrame struct {
	ID       int64           `json:"id"`
	Type     string          `json:"type"`
	Contract json.RawMessage `json:"contract,omitempty"`
	Error    *GatewayError   `json:"error,omitempty"`
}

// GatewayError is a failure the gateway reported for a query, e.g. an
// unknown contract ID.
type GatewayError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error %s: %s", e.Code, e.Message)
}

// Config configures a gateway client.
type Config struct {
	URL            string        // Gateway WebSocket URL (e.g. wss://localhost:5000/v1/api/ws)
	ConnectTimeout time.Duration // WebSocket handshake deadline
	PingTimeout    time.Duration // Max time without ping traffic before the connection is stale
	WriteTimeout   time.Duration // Write deadline for sends
	BufferSize     int           // Reply channel buffer size
}

// DefaultConfig returns sensible defaults for everything but the URL.
func DefaultConfig() Config {
	return Config{
		ConnectTimeout: 10 * time.Second,
		PingTimeout:    60 * time.Second,
		WriteTimeout:   5 * time.Second,
		BufferSize:     16,
	}
}
