package connection

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/7jrxt42BxFZo4iAnN4CX/ibkr-go/internal/contract"
	"github.com/7jrxt42BxFZo4iAnN4CX/ibkr-go/internal/version"
)

// Client is a single WebSocket connection to the broker gateway. It
// satisfies contract.Conn: queries go out as contract_query frames, and
// replies come back in request order.
type Client struct {
	cfg     Config
	logger  *slog.Logger
	session uuid.UUID

	conn *websocket.Conn

	// Incoming reply and error channels
	replies chan replyFrame
	errs    chan error
	done    chan struct{}

	// Write serialization
	writeMu sync.Mutex

	// Request ID correlation
	nextID atomic.Int64

	// State
	mu         sync.RWMutex
	connected  bool
	lastPingAt time.Time
	closed     bool
}

var _ contract.Conn = (*Client)(nil)

// New creates a gateway client with a fresh session ID.
func New(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		cfg:     cfg,
		logger:  logger,
		session: uuid.New(),
		replies: make(chan replyFrame, cfg.BufferSize),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
}

// Session returns the client's session ID.
func (c *Client) Session() uuid.UUID { return c.session }

// Connect dials the gateway, announces the session, and starts the read and
// heartbeat loops.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrAlreadyClosed
	}
	c.mu.Unlock()

	dialer := websocket.Dialer{
		HandshakeTimeout: c.cfg.ConnectTimeout,
	}

	conn, _, err := dialer.DialContext(ctx, c.cfg.URL, nil)
	if err != nil {
		return fmt.Errorf("dial gateway: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.lastPingAt = time.Now()
	c.mu.Unlock()

	// Server pings keep the connection alive; answer with pongs.
	conn.SetPingHandler(func(data string) error {
		c.mu.Lock()
		c.lastPingAt = time.Now()
		c.mu.Unlock()

		return conn.WriteControl(
			websocket.PongMessage,
			[]byte(data),
			time.Now().Add(time.Second),
		)
	})

	conn.SetPongHandler(func(string) error {
		c.mu.Lock()
		c.lastPingAt = time.Now()
		c.mu.Unlock()
		return nil
	})

	hello := helloFrame{
		Type:    frameHello,
		Session: c.session.String(),
		Version: version.Version,
	}
	if err := c.writeFrame(hello); err != nil {
		conn.Close()
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
		return fmt.Errorf("send hello: %w", err)
	}

	go c.readLoop()
	go c.heartbeatLoop()

	c.logger.Debug("gateway connected", "url", c.cfg.URL, "session", c.session)

	return nil
}

// Close gracefully closes the connection. It is safe to call twice.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.connected = false
	c.mu.Unlock()

	close(c.done)

	if c.conn != nil {
		c.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		return c.conn.Close()
	}

	return nil
}

// IsConnected returns the current connection state.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// SendContractQuery serializes q and writes it to the gateway.
func (c *Client) SendContractQuery(ctx context.Context, q contract.Query) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.RLock()
	if !c.connected {
		c.mu.RUnlock()
		return ErrNotConnected
	}
	c.mu.RUnlock()

	payload, err := encodeQuery(q)
	if err != nil {
		return err
	}

	frame := queryFrame{
		ID:    c.nextID.Add(1),
		Type:  frameContractQuery,
		Query: payload,
	}
	return c.writeFrame(frame)
}

// RecvContract blocks until the next contract reply arrives and decodes it.
// A gateway-reported failure comes back as a *GatewayError.
func (c *Client) RecvContract(ctx context.Context) (contract.Contract, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.done:
		return nil, ErrAlreadyClosed
	case err := <-c.errs:
		return nil, err
	case reply := <-c.replies:
		switch reply.Type {
		case frameError:
			if reply.Error == nil {
				return nil, fmt.Errorf("gateway error frame %d without detail", reply.ID)
			}
			return nil, reply.Error
		case frameContract:
			ct, err := contract.UnmarshalContract(reply.Contract)
			if err != nil {
				return nil, fmt.Errorf("decode contract reply %d: %w", reply.ID, err)
			}
			return ct, nil
		default:
			return nil, fmt.Errorf("unexpected frame type %q", reply.Type)
		}
	}
}

func (c *Client) writeFrame(frame any) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// readLoop reads frames from the WebSocket and queues replies.
func (c *Client) readLoop() {
	defer func() {
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
	}()

	for {
		select {
		case <-c.done:
			return
		default:
		}

		_, data, err := c.conn.ReadMessage()
		if err != nil {
			// Ignore errors after Close() is called
			select {
			case <-c.done:
				return
			default:
				select {
				case c.errs <- err:
				default:
				}
				return
			}
		}

		var reply replyFrame
		if err := json.Unmarshal(data, &reply); err != nil {
			c.logger.Warn("dropping malformed frame", "error", err)
			continue
		}

		select {
		case c.replies <- reply:
		case <-c.done:
			return
		}
	}
}

// heartbeatLoop pings the gateway and watches for stale connections.
func (c *Client) heartbeatLoop() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.mu.RLock()
			conn := c.conn
			lastPing := c.lastPingAt
			c.mu.RUnlock()

			if conn != nil {
				deadline := time.Now().Add(c.cfg.WriteTimeout)
				if err := conn.WriteControl(websocket.PingMessage, []byte("keepalive"), deadline); err != nil {
					c.logger.Debug("failed to send ping", "error", err)
				}
			}

			if time.Since(lastPing) > c.cfg.PingTimeout {
				c.logger.Warn("no ping received, connection stale",
					"last_ping", lastPing,
					"timeout", c.cfg.PingTimeout,
				)
				select {
				case c.errs <- ErrStaleConnection:
				default:
				}
				return
			}
		}
	}
}
