package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
)

// Meta tags a subscriber connection with the viewer's identity and the
// subjects it is entitled to see.
type Meta struct {
	UserID uuid.UUID
	Role   domain.Role

	// tourist viewers: their own subject and its assigned guide
	SubjectID *uuid.UUID
	GuideID   *uuid.UUID

	// guide viewers: set of assigned subject ids
	Assigned map[uuid.UUID]struct{}
}

// Subscriber is one live fan-out target. The registry only ever touches
// this interface, so tests can substitute failing connections.
type Subscriber interface {
	ID() string
	Meta() Meta
	Send(payload any) error
	Close()
}

// Conn wraps a websocket connection with serialized, deadline-bounded
// writes. A slow peer fails its send and is dropped, never waited on.
type Conn struct {
	id           string
	sock         *websocket.Conn
	meta         Meta
	writeTimeout time.Duration

	mu sync.Mutex
}

func NewConn(sock *websocket.Conn, meta Meta, writeTimeout time.Duration) *Conn {
	return &Conn{
		id:           uuid.NewString(),
		sock:         sock,
		meta:         meta,
		writeTimeout: writeTimeout,
	}
}

func (c *Conn) ID() string { return c.id }

func (c *Conn) Meta() Meta { return c.meta }

func (c *Conn) Send(payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.sock.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
		return err
	}
	return c.sock.WriteMessage(websocket.TextMessage, b)
}

func (c *Conn) Close() {
	_ = c.sock.Close()
}
