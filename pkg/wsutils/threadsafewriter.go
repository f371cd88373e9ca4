package wsutils

import (
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// ThreadSafeWriter serializes writes to a websocket connection. Reads are
// left to a single owner goroutine, as gorilla/websocket requires.
type ThreadSafeWriter struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (t *ThreadSafeWriter) WriteJSON(val any) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return t.conn.WriteJSON(val)
}

func (t *ThreadSafeWriter) ping() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// Drain blocks until the peer goes away, discarding anything it sends and
// keeping the connection alive with pings.
func (t *ThreadSafeWriter) Drain() error {
	done := make(chan struct{})
	defer close(done)

	_ = t.conn.SetReadDeadline(time.Now().Add(pongWait))
	t.conn.SetPongHandler(func(string) error {
		return t.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := t.ping(); err != nil {
					return
				}
			}
		}
	}()

	for {
		if _, _, err := t.conn.NextReader(); err != nil {
			return err
		}
	}
}

func (t *ThreadSafeWriter) RemoteAddr() net.Addr {
	return t.conn.RemoteAddr()
}

func (t *ThreadSafeWriter) Close() error {
	return t.conn.Close()
}

func NewThreadSafeWriter(conn *websocket.Conn) *ThreadSafeWriter {
	return &ThreadSafeWriter{
		conn: conn,
	}
}
