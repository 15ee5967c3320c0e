package osc

import (
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"
)

// Handler is an interface for message handlers. Every handler
// implementation for an OSC message must implement this interface.
type Handler interface {
	HandleMessage(msg *Message)
}

// HandlerFunc implements the Handler interface. Type definition for an
// OSC handler function.
type HandlerFunc func(msg *Message)

// HandleMessage calls itself with the given OSC Message. Implements the
// Handler interface.
func (f HandlerFunc) HandleMessage(msg *Message) {
	f(msg)
}

// Listener receives OSC datagrams on a UDP port and hands every decoded
// message to its Handler, in arrival order. A single worker goroutine
// reads and fully processes one datagram at a time, so no two handler
// invocations ever interleave.
//
// The zero port listens on an ephemeral port; Addr reports the bound
// address. Configuration fields must be set before Start.
type Listener struct {
	// Handler receives each decoded message. Required.
	Handler Handler

	// Log receives lifecycle notifications and per packet diagnostics.
	// Defaults to slog.Default.
	Log *slog.Logger

	// ReadTimeout bounds each blocking read so the worker can observe a
	// pending Stop. It does not limit how long the Listener waits for
	// traffic overall.
	ReadTimeout time.Duration

	mu   sync.Mutex
	port int
	conn net.PacketConn
	done chan struct{}
	wg   sync.WaitGroup
}

// NewListener returns a Listener for the given UDP port. The Listener
// does not bind until Start is called.
func NewListener(port int, handler Handler) *Listener {
	return &Listener{
		Handler:     handler,
		Log:         slog.Default(),
		ReadTimeout: time.Second,
		port:        port,
	}
}

// Start binds the configured UDP port and starts the worker. Bind
// failures are returned to the caller; a Listener that is already
// running is left alone.
func (l *Listener) Start() error {
	if l.Handler == nil {
		return fmt.Errorf("osc: Listener has no Handler")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.conn != nil {
		return nil
	}

	conn, err := net.ListenPacket("udp", fmt.Sprintf(":%d", l.port))
	if err != nil {
		return fmt.Errorf("osc: listen on port %d: %w", l.port, err)
	}

	l.conn = conn
	l.done = make(chan struct{})
	l.wg.Add(1)
	go l.serve(conn, l.done)

	l.Log.Info("osc listening started", "addr", conn.LocalAddr())
	return nil
}

// Stop releases the socket and waits for the worker to exit. A datagram
// already being processed is handled to completion first. Stopping a
// Listener that is not running is a no-op.
func (l *Listener) Stop() error {
	l.mu.Lock()
	if l.conn == nil {
		l.mu.Unlock()
		return nil
	}
	conn := l.conn
	close(l.done)
	l.conn = nil
	l.mu.Unlock()

	err := conn.Close()
	l.wg.Wait()
	l.Log.Info("osc listening stopped", "port", l.port)
	return err
}

// SetPort reconfigures the UDP port. When the Listener is running it is
// stopped and restarted on the new port; in-flight work finishes first.
func (l *Listener) SetPort(port int) error {
	l.mu.Lock()
	active := l.conn != nil
	l.port = port
	l.mu.Unlock()

	if !active {
		return nil
	}
	if err := l.Stop(); err != nil {
		return err
	}
	return l.Start()
}

// Port returns the configured UDP port.
func (l *Listener) Port() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.port
}

// Addr returns the bound address, or nil when the Listener is stopped.
func (l *Listener) Addr() net.Addr {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.conn == nil {
		return nil
	}
	return l.conn.LocalAddr()
}

// serve reads one datagram at a time and dispatches every message it
// decodes before reading the next. Exits when the Listener is stopped or
// the socket fails permanently.
func (l *Listener) serve(conn net.PacketConn, done chan struct{}) {
	defer l.wg.Done()

	buf := make([]byte, MaxPacketSize)
	var tempDelay time.Duration
	for {
		if l.ReadTimeout != 0 {
			if err := conn.SetReadDeadline(time.Now().Add(l.ReadTimeout)); err != nil {
				l.Log.Error("osc set read deadline failed", "err", err)
				return
			}
		}

		n, addr, err := conn.ReadFrom(buf)
		if err != nil {
			select {
			case <-done:
				return
			default:
			}
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			if ne, ok := err.(net.Error); ok && ne.Temporary() {
				// Attempt exponential back-off during temporary network problems.
				if tempDelay == 0 {
					tempDelay = 5 * time.Millisecond
				} else {
					tempDelay *= 2
				}
				if max := 1 * time.Second; tempDelay > max {
					tempDelay = max
				}
				time.Sleep(tempDelay)
				continue
			}
			l.Log.Error("osc receive failed", "err", err)
			return
		}
		tempDelay = 0

		msgs, err := ParsePacket(buf[:n])
		if err != nil {
			l.Log.Debug("osc packet scan stopped early", "from", addr, "err", err)
		}
		for _, m := range msgs {
			l.Handler.HandleMessage(m)
		}
	}
}
