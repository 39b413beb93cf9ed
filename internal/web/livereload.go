package web

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const liveWriteWait = 10 * time.Second

// LiveReload pushes a reload notice to connected browsers when content
// changes on disk.
type LiveReload struct {
	mu      sync.Mutex
	clients map[chan struct{}]struct{}
	log     *slog.Logger

	done      chan struct{}
	closeOnce sync.Once
}

func NewLiveReload(log *slog.Logger) *LiveReload {
	return &LiveReload{
		clients: make(map[chan struct{}]struct{}),
		log:     log,
		done:    make(chan struct{}),
	}
}

// Close disconnects every client. Hijacked connections are not closed by
// http.Server.Shutdown, so the server calls this on the way down.
func (l *LiveReload) Close() {
	l.closeOnce.Do(func() { close(l.done) })
}

// Broadcast notifies every connected client. Clients that already have a
// notice pending are skipped.
func (l *LiveReload) Broadcast() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ch := range l.clients {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Clients returns the number of connected browsers.
func (l *LiveReload) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func (l *LiveReload) register() chan struct{} {
	ch := make(chan struct{}, 1)
	l.mu.Lock()
	l.clients[ch] = struct{}{}
	l.mu.Unlock()
	return ch
}

func (l *LiveReload) unregister(ch chan struct{}) {
	l.mu.Lock()
	delete(l.clients, ch)
	l.mu.Unlock()
}

func (l *LiveReload) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		l.log.Warn("live reload upgrade failed", "error", err)
		return
	}
	defer conn.CloseNow()

	ch := l.register()
	defer l.unregister(ch)

	// Browsers never send; CloseRead handles control frames and ends ctx
	// once the peer goes away.
	ctx := conn.CloseRead(r.Context())
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.done:
			conn.Close(websocket.StatusGoingAway, "server shutting down")
			return
		case <-ch:
			writeCtx, cancel := context.WithTimeout(ctx, liveWriteWait)
			err := conn.Write(writeCtx, websocket.MessageText, []byte("reload"))
			cancel()
			if err != nil {
				l.log.Debug("live reload write failed", "error", err)
				return
			}
		}
	}
}
