// ABOUTME: In-memory session store for the Streamable HTTP transport
// ABOUTME: Binds a protocol conn per session; idle sessions are swept after five minutes

package mcp

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// sessionTimeout is how long a session may sit idle before the sweep
// reclaims it.
const sessionTimeout = 5 * time.Minute

// sweepInterval is how often the background sweep runs.
const sweepInterval = time.Minute

// mcpSession tracks an active MCP client session and its bound protocol conn.
type mcpSession struct {
	id           string
	conn         *serverConn
	createdAt    time.Time
	lastActivity time.Time
}

// sessionStore manages active MCP sessions (in-memory). Every session owns
// one serverConn, constructed at create time and closed exactly once on
// whichever teardown path runs first: DELETE, sweep, or shutdown.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*mcpSession
	newConn  func() *serverConn
	logger   *slog.Logger
}

func newSessionStore(logger *slog.Logger, newConn func() *serverConn) *sessionStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &sessionStore{
		sessions: make(map[string]*mcpSession),
		newConn:  newConn,
		logger:   logger,
	}
}

// getOrCreate returns the session with the given id, creating it and its
// conn if needed. Creation and lookup share one critical section so two
// concurrent POSTs with the same id resolve to one session and one conn;
// conn construction does no I/O, so holding the lock across it is fine.
func (s *sessionStore) getOrCreate(id string) (*mcpSession, bool) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		sess.lastActivity = now
		return sess, false
	}

	sess := &mcpSession{id: id, conn: s.newConn(), createdAt: now, lastActivity: now}
	s.sessions[id] = sess
	return sess, true
}

// touch refreshes the idle clock on an existing session.
func (s *sessionStore) touch(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if ok {
		sess.lastActivity = time.Now()
	}
	return ok
}

func (s *sessionStore) exists(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	return ok
}

// close removes a session and closes its conn. Returns false when the id was
// unknown, which callers treat as success: termination is idempotent, and an
// already-removed session has already had its conn closed.
func (s *sessionStore) close(id string) bool {
	s.mu.Lock()
	sess, existed := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if existed {
		s.closeConn(sess)
	}
	return existed
}

func (s *sessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// closeAll tears down every session, closing each conn best-effort.
func (s *sessionStore) closeAll() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*mcpSession)
	s.mu.Unlock()

	for _, sess := range sessions {
		s.closeConn(sess)
	}
}

// sweepOnce removes sessions idle longer than sessionTimeout as of now and
// closes their conns. A close failure is logged and the sweep continues.
// Split out from run so tests can drive the clock.
func (s *sessionStore) sweepOnce(now time.Time) int {
	s.mu.Lock()
	var expired []*mcpSession
	for id, sess := range s.sessions {
		if now.Sub(sess.lastActivity) > sessionTimeout {
			delete(s.sessions, id)
			expired = append(expired, sess)
			s.logger.Info("session expired", "session_id", id, "idle", now.Sub(sess.lastActivity))
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		s.closeConn(sess)
	}
	return len(expired)
}

func (s *sessionStore) closeConn(sess *mcpSession) {
	if err := sess.conn.Close(); err != nil {
		s.logger.Warn("closing session conn", "session_id", sess.id, "error", err)
	}
}

// run sweeps idle sessions until ctx is cancelled.
func (s *sessionStore) run(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.sweepOnce(now)
		}
	}
}
