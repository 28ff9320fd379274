package server

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/uniqid/pkg/hydrate"
	"github.com/vango-dev/uniqid/pkg/protocol"
	"github.com/vango-dev/uniqid/pkg/uid"
)

// Session is one live connection. It owns the client-side generator, so
// identifiers issued during its resyncs never repeat within the session.
type Session struct {
	ID        string
	Path      string
	Generator *uid.Generator
	Created   time.Time

	conn     *websocket.Conn
	hydrator *hydrate.Hydrator
	logger   *slog.Logger

	writeMu      sync.Mutex
	writeTimeout time.Duration
	seq          uint64

	closeOnce sync.Once
}

func (s *Server) newSession(id, path string, conn *websocket.Conn) *Session {
	gen := uid.New(s.generatorOptions("client")...)
	logger := s.logger.With("session_id", id)
	return &Session{
		ID:           id,
		Path:         path,
		Generator:    gen,
		Created:      time.Now(),
		conn:         conn,
		hydrator:     hydrate.New(hydrate.WithGenerator(gen), hydrate.WithLogger(logger)),
		logger:       logger,
		writeTimeout: s.config.WriteTimeout,
	}
}

// sendFrame writes one frame.
func (sess *Session) sendFrame(ft protocol.FrameType, flags protocol.FrameFlags, payload []byte) error {
	frame, err := protocol.NewFrame(ft, payload)
	if err != nil {
		return err
	}
	frame.Flags = flags

	sess.writeMu.Lock()
	defer sess.writeMu.Unlock()
	sess.conn.SetWriteDeadline(time.Now().Add(sess.writeTimeout))
	return sess.conn.WriteMessage(websocket.BinaryMessage, frame.Encode())
}

// sendPatches writes patches in as many frames as needed. The last frame
// carries FlagFinal. It returns the number of patches written.
func (sess *Session) sendPatches(patches []protocol.Patch) (int, error) {
	sess.writeMu.Lock()
	first := sess.seq + 1
	sess.writeMu.Unlock()

	frames, err := protocol.SplitPatches(first, patches, protocol.MaxPayloadSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for i, pf := range frames {
		var flags protocol.FrameFlags
		if i == len(frames)-1 {
			flags = protocol.FlagFinal
		}
		if err := sess.sendFrame(protocol.FramePatches, flags, protocol.EncodePatches(pf)); err != nil {
			return sent, err
		}
		sess.writeMu.Lock()
		sess.seq = pf.Seq
		sess.writeMu.Unlock()
		sent += len(pf.Patches)
	}
	return sent, nil
}

// close sends a close message and closes the connection once.
func (sess *Session) close(code int, reason string) {
	sess.closeOnce.Do(func() {
		sess.writeMu.Lock()
		sess.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(code, reason),
			time.Now().Add(sess.writeTimeout))
		sess.writeMu.Unlock()
		sess.conn.Close()
	})
}

// sessionRegistry tracks open sessions by ID.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]*Session)}
}

// add registers sess. It reports false if the ID is already taken.
func (r *sessionRegistry) add(sess *Session) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.sessions[sess.ID]; taken {
		return false
	}
	r.sessions[sess.ID] = sess
	return true
}

func (r *sessionRegistry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *sessionRegistry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *sessionRegistry) closeAll() {
	r.mu.Lock()
	open := make([]*Session, 0, len(r.sessions))
	for _, sess := range r.sessions {
		open = append(open, sess)
	}
	r.mu.Unlock()

	for _, sess := range open {
		sess.close(websocket.CloseGoingAway, "server shutdown")
	}
}
