package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/uniqid/internal/errors"
	"github.com/vango-dev/uniqid/pkg/middleware"
	"github.com/vango-dev/uniqid/pkg/protocol"
	"github.com/vango-dev/uniqid/pkg/routepath"
	"github.com/vango-dev/uniqid/pkg/uid"
)

// HandleLive upgrades to a websocket and runs one live session:
// handshake, resync of the requested page, then a read loop that answers
// further ClientHello frames with another resync.
func (s *Server) HandleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	conn.SetReadLimit(s.config.MaxMessageSize)
	conn.SetReadDeadline(time.Now().Add(s.config.HandshakeTimeout))

	_, msg, err := conn.ReadMessage()
	if err != nil {
		s.logger.Error("handshake read failed", "error", err)
		conn.Close()
		return
	}

	hello, status, err := decodeHello(msg)
	if err != nil {
		s.logger.Warn("handshake rejected", "status", status.String(), "error", err)
		s.sendHandshakeError(conn, status, err)
		conn.Close()
		return
	}

	path := pagePath(hello.Path, r)
	page, ok := s.page(path)
	if !ok {
		err := errors.New("E062").WithDetail("No page registered for " + path)
		s.logger.Warn("handshake rejected", "path", path, "error", err)
		s.sendHandshakeError(conn, protocol.HandshakeNotFound, err)
		conn.Close()
		return
	}

	id := hello.SessionID
	if id == "" {
		id = uuid.NewString()
	}
	sess := s.newSession(id, path, conn)
	if !s.sessions.add(sess) {
		sess = s.newSession(uuid.NewString(), path, conn)
		s.sessions.add(sess)
	}
	defer s.sessions.remove(sess.ID)

	if s.metrics != nil {
		s.metrics.SessionOpened()
		defer s.metrics.SessionClosed()
	}

	hi := &protocol.ServerHello{Status: protocol.HandshakeOK, SessionID: sess.ID}
	if err := sess.sendFrame(protocol.FrameHandshake, 0, protocol.EncodeServerHello(hi)); err != nil {
		sess.logger.Error("server hello failed", "error", err)
		conn.Close()
		return
	}
	sess.logger.Info("session started", "path", path)

	if err := s.resync(context.Background(), sess, page); err != nil {
		sess.logger.Error("resync failed", "error", err)
		s.sendError(sess, err)
		sess.close(websocket.CloseInternalServerErr, "resync failed")
		return
	}

	s.readLoop(sess)
}

// resync builds page with the session's generator, hydrates it and sends
// the forced writes.
func (s *Server) resync(ctx context.Context, sess *Session, page Page) error {
	ctx = uid.WithGenerator(ctx, sess.Generator)
	ctx, span := s.tracing.StartHydrate(ctx, sess.Path, sess.ID)

	res, err := sess.hydrator.Hydrate(ctx, page.Body(ctx))
	if err != nil {
		middleware.EndSpan(span, err)
		return err
	}

	patches, dropped := protocol.FromVDOM(res.Patches)
	sent, err := sess.sendPatches(patches)
	middleware.EndSpan(span, err,
		attribute.Int("uniqid.mounted", res.Mounted),
		attribute.Int("uniqid.skipped", res.Skipped),
		attribute.Int("uniqid.patches", sent),
	)

	if s.metrics != nil {
		s.metrics.ObserveHydrate(res.Mounted, res.Skipped)
		s.metrics.PatchesSent(sent)
	}
	sess.logger.Debug("resync",
		"mounted", res.Mounted,
		"patches", sent,
		"dropped", dropped,
		"generator_counter", sess.Generator.Current(),
	)
	return err
}

// readLoop reads frames until the client goes away.
func (s *Server) readLoop(sess *Session) {
	defer sess.close(websocket.CloseNormalClosure, "")

	for {
		sess.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		_, msg, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				sess.logger.Error("read error", "error", err)
			}
			sess.logger.Info("session ended")
			return
		}

		hello, _, err := decodeHello(msg)
		if err != nil {
			sess.logger.Warn("frame ignored", "error", err)
			continue
		}

		path := pagePath(hello.Path, nil)
		page, ok := s.page(path)
		if !ok {
			s.sendError(sess, errors.New("E062").WithDetail("No page registered for "+path))
			continue
		}
		sess.Path = path
		if err := s.resync(context.Background(), sess, page); err != nil {
			sess.logger.Error("resync failed", "error", err)
			s.sendError(sess, err)
			return
		}
	}
}

// decodeHello parses a handshake frame into a ClientHello. The returned
// status is the one to report when err is non-nil.
func decodeHello(msg []byte) (*protocol.ClientHello, protocol.HandshakeStatus, error) {
	frame, err := protocol.DecodeFrame(msg)
	if err != nil {
		return nil, protocol.HandshakeInvalidFormat, errors.New("E061").Wrap(err)
	}
	if frame.Type != protocol.FrameHandshake {
		return nil, protocol.HandshakeInvalidFormat, errors.New("E060").
			WithDetail("Expected a handshake frame, got " + frame.Type.String())
	}
	hello, err := protocol.DecodeClientHello(frame.Payload)
	if err != nil {
		return nil, protocol.HandshakeInvalidFormat, errors.New("E061").Wrap(err)
	}
	if !hello.Version.Compatible() {
		return nil, protocol.HandshakeVersionMismatch, errors.New("E060").
			WithDetail("Client protocol version is not supported")
	}
	return hello, protocol.HandshakeOK, nil
}

// pagePath resolves the page path from the hello, falling back to the
// ?path= query of the upgrade request. A path that cannot be canonicalized
// is returned as given and matches no page.
func pagePath(p string, r *http.Request) string {
	if p == "" && r != nil {
		p = r.URL.Query().Get("path")
	}
	if c, err := routepath.Canonicalize(p); err == nil {
		return c
	}
	return p
}

// sendHandshakeError sends a failed ServerHello followed by an error frame.
func (s *Server) sendHandshakeError(conn *websocket.Conn, status protocol.HandshakeStatus, cause error) {
	conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	hello := protocol.EncodeServerHello(&protocol.ServerHello{Status: status})
	if frame, err := protocol.NewFrame(protocol.FrameHandshake, hello); err == nil {
		conn.WriteMessage(websocket.BinaryMessage, frame.Encode())
	}
	if frame, err := protocol.NewFrame(protocol.FrameError, protocol.EncodeErrorMessage(errorMessage(cause, true))); err == nil {
		conn.WriteMessage(websocket.BinaryMessage, frame.Encode())
	}
}

// sendError reports err to the client without closing the session.
func (s *Server) sendError(sess *Session, err error) {
	if werr := sess.sendFrame(protocol.FrameError, 0, protocol.EncodeErrorMessage(errorMessage(err, false))); werr != nil {
		sess.logger.Debug("error frame not sent", "error", werr)
	}
}

func errorMessage(err error, fatal bool) *protocol.ErrorMessage {
	em := &protocol.ErrorMessage{Message: err.Error(), Fatal: fatal}
	var ue *errors.UniqidError
	if stderrors.As(err, &ue) {
		em.Code = ue.Code
		em.Message = ue.Message
		if ue.Detail != "" {
			em.Message += ": " + ue.Detail
		}
	}
	return em
}
