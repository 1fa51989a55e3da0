package http

import (
	"bufio"
	"bytes"
	"context"
	"net"
	"net/textproto"
	"strconv"
	"strings"
	"sync"
)

// maxRecordedBytes caps how much of a connection's inbound stream is kept.
const maxRecordedBytes = 1 << 20

type recorderKey struct{}

// wireRecorder keeps the raw bytes read from the most recently dialed
// connection of one request, so header names can be listed in the order
// the server sent them.
type wireRecorder struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func withWireRecorder(ctx context.Context) (context.Context, *wireRecorder) {
	rec := &wireRecorder{}
	return context.WithValue(ctx, recorderKey{}, rec), rec
}

func wireRecorderFrom(ctx context.Context) *wireRecorder {
	rec, _ := ctx.Value(recorderKey{}).(*wireRecorder)
	return rec
}

// attach wraps conn so its reads are recorded. Every dial starts a fresh
// recording; redirects dial again and the last hop wins.
func (w *wireRecorder) attach(conn net.Conn) net.Conn {
	w.mu.Lock()
	w.buf.Reset()
	w.mu.Unlock()
	return &recordingConn{Conn: conn, rec: w}
}

func (w *wireRecorder) write(p []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()
	room := maxRecordedBytes - w.buf.Len()
	if room <= 0 {
		return
	}
	if len(p) > room {
		p = p[:room]
	}
	w.buf.Write(p)
}

// headerOrder returns the canonical header names of the final response in
// first-seen order. Interim 1xx responses are skipped. It returns nil when
// the recording does not start with an HTTP/1.x response, e.g. behind a
// TLS-tunnelling proxy.
func (w *wireRecorder) headerOrder() []string {
	w.mu.Lock()
	data := append([]byte(nil), w.buf.Bytes()...)
	w.mu.Unlock()

	tp := textproto.NewReader(bufio.NewReader(bytes.NewReader(data)))
	for {
		status, err := tp.ReadLine()
		if err != nil {
			return nil
		}
		code, ok := statusCode(status)
		if !ok {
			return nil
		}

		var names []string
		seen := map[string]bool{}
		for {
			line, err := tp.ReadLine()
			if err != nil {
				return nil
			}
			if line == "" {
				break
			}
			// obs-fold continuation
			if line[0] == ' ' || line[0] == '\t' {
				continue
			}
			i := strings.IndexByte(line, ':')
			if i <= 0 {
				continue
			}
			name := textproto.CanonicalMIMEHeaderKey(strings.TrimSpace(line[:i]))
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}

		if code >= 100 && code < 200 && code != 101 {
			continue
		}
		return names
	}
}

func statusCode(line string) (int, bool) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 || !strings.HasPrefix(parts[0], "HTTP/") {
		return 0, false
	}
	code, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return code, true
}

type recordingConn struct {
	net.Conn
	rec *wireRecorder
}

func (c *recordingConn) Read(p []byte) (int, error) {
	n, err := c.Conn.Read(p)
	if n > 0 {
		c.rec.write(p[:n])
	}
	return n, err
}
