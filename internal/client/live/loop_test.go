package live

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/liveclient/internal/client/conn"
	"github.com/iudanet/liveclient/internal/client/journal"
	"github.com/iudanet/liveclient/internal/client/storage"
	"github.com/iudanet/liveclient/internal/client/wire"
	"github.com/iudanet/liveclient/internal/logging"
	"github.com/iudanet/liveclient/internal/models"
	"github.com/iudanet/liveclient/pkg/api"
)

// scriptConn отдает заданные фреймы, затем io.EOF
type scriptConn struct {
	frames []string
	writes []string
	mu     sync.Mutex
}

func (c *scriptConn) ReadMessage() (int, []byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.frames) == 0 {
		return 0, nil, io.EOF
	}
	f := c.frames[0]
	c.frames = c.frames[1:]
	return conn.TextMessage, []byte(f), nil
}

func (c *scriptConn) WriteMessage(typ int, data []byte) error {
	c.mu.Lock()
	c.writes = append(c.writes, string(data))
	c.mu.Unlock()
	return nil
}

func (c *scriptConn) Close() error { return nil }

func (c *scriptConn) written() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.writes...)
}

// dialerFor возвращает соединения по очереди, затем ошибку
func dialerFor(conns ...conn.Conn) *conn.DialerMock {
	var mu sync.Mutex
	return &conn.DialerMock{
		DialContextFunc: func(context.Context, string, http.Header) (conn.Conn, error) {
			mu.Lock()
			defer mu.Unlock()
			if len(conns) == 0 {
				return nil, errors.New("connection refused")
			}
			c := conns[0]
			conns = conns[1:]
			return c, nil
		},
	}
}

func TestClient_Run_EndToEnd(t *testing.T) {
	ctx := context.Background()

	first := &scriptConn{frames: []string{
		"s||sess-9",
		"d|c|2||a|" + wire.EncodeAttribute("data-hlive-on", "h1|click,h8|diffapply"),
	}}
	second := &scriptConn{frames: []string{"d|u|3|0|t|" + encode("5")}}
	dialer := dialerFor(first, second)

	j, err := journal.New(ctx, filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer j.Close()

	c := New(Options{URL: testURL, ReconnectLimit: 1, Logger: logging.Discard()}, Deps{
		Dialer:  dialer,
		Journal: j,
	})
	require.NoError(t, c.LoadPage(ctx, strings.NewReader(testPage)))

	err = c.Run(ctx)
	assert.ErrorIs(t, err, conn.ErrConnectionLost)

	// первый фрейм задал session ID, второй дозвон его использует
	calls := dialer.DialContextCalls()
	require.Len(t, calls, 3)
	assert.Contains(t, calls[0].URL, "hlive=1")
	assert.Contains(t, calls[0].URL, "hhash=abc")
	assert.Contains(t, calls[1].URL, "hlive=sess-9")

	// ответ на diffapply ушел до закрытия первого соединения
	require.Len(t, first.written(), 1)
	assert.JSONEq(t, `{"t":"e","i":"h8","d":{"value":""}}`, first.written()[0])
	require.Len(t, second.written(), 1)

	assert.Equal(t, "5", c.FindComponent("3").TextContent())
	assert.True(t, c.Closed())
	assert.True(t, c.Document().OverlayShown())

	// после окончательного закрытия фреймы не принимаются
	assert.ErrorIs(t, c.ProcessBatch(ctx, "d|u|3|0|t|"+encode("6")), conn.ErrConnectionLost)

	run, err := j.LatestRun(ctx, testURL)
	require.NoError(t, err)
	frames, err := j.Frames(ctx, run.ID)
	require.NoError(t, err)

	var dirs []models.Direction
	for _, f := range frames {
		dirs = append(dirs, f.Direction)
	}
	assert.Equal(t, []models.Direction{
		models.DirectionInbound,
		models.DirectionInbound,
		models.DirectionOutbound,
		models.DirectionInbound,
		models.DirectionOutbound,
	}, dirs)
	assert.Contains(t, run.Page, "Counter")
}

func TestClient_Run_DoAndCancel(t *testing.T) {
	f := newFixture(t, Options{}, Deps{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.client.Run(ctx) }()

	err := f.client.Do(ctx, func(c *Client) {
		c.Click(c.FindByID("inc"))
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"h1"}, handlerIDs(f.sent()))
	assert.NotEmpty(t, f.conn.FlushCalls())

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
}

func TestClient_Do_NotRunning(t *testing.T) {
	f := newFixture(t, Options{}, Deps{})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := f.client.Do(ctx, func(*Client) {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_Load(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/counter" {
			http.NotFound(w, r)
			return
		}
		auth = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, testPage)
	}))
	defer srv.Close()

	token := &staticToken{token: "jwt"}
	c := New(Options{URL: srv.URL + "/counter", Logger: logging.Discard()}, Deps{Token: token})
	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, "Bearer jwt", auth)
	assert.Equal(t, "Counter", c.Document().Title())

	missing := New(Options{URL: srv.URL + "/nope", Logger: logging.Discard()}, Deps{})
	assert.ErrorIs(t, missing.Load(context.Background()), ErrPageStatus)
}

type staticToken struct {
	token string
}

func (s *staticToken) Token(context.Context) (string, error) { return s.token, nil }

func TestClient_ResumeSession(t *testing.T) {
	tests := []struct {
		stored *models.PageState
		getErr error
		name   string
		resume bool
		want   string
	}{
		{
			name:   "same hash",
			stored: &models.PageState{SessionID: "old", Hash: "abc"},
			resume: true,
			want:   "old",
		},
		{
			name:   "page changed",
			stored: &models.PageState{SessionID: "old", Hash: "other"},
			resume: true,
			want:   conn.InitialSessionID,
		},
		{
			name:   "resume disabled",
			stored: &models.PageState{SessionID: "old", Hash: "abc"},
			want:   conn.InitialSessionID,
		},
		{
			name:   "nothing stored",
			getErr: storage.ErrPageStateNotFound,
			resume: true,
			want:   conn.InitialSessionID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &storage.StateStorageMock{
				GetPageStateFunc: func(ctx context.Context, url string) (*models.PageState, error) {
					return tt.stored, tt.getErr
				},
			}

			c := New(Options{URL: testURL, ResumeSession: tt.resume, Logger: logging.Discard()}, Deps{
				Dialer: dialerFor(),
				State:  state,
			})
			require.NoError(t, c.LoadPage(context.Background(), strings.NewReader(testPage)))

			assert.Equal(t, tt.want, c.Connection().SessionID())
		})
	}
}

func TestClient_ReportForwardsWhenOpen(t *testing.T) {
	f := newFixture(t, Options{}, Deps{})

	f.client.report("Something failed", errors.New("boom"))

	msgs := f.sent()
	require.Len(t, msgs, 1)
	assert.Equal(t, api.MessageTypeLog, msgs[0].Type)
	assert.Equal(t, "Something failed: boom", msgs[0].Data["m"])
}
