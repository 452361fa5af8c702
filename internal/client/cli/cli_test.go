package cli

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/liveclient/internal/client/auth"
	"github.com/iudanet/liveclient/internal/client/conn"
	"github.com/iudanet/liveclient/internal/client/iocli"
	"github.com/iudanet/liveclient/internal/client/live"
	"github.com/iudanet/liveclient/internal/config"
)

const testPage = `<!DOCTYPE html><html><head><title>Counter</title></head>` +
	`<body data-hlive-hash="abc">` +
	`<div data-hlive-id="1">` +
	`<button data-hlive-id="2" data-hlive-on="h1|click">Inc</button>` +
	`<span data-hlive-id="3">0</span>` +
	`</div></body></html>`

type testCli struct {
	cli *Cli
	cfg *config.Config
	out *bytes.Buffer
}

func newTestCli(t *testing.T, input string, opts ...Option) *testCli {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.StatePath = filepath.Join(dir, "state", "state.db")
	cfg.JournalPath = filepath.Join(dir, "journal.db")

	out := &bytes.Buffer{}
	c := New(cfg, iocli.NewStream(strings.NewReader(input), out), nil, opts...)

	return &testCli{cli: c, cfg: cfg, out: out}
}

func signed(t *testing.T, exp time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// scriptConn отдает заготовленные фреймы, затем EOF
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

func (c *scriptConn) WriteMessage(_ int, data []byte) error {
	c.mu.Lock()
	c.writes = append(c.writes, string(data))
	c.mu.Unlock()
	return nil
}

func (c *scriptConn) Close() error { return nil }

func encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestReadToken(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token.txt")
	require.NoError(t, os.WriteFile(tokenFile, []byte("from-file\n"), 0600))

	tests := []struct {
		name    string
		env     string
		input   string
		in      TokenInput
		want    string
		wantErr error
	}{
		{name: "env имеет приоритет", env: "from-env", in: TokenInput{FromFile: tokenFile, FromArgs: "from-args"}, want: "from-env"},
		{name: "файл важнее аргумента", in: TokenInput{FromFile: tokenFile, FromArgs: "from-args"}, want: "from-file"},
		{name: "аргумент", in: TokenInput{FromArgs: " from-args "}, want: "from-args"},
		{name: "ввод с консоли", input: "from-prompt\n", want: "from-prompt"},
		{name: "пустой ввод", input: "  \n", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvToken, tt.env)
			tc := newTestCli(t, tt.input)

			got, err := tc.cli.readToken(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadToken_MissingFile(t *testing.T) {
	t.Setenv(EnvToken, "")
	tc := newTestCli(t, "")

	_, err := tc.cli.readToken(TokenInput{FromFile: filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}

func TestRunTokenSet_And_Status(t *testing.T) {
	t.Setenv(EnvToken, "")
	ctx := context.Background()
	tc := newTestCli(t, "")

	token := signed(t, time.Now().Add(time.Hour))
	require.NoError(t, tc.cli.RunTokenSet(ctx, TokenInput{FromArgs: token}))
	assert.Contains(t, tc.out.String(), "Token saved")

	tc.out.Reset()
	require.NoError(t, tc.cli.RunStatus(ctx))
	assert.Contains(t, tc.out.String(), "Node ID: ")
	assert.Contains(t, tc.out.String(), "remaining")

	require.NoError(t, tc.cli.RunTokenClear(ctx))

	tc.out.Reset()
	require.NoError(t, tc.cli.RunStatus(ctx))
	assert.Contains(t, tc.out.String(), "Token: not set")
}

func TestRunTokenSet_Expired(t *testing.T) {
	t.Setenv(EnvToken, "")
	tc := newTestCli(t, "")

	err := tc.cli.RunTokenSet(context.Background(), TokenInput{FromArgs: signed(t, time.Now().Add(-time.Hour))})
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestRunStatus_OpaqueToken(t *testing.T) {
	t.Setenv(EnvToken, "")
	ctx := context.Background()
	tc := newTestCli(t, "")
	tc.cfg.URL = "http://localhost:3000/"

	require.NoError(t, tc.cli.RunTokenSet(ctx, TokenInput{FromArgs: "opaque"}))

	tc.out.Reset()
	require.NoError(t, tc.cli.RunStatus(ctx))
	assert.Contains(t, tc.out.String(), "Page: http://localhost:3000/")
	assert.Contains(t, tc.out.String(), "Session: none")
	assert.Contains(t, tc.out.String(), "Token: set")
}

func TestRunConnect_NoURL(t *testing.T) {
	tc := newTestCli(t, "")
	assert.ErrorIs(t, tc.cli.RunConnect(context.Background()), ErrNoURL)
}

func TestRunReplay_NoJournal(t *testing.T) {
	tc := newTestCli(t, "")
	tc.cfg.JournalPath = ""
	assert.ErrorIs(t, tc.cli.RunReplay(context.Background(), ""), ErrNoJournal)
}

// Полный цикл: connect пишет журнал и session ID, status и replay их читают
func TestRunConnect_ThenReplay(t *testing.T) {
	t.Setenv(EnvToken, "")
	ctx := context.Background()

	var (
		mu         sync.Mutex
		authHeader string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		authHeader = r.Header.Get("Authorization")
		mu.Unlock()
		_, _ = w.Write([]byte(testPage))
	}))
	defer srv.Close()

	ws := &scriptConn{frames: []string{
		"s||sess-1",
		"d|u|3|0|t|" + encode("7"),
	}}
	dialer := &conn.DialerMock{
		DialContextFunc: func(context.Context, string, http.Header) (conn.Conn, error) {
			return ws, nil
		},
	}

	tc := newTestCli(t, "", WithDialer(dialer), WithHTTPClient(srv.Client()))
	tc.cfg.URL = srv.URL + "/counter"
	tc.cfg.ReconnectLimit = 0

	require.NoError(t, tc.cli.RunTokenSet(ctx, TokenInput{FromArgs: "opaque"}))

	err := tc.cli.RunConnect(ctx)
	assert.ErrorIs(t, err, conn.ErrConnectionLost)
	mu.Lock()
	assert.Equal(t, "Bearer opaque", authHeader)
	mu.Unlock()

	out := tc.out.String()
	assert.Contains(t, out, "Connected: "+tc.cfg.URL+" (Counter)")
	assert.Contains(t, out, "Session: sess-1")
	assert.Contains(t, out, live.OverlayMessage)

	calls := dialer.DialContextCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Bearer opaque", calls[0].Header.Get("Authorization"))

	tc.out.Reset()
	require.NoError(t, tc.cli.RunStatus(ctx))
	assert.Contains(t, tc.out.String(), "Session: sess-1 (hash abc")

	tc.out.Reset()
	require.NoError(t, tc.cli.RunReplay(ctx, ""))
	assert.Contains(t, tc.out.String(), `<span data-hlive-id="3">7</span>`)
}

func TestRunConnect_Cancel(t *testing.T) {
	t.Setenv(EnvToken, "")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testPage))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	dialer := &conn.DialerMock{
		DialContextFunc: func(ctx context.Context, _ string, _ http.Header) (conn.Conn, error) {
			cancel()
			return nil, errors.New("connection refused")
		},
	}

	tc := newTestCli(t, "", WithDialer(dialer), WithHTTPClient(srv.Client()))
	tc.cfg.URL = srv.URL
	tc.cfg.JournalPath = ""

	require.NoError(t, tc.cli.RunConnect(ctx))
	assert.Contains(t, tc.out.String(), "Disconnected")
}

func TestRunConnect_PageStatus(t *testing.T) {
	t.Setenv(EnvToken, "")
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	tc := newTestCli(t, "", WithHTTPClient(srv.Client()))
	tc.cfg.URL = srv.URL

	err := tc.cli.RunConnect(context.Background())
	assert.ErrorIs(t, err, live.ErrPageStatus)
}
