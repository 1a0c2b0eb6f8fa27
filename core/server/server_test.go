package server_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"serve-web/core/browser/mocks"
	"serve-web/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func testApp() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/index.html", func(c *fiber.Ctx) error {
		return c.SendString("landing")
	})
	return app
}

func startServer(t *testing.T, srv *server.Server) (context.CancelFunc, <-chan error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		return srv.State() == server.StateServing
	}, 5*time.Second, 10*time.Millisecond)

	return cancel, done
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
		return nil
	}
}

func TestServer_Run(t *testing.T) {
	port := freePort(t)
	core, logs := observer.New(zapcore.InfoLevel)
	cfg := server.Config{Port: strconv.Itoa(port), MaxPortAttempts: 5}
	srv := server.New(cfg, "/srv/web", testApp(), zap.New(core), nil)

	assert.Equal(t, server.StateInit, srv.State())
	cancel, done := startServer(t, srv)

	require.Equal(t, port, srv.Port())
	assert.Equal(t, "http://localhost:"+strconv.Itoa(port)+"/index.html", srv.URL())

	resp, err := http.Get(srv.URL())
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "landing", string(body))

	cancel()
	require.NoError(t, waitDone(t, done))
	assert.Equal(t, server.StateTerminated, srv.State())

	_, err = net.DialTimeout("tcp", net.JoinHostPort("localhost", strconv.Itoa(port)), time.Second)
	assert.Error(t, err, "listener should be closed after shutdown")

	messages := logs.FilterMessageSnippet("Serving /srv/web at").Len()
	assert.Equal(t, 1, messages)
	assert.Equal(t, 1, logs.FilterMessage("Shutting down server...").Len())
}

func TestServer_Run_FallsBackToNextPort(t *testing.T) {
	var port int
	var busy net.Listener
	for i := 0; i < 20; i++ {
		port = freePort(t)
		ln, err := net.Listen("tcp", ":"+strconv.Itoa(port))
		if err != nil {
			continue
		}
		probe, err := net.Listen("tcp", ":"+strconv.Itoa(port+1))
		if err != nil {
			ln.Close()
			continue
		}
		probe.Close()
		busy = ln
		break
	}
	if busy == nil {
		t.Skip("could not reserve two consecutive ports")
	}
	defer busy.Close()

	cfg := server.Config{Port: strconv.Itoa(port), MaxPortAttempts: 3}
	srv := server.New(cfg, "root", testApp(), zap.NewNop(), nil)

	cancel, done := startServer(t, srv)
	assert.Equal(t, port+1, srv.Port())

	cancel()
	assert.NoError(t, waitDone(t, done))
}

func TestServer_Run_PortExhausted(t *testing.T) {
	port := freePort(t)
	busy, err := net.Listen("tcp", ":"+strconv.Itoa(port))
	require.NoError(t, err)
	defer busy.Close()

	cfg := server.Config{Port: strconv.Itoa(port), MaxPortAttempts: 1}
	srv := server.New(cfg, "root", testApp(), zap.NewNop(), nil)

	err = srv.Run(context.Background())
	assert.Error(t, err)
	assert.NotEqual(t, server.StateServing, srv.State())
}

func TestServer_Run_BrowserFailureIgnored(t *testing.T) {
	port := freePort(t)
	opened := make(chan string, 1)
	opener := new(mocks.Opener)
	opener.On("Open", mock.Anything).
		Return(assert.AnError).
		Run(func(args mock.Arguments) { opened <- args.String(0) })

	cfg := server.Config{Port: strconv.Itoa(port), MaxPortAttempts: 5, OpenBrowser: true}
	srv := server.New(cfg, "root", testApp(), zap.NewNop(), opener)

	cancel, done := startServer(t, srv)

	select {
	case url := <-opened:
		assert.Equal(t, srv.URL(), url)
	case <-time.After(2 * time.Second):
		t.Fatal("browser was not launched")
	}
	assert.Equal(t, server.StateServing, srv.State())

	cancel()
	assert.NoError(t, waitDone(t, done))
}

func TestServer_Run_BrowserDisabled(t *testing.T) {
	port := freePort(t)
	opener := new(mocks.Opener)

	cfg := server.Config{Port: strconv.Itoa(port), MaxPortAttempts: 5, OpenBrowser: false}
	srv := server.New(cfg, "root", testApp(), zap.NewNop(), opener)

	cancel, done := startServer(t, srv)
	cancel()
	assert.NoError(t, waitDone(t, done))

	opener.AssertNotCalled(t, "Open", mock.Anything)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "serving", server.StateServing.String())
	assert.Equal(t, "terminated", server.StateTerminated.String())
	assert.Equal(t, "unknown", server.State(42).String())
}
