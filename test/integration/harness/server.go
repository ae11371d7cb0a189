package harness

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"testing"
	"time"
)

const (
	serverStartTimeout = 15 * time.Second
	serverStopTimeout  = 10 * time.Second
)

// Server is a hotline server process owned by one test
type Server struct {
	Port int
	URL  string

	cmd    *exec.Cmd
	output syncBuffer
}

// syncBuffer lets tests read the output while the process still writes it
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// StartServer runs `hotline serve` on a free loopback port and points the
// environment's client commands at it. The server is interrupted when the
// test completes.
func StartServer(tb testing.TB, env *TestEnvironment, extraArgs ...string) *Server {
	tb.Helper()

	port, err := freePort()
	if err != nil {
		tb.Fatalf("Failed to find a free port: %v", err)
	}

	s := &Server{
		Port: port,
		URL:  "http://127.0.0.1:" + strconv.Itoa(port),
	}
	env.ServerURL = s.URL

	args := append([]string{
		"serve",
		"--host", "127.0.0.1",
		"--port", strconv.Itoa(port),
		"--project-dir", env.ProjectDir,
	}, extraArgs...)

	s.cmd = exec.Command(binaryPath, args...)
	s.cmd.Env = env.Environ()
	s.cmd.Dir = env.ProjectDir
	s.cmd.Stdout = &s.output
	s.cmd.Stderr = &s.output
	if err := s.cmd.Start(); err != nil {
		tb.Fatalf("Failed to start server: %v", err)
	}

	tb.Cleanup(func() { s.stop(tb) })

	if err := s.waitHealthy(); err != nil {
		tb.Fatalf("Server did not become healthy: %v\nOutput:\n%s", err, s.output.String())
	}
	return s
}

func (s *Server) waitHealthy() error {
	ctx, cancel := context.WithTimeout(context.Background(), serverStartTimeout)
	defer cancel()

	client := &http.Client{Timeout: time.Second}
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL+"/api/health", nil)
		if err != nil {
			return err
		}
		rsp, err := client.Do(req)
		if err == nil {
			rsp.Body.Close()
			if rsp.StatusCode == http.StatusOK {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("timed out after %v", serverStartTimeout)
		case <-time.After(100 * time.Millisecond):
		}
	}
}

func (s *Server) stop(tb testing.TB) {
	if s.cmd.Process == nil {
		return
	}
	_ = s.cmd.Process.Signal(os.Interrupt)

	done := make(chan error, 1)
	go func() { done <- s.cmd.Wait() }()
	select {
	case <-done:
	case <-time.After(serverStopTimeout):
		tb.Logf("Server did not stop after %v, killing it", serverStopTimeout)
		_ = s.cmd.Process.Kill()
		<-done
	}
}

func freePort() (int, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port, nil
}
