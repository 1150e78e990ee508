package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silverspringsaints/playtracker/internal/api"
	"github.com/silverspringsaints/playtracker/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "playtrack-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/playtrack")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		RosterService:     app.RosterService,
		SessionController: app.SessionController,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing

type playerResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Jersey int    `json:"jersey"`
}

type sessionResponse struct {
	ID           string         `json:"id"`
	Opponent     string         `json:"opponent"`
	TotalPlays   int            `json:"total_plays"`
	EndTime      *string        `json:"end_time"`
	UnderMinimum []string       `json:"under_minimum"`
	Stats        map[string]any `json:"stats"`
}

type recordResponse struct {
	Session sessionResponse `json:"session"`
	Events  []struct {
		Type     string `json:"type"`
		PlayerID string `json:"player_id"`
		Total    int    `json:"total"`
	} `json:"events"`
}

func TestCLIEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Health
	out, err := cli.run("health")
	require.NoError(t, err, out)
	assert.Contains(t, out, `"status": "ok"`)

	// Build a roster
	out, err = cli.run("roster", "add", "Alice", "7")
	require.NoError(t, err, out)
	var alice playerResponse
	require.NoError(t, json.Unmarshal([]byte(out), &alice))
	assert.Equal(t, "Alice", alice.Name)

	out, err = cli.run("roster", "add", "Bob", "12")
	require.NoError(t, err, out)
	var bob playerResponse
	require.NoError(t, json.Unmarshal([]byte(out), &bob))

	out, err = cli.run("roster", "list")
	require.NoError(t, err, out)
	var roster []playerResponse
	require.NoError(t, json.Unmarshal([]byte(out), &roster))
	assert.Len(t, roster, 2)

	// Start a game with both players
	out, err = cli.run("game", "start", "Eagles",
		"--coach", "Coach Taylor",
		"--date", "2025-09-06",
		"--players", alice.ID+","+bob.ID)
	require.NoError(t, err, out)
	var session sessionResponse
	require.NoError(t, json.Unmarshal([]byte(out), &session))
	assert.Equal(t, "Eagles", session.Opponent)

	// Record plays until Alice reaches the minimum
	var recorded recordResponse
	for i := 0; i < 8; i++ {
		out, err = cli.run("game", "record", "offense", alice.ID)
		require.NoError(t, err, out)
		require.NoError(t, json.Unmarshal([]byte(out), &recorded))
	}
	require.Len(t, recorded.Events, 1)
	assert.Equal(t, "player_reached_minimum", recorded.Events[0].Type)
	assert.Equal(t, alice.ID, recorded.Events[0].PlayerID)
	assert.Equal(t, []string{bob.ID}, recorded.Session.UnderMinimum)

	// Status reflects the recorded plays
	out, err = cli.run("game", "status")
	require.NoError(t, err, out)
	require.NoError(t, json.Unmarshal([]byte(out), &session))
	assert.Equal(t, 8, session.TotalPlays)

	// End the game
	out, err = cli.run("game", "end")
	require.NoError(t, err, out)
	require.NoError(t, json.Unmarshal([]byte(out), &session))
	require.NotNil(t, session.EndTime)

	// The archive lists it and the summary ranks Alice first
	out, err = cli.run("games", "list")
	require.NoError(t, err, out)
	var games []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &games))
	require.Len(t, games, 1)

	out, err = cli.run("games", "summary", games[0].ID)
	require.NoError(t, err, out)
	var summary struct {
		PlayerStats []struct {
			Name         string `json:"name"`
			TotalPlays   int    `json:"totalPlays"`
			UnderMinimum bool   `json:"underMinimum"`
		} `json:"playerStats"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	require.Len(t, summary.PlayerStats, 2)
	assert.Equal(t, "Alice", summary.PlayerStats[0].Name)
	assert.Equal(t, 8, summary.PlayerStats[0].TotalPlays)
	assert.False(t, summary.PlayerStats[0].UnderMinimum)
	assert.True(t, summary.PlayerStats[1].UnderMinimum)
}

func TestCLIDiscardFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	out, err := cli.run("roster", "add", "Alice", "7")
	require.NoError(t, err, out)
	var alice playerResponse
	require.NoError(t, json.Unmarshal([]byte(out), &alice))

	out, err = cli.run("game", "start", "Hawks", "--coach", "Coach", "--players", alice.ID)
	require.NoError(t, err, out)

	out, err = cli.run("game", "discard")
	require.NoError(t, err, out)

	// No session and nothing archived
	_, err = cli.run("game", "status")
	assert.Error(t, err)

	out, err = cli.run("games", "list")
	require.NoError(t, err, out)
	var games []any
	require.NoError(t, json.Unmarshal([]byte(out), &games))
	assert.Empty(t, games)
}
