package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	catalogue "catalogue-service/internal/catalogueService"
	"catalogue-service/internal/repository"
	"catalogue-service/internal/repository/sqlite"
	"catalogue-service/internal/server"
	"catalogue-service/services/catalogue/rpc"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

const identityHeader = "X-User"

var t0 = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

// simClock is a manually advanced clock shared by the service and the sweeper
type simClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *simClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *simClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// testApp bundles both front ends over one store
type testApp struct {
	router  *gin.Engine
	client  rpc.CatalogueServiceClient
	clock   *simClock
	sweeper *catalogue.Sweeper
}

// newMemoryApp runs the catalogue on the in-memory repository
func newMemoryApp(t *testing.T) *testApp {
	t.Helper()
	return newTestApp(t, repository.NewMemoryRepo())
}

// newSQLiteApp runs the catalogue on a fresh SQLite file
func newSQLiteApp(t *testing.T) *testApp {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "catalogue.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return newTestApp(t, store)
}

func newTestApp(t *testing.T, repo repository.CatalogueDB) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := &simClock{t: t0}
	service := catalogue.NewCatalogueService(repo, catalogue.WithClock(clock.Now))

	lis := bufconn.Listen(1 << 20)
	grpcServer := rpc.NewGRPCServer(service)
	go func() { _ = grpcServer.Serve(lis) }()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &testApp{
		router:  server.SetupRouter(service, identityHeader),
		client:  rpc.NewCatalogueServiceClient(conn),
		clock:   clock,
		sweeper: catalogue.NewSweeper(repo, time.Minute, catalogue.WithSweepClock(clock.Now)),
	}
}

// ExecuteRequest executes an HTTP request as user (anonymous when empty) and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, user string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	if len(reqBody) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set(identityHeader, user)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, user string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := ExecuteRequest(t, router, method, url, user, body)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return resp, w
}

// dataObject returns the envelope's data as an object
func dataObject(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "data should be an object: %v", resp)
	return data
}

// dataList returns the envelope's data as a list of objects
func dataList(t *testing.T, resp map[string]any) []map[string]any {
	t.Helper()
	raw, ok := resp["data"].([]any)
	require.True(t, ok, "data should be an array: %v", resp)
	out := make([]map[string]any, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.(map[string]any))
	}
	return out
}
