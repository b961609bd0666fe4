package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/storefront/client/auth/store"
	"golang.org/x/oauth2"
)

// apiServer simulates a protected endpoint accepting a single access credential and a refresh endpoint.
type apiServer struct {
	*httptest.Server
	validAccess   string
	refreshStatus int
	newAccess     string
	refreshDelay  time.Duration
	// rotate issues a distinct access credential per refresh call
	rotate bool
	// rejectBarrier holds every 401 until that many requests were rejected
	rejectBarrier int

	mu            sync.Mutex
	issued        []string
	rejections    int
	released      chan struct{}
	protectedHits int
	authHeaders   []string
	bodies        []string
	requestIDs    []string
	refreshBodies []string
	refreshHits   atomic.Int32
}

func newAPIServer(t *testing.T) *apiServer {
	s := &apiServer{validAccess: "A2", newAccess: "A2", refreshStatus: http.StatusOK, released: make(chan struct{})}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/"+RefreshPath, func(w http.ResponseWriter, r *http.Request) {
		hit := s.refreshHits.Add(1)
		data, _ := io.ReadAll(r.Body)
		access := s.newAccess
		if s.rotate {
			access = fmt.Sprintf("%s-%d", s.newAccess, hit)
		}
		s.mu.Lock()
		s.refreshBodies = append(s.refreshBodies, string(data))
		s.issued = append(s.issued, access)
		s.mu.Unlock()
		if s.refreshDelay > 0 {
			time.Sleep(s.refreshDelay)
		}
		if s.refreshStatus != http.StatusOK {
			http.Error(w, `{"detail":"Token is invalid or expired"}`, s.refreshStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"access": access})
	})
	mux.HandleFunc("/api/profile/", func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.protectedHits++
		s.authHeaders = append(s.authHeaders, r.Header.Get("Authorization"))
		s.bodies = append(s.bodies, string(data))
		s.requestIDs = append(s.requestIDs, r.Header.Get(RequestIDHeader))
		valid := s.accepts(r.Header.Get("Authorization"))
		if !valid && s.rejectBarrier > 0 {
			s.rejections++
			if s.rejections == s.rejectBarrier {
				close(s.released)
			}
		}
		s.mu.Unlock()
		if !valid {
			if s.rejectBarrier > 0 {
				<-s.released
			}
			http.Error(w, `{"detail":"Given token not valid"}`, http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"jane"}`))
	})
	mux.HandleFunc("/api/broken/", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.protectedHits++
		s.mu.Unlock()
		http.Error(w, `{"detail":"boom"}`, http.StatusInternalServerError)
	})
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

// accepts reports whether authorization is valid; s.mu must be held.
func (s *apiServer) accepts(authorization string) bool {
	if s.validAccess == "" || authorization == "Bearer "+s.validAccess {
		return true
	}
	if !s.rotate {
		return false
	}
	for _, access := range s.issued {
		if authorization == "Bearer "+access {
			return true
		}
	}
	return false
}

func (s *apiServer) url(path string) string {
	return s.URL + "/api/" + path
}

type expiredRecorder struct {
	mu     sync.Mutex
	causes []error
}

func (e *expiredRecorder) handle(_ context.Context, cause error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.causes = append(e.causes, cause)
}

func (e *expiredRecorder) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.causes)
}

type trackedBody struct {
	io.Reader
	closed bool
}

func (b *trackedBody) Close() error {
	b.closed = true
	return nil
}

func newTestClient(t *testing.T, server *apiServer, sessionStore store.Store, options ...Option) (*http.Client, *expiredRecorder) {
	t.Helper()
	recorder := &expiredRecorder{}
	options = append([]Option{
		WithStore(sessionStore),
		WithRefreshURL(server.url(RefreshPath)),
		WithSessionExpiredHandler(recorder.handle),
	}, options...)
	rt, err := New(options...)
	require.NoError(t, err)
	return &http.Client{Transport: rt}, recorder
}

func credentials(access, refresh string) store.Store {
	return store.NewMemoryStore(store.WithCredentials(&oauth2.Token{AccessToken: access, RefreshToken: refresh}))
}

func TestRoundTripper_AttachesBearer(t *testing.T) {
	server := newAPIServer(t)
	client, recorder := newTestClient(t, server, credentials("A2", "R1"))

	resp, err := client.Get(server.url("profile/"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Bearer A2"}, server.authHeaders)
	assert.NotEmpty(t, server.requestIDs[0])
	assert.EqualValues(t, 0, server.refreshHits.Load())
	assert.Equal(t, 0, recorder.count())
}

func TestRoundTripper_AnonymousRequest(t *testing.T) {
	server := newAPIServer(t)
	server.validAccess = ""
	client, _ := newTestClient(t, server, store.NewMemoryStore())

	resp, err := client.Get(server.url("profile/"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, server.protectedHits)
	assert.Equal(t, []string{""}, server.authHeaders)
}

func TestRoundTripper_RefreshAndRetry(t *testing.T) {
	server := newAPIServer(t)
	sessionStore := credentials("A1", "R1")
	client, recorder := newTestClient(t, server, sessionStore)

	req, err := http.NewRequest(http.MethodPost, server.url("profile/"), strings.NewReader(`{"name":"jane"}`))
	require.NoError(t, err)
	req.GetBody = nil // force body buffering
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"name":"jane"}`, string(body))

	assert.Equal(t, 2, server.protectedHits)
	assert.EqualValues(t, 1, server.refreshHits.Load())
	assert.Equal(t, []string{"Bearer A1", "Bearer A2"}, server.authHeaders)
	assert.Equal(t, []string{`{"name":"jane"}`, `{"name":"jane"}`}, server.bodies)
	assert.Equal(t, server.requestIDs[0], server.requestIDs[1])
	assert.JSONEq(t, `{"refresh":"R1"}`, server.refreshBodies[0])

	access, _ := sessionStore.Get(store.AccessKey)
	assert.Equal(t, "A2", access)
	refresh, _ := sessionStore.Get(store.RefreshKey)
	assert.Equal(t, "R1", refresh)
	assert.Equal(t, 0, recorder.count())
}

func TestRoundTripper_NoRefreshCredential(t *testing.T) {
	server := newAPIServer(t)
	sessionStore := store.NewMemoryStore()
	require.NoError(t, sessionStore.Set(store.AccessKey, "A1"))
	client, recorder := newTestClient(t, server, sessionStore)

	resp, err := client.Get(server.url("profile/"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Given token not valid")
	assert.EqualValues(t, 0, server.refreshHits.Load())
	assert.Equal(t, 1, server.protectedHits)
	assert.Nil(t, store.Credentials(sessionStore))
	require.Equal(t, 1, recorder.count())
	assert.ErrorIs(t, recorder.causes[0], ErrNoRefreshCredential)
}

func TestRoundTripper_RefreshFailure(t *testing.T) {
	server := newAPIServer(t)
	server.refreshStatus = http.StatusUnauthorized
	sessionStore := credentials("A1", "R1")
	client, recorder := newTestClient(t, server, sessionStore)

	resp, err := client.Get(server.url("profile/"))
	if resp != nil {
		resp.Body.Close()
	}
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
	var refreshErr *RefreshError
	require.ErrorAs(t, err, &refreshErr)
	assert.Equal(t, http.StatusUnauthorized, refreshErr.StatusCode)

	assert.Equal(t, 1, server.protectedHits)
	assert.EqualValues(t, 1, server.refreshHits.Load())
	assert.Nil(t, store.Credentials(sessionStore))
	require.Equal(t, 1, recorder.count())
	assert.ErrorAs(t, recorder.causes[0], &refreshErr)
}

func TestRoundTripper_RetriedRequestRejected(t *testing.T) {
	server := newAPIServer(t)
	server.validAccess = "never"
	sessionStore := credentials("A1", "R1")
	client, recorder := newTestClient(t, server, sessionStore)

	resp, err := client.Get(server.url("profile/"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 2, server.protectedHits)
	assert.EqualValues(t, 1, server.refreshHits.Load())
	assert.Equal(t, []string{"Bearer A1", "Bearer A2"}, server.authHeaders)
	assert.Equal(t, 0, recorder.count())
}

func TestRoundTripper_NonAuthorizationFailures(t *testing.T) {
	server := newAPIServer(t)
	sessionStore := credentials("A1", "R1")
	client, recorder := newTestClient(t, server, sessionStore)

	resp, err := client.Get(server.url("broken/"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.EqualValues(t, 0, server.refreshHits.Load())

	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()
	_, err = client.Get(closedURL + "/api/profile/")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionExpired)

	assert.NotNil(t, store.Credentials(sessionStore))
	assert.Equal(t, 0, recorder.count())
}

func TestRoundTripper_RepeatedRequests(t *testing.T) {
	server := newAPIServer(t)
	sessionStore := credentials("A2", "R1")
	client, _ := newTestClient(t, server, sessionStore)

	for i := 0; i < 2; i++ {
		resp, err := client.Get(server.url("profile/"))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
	assert.Equal(t, 2, server.protectedHits)
	assert.NotEqual(t, server.requestIDs[0], server.requestIDs[1])
	assert.Equal(t, &oauth2.Token{TokenType: "Bearer", AccessToken: "A2", RefreshToken: "R1"}, store.Credentials(sessionStore))
}

func TestRoundTripper_CoalescesConcurrentRefresh(t *testing.T) {
	server := newAPIServer(t)
	server.refreshDelay = 50 * time.Millisecond
	sessionStore := credentials("A1", "R1")
	client, _ := newTestClient(t, server, sessionStore)

	const workers = 8
	var wg sync.WaitGroup
	statuses := make([]int, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := client.Get(server.url("profile/"))
			errs[i] = err
			if err == nil {
				statuses[i] = resp.StatusCode
				resp.Body.Close()
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, http.StatusOK, statuses[i])
	}
	assert.EqualValues(t, 1, server.refreshHits.Load())
}

func TestNew_RequiresRefreshEndpoint(t *testing.T) {
	_, err := New(WithStore(store.NewMemoryStore()))
	assert.Error(t, err)

	rt, err := New(WithRefresher(RefresherFunc(func(ctx context.Context, refresh string) (string, error) {
		return "", errors.New("unused")
	})))
	require.NoError(t, err)
	assert.NotNil(t, rt.Store())
}

func TestIsRetried(t *testing.T) {
	ctx := context.Background()
	assert.False(t, isRetried(ctx))
	assert.True(t, isRetried(withRetried(ctx)))
}

func TestExpiresAt(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": expiry.Unix(), "sub": "jane"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	actual, ok := ExpiresAt(signed)
	require.True(t, ok)
	assert.True(t, expiry.Equal(actual))

	_, ok = ExpiresAt("opaque-token")
	assert.False(t, ok)
}

func TestRoundTripper_IndependentConcurrentRefresh(t *testing.T) {
	const workers = 6
	server := newAPIServer(t)
	server.rotate = true
	server.rejectBarrier = workers
	sessionStore := credentials("A1", "R1")
	client, recorder := newTestClient(t, server, sessionStore, WithRefreshCoalescing(false))

	var wg sync.WaitGroup
	statuses := make([]int, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := client.Get(server.url("profile/"))
			errs[i] = err
			if err == nil {
				statuses[i] = resp.StatusCode
				resp.Body.Close()
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, http.StatusOK, statuses[i])
	}
	assert.EqualValues(t, workers, server.refreshHits.Load())
	assert.Equal(t, 2*workers, server.protectedHits)
	assert.Len(t, server.issued, workers)
	access, ok := sessionStore.Get(store.AccessKey)
	require.True(t, ok)
	assert.Contains(t, server.issued, access)
	assert.Equal(t, 0, recorder.count())
}

func TestRoundTripper_CancelledLeaderKeepsSharedRefresh(t *testing.T) {
	server := newAPIServer(t)
	server.refreshDelay = 200 * time.Millisecond
	sessionStore := credentials("A1", "R1")
	client, recorder := newTestClient(t, server, sessionStore)

	leaderCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	leaderDone := make(chan error, 1)
	go func() {
		req, _ := http.NewRequestWithContext(leaderCtx, http.MethodGet, server.url("profile/"), nil)
		resp, err := client.Do(req)
		if err == nil {
			resp.Body.Close()
		}
		leaderDone <- err
	}()
	require.Eventually(t, func() bool { return server.refreshHits.Load() == 1 }, time.Second, 5*time.Millisecond)

	waiterDone := make(chan int, 1)
	go func() {
		resp, err := client.Get(server.url("profile/"))
		if err != nil {
			waiterDone <- 0
			return
		}
		resp.Body.Close()
		waiterDone <- resp.StatusCode
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	leaderErr := <-leaderDone
	require.Error(t, leaderErr)
	assert.ErrorIs(t, leaderErr, context.Canceled)
	assert.NotErrorIs(t, leaderErr, ErrSessionExpired)

	assert.Equal(t, http.StatusOK, <-waiterDone)
	assert.EqualValues(t, 1, server.refreshHits.Load())
	assert.Equal(t, &oauth2.Token{TokenType: "Bearer", AccessToken: "A2", RefreshToken: "R1"}, store.Credentials(sessionStore))
	assert.Equal(t, 0, recorder.count())
}

func TestRoundTripper_CancelledRefreshKeepsSession(t *testing.T) {
	server := newAPIServer(t)
	server.refreshDelay = 200 * time.Millisecond
	sessionStore := credentials("A1", "R1")
	client, recorder := newTestClient(t, server, sessionStore, WithRefreshCoalescing(false))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.url("profile/"), nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	if resp != nil {
		resp.Body.Close()
	}
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, ErrSessionExpired)
	assert.NotNil(t, store.Credentials(sessionStore))
	assert.Equal(t, 0, recorder.count())
}

func TestRoundTripper_WithoutRefresh(t *testing.T) {
	server := newAPIServer(t)
	sessionStore := credentials("A1", "R1")
	client, recorder := newTestClient(t, server, sessionStore)

	req, err := http.NewRequestWithContext(WithoutRefresh(context.Background()), http.MethodGet, server.url("profile/"), nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.EqualValues(t, 0, server.refreshHits.Load())
	assert.Equal(t, []string{"Bearer A1"}, server.authHeaders)
	assert.NotNil(t, store.Credentials(sessionStore))
	assert.Equal(t, 0, recorder.count())
}

func TestRoundTripper_LeavesRequestUnmodified(t *testing.T) {
	server := newAPIServer(t)
	rt, err := New(WithStore(credentials("A1", "R1")), WithRefreshURL(server.url(RefreshPath)))
	require.NoError(t, err)

	body := &trackedBody{Reader: strings.NewReader(`{"name":"jane"}`)}
	req, err := http.NewRequest(http.MethodPost, server.url("profile/"), body)
	require.NoError(t, err)
	req.GetBody = nil
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{`{"name":"jane"}`, `{"name":"jane"}`}, server.bodies)
	assert.Same(t, body, req.Body)
	assert.True(t, body.closed)
	assert.Empty(t, req.Header.Get("Authorization"))
	assert.Empty(t, req.Header.Get(RequestIDHeader))
}
