package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"jobportal_front/internal/apiclient"
	"jobportal_front/internal/models"
	"jobportal_front/internal/session"
	"jobportal_front/internal/storage"
	"jobportal_front/internal/store"

	"github.com/stretchr/testify/require"
)

// fakeAPI - бэкенд портала на httptest с журналом запросов
type fakeAPI struct {
	mu    sync.Mutex
	calls []string
	mux   *http.ServeMux
	srv   *httptest.Server
}

func newFakeAPI(t *testing.T) *fakeAPI {
	f := &fakeAPI{mux: http.NewServeMux()}
	f.srv = httptest.NewServer(f)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
	f.mu.Unlock()
	f.mux.ServeHTTP(w, r)
}

func (f *fakeAPI) handle(pattern string, h http.HandlerFunc) {
	f.mux.HandleFunc(pattern, h)
}

func (f *fakeAPI) count(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (f *fakeAPI) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
	gets int
	sets int
}

func newMapCache() *mapCache {
	return &mapCache{data: map[string][]byte{}}
}

func (c *mapCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *mapCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	c.sets++
	return nil
}

type fixture struct {
	api      *fakeAPI
	svc      *ServiceContainer
	stores   *store.Registry
	cache    *mapCache
	seeker   *session.Session
	company  *session.Session
	filesDir string
}

func newFixture(t *testing.T) *fixture {
	api := newFakeAPI(t)
	dir := t.TempDir()
	local, err := storage.NewLocalStorage(storage.Config{BasePath: dir, BaseURL: "/files"})
	require.NoError(t, err)

	reg := store.NewRegistry()
	cache := newMapCache()
	svc := NewServiceContainer(Deps{
		API:    apiclient.New(api.srv.URL, time.Second),
		Stores: reg,
		Cache:  cache,
		Images: storage.NewImageUploader(local, 1<<20, []string{"image/png"}),
	})

	return &fixture{
		api:      api,
		svc:      svc,
		stores:   reg,
		cache:    cache,
		seeker:   &session.Session{ID: "sid-seeker", AccessToken: "t1", UserID: "s1", Role: models.UserRoleJobSeeker},
		company:  &session.Session{ID: "sid-company", AccessToken: "t2", UserID: "c1", Role: models.UserRoleCompany},
		filesDir: dir,
	}
}

func (f *fixture) state(sess *session.Session) store.State {
	return f.stores.For(sess.ID).Snapshot()
}
