package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobportal_front/internal/middleware"
	"jobportal_front/internal/session"
	"jobportal_front/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSID = "0e4c7d2a-5b1f-4c8e-9a3d-7f6b2e1c0d9a"

type wsHarness struct {
	manager *WebSocketManager
	stores  *store.Registry
	url     string
}

func newWSHarness(t *testing.T) *wsHarness {
	gin.SetMode(gin.TestMode)

	sessions := session.NewMemoryStore()
	require.NoError(t, sessions.Save(context.Background(), session.New(testSID)))

	stores := store.NewRegistry()
	manager := NewWebSocketManager(stores)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go manager.Run(ctx)

	r := gin.New()
	r.Use(middleware.SessionMiddleware(sessions, middleware.SessionOptions{MaxAge: time.Hour}))
	r.GET("/ws", NewWebSocketHandler(manager, nil).ServeWS)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &wsHarness{
		manager: manager,
		stores:  stores,
		url:     "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws",
	}
}

func (h *wsHarness) dial(t *testing.T) *websocket.Conn {
	t.Helper()
	header := http.Header{}
	header.Set(middleware.SessionHeader, testSID)
	conn, _, err := websocket.DefaultDialer.Dial(h.url, header)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool {
		return h.manager.SessionClientCount(testSID) > 0
	}, time.Second, 10*time.Millisecond)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev Event
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func TestWS_PushesSliceChanges(t *testing.T) {
	h := newWSHarness(t)
	conn := h.dial(t)

	h.stores.For(testSID).Dispatch(store.SliceJobs, "jobs/fetchJobs/rejected", func(s *store.State) {
		s.Jobs.Fail("db down")
	})

	ev := readEvent(t, conn)
	assert.Equal(t, EventStateChanged, ev.Type)
	assert.Equal(t, store.SliceJobs, ev.Slice)
	assert.Equal(t, "jobs/fetchJobs/rejected", ev.Action)
	assert.Equal(t, store.StatusFailed, ev.Status)
	assert.Equal(t, "db down", ev.Error)
}

func TestWS_OtherSessionsAreNotNotified(t *testing.T) {
	h := newWSHarness(t)
	conn := h.dial(t)

	h.stores.For("someone-else").Dispatch(store.SliceJobs, "jobs/fetchJobs/pending", func(s *store.State) {
		s.Jobs.Start()
	})
	h.stores.For(testSID).Dispatch(store.SliceOffers, "jobOffers/getOffers/pending", func(s *store.State) {
		s.Offers.Start()
	})

	ev := readEvent(t, conn)
	assert.Equal(t, store.SliceOffers, ev.Slice)
}

func TestWS_SnapshotAndPing(t *testing.T) {
	h := newWSHarness(t)
	conn := h.dial(t)

	require.NoError(t, conn.WriteJSON(IncomingWSMessage{Action: "ping"}))
	assert.Equal(t, EventPong, readEvent(t, conn).Type)

	require.NoError(t, conn.WriteJSON(IncomingWSMessage{Action: "snapshot"}))
	ev := readEvent(t, conn)
	assert.Equal(t, EventSnapshot, ev.Type)
	require.NotNil(t, ev.State)
	assert.Equal(t, store.StatusIdle, ev.State.Jobs.Status)

	require.NoError(t, conn.WriteJSON(IncomingWSMessage{Action: "dance"}))
	assert.Equal(t, EventError, readEvent(t, conn).Type)
}

func TestWS_UnregistersOnClose(t *testing.T) {
	h := newWSHarness(t)
	conn := h.dial(t)
	assert.Equal(t, 1, h.manager.GetClientCount())

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool {
		return h.manager.GetClientCount() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWS_AllTabsOfSessionReceiveChanges(t *testing.T) {
	h := newWSHarness(t)
	first := h.dial(t)
	second := h.dial(t)
	require.Eventually(t, func() bool {
		return h.manager.SessionClientCount(testSID) == 2
	}, time.Second, 10*time.Millisecond)

	h.stores.For(testSID).Dispatch(store.SliceOffers, "jobOffers/getOffers/pending", func(s *store.State) {
		s.Offers.Start()
	})

	for _, conn := range []*websocket.Conn{first, second} {
		ev := readEvent(t, conn)
		assert.Equal(t, EventStateChanged, ev.Type)
		assert.Equal(t, store.SliceOffers, ev.Slice)
	}
}

func TestWS_DropResetsAndKeepsPushing(t *testing.T) {
	h := newWSHarness(t)
	conn := h.dial(t)

	h.stores.For(testSID).Dispatch(store.SliceJobs, "jobs/fetchJobs/rejected", func(s *store.State) {
		s.Jobs.Fail("db down")
	})
	assert.Equal(t, store.StatusFailed, readEvent(t, conn).Status)

	h.stores.Drop(testSID)

	ev := readEvent(t, conn)
	assert.Equal(t, EventReset, ev.Type)
	require.NotNil(t, ev.State)
	assert.Equal(t, store.StatusIdle, ev.State.Jobs.Status)

	h.stores.For(testSID).Dispatch(store.SliceJobs, "jobs/fetchJobs/pending", func(s *store.State) {
		s.Jobs.Start()
	})
	ev = readEvent(t, conn)
	assert.Equal(t, EventStateChanged, ev.Type)
	assert.Equal(t, "jobs/fetchJobs/pending", ev.Action)
}

func TestWS_LastTabLeavingUnsubscribes(t *testing.T) {
	h := newWSHarness(t)
	conn := h.dial(t)
	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool {
		return h.manager.GetClientCount() == 0
	}, 2*time.Second, 10*time.Millisecond)

	st := h.stores.For(testSID)
	h.stores.Drop(testSID)
	assert.NotSame(t, st, h.stores.For(testSID))
}

func TestClient_DetachIsIdempotent(t *testing.T) {
	c := newClient("c1", testSID, nil, nil)

	c.detach()
	c.detach()

	assert.True(t, c.trySend("late message"))
}
