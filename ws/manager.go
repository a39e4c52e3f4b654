package ws

import (
	"context"
	"sync"

	"jobportal_front/internal/logger"
	"jobportal_front/internal/store"
)

// WebSocketManager держит подключения браузеров. На Store сессии подписывается
// первая вкладка, изменения расходятся по всем вкладкам сессии.
type WebSocketManager struct {
	clients    map[string]*Client
	sessions   map[string]map[string]*Client
	subs       map[string]func()
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex

	stores *store.Registry
}

func NewWebSocketManager(stores *store.Registry) *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[string]*Client),
		sessions:   make(map[string]map[string]*Client),
		subs:       make(map[string]func()),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		stores:     stores,
	}
}

// Run обслуживает регистрацию до отмены ctx, затем закрывает все подключения
func (manager *WebSocketManager) Run(ctx context.Context) {
	for {
		select {
		case client := <-manager.register:
			manager.add(client)

		case client := <-manager.unregister:
			manager.remove(client)

		case <-ctx.Done():
			close(manager.done)
			manager.mu.Lock()
			for _, unsubscribe := range manager.subs {
				unsubscribe()
			}
			for _, client := range manager.clients {
				client.detach()
			}
			manager.clients = make(map[string]*Client)
			manager.sessions = make(map[string]map[string]*Client)
			manager.subs = make(map[string]func())
			manager.mu.Unlock()
			return
		}
	}
}

// add и remove выполняются только в Run, поэтому подписка на сессию не гоняется
func (manager *WebSocketManager) add(client *Client) {
	sessionID := client.SessionID

	manager.mu.RLock()
	_, subscribed := manager.subs[sessionID]
	manager.mu.RUnlock()

	// подписка до попадания в карту: клиент, видимый в sessions, уже получает изменения
	var unsubscribe func()
	if !subscribed {
		st := manager.stores.For(sessionID)
		unsubscribe = st.Subscribe(func(c store.Change) {
			manager.pushChange(sessionID, st, c)
		})
	}

	manager.mu.Lock()
	if unsubscribe != nil {
		manager.subs[sessionID] = unsubscribe
	}
	manager.clients[client.ID] = client
	if manager.sessions[sessionID] == nil {
		manager.sessions[sessionID] = make(map[string]*Client)
	}
	manager.sessions[sessionID][client.ID] = client
	total := len(manager.clients)
	manager.mu.Unlock()

	logger.Info("WS client registered", "client_id", client.ID, "session_id", client.SessionID, "total", total)
}

func (manager *WebSocketManager) remove(client *Client) {
	var unsubscribe func()
	manager.mu.Lock()
	_, ok := manager.clients[client.ID]
	if ok {
		delete(manager.clients, client.ID)
		if peers := manager.sessions[client.SessionID]; peers != nil {
			delete(peers, client.ID)
			if len(peers) == 0 {
				delete(manager.sessions, client.SessionID)
				unsubscribe = manager.subs[client.SessionID]
				delete(manager.subs, client.SessionID)
			}
		}
	}
	total := len(manager.clients)
	manager.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if ok {
		client.detach()
		logger.Info("WS client unregistered", "client_id", client.ID, "total", total)
	}
}

// pushChange вызывается синхронно из Dispatch и не должен блокировать reducer.
// После сброса Store (вход, выход) вкладки получают новое состояние целиком.
func (manager *WebSocketManager) pushChange(sessionID string, st *store.Store, c store.Change) {
	if c.Action == store.ActionReset {
		snap := st.Snapshot()
		manager.BroadcastToSession(sessionID, Event{Type: EventReset, State: &snap, At: c.At})
		return
	}

	req := store.Select(st, func(s *store.State) store.Request { return *s.Request(c.Slice) })
	manager.BroadcastToSession(sessionID, Event{
		Type:   EventStateChanged,
		Slice:  c.Slice,
		Action: c.Action,
		Status: req.Status,
		Error:  req.Error,
		At:     c.At,
	})
}

func (manager *WebSocketManager) deliver(client *Client, message any) {
	if client.trySend(message) {
		return
	}
	logger.Warn("WS client disconnected due to full send channel", "client_id", client.ID)
	go manager.leave(client)
}

// leave не блокируется, если Run уже завершился
func (manager *WebSocketManager) leave(client *Client) {
	select {
	case manager.unregister <- client:
	case <-manager.done:
	}
}

func (manager *WebSocketManager) join(client *Client) bool {
	select {
	case manager.register <- client:
		return true
	case <-manager.done:
		return false
	}
}

// BroadcastToSession отправляет сообщение всем вкладкам сессии
func (manager *WebSocketManager) BroadcastToSession(sessionID string, message any) {
	manager.mu.RLock()
	peers := make([]*Client, 0, len(manager.sessions[sessionID]))
	for _, client := range manager.sessions[sessionID] {
		peers = append(peers, client)
	}
	manager.mu.RUnlock()

	for _, client := range peers {
		manager.deliver(client, message)
	}
}

// GetClientCount возвращает количество подключенных клиентов
func (manager *WebSocketManager) GetClientCount() int {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return len(manager.clients)
}

func (manager *WebSocketManager) SessionClientCount(sessionID string) int {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return len(manager.sessions[sessionID])
}
