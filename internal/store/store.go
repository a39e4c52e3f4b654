// Package store держит состояние страниц одной браузерной сессии:
// срезы (jobs, jobSeeker, declinedJobs, ...) со статусом запроса и последней ошибкой.
// Состояние живет только в памяти и пересобирается запросами к API.
package store

import (
	"sync"
	"time"
)

type RequestStatus string

const (
	StatusIdle      RequestStatus = "idle"
	StatusLoading   RequestStatus = "loading"
	StatusSucceeded RequestStatus = "succeeded"
	StatusFailed    RequestStatus = "failed"
)

// Request - статус последнего запроса среза и текст последней ошибки
type Request struct {
	Status RequestStatus `json:"status"`
	Error  string        `json:"error,omitempty"`
}

func (r *Request) Start() {
	r.Status = StatusLoading
	r.Error = ""
}

func (r *Request) Succeed() {
	r.Status = StatusSucceeded
	r.Error = ""
}

func (r *Request) Fail(message string) {
	r.Status = StatusFailed
	r.Error = message
}

type SliceName string

const (
	SliceJobs           SliceName = "jobs"
	SliceJobSeeker      SliceName = "jobSeeker"
	SliceDeclined       SliceName = "declinedJobs"
	SliceOffers         SliceName = "jobOffers"
	SliceCompanies      SliceName = "companies"
	SliceCompanyProfile SliceName = "companyProfile"
	SliceCompanyRoles   SliceName = "companyRoles"
	SliceApplicants     SliceName = "appliedApplicants"
	SliceReference      SliceName = "reference"
)

// Change - уведомление подписчикам после каждого dispatch
type Change struct {
	Slice  SliceName `json:"slice"`
	Action string    `json:"action"`
	At     time.Time `json:"at"`
}

type Listener func(Change)

// ActionReset - Change после Reset: Slice пустой, сброшены все срезы
const ActionReset = "store/reset"

type Store struct {
	mu    sync.RWMutex
	state State

	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextID      int
}

func New() *Store {
	return &Store{
		state:     newState(),
		listeners: make(map[int]Listener),
	}
}

// Dispatch применяет reducer под блокировкой и уведомляет подписчиков.
// Порядок pending/fulfilled/rejected одного вызова сохраняется вызывающим кодом.
func (s *Store) Dispatch(slice SliceName, action string, reducer func(*State)) {
	s.mu.Lock()
	reducer(&s.state)
	s.mu.Unlock()

	s.notify(Change{Slice: slice, Action: action, At: time.Now().UTC()})
}

// Snapshot - независимая копия состояния
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Select выполняет selector под read-lock. Selector не должен отдавать наружу
// ссылки на внутренние слайсы, если вызывающий код собирается их менять.
func Select[T any](s *Store, selector func(*State) T) T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return selector(&s.state)
}

// Lookup - Select для селекторов вида (значение, найдено)
func Lookup[T any](s *Store, selector func(*State) (T, bool)) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return selector(&s.state)
}

// Reset возвращает состояние к начальному. Подписчики остаются.
func (s *Store) Reset() {
	s.mu.Lock()
	s.state = newState()
	s.mu.Unlock()

	s.notify(Change{Action: ActionReset, At: time.Now().UTC()})
}

func (s *Store) listenerCount() int {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	return len(s.listeners)
}

// Subscribe регистрирует слушателя и возвращает функцию отписки
func (s *Store) Subscribe(l Listener) func() {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

func (s *Store) notify(c Change) {
	s.listenersMu.Lock()
	ls := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		ls = append(ls, l)
	}
	s.listenersMu.Unlock()

	for _, l := range ls {
		l(c)
	}
}

// Registry - по одному Store на браузерную сессию
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
}

func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

func (r *Registry) For(sessionID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.stores[sessionID]
	if !ok {
		st = New()
		r.stores[sessionID] = st
	}
	return st
}

// Drop забывает состояние сессии (вход, выход, уборка).
// Store с подписчиками (открытые вкладки) сбрасывается на месте, иначе вкладки
// остались бы на старом Store без уведомлений.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	st, ok := r.stores[sessionID]
	if ok && st.listenerCount() == 0 {
		delete(r.stores, sessionID)
		ok = false
	}
	r.mu.Unlock()

	if ok {
		st.Reset()
	}
}

// IDs - сессии, для которых есть состояние
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.stores))
	for id := range r.stores {
		ids = append(ids, id)
	}
	return ids
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}
