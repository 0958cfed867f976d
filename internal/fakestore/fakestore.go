package fakestore

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Path is the collection path the store serves.
const Path = "/movies.json"

// Store is an in-memory collection. The zero value is not usable; call New.
type Store struct {
	mu         sync.Mutex
	keys       []string
	docs       map[string]json.RawMessage
	posts      []json.RawMessage
	postHeader []http.Header
	gets       int
	failStatus int
	hold       chan struct{}

	router chi.Router
}

// New returns an empty store.
func New() *Store {
	s := &Store{docs: make(map[string]json.RawMessage)}
	r := chi.NewRouter()
	r.Get(Path, s.handleList)
	r.Post(Path, s.handleCreate)
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Store) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Seed stores doc under key, keeping insertion order.
func (s *Store) Seed(key string, doc any) {
	raw, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(key, raw)
}

// FailWith makes every request answer status. Zero restores normal service.
func (s *Store) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
}

// Hold blocks list requests until the returned release func is called.
func (s *Store) Hold() (release func()) {
	ch := make(chan struct{})
	s.mu.Lock()
	s.hold = ch
	s.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			if s.hold == ch {
				s.hold = nil
			}
			s.mu.Unlock()
			close(ch)
		})
	}
}

// Posts returns the raw bodies of every accepted POST.
func (s *Store) Posts() []json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]json.RawMessage, len(s.posts))
	copy(out, s.posts)
	return out
}

// PostHeaders returns the headers of every accepted POST.
func (s *Store) PostHeaders() []http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]http.Header, len(s.postHeader))
	copy(out, s.postHeader)
	return out
}

// Gets reports how many list requests were served.
func (s *Store) Gets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gets
}

// Len reports the number of stored documents.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}

func (s *Store) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	hold := s.hold
	s.mu.Unlock()
	if hold != nil {
		select {
		case <-hold:
		case <-r.Context().Done():
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	if s.failStatus != 0 {
		http.Error(w, `{"error":"unavailable"}`, s.failStatus)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if len(s.keys) == 0 {
		_, _ = w.Write([]byte("null"))
		return
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, _ := json.Marshal(key)
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(s.docs[key])
	}
	buf.WriteByte('}')
	_, _ = w.Write(buf.Bytes())
}

func (s *Store) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || !json.Valid(body) {
		http.Error(w, `{"error":"Invalid data; couldn't parse JSON object."}`, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failStatus != 0 {
		http.Error(w, `{"error":"unavailable"}`, s.failStatus)
		return
	}
	key := "-" + uuid.NewString()
	s.put(key, json.RawMessage(body))
	s.posts = append(s.posts, json.RawMessage(body))
	s.postHeader = append(s.postHeader, r.Header.Clone())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"name": key})
}

func (s *Store) put(key string, raw json.RawMessage) {
	if _, ok := s.docs[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.docs[key] = raw
}
