package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// fakeBackend emulates the task REST API in memory
type fakeBackend struct {
	mu       sync.Mutex
	tasks    map[string]Task
	order    []string
	requests int
	lastBody map[string]any
}

var fakeNow = time.Date(2026, 1, 22, 10, 0, 0, 0, time.UTC)

func newFakeBackend(t *testing.T) (*fakeBackend, *Client) {
	t.Helper()

	fb := &fakeBackend{tasks: make(map[string]Task)}

	r := mux.NewRouter()
	r.Use(fb.count)
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/tasks", fb.list).Methods(http.MethodGet)
	api.HandleFunc("/tasks", fb.create).Methods(http.MethodPost)
	api.HandleFunc("/tasks/{id}", fb.get).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{id}", fb.update).Methods(http.MethodPut)
	api.HandleFunc("/tasks/{id}", fb.remove).Methods(http.MethodDelete)
	api.HandleFunc("/tasks/{id}/toggle", fb.toggle).Methods(http.MethodPatch)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return fb, NewClient(srv.URL+"/api/", time.Second)
}

func (fb *fakeBackend) seed(t Task) Task {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	fb.tasks[t.ID] = t
	fb.order = append(fb.order, t.ID)
	return t
}

func (fb *fakeBackend) requestCount() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.requests
}

func (fb *fakeBackend) body() map[string]any {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.lastBody
}

func (fb *fakeBackend) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		fb.requests++
		fb.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func respond(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, code int, msg string) {
	respond(w, code, map[string]string{"error": msg})
}

// lookup resolves the {id} route variable. Callers hold fb.mu.
func (fb *fakeBackend) lookup(w http.ResponseWriter, r *http.Request) (Task, bool) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid task ID")
		return Task{}, false
	}
	t, ok := fb.tasks[id]
	if !ok {
		respondError(w, http.StatusNotFound, "task not found")
		return Task{}, false
	}
	return t, true
}

// decode reads the request body into a generic map. Callers hold fb.mu.
func (fb *fakeBackend) decode(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	fb.lastBody = body
	return body, true
}

func (fb *fakeBackend) list(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	out := make([]Task, 0, len(fb.order))
	for _, id := range fb.order {
		if t, ok := fb.tasks[id]; ok {
			out = append(out, t)
		}
	}
	respond(w, http.StatusOK, out)
}

func (fb *fakeBackend) get(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	if t, ok := fb.lookup(w, r); ok {
		respond(w, http.StatusOK, t)
	}
}

func (fb *fakeBackend) create(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	body, ok := fb.decode(w, r)
	if !ok {
		return
	}
	t := Task{ID: uuid.NewString(), CreatedAt: fakeNow}
	apply(&t, body)
	if t.Title == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}
	fb.tasks[t.ID] = t
	fb.order = append(fb.order, t.ID)
	respond(w, http.StatusCreated, t)
}

func (fb *fakeBackend) update(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	t, ok := fb.lookup(w, r)
	if !ok {
		return
	}
	body, ok := fb.decode(w, r)
	if !ok {
		return
	}
	apply(&t, body)
	updated := fakeNow.Add(time.Hour)
	t.UpdatedAt = &updated
	fb.tasks[t.ID] = t
	respond(w, http.StatusOK, t)
}

func (fb *fakeBackend) remove(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	t, ok := fb.lookup(w, r)
	if !ok {
		return
	}
	delete(fb.tasks, t.ID)
	w.WriteHeader(http.StatusNoContent)
}

func (fb *fakeBackend) toggle(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	t, ok := fb.lookup(w, r)
	if !ok {
		return
	}
	t.Completed = !t.Completed
	fb.tasks[t.ID] = t
	respond(w, http.StatusOK, t)
}

// apply copies the recognized body fields onto t. Deadlines are stored with a
// time part, the way a timestamp column would return them.
func apply(t *Task, body map[string]any) {
	for k, v := range body {
		switch k {
		case "title":
			t.Title, _ = v.(string)
		case "description":
			t.Description, _ = v.(string)
		case "priority":
			t.Priority, _ = v.(string)
		case "domain":
			t.Domain, _ = v.(string)
		case "is_backlog":
			t.IsBacklog, _ = v.(bool)
		case "completed":
			t.Completed, _ = v.(bool)
		case "deadline":
			if s, ok := v.(string); ok {
				d := s + "T00:00:00Z"
				t.Deadline = &d
			} else {
				t.Deadline = nil
			}
		}
	}
}
