package store

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"habitctl/internal/api"
	"habitctl/internal/keyring"
	"habitctl/internal/models"
)

// fakeAPI is an in-memory stand-in for the habit service, covering the
// endpoints the stores call.
type fakeAPI struct {
	mu sync.Mutex

	email    string
	password string
	user     models.User

	habits        []models.Habit
	entriesByDate map[string][]models.Entry
	nextID        int

	statsFetches    int
	failEntryCreate bool
	failLogin       bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		email:         "a@b.com",
		password:      "secret1",
		user:          models.User{ID: 1, Email: "a@b.com", FullName: "A B", Timezone: "UTC", Theme: "light", IsActive: true},
		entriesByDate: make(map[string][]models.Entry),
		nextID:        1,
	}
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login/email", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		ok := !f.failLogin && body.Email == f.email && body.Password == f.password
		f.mu.Unlock()
		if !ok {
			writeDetail(w, http.StatusUnauthorized, "Incorrect email or password")
			return
		}
		json.NewEncoder(w).Encode(models.TokenPair{AccessToken: "access-tok", RefreshToken: "refresh-tok"})
	})

	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		var data models.RegisterData
		json.NewDecoder(r.Body).Decode(&data)
		f.mu.Lock()
		f.email = data.Email
		f.password = data.Password
		f.user = models.User{ID: 1, Email: data.Email, FullName: data.FullName, Timezone: "UTC", Theme: "light", IsActive: true}
		user := f.user
		f.mu.Unlock()
		json.NewEncoder(w).Encode(user)
	})

	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		f.mu.Lock()
		user := f.user
		f.mu.Unlock()
		json.NewEncoder(w).Encode(user)
	})

	mux.HandleFunc("PUT /users/me", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		var update models.UserUpdate
		json.NewDecoder(r.Body).Decode(&update)
		f.mu.Lock()
		if update.Theme != nil {
			f.user.Theme = *update.Theme
		}
		if update.FullName != nil {
			f.user.FullName = *update.FullName
		}
		user := f.user
		f.mu.Unlock()
		json.NewEncoder(w).Encode(user)
	})

	mux.HandleFunc("GET /habits/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		habits := append([]models.Habit{}, f.habits...)
		f.mu.Unlock()
		json.NewEncoder(w).Encode(habits)
	})

	mux.HandleFunc("POST /habits/", func(w http.ResponseWriter, r *http.Request) {
		var data models.HabitData
		json.NewDecoder(r.Body).Decode(&data)
		f.mu.Lock()
		habit := models.Habit{ID: f.nextID, Name: data.Name, HabitType: data.HabitType, IsActive: true}
		f.nextID++
		f.habits = append(f.habits, habit)
		f.mu.Unlock()
		json.NewEncoder(w).Encode(habit)
	})

	mux.HandleFunc("PUT /habits/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		var data models.HabitUpdate
		json.NewDecoder(r.Body).Decode(&data)
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.habits {
			if f.habits[i].ID == id {
				if data.Name != nil {
					f.habits[i].Name = *data.Name
				}
				json.NewEncoder(w).Encode(f.habits[i])
				return
			}
		}
		// The server may know habits the client cache does not.
		habit := models.Habit{ID: id, Name: "server-side", IsActive: true}
		if data.Name != nil {
			habit.Name = *data.Name
		}
		json.NewEncoder(w).Encode(habit)
	})

	mux.HandleFunc("DELETE /habits/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		f.mu.Lock()
		for i := range f.habits {
			if f.habits[i].ID == id {
				f.habits = append(f.habits[:i], f.habits[i+1:]...)
				break
			}
		}
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("GET /habits/entries/date/{date}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		entries := append([]models.Entry{}, f.entriesByDate[r.PathValue("date")]...)
		f.mu.Unlock()
		json.NewEncoder(w).Encode(entries)
	})

	mux.HandleFunc("POST /habits/entries", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		fail := f.failEntryCreate
		f.mu.Unlock()
		if fail {
			writeDetail(w, http.StatusBadRequest, "Entry already exists for this date")
			return
		}
		var data models.EntryData
		json.NewDecoder(r.Body).Decode(&data)
		f.mu.Lock()
		entry := models.Entry{ID: f.nextID, HabitID: data.HabitID, Date: data.Date, Completed: data.Completed, Value: data.Value}
		f.nextID++
		f.entriesByDate[data.Date] = append(f.entriesByDate[data.Date], entry)
		f.mu.Unlock()
		json.NewEncoder(w).Encode(entry)
	})

	mux.HandleFunc("PUT /habits/entries/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		var data models.EntryUpdate
		json.NewDecoder(r.Body).Decode(&data)
		f.mu.Lock()
		defer f.mu.Unlock()
		for date, entries := range f.entriesByDate {
			for i := range entries {
				if entries[i].ID == id {
					if data.Completed != nil {
						entries[i].Completed = *data.Completed
					}
					if data.Value != nil {
						entries[i].Value = data.Value
					}
					f.entriesByDate[date] = entries
					json.NewEncoder(w).Encode(entries[i])
					return
				}
			}
		}
		writeDetail(w, http.StatusNotFound, "Entry not found")
	})

	mux.HandleFunc("GET /analytics/dashboard", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.statsFetches++
		stats := models.DashboardStats{TotalHabits: len(f.habits), ActiveHabits: len(f.habits)}
		f.mu.Unlock()
		json.NewEncoder(w).Encode(stats)
	})

	mux.HandleFunc("GET /analytics/habits", func(w http.ResponseWriter, r *http.Request) {
		days, _ := strconv.Atoi(r.URL.Query().Get("days"))
		f.mu.Lock()
		analytics := make([]models.HabitAnalytics, 0, len(f.habits))
		for _, habit := range f.habits {
			analytics = append(analytics, models.HabitAnalytics{HabitID: habit.ID, HabitName: habit.Name, TotalDays: days})
		}
		f.mu.Unlock()
		json.NewEncoder(w).Encode(analytics)
	})

	return mux
}

func (f *fakeAPI) statsFetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statsFetches
}

func (f *fakeAPI) authorized(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"detail": %q}`, detail)
}

// newTestStores spins up a fake API and returns a wired session + domain
// store pair backed by an in-memory keyring.
func newTestStores(t *testing.T) (*fakeAPI, keyring.Credentials, *Session, *Habits) {
	t.Helper()
	fake := newFakeAPI()
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	creds := keyring.Memory()
	session := NewSession(api.New(server.URL), creds)
	habits := NewHabits(session)
	return fake, creds, session, habits
}
