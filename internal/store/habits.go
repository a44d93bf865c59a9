package store

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"habitctl/internal/logger"
	"habitctl/internal/models"
)

// HabitResult is the outcome of a habit mutation, carrying the server's
// version of the record on success.
type HabitResult struct {
	Success bool
	Habit   models.Habit
	Error   string
}

// EntryResult is the outcome of an entry mutation.
type EntryResult struct {
	Success bool
	Entry   models.Entry
	Error   string
}

// EntriesResult is the outcome of an entry fetch.
type EntriesResult struct {
	Success bool
	Entries []models.Entry
	Error   string
}

// AnalyticsResult is the outcome of the per-habit analytics query.
type AnalyticsResult struct {
	Success   bool
	Analytics []models.HabitAnalytics
	Error     string
}

// Habits caches the authenticated user's habits, a single date's entries,
// and the dashboard aggregate. The server is the source of truth; this
// cache is advisory and is repopulated whenever the session becomes
// authenticated and cleared when it becomes anonymous.
type Habits struct {
	session *Session

	mu      sync.Mutex
	habits  []models.Habit
	entries []models.Entry
	stats   *models.DashboardStats
	loading bool
	err     string
}

// NewHabits creates a domain store bound to the given session. It
// subscribes to session transitions: authentication triggers a habit and
// stats repopulation, logout discards the cache.
func NewHabits(session *Session) *Habits {
	h := &Habits{session: session}
	session.Subscribe(func(authenticated bool) {
		if authenticated {
			ctx := context.Background()
			h.FetchHabits(ctx)
			h.FetchDashboardStats(ctx)
		} else {
			h.reset()
		}
	})
	return h
}

// HabitList returns a copy of the cached habit collection.
func (h *Habits) HabitList() []models.Habit {
	h.mu.Lock()
	defer h.mu.Unlock()
	habits := make([]models.Habit, len(h.habits))
	copy(habits, h.habits)
	return habits
}

// EntryList returns a copy of the cached entry working set.
func (h *Habits) EntryList() []models.Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	entries := make([]models.Entry, len(h.entries))
	copy(entries, h.entries)
	return entries
}

// Stats returns the cached dashboard aggregate, or nil before the first
// successful fetch.
func (h *Habits) Stats() *models.DashboardStats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stats
}

// Err returns the most recent operation error message (last-wins).
func (h *Habits) Err() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// FetchHabits replaces the cached habit collection with the server's
// current list.
func (h *Habits) FetchHabits(ctx context.Context) Result {
	h.mu.Lock()
	h.loading = true
	h.mu.Unlock()

	var habits []models.Habit
	if err := h.session.Request(ctx, http.MethodGet, "/habits/", nil, &habits); err != nil {
		h.fail(err)
		return failure(err)
	}

	h.mu.Lock()
	h.habits = habits
	h.loading = false
	h.mu.Unlock()
	return Result{Success: true}
}

// CreateHabit creates the habit server-side and appends the returned
// record to the cache.
func (h *Habits) CreateHabit(ctx context.Context, data models.HabitData) HabitResult {
	var habit models.Habit
	if err := h.session.Request(ctx, http.MethodPost, "/habits/", data, &habit); err != nil {
		h.fail(err)
		return HabitResult{Success: false, Error: err.Error()}
	}

	h.mu.Lock()
	h.habits = append(h.habits, habit)
	h.mu.Unlock()
	return HabitResult{Success: true, Habit: habit}
}

// UpdateHabit updates the habit server-side and replaces the cached record
// with the same id. An id absent from the cache is a silent local no-op;
// the server result is still returned.
func (h *Habits) UpdateHabit(ctx context.Context, id int, data models.HabitUpdate) HabitResult {
	var habit models.Habit
	if err := h.session.Request(ctx, http.MethodPut, fmt.Sprintf("/habits/%d", id), data, &habit); err != nil {
		h.fail(err)
		return HabitResult{Success: false, Error: err.Error()}
	}

	h.mu.Lock()
	for i := range h.habits {
		if h.habits[i].ID == habit.ID {
			h.habits[i] = habit
			break
		}
	}
	h.mu.Unlock()
	return HabitResult{Success: true, Habit: habit}
}

// DeleteHabit deletes the habit server-side and removes the cached record
// with the same id, if present.
func (h *Habits) DeleteHabit(ctx context.Context, id int) Result {
	if err := h.session.Request(ctx, http.MethodDelete, fmt.Sprintf("/habits/%d", id), nil, nil); err != nil {
		h.fail(err)
		return failure(err)
	}

	h.mu.Lock()
	for i := range h.habits {
		if h.habits[i].ID == id {
			h.habits = append(h.habits[:i], h.habits[i+1:]...)
			break
		}
	}
	h.mu.Unlock()
	return Result{Success: true}
}

// FetchEntriesForDate replaces the entry working set with all entries for
// the given day. The set is single-date: fetching a second date discards
// the first date's entries.
func (h *Habits) FetchEntriesForDate(ctx context.Context, date string) EntriesResult {
	var entries []models.Entry
	if err := h.session.Request(ctx, http.MethodGet, "/habits/entries/date/"+date, nil, &entries); err != nil {
		h.fail(err)
		return EntriesResult{Success: false, Error: err.Error()}
	}

	h.mu.Lock()
	h.entries = entries
	h.mu.Unlock()
	return EntriesResult{Success: true, Entries: entries}
}

// CreateEntry records a day's outcome for a habit, appends the returned
// record, and refreshes the dashboard aggregate, since any entry mutation
// can move streaks and completion counts.
func (h *Habits) CreateEntry(ctx context.Context, data models.EntryData) EntryResult {
	var entry models.Entry
	if err := h.session.Request(ctx, http.MethodPost, "/habits/entries", data, &entry); err != nil {
		h.fail(err)
		return EntryResult{Success: false, Error: err.Error()}
	}

	h.mu.Lock()
	h.entries = append(h.entries, entry)
	h.mu.Unlock()

	h.FetchDashboardStats(ctx)
	return EntryResult{Success: true, Entry: entry}
}

// UpdateEntry updates an entry, replaces the cached record with the same
// id, and refreshes the dashboard aggregate.
func (h *Habits) UpdateEntry(ctx context.Context, id int, data models.EntryUpdate) EntryResult {
	var entry models.Entry
	if err := h.session.Request(ctx, http.MethodPut, fmt.Sprintf("/habits/entries/%d", id), data, &entry); err != nil {
		h.fail(err)
		return EntryResult{Success: false, Error: err.Error()}
	}

	h.mu.Lock()
	for i := range h.entries {
		if h.entries[i].ID == entry.ID {
			h.entries[i] = entry
			break
		}
	}
	h.mu.Unlock()

	h.FetchDashboardStats(ctx)
	return EntryResult{Success: true, Entry: entry}
}

// FetchDashboardStats replaces the cached aggregate wholesale.
func (h *Habits) FetchDashboardStats(ctx context.Context) Result {
	var stats models.DashboardStats
	if err := h.session.Request(ctx, http.MethodGet, "/analytics/dashboard", nil, &stats); err != nil {
		h.fail(err)
		return failure(err)
	}

	h.mu.Lock()
	h.stats = &stats
	h.mu.Unlock()
	return Result{Success: true}
}

// HabitAnalytics fetches per-habit analytics over a trailing window of
// days. The result goes straight to the caller; no cache is touched, so
// overlapping calls with different windows cannot clobber each other.
func (h *Habits) HabitAnalytics(ctx context.Context, days int) AnalyticsResult {
	var analytics []models.HabitAnalytics
	endpoint := fmt.Sprintf("/analytics/habits?days=%d", days)
	if err := h.session.Request(ctx, http.MethodGet, endpoint, nil, &analytics); err != nil {
		h.fail(err)
		return AnalyticsResult{Success: false, Error: err.Error()}
	}
	return AnalyticsResult{Success: true, Analytics: analytics}
}

func (h *Habits) fail(err error) {
	logger.Debug("Habit store operation failed", "error", err)
	h.mu.Lock()
	h.err = err.Error()
	h.loading = false
	h.mu.Unlock()
}

func (h *Habits) reset() {
	h.mu.Lock()
	h.habits = nil
	h.entries = nil
	h.stats = nil
	h.err = ""
	h.loading = false
	h.mu.Unlock()
}
