package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Job states reported by the status endpoint.
const (
	JobPending   = "pending"
	JobRunning   = "running"
	JobCompleted = "completed"
	JobFailed    = "failed"
)

// ScrapeRequest is the POST /scrape payload. OutputDir and Prefix are
// optional per-job overrides of the configured output location.
type ScrapeRequest struct {
	// URL is the documentation root to crawl.
	URL string `json:"url"`

	OutputDir string `json:"output_dir,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
}

// JobStatus is the externally visible state of one scrape job.
type JobStatus struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	FilePaths []string  `json:"file_paths,omitempty"`
	Error     string    `json:"error,omitempty"`
	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScrapeFunc runs one crawl and returns the paths of the files it
// produced.
type ScrapeFunc func(ctx context.Context, req ScrapeRequest) ([]string, error)

// StatusTracker holds job state behind a mutex so handlers and workers
// never race on it.
type StatusTracker struct {
	mu   sync.Mutex
	jobs map[string]JobStatus
}

// NewStatusTracker creates an empty StatusTracker.
func NewStatusTracker() *StatusTracker {
	return &StatusTracker{jobs: make(map[string]JobStatus)}
}

// Create registers a new pending job and returns its ID.
func (t *StatusTracker) Create(url string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := uuid.NewString()
	now := time.Now().UTC()
	t.jobs[id] = JobStatus{
		ID:        id,
		URL:       url,
		Status:    JobPending,
		StartedAt: now,
		UpdatedAt: now,
	}
	return id
}

// Update applies fn to the job's status under the lock.
func (t *StatusTracker) Update(id string, fn func(*JobStatus)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	job, ok := t.jobs[id]
	if !ok {
		return
	}
	fn(&job)
	job.UpdatedAt = time.Now().UTC()
	t.jobs[id] = job
}

// Get returns the job's status.
func (t *StatusTracker) Get(id string) (JobStatus, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	job, ok := t.jobs[id]
	return job, ok
}

// List returns all jobs, newest first.
func (t *StatusTracker) List() []JobStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	jobs := make([]JobStatus, 0, len(t.jobs))
	for _, job := range t.jobs {
		jobs = append(jobs, job)
	}
	for i := range jobs {
		for j := i + 1; j < len(jobs); j++ {
			if jobs[j].StartedAt.After(jobs[i].StartedAt) {
				jobs[i], jobs[j] = jobs[j], jobs[i]
			}
		}
	}
	return jobs
}

// Server exposes the crawl trigger API: POST /scrape starts a job,
// GET /status/{id} reports it.
type Server struct {
	scrape  ScrapeFunc
	tracker *StatusTracker
	logger  *slog.Logger
	mux     *http.ServeMux

	// baseCtx parents the detached job contexts.
	baseCtx context.Context
}

// NewServer wires handlers onto an HTTP mux. Jobs started by the server
// outlive their triggering request; ctx bounds their lifetime.
func NewServer(ctx context.Context, scrape ScrapeFunc, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		scrape:  scrape,
		tracker: NewStatusTracker(),
		logger:  logger,
		mux:     http.NewServeMux(),
		baseCtx: ctx,
	}
	s.routes()
	return s
}

// ServeHTTP satisfies the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.HandleFunc("/scrape", s.handleScrape)
	s.mux.HandleFunc("/status", s.handleStatusList)
	s.mux.HandleFunc("/status/", s.handleStatusByID)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid json payload: %v", err), http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		http.Error(w, "url is required", http.StatusBadRequest)
		return
	}

	id := s.tracker.Create(req.URL)
	go s.run(id, req)

	writeJSON(w, http.StatusAccepted, map[string]string{"job_id": id})
}

// run executes one job in the background and records its outcome.
func (s *Server) run(id string, req ScrapeRequest) {
	s.tracker.Update(id, func(j *JobStatus) {
		j.Status = JobRunning
		j.Message = "crawl in progress"
	})
	s.logger.Info("scrape job started", "job_id", id, "url", req.URL)

	paths, err := s.scrape(s.baseCtx, req)
	if err != nil {
		s.logger.Error("scrape job failed", "job_id", id, "url", req.URL, "err", err)
		s.tracker.Update(id, func(j *JobStatus) {
			j.Status = JobFailed
			j.Message = "crawl failed"
			j.Error = err.Error()
		})
		return
	}

	s.logger.Info("scrape job completed", "job_id", id, "url", req.URL, "files", len(paths))
	s.tracker.Update(id, func(j *JobStatus) {
		j.Status = JobCompleted
		j.Message = "crawl completed"
		j.FilePaths = paths
	})
}

func (s *Server) handleStatusList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, s.tracker.List())
}

func (s *Server) handleStatusByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/status/"), "/")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	job, ok := s.tracker.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
