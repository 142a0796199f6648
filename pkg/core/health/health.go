package health

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// Status represents the outcome of an environment check
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
	StatusUnknown   Status = "unknown"
)

// worse reports whether s outranks other in a report summary
func (s Status) worse(other Status) bool {
	return s.rank() > other.rank()
}

func (s Status) rank() int {
	switch s {
	case StatusUnhealthy:
		return 3
	case StatusDegraded:
		return 2
	case StatusUnknown:
		return 1
	default:
		return 0
	}
}

// CheckResult is the outcome of one check
type CheckResult struct {
	Name     string
	Status   Status
	Message  string
	Duration time.Duration
	Details  map[string]interface{}
}

// Checker inspects one part of the environment
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

type namedCheck struct {
	name string
	fn   func(ctx context.Context) CheckResult
}

// NewChecker creates a named checker from a function
func NewChecker(name string, fn func(ctx context.Context) CheckResult) Checker {
	return namedCheck{name: name, fn: fn}
}

func (c namedCheck) Name() string { return c.name }

func (c namedCheck) Check(ctx context.Context) CheckResult { return c.fn(ctx) }

// Registry holds the checks of an application by name
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	app      string
	version  string
}

// NewRegistry creates an empty registry
func NewRegistry(app, version string) *Registry {
	return &Registry{
		checkers: make(map[string]Checker),
		app:      app,
		version:  version,
	}
}

// Register adds a checker, replacing one with the same name
func (r *Registry) Register(checker Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[checker.Name()] = checker
}

// RegisterFunc adds a check function
func (r *Registry) RegisterFunc(name string, fn func(ctx context.Context) CheckResult) {
	r.Register(NewChecker(name, fn))
}

// Check runs all checks concurrently. Results are ordered by name and the
// report carries the worst status.
func (r *Registry) Check(ctx context.Context) *Report {
	r.mu.RLock()
	names := make([]string, 0, len(r.checkers))
	for name := range r.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	checkers := make([]Checker, len(names))
	for i, name := range names {
		checkers[i] = r.checkers[name]
	}
	r.mu.RUnlock()

	results := make([]CheckResult, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Add(1)
		go func(i int, c Checker) {
			defer wg.Done()
			start := time.Now()
			result := c.Check(ctx)
			result.Duration = time.Since(start)
			if result.Name == "" {
				result.Name = c.Name()
			}
			results[i] = result
		}(i, c)
	}
	wg.Wait()

	report := &Report{
		App:       r.app,
		Version:   r.version,
		Status:    StatusHealthy,
		Timestamp: time.Now(),
		Checks:    results,
	}
	for _, result := range results {
		if result.Status.worse(report.Status) {
			report.Status = result.Status
		}
	}
	return report
}

// CheckWithTimeout runs all checks with a timeout
func (r *Registry) CheckWithTimeout(timeout time.Duration) *Report {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return r.Check(ctx)
}

// Report is the outcome of all checks
type Report struct {
	App       string        `json:"app"`
	Version   string        `json:"version"`
	Status    Status        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Checks    []CheckResult `json:"checks"`
}

// String returns a string representation of the report
func (r *Report) String() string {
	return fmt.Sprintf("App: %s, Status: %s, Checks: %d", r.App, r.Status, len(r.Checks))
}

// Write prints one line per check followed by the overall status
func (r *Report) Write(w io.Writer) error {
	for _, c := range r.Checks {
		if _, err := fmt.Fprintf(w, "%-10s %-10s %s\n", c.Name, c.Status, c.Message); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s v%s: %s\n", r.App, r.Version, r.Status)
	return err
}

// Common checks

// FileWritableCheck reports whether a file can be created or appended to.
// An empty path is healthy since nothing will be written.
func FileWritableCheck(name, path string) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		result := CheckResult{
			Name:    name,
			Status:  StatusHealthy,
			Details: map[string]interface{}{"path": path},
		}
		if path == "" {
			result.Message = "not configured"
			return result
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			result.Status = StatusUnhealthy
			result.Message = err.Error()
			return result
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			result.Status = StatusUnhealthy
			result.Message = err.Error()
			return result
		}
		f.Close()
		result.Message = "writable"
		return result
	})
}

// ErrorCheck turns the outcome of fn into a result. A failure is reported
// with status onError.
func ErrorCheck(name string, onError Status, fn func(ctx context.Context) (string, error)) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		message, err := fn(ctx)
		if err != nil {
			return CheckResult{Name: name, Status: onError, Message: err.Error()}
		}
		return CheckResult{Name: name, Status: StatusHealthy, Message: message}
	})
}
