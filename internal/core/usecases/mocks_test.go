// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"sync"

	"sbomatic/internal/core/domain"
)

// mockGenerator es un mock de ports.Generator para tests del orchestrator
type mockGenerator struct {
	mu           sync.Mutex
	name         string
	ecosystem    domain.Ecosystem
	generateFunc func(ctx context.Context, projectDir string) (string, error)
	calls        []string
}

func newMockGenerator(eco domain.Ecosystem) *mockGenerator {
	return &mockGenerator{
		name:      string(eco),
		ecosystem: eco,
	}
}

func (m *mockGenerator) Name() string {
	return m.name
}

func (m *mockGenerator) Ecosystem() domain.Ecosystem {
	return m.ecosystem
}

func (m *mockGenerator) Tools() []string {
	return []string{"mock-" + m.name}
}

func (m *mockGenerator) Generate(ctx context.Context, projectDir string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, projectDir)
	m.mu.Unlock()

	if m.generateFunc != nil {
		return m.generateFunc(ctx, projectDir)
	}
	return projectDir + "/bom-" + m.name + ".json", nil
}

func (m *mockGenerator) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// mockGeneratorWithError crea un mock que siempre falla
func mockGeneratorWithError(eco domain.Ecosystem, err error) *mockGenerator {
	mock := newMockGenerator(eco)
	mock.generateFunc = func(ctx context.Context, projectDir string) (string, error) {
		return "", err
	}
	return mock
}

// mockGeneratorWithPanic crea un mock que hace panic
func mockGeneratorWithPanic(eco domain.Ecosystem) *mockGenerator {
	mock := newMockGenerator(eco)
	mock.generateFunc = func(ctx context.Context, projectDir string) (string, error) {
		panic("boom")
	}
	return mock
}

// mockGeneratorAbsent crea un mock que termina sin artifact
func mockGeneratorAbsent(eco domain.Ecosystem) *mockGenerator {
	mock := newMockGenerator(eco)
	mock.generateFunc = func(ctx context.Context, projectDir string) (string, error) {
		return "", nil
	}
	return mock
}

// mockScanner devuelve una lista fija de proyectos
type mockScanner struct {
	projects []domain.ProjectRecord
	err      error
}

func (m *mockScanner) Scan(ctx context.Context, root string) ([]domain.ProjectRecord, error) {
	return m.projects, m.err
}

// recordingReporter registra los eventos recibidos, en orden
type recordingReporter struct {
	mu       sync.Mutex
	events   []string
	groups   []domain.ProjectGroup
	outcomes []domain.Outcome
	summary  *domain.RunReport
}

func (r *recordingReporter) record(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingReporter) ScanStarted(root string) { r.record("scan_started") }
func (r *recordingReporter) NoProjects(root string)  { r.record("no_projects") }

func (r *recordingReporter) ProjectsFound(groups []domain.ProjectGroup) {
	r.record("projects_found")
	r.groups = groups
}

func (r *recordingReporter) GenerationStarted(total int) { r.record("generation_started") }

func (r *recordingReporter) ProjectStarted(index, total int, project domain.ProjectRecord) {
	r.record("project_started")
}

func (r *recordingReporter) ProjectFinished(outcome domain.Outcome) {
	r.record("project_finished")
	r.outcomes = append(r.outcomes, outcome)
}

func (r *recordingReporter) Summary(report *domain.RunReport) {
	r.record("summary")
	r.summary = report
}

func (r *recordingReporter) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}
