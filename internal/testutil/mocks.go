package testutil

import (
	"context"
	"sync"

	"github.com/Kopaev/Turksat-42e-RUS/internal/models"
	"github.com/Kopaev/Turksat-42e-RUS/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogCall
}

type LogCall struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogCall{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockGuideService implements services.GuideServiceInterface with canned
// results and call counters.
type MockGuideService struct {
	mu            sync.Mutex
	RefreshCalls  int
	QueryCalls    []QueryCall
	RefreshResult *models.RefreshResult
	QueryResult   *models.QueryResult
	StatResult    *models.CacheInfo
}

type QueryCall struct {
	Date    string
	Channel string
}

func (m *MockGuideService) Refresh(_ context.Context) *models.RefreshResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RefreshCalls++
	if m.RefreshResult != nil {
		return m.RefreshResult
	}
	return &models.RefreshResult{Success: true}
}

func (m *MockGuideService) Query(date, channel string) *models.QueryResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QueryCalls = append(m.QueryCalls, QueryCall{Date: date, Channel: channel})
	if m.QueryResult != nil {
		return m.QueryResult
	}
	return &models.QueryResult{Success: true}
}

func (m *MockGuideService) Stat() *models.CacheInfo {
	if m.StatResult != nil {
		return m.StatResult
	}
	return &models.CacheInfo{Exists: false}
}

// MockCache is a plain map-backed CacheProviderInterface.
type MockCache struct {
	mu     sync.Mutex
	Data   map[string][]byte
	Clears int
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Data[key]
	return v, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data = make(map[string][]byte)
	m.Clears++
}
