package metrics

import (
	"sync"
)

// InMemoryMetricsService implements insights.MetricsService with in-memory storage
type InMemoryMetricsService struct {
	mu      sync.RWMutex
	metrics map[string]int64
}

// NewInMemoryMetricsService creates a new in-memory metrics service
func NewInMemoryMetricsService() *InMemoryMetricsService {
	return &InMemoryMetricsService{
		metrics: make(map[string]int64),
	}
}

func (s *InMemoryMetricsService) RecordInsightGenerated(insightType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics["generated:"+insightType]++
}

func (s *InMemoryMetricsService) RecordInsightFailed(insightType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics["failed:"+insightType]++
}

func (s *InMemoryMetricsService) RecordComparison() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics["comparisons"]++
}

func (s *InMemoryMetricsService) GetMetrics() map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]int64)
	for k, v := range s.metrics {
		result[k] = v
	}
	return result
}
