package clientmetrics

import (
	"net/http"
	"strconv"
	"time"
)

// Collector интерфейс сбора метрик исходящих запросов
type Collector interface {
	ObserveClientRequest(target, method, status string, duration time.Duration)
}

// RoundTripper обёртка над http.RoundTripper, собирающая метрики исходящих запросов
// Используется для инструментирования клиента Data Layer
type RoundTripper struct {
	target    string
	base      http.RoundTripper
	collector Collector
}

// NewRoundTripper создает инструментированный RoundTripper
// Если base == nil, используется http.DefaultTransport
func NewRoundTripper(target string, base http.RoundTripper, collector Collector) *RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &RoundTripper{
		target:    target,
		base:      base,
		collector: collector,
	}
}

// RoundTrip выполняет запрос и фиксирует метрики
func (rt *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := rt.base.RoundTrip(req)

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	rt.collector.ObserveClientRequest(rt.target, req.Method, status, time.Since(start))

	return resp, err
}
