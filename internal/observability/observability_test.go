package observability

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendServerTiming(t *testing.T) {
	tests := []struct {
		testName string

		name  string
		durMs float64
		desc  string

		expected string
	}{
		{
			testName: "durMs - ok, desc - ok",

			name:  "app",
			durMs: 100.5,
			desc:  "description",

			expected: `app;dur=100.50;desc="description"`,
		},
		{
			testName: "durMs - ok, desc is empty",

			name:  "app",
			durMs: 200.0,
			desc:  "",

			expected: "app;dur=200.00",
		},
		{
			testName: "durMs is zero, desc is ok",

			name:  "app",
			durMs: 0,
			desc:  "description",

			expected: `app;desc="description"`,
		},
		{
			testName: "durMs is zero, desc is empty",

			name:  "app",
			durMs: 0,
			desc:  "",

			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			w := httptest.NewRecorder()
			AppendServerTiming(w, tt.name, tt.durMs, tt.desc)

			require.Equal(t, tt.expected, w.Header().Get("Server-Timing"))
		})
	}
}

func TestInmemCacheTotals(t *testing.T) {
	m := NewInmem(10)

	m.IncCacheHit()
	m.IncCacheHit()
	m.IncCacheMiss()

	hits, misses := m.CacheTotals()
	require.Equal(t, 2, hits)
	require.Equal(t, 1, misses)
}

func TestInmemKeepsLastMax(t *testing.T) {
	m := NewInmem(2)

	m.ObserveHTTP("GET", "/dishes", 200, 1)
	m.ObserveHTTP("GET", "/orders", 200, 1)
	m.ObserveHTTP("POST", "/orders", 201, 1)

	m.mu.Lock()
	defer m.mu.Unlock()
	require.Len(t, m.last, 2)
}
