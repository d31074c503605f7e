package inference

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookreviews/pkg/circuitbreaker"
)

func newTestBreaker(name string, failures uint32) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.NewCircuitBreaker(name, circuitbreaker.Config{
		MaxRequests: 1,
		Timeout:     time.Minute,
		ReadyToTrip: circuitbreaker.ConsecutiveFailures(failures),
	})
}

func TestHTTPSummarizer(t *testing.T) {
	t.Run("成功", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req summarizeRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "A long story about sand.", req.Text)

			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"summary":"Sand."}`)
		}))
		defer srv.Close()

		s := NewHTTPSummarizer(srv.URL, srv.Client(), newTestBreaker("summarizer", 5))
		got, err := s.Summarize(context.Background(), "A long story about sand.")
		require.NoError(t, err)
		assert.Equal(t, "Sand.", got)
	})

	t.Run("非2xx返回错误", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "model overloaded", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		s := NewHTTPSummarizer(srv.URL, srv.Client(), newTestBreaker("summarizer", 5))
		_, err := s.Summarize(context.Background(), "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
		assert.Contains(t, err.Error(), "model overloaded")
	})

	t.Run("空摘要视为失败", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"summary":""}`)
		}))
		defer srv.Close()

		s := NewHTTPSummarizer(srv.URL, srv.Client(), newTestBreaker("summarizer", 5))
		_, err := s.Summarize(context.Background(), "text")
		assert.Error(t, err)
	})

	t.Run("超时", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		defer srv.Close()

		s := NewHTTPSummarizer(srv.URL, srv.Client(), newTestBreaker("summarizer", 5))
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := s.Summarize(ctx, "text")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestHTTPSummarizer_BreakerOpens(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	breaker := newTestBreaker("summarizer", 3)
	s := NewHTTPSummarizer(srv.URL, srv.Client(), breaker)

	for i := 0; i < 3; i++ {
		_, err := s.Summarize(context.Background(), "text")
		require.Error(t, err)
	}
	assert.Equal(t, circuitbreaker.StateOpen, breaker.State())

	// 熔断后不再请求下游
	_, err := s.Summarize(context.Background(), "text")
	assert.ErrorIs(t, err, circuitbreaker.ErrOpenState)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPRecommender(t *testing.T) {
	t.Run("成功并透传rating", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "SciFi", req["genre"])
			assert.Equal(t, 4.5, req["rating"])

			_, _ = io.WriteString(w, `{"books":[{"id":1,"title":"Dune"},{"title":"Hyperion"}]}`)
		}))
		defer srv.Close()

		rating := 4.5
		r := NewHTTPRecommender(srv.URL, srv.Client(), newTestBreaker("recommender", 5))
		books, err := r.Recommend(context.Background(), "SciFi", &rating)
		require.NoError(t, err)
		require.Len(t, books, 2)

		require.NotNil(t, books[0].ID)
		assert.Equal(t, uint(1), *books[0].ID)
		assert.Equal(t, "Dune", books[0].Title)
		assert.Nil(t, books[1].ID)
	})

	t.Run("未提供rating时不发送该字段", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			_, ok := req["rating"]
			assert.False(t, ok)

			_, _ = io.WriteString(w, `{"books":[]}`)
		}))
		defer srv.Close()

		r := NewHTTPRecommender(srv.URL, srv.Client(), newTestBreaker("recommender", 5))
		books, err := r.Recommend(context.Background(), "Horror", nil)
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("响应格式错误", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `not json`)
		}))
		defer srv.Close()

		r := NewHTTPRecommender(srv.URL, srv.Client(), newTestBreaker("recommender", 5))
		_, err := r.Recommend(context.Background(), "Horror", nil)
		assert.Error(t, err)
	})
}
