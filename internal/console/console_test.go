package console

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/textlens/apimodels"
	"github.com/sozercan/textlens/pkg/client"
)

func newConsole(t *testing.T, handler http.HandlerFunc, form Form) (*Console, *Terminal) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	term := NewTerminal(&bytes.Buffer{})
	return New(client.New(client.WithBaseURL(server.URL)), term, form), term
}

func TestLoadProvider(t *testing.T) {
	testCases := []struct {
		name     string
		handler  http.HandlerFunc
		expected string
	}{
		{
			name: "provider reported",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"ok","provider":"X"}`))
			},
			expected: "Provider: X",
		},
		{
			name: "non-json body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>starting</html>"))
			},
			expected: "Provider: unavailable",
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"detail":"boom"}`))
			},
			expected: "Provider: unavailable",
		},
		{
			name: "missing provider",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"ok"}`))
			},
			expected: "Provider: unavailable",
		},
		{
			name: "empty provider",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"ok","provider":""}`))
			},
			expected: "Provider: ",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, term := newConsole(t, tc.handler, StaticForm{})
			c.LoadProvider(context.Background())
			assert.Equal(t, tc.expected, term.Provider())
		})
	}
}

func TestLoadProviderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	term := NewTerminal(&bytes.Buffer{})
	New(client.New(client.WithBaseURL(url)), term, StaticForm{}).LoadProvider(context.Background())
	assert.Equal(t, "Provider: unavailable", term.Provider())
}

func TestAnalyzeScenario(t *testing.T) {
	form := StaticForm{Input: "I love this", Opts: apimodels.DefaultOptions()}
	c, term := newConsole(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sentiment":{"label":"positive","score":0.98},"keyphrases":["love"],"summary":"Positive statement.","meta":{"provider":"local","elapsed_ms":12}}`))
	}, form)

	c.Analyze(context.Background())
	assert.Equal(t, "Sentiment: positive (0.98)\nKeyphrases: love\nSummary: Positive statement.\nMeta: provider=local elapsed=12ms", term.Result())
}

func TestAnalyzeFractionalElapsed(t *testing.T) {
	form := StaticForm{Input: "Some text.", Opts: apimodels.AnalysisOptions{Summary: true}}
	c, term := newConsole(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"summary":"S.","meta":{"provider":"local","elapsed_ms":12.5}}`))
	}, form)

	c.Analyze(context.Background())
	assert.Equal(t, "Sentiment: n/a\nKeyphrases: n/a\nSummary: S.\nMeta: provider=local elapsed=12.5ms", term.Result())
}

func TestAnalyzeHTTPError(t *testing.T) {
	c, term := newConsole(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"bad text"}`))
	}, StaticForm{Input: "x"})

	c.Analyze(context.Background())
	assert.Equal(t, `Error: 400 {"detail":"bad text"}`, term.Result())
}

func TestAnalyzeHTTPErrorWithoutJSON(t *testing.T) {
	c, term := newConsole(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}, StaticForm{Input: "x"})

	c.Analyze(context.Background())
	assert.Equal(t, "Error: 502 {}", term.Result())
}

func TestAnalyzeNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	term := NewTerminal(&bytes.Buffer{})
	New(client.New(client.WithBaseURL(url)), term, StaticForm{Input: "x"}).Analyze(context.Background())
	assert.Equal(t, "Network error", term.Result())
}

// scriptedAPI answers each Analyze call with whatever arrives on its channel.
type scriptedAPI struct {
	mu      sync.Mutex
	replies []chan *apimodels.AnalysisResponse
	calls   int
	started chan struct{}
}

func (s *scriptedAPI) Health(context.Context) (*apimodels.HealthResponse, error) {
	return nil, errors.New("not used")
}

func (s *scriptedAPI) Analyze(context.Context, apimodels.AnalysisRequest) (*apimodels.AnalysisResponse, error) {
	s.mu.Lock()
	reply := s.replies[s.calls]
	s.calls++
	s.mu.Unlock()
	s.started <- struct{}{}
	return <-reply, nil
}

func TestAnalyzeLastFinisherWins(t *testing.T) {
	api := &scriptedAPI{
		replies: []chan *apimodels.AnalysisResponse{make(chan *apimodels.AnalysisResponse), make(chan *apimodels.AnalysisResponse)},
		started: make(chan struct{}, 2),
	}
	term := NewTerminal(&bytes.Buffer{})
	c := New(api, term, StaticForm{Input: "x"})

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Analyze(context.Background())
		}()
		<-api.started
	}

	api.replies[1] <- &apimodels.AnalysisResponse{Summary: "second", Meta: meta()}
	require.Eventually(t, func() bool {
		return strings.Contains(term.Result(), "second")
	}, time.Second, time.Millisecond)

	api.replies[0] <- &apimodels.AnalysisResponse{Summary: "first", Meta: meta()}
	wg.Wait()

	assert.Equal(t, "Sentiment: n/a\nKeyphrases: n/a\nSummary: first\nMeta: provider=local elapsed=12ms", term.Result())
}
