package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/JexSrs/go-ollama"

	"github.com/sozercan/textlens/internal/config"
)

// Ollama talks to a local Ollama daemon through its generate endpoint.
// Tool definitions are ignored; callers get plain text back.
type Ollama struct {
	client *ollama.Ollama
	model  string
}

func NewOllama(cfg *config.OllamaConfig) (*Ollama, error) {
	hostURL, err := url.Parse(cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", cfg.Host, err)
	}

	slog.Info("Creating Ollama client", "host", cfg.Host, "model", cfg.Model)
	return &Ollama{
		client: ollama.New(*hostURL),
		model:  cfg.Model,
	}, nil
}

func (o *Ollama) Model() string {
	return o.model
}

func (o *Ollama) Analyze(ctx context.Context, systemMessages []string, userMessages []string, opts ...Option) (*Response, error) {
	options := &Options{Model: o.model}
	for _, opt := range opts {
		opt(options)
	}

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		res, err := o.client.Generate(
			o.client.Generate.WithModel(options.Model),
			o.client.Generate.WithSystem(strings.Join(systemMessages, "\n\n")),
			o.client.Generate.WithPrompt(strings.Join(userMessages, "\n\n")),
		)
		if err != nil {
			done <- result{err: fmt.Errorf("ollama generate: %w", err)}
			return
		}
		if !res.Done {
			done <- result{err: fmt.Errorf("ollama generate did not finish")}
			return
		}
		done <- result{text: strings.TrimSpace(strings.Trim(strings.TrimSpace(res.Response), "`"))}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return nil, r.err
		}
		return &Response{Content: r.text}, nil
	}
}
