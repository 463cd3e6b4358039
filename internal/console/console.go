// Package console runs the provider probe and the analyze flow against the
// API and writes their outcome to a Display.
package console

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sozercan/textlens/apimodels"
	"github.com/sozercan/textlens/pkg/client"
)

const (
	providerUnavailable = "Provider: unavailable"
	networkError        = "Network error"
)

// API is the subset of the HTTP client the console needs.
type API interface {
	Health(ctx context.Context) (*apimodels.HealthResponse, error)
	Analyze(ctx context.Context, req apimodels.AnalysisRequest) (*apimodels.AnalysisResponse, error)
}

// Display holds the two output nodes. Each call replaces the previous text.
type Display interface {
	SetProvider(text string)
	SetResult(text string)
}

// Form supplies the current input text and option flags.
type Form interface {
	Text() string
	Options() apimodels.AnalysisOptions
}

type Console struct {
	api     API
	display Display
	form    Form
}

func New(api API, display Display, form Form) *Console {
	return &Console{
		api:     api,
		display: display,
		form:    form,
	}
}

// LoadProvider shows which provider the backend is running, even when it
// reports an empty name. Any failure shows the unavailable placeholder instead.
func (c *Console) LoadProvider(ctx context.Context) {
	health, err := c.api.Health(ctx)
	if err != nil {
		slog.Debug("Provider probe failed", "error", err)
		c.display.SetProvider(providerUnavailable)
		return
	}
	c.display.SetProvider("Provider: " + health.Provider)
}

// Analyze submits the form and shows the result, the HTTP error, or a network
// error. Calls are independent; whichever finishes last owns the display.
func (c *Console) Analyze(ctx context.Context) {
	opts := c.form.Options()
	req := apimodels.AnalysisRequest{
		Text:    c.form.Text(),
		Options: &opts,
	}

	resp, err := c.api.Analyze(ctx, req)
	if err != nil {
		c.display.SetResult(errorText(err))
		return
	}
	c.display.SetResult(RenderResult(resp))
}

func errorText(err error) string {
	var se *client.StatusError
	if errors.As(err, &se) {
		return "Error: " + se.Error()
	}
	slog.Debug("Analyze request failed", "error", err)
	return networkError
}
