// internal/providers/ollama/provider.go
// Package ollama provides a Completer backed by an Ollama-compatible /api/generate endpoint.
package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/mwiater/careerpath/internal/appconfig"
	"github.com/mwiater/careerpath/internal/logging"
	"github.com/mwiater/careerpath/internal/providers"
)

// Client implements providers.Completer using streamed NDJSON completions.
type Client struct {
	endpoint string
	model    string
	options  appconfig.Options
	client   *http.Client
	debug    bool
	observe  providers.FragmentObserver
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithObserver registers a callback invoked once per decoded stream line.
func WithObserver(fn providers.FragmentObserver) Option {
	return func(c *Client) { c.observe = fn }
}

// New constructs a Client from the application configuration.
func New(cfg *appconfig.Config, opts ...Option) *Client {
	c := &Client{
		endpoint: strings.TrimSpace(cfg.Endpoint),
		model:    cfg.ModelName(),
		options:  cfg.ResolvedOptions(),
		client: &http.Client{
			Timeout:   cfg.RequestTimeout(),
			Transport: &http.Transport{ForceAttemptHTTP2: false},
		},
		debug: cfg.Debug,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Format  string          `json:"format"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
	TopK        int     `json:"top_k"`
	TopP        float64 `json:"top_p"`
}

// generateChunk is one NDJSON line of a streamed /api/generate response.
type generateChunk struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// fragment is a decoded stream line: either a parsed chunk or raw text.
type fragment struct {
	parsed *generateChunk
	raw    string
}

// decodeLine keeps line untouched in the raw branch.
func decodeLine(line string) fragment {
	if !json.Valid([]byte(line)) {
		return fragment{raw: line}
	}
	var chunk generateChunk
	if err := json.Unmarshal([]byte(line), &chunk); err != nil {
		// Valid JSON that is not an object carries no response text.
		return fragment{parsed: &generateChunk{}}
	}
	return fragment{parsed: &chunk}
}

// Complete posts the prompt and accumulates the streamed response text.
// progress receives a final chunk exactly once whenever the request was dispatched.
func (c *Client) Complete(ctx context.Context, req providers.CompletionRequest, progress providers.ProgressFunc) (string, error) {
	if c.endpoint == "" {
		return "", providers.ErrConfiguration
	}

	model := strings.TrimSpace(req.Model)
	if model == "" {
		model = c.model
	}
	payload := generateRequest{
		Model:   model,
		Prompt:  req.Prompt,
		Format:  "json",
		Stream:  true,
		Options: buildOptions(c.options),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	if c.debug {
		if pretty, perr := json.MarshalIndent(payload, "", "  "); perr == nil {
			body = pretty
		}
	}
	logging.LogRequest(logging.DirectionOut, c.endpoint, model, req.Kind, body)

	finalSent := false
	emit := func(chunk providers.StreamChunk) {
		if finalSent {
			return
		}
		if chunk.IsFinal {
			finalSent = true
		}
		if progress != nil {
			progress(chunk)
		}
	}
	finish := func(err error) (string, error) {
		emit(providers.StreamChunk{IsFinal: true})
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return finish(&providers.NetworkError{Op: "send", Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		logging.LogRequest(logging.DirectionIn, c.endpoint, model, req.Kind, raw)
		return finish(&providers.TransportError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(raw)),
		})
	}
	if resp.Body == http.NoBody {
		return finish(&providers.TransportError{})
	}

	var acc strings.Builder
	reader := bufio.NewReader(resp.Body)
	for {
		line, readErr := reader.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			c.fold(&acc, decodeLine(strings.TrimSuffix(line, "\n")), req.Kind, emit)
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return finish(&providers.NetworkError{Op: "read", Err: readErr})
		}
	}
	emit(providers.StreamChunk{IsFinal: true})

	text := acc.String()
	logging.LogRequest(logging.DirectionIn, c.endpoint, model, req.Kind, text)
	return text, nil
}

// fold appends a fragment to the accumulator and forwards its text.
func (c *Client) fold(acc *strings.Builder, f fragment, kind string, emit providers.ProgressFunc) {
	if f.parsed != nil {
		if c.observe != nil {
			c.observe(kind, providers.BranchParsed)
		}
		if f.parsed.Response == "" {
			return
		}
		acc.WriteString(f.parsed.Response)
		emit(providers.StreamChunk{Text: f.parsed.Response})
		return
	}
	if c.observe != nil {
		c.observe(kind, providers.BranchRaw)
	}
	logging.LogWarning("ollama: stream line is not valid JSON, keeping raw text: %q", f.raw)
	acc.WriteString(f.raw)
	emit(providers.StreamChunk{Text: f.raw})
}

func buildOptions(opts appconfig.Options) generateOptions {
	resolved := appconfig.DefaultStrictOptions()
	if opts.Temperature != nil {
		resolved.Temperature = opts.Temperature
	}
	if opts.NumPredict != nil {
		resolved.NumPredict = opts.NumPredict
	}
	if opts.TopK != nil {
		resolved.TopK = opts.TopK
	}
	if opts.TopP != nil {
		resolved.TopP = opts.TopP
	}
	return generateOptions{
		Temperature: *resolved.Temperature,
		NumPredict:  *resolved.NumPredict,
		TopK:        *resolved.TopK,
		TopP:        *resolved.TopP,
	}
}
