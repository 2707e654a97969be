// Package parser turns natural-language commands into intents using schema
// guided tool calling.
package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/vmunix/arrmate/internal/intent"
	"github.com/vmunix/arrmate/internal/llm"
	"github.com/vmunix/arrmate/internal/registry"
)

// ErrEmptyCommand is returned for blank input.
var ErrEmptyCommand = errors.New("empty command")

// Backends supplies the discovery snapshot used to ground the prompt.
type Backends interface {
	Descriptors() []registry.Descriptor
}

// Parser converts free text into an Intent. It never calls a media backend.
type Parser struct {
	extractor llm.Extractor
	backends  Backends
	tool      llm.Tool
	schema    *jsonschema.Schema
	log       *slog.Logger
}

// New creates a parser. backends may be nil, in which case the prompt
// reports no available services.
func New(extractor llm.Extractor, backends Backends, logger *slog.Logger) (*Parser, error) {
	if logger == nil {
		logger = slog.Default()
	}
	tool := Tool()
	schema, err := compile(tool.Parameters)
	if err != nil {
		return nil, fmt.Errorf("compile extraction schema: %w", err)
	}
	return &Parser{
		extractor: extractor,
		backends:  backends,
		tool:      tool,
		schema:    schema,
		log:       logger.With("component", "parser"),
	}, nil
}

func compile(doc any) (*jsonschema.Schema, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(schemaURL, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return c.Compile(schemaURL)
}

// Prompt returns the system prompt for the current discovery snapshot.
func (p *Parser) Prompt() string {
	var descs []registry.Descriptor
	if p.backends != nil {
		descs = p.backends.Descriptors()
	}
	return BuildPrompt(descs)
}

// Parse extracts an intent from text. Every failure is an *intent.ParseError.
func (p *Parser) Parse(ctx context.Context, text string) (*intent.Intent, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &intent.ParseError{Msg: "no command given", Err: ErrEmptyCommand}
	}

	start := time.Now()
	args, err := p.extractor.Extract(ctx, text, p.tool, p.Prompt())
	if err != nil {
		p.log.Warn("extraction failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		return nil, &intent.ParseError{Msg: "extraction failed", Err: err}
	}

	in, err := p.decode(args)
	if err != nil {
		p.log.Warn("invalid extraction", "error", err, "args", args)
		return nil, err
	}

	p.log.Debug("parsed command", "action", in.Action, "media_type", in.MediaType,
		"title", in.Title, "duration_ms", time.Since(start).Milliseconds())
	return in, nil
}

// decode validates args against the schema, then decodes them strictly.
func (p *Parser) decode(args map[string]any) (*intent.Intent, error) {
	args = dropNulls(args)
	if len(args) == 0 {
		return nil, &intent.ParseError{Msg: "empty extraction result"}
	}

	data, err := json.Marshal(args)
	if err != nil {
		return nil, &intent.ParseError{Msg: "encode extraction result", Err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &intent.ParseError{Msg: "decode extraction result", Err: err}
	}
	if err := p.schema.Validate(doc); err != nil {
		return nil, &intent.ParseError{Msg: "extraction does not match schema", Err: err}
	}

	var in intent.Intent
	dec = json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, &intent.ParseError{Msg: "decode intent", Err: err}
	}
	if !in.Action.Valid() || !in.MediaType.Valid() {
		return nil, &intent.ParseError{Msg: fmt.Sprintf("unknown action %q or media type %q", in.Action, in.MediaType)}
	}
	in.Title = strings.TrimSpace(in.Title)
	return &in, nil
}

// dropNulls removes top-level keys the model explicitly set to null.
func dropNulls(args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		if v != nil {
			out[k] = v
		}
	}
	return out
}
