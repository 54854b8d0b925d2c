package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/najia"
	"github.com/aretw0/najia/internal/logging"
	"github.com/aretw0/najia/pkg/domain"
	"github.com/aretw0/najia/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

const catalogURI = "najia://hexagrams"

// CastResponse is the structured result of every cast tool. It mirrors the
// HTTP cast notice and carries the full reading.
type CastResponse struct {
	ID          string          `json:"id" jsonschema_description:"Reading ID"`
	Hexagram    string          `json:"hexagram" jsonschema_description:"Name of the original hexagram"`
	Transformed string          `json:"transformed,omitempty" jsonschema_description:"Name of the transformed hexagram, if any line moves"`
	Verdict     domain.Verdict  `json:"verdict" jsonschema_description:"Strength of the evaluated line"`
	Narrative   string          `json:"narrative" jsonschema_description:"Plain-text interpretation"`
	Reading     *domain.Reading `json:"reading" jsonschema_description:"The complete reading"`
}

// Engine defines the interface required by the MCP server to interact with najia.
type Engine interface {
	ports.Caster
	Catalog() []domain.CatalogEntry
	Lookup(number int) (domain.CatalogEntry, error)
}

// Server wraps the najia Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	logger    *slog.Logger
	now       func() time.Time
	mcpServer *server.MCPServer
}

// Option configures the MCP server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithClock sets the instant used by cast_moment when none is given.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		logger:    logging.NewNop(),
		now:       time.Now,
		mcpServer: server.NewMCPServer("najia-mcp", strings.TrimSpace(najia.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when
// ctx is canceled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: cast_coins
	coinsTool := mcp.NewTool("cast_coins",
		mcp.WithDescription("Cast a hexagram by tossing three coins for each of the six lines."),
		mcp.WithString("query", mcp.Description("The question being asked (optional)")),
		mcp.WithOutputSchema[CastResponse](),
	)
	s.mcpServer.AddTool(coinsTool, mcp.NewStructuredToolHandler(s.handleCastCoins))

	// TOOL: cast_numbers
	numbersTool := mcp.NewTool("cast_numbers",
		mcp.WithDescription("Cast a hexagram from a sequence of non-negative integers."),
		mcp.WithArray("numbers", mcp.Required(),
			mcp.Description("Non-negative integers; a comma-separated string is also accepted"),
			mcp.Items(map[string]any{"type": "integer", "minimum": 0}),
		),
		mcp.WithString("query", mcp.Description("The question being asked (optional)")),
		mcp.WithOutputSchema[CastResponse](),
	)
	s.mcpServer.AddTool(numbersTool, mcp.NewStructuredToolHandler(s.handleCastNumbers))

	// TOOL: cast_moment
	momentTool := mcp.NewTool("cast_moment",
		mcp.WithDescription("Cast a hexagram from the calendar position of an instant."),
		mcp.WithString("instant", mcp.Description("RFC 3339 timestamp (optional, defaults to now)")),
		mcp.WithString("query", mcp.Description("The question being asked (optional)")),
		mcp.WithOutputSchema[CastResponse](),
	)
	s.mcpServer.AddTool(momentTool, mcp.NewStructuredToolHandler(s.handleCastMoment))

	// TOOL: lookup_hexagram
	lookupTool := mcp.NewTool("lookup_hexagram",
		mcp.WithDescription("Look up one of the 64 hexagrams by King Wen number, with its palace placement."),
		mcp.WithNumber("number", mcp.Required(), mcp.Description("King Wen number, 1 to 64")),
		mcp.WithOutputSchema[domain.CatalogEntry](),
	)
	s.mcpServer.AddTool(lookupTool, mcp.NewStructuredToolHandler(s.handleLookup))
}

type castArgs struct {
	Query   string `mapstructure:"query"`
	Numbers []int  `mapstructure:"numbers"`
	Instant string `mapstructure:"instant"`
}

type lookupArgs struct {
	Number int `mapstructure:"number"`
}

// decodeArgs maps raw tool arguments onto out. JSON numbers arrive as
// float64 and list arguments may be sent as "3, 8". Integer fields accept
// only whole numbers or their decimal text; anything else is invalid input.
func decodeArgs(args map[string]interface{}, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(splitCommaList, strictInt),
		Result:     out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func splitCommaList(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice {
		return data, nil
	}
	raw := strings.TrimSpace(data.(string))
	if raw == "" {
		return []string{}, nil
	}
	parts := make([]string, 0, strings.Count(raw, ",")+1)
	for _, field := range strings.Split(raw, ",") {
		if field = strings.TrimSpace(field); field != "" {
			parts = append(parts, field)
		}
	}
	return parts, nil
}

// strictInt converts into int fields without truncation: 3.7, true or "x"
// are rejected instead of silently becoming 3, 1 or 0.
func strictInt(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}
	switch v := data.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return nil, domain.InvalidInput(domain.MethodNumbers, "%v is not an integer", v)
		}
		return int(v), nil
	case float32:
		return strictInt(from, to, float64(v))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, domain.InvalidInput(domain.MethodNumbers, "%q is not an integer", v)
		}
		return n, nil
	case bool:
		return nil, domain.InvalidInput(domain.MethodNumbers, "%v is not an integer", v)
	default:
		return data, nil
	}
}

// Handler methods for structured tools

func (s *Server) handleCastCoins(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (CastResponse, error) {
	var in castArgs
	if err := decodeArgs(args, &in); err != nil {
		return CastResponse{}, err
	}
	reading, err := s.engine.CastByCoins(ctx, in.Query)
	return s.respond("cast_coins", reading, err)
}

func (s *Server) handleCastNumbers(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (CastResponse, error) {
	var in castArgs
	if err := decodeArgs(args, &in); err != nil {
		return CastResponse{}, err
	}
	reading, err := s.engine.CastByNumbers(ctx, in.Numbers, in.Query)
	return s.respond("cast_numbers", reading, err)
}

func (s *Server) handleCastMoment(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (CastResponse, error) {
	var in castArgs
	if err := decodeArgs(args, &in); err != nil {
		return CastResponse{}, err
	}
	instant := s.now()
	if in.Instant != "" {
		parsed, err := time.Parse(time.RFC3339, in.Instant)
		if err != nil {
			return CastResponse{}, domain.InvalidInput(domain.MethodMoment, "instant %q is not RFC 3339", in.Instant)
		}
		instant = parsed
	}
	reading, err := s.engine.CastByMoment(ctx, instant, in.Query)
	return s.respond("cast_moment", reading, err)
}

func (s *Server) respond(tool string, reading *domain.Reading, err error) (CastResponse, error) {
	if err != nil {
		s.logger.Warn("MCP cast failed", "tool", tool, "error", err)
		return CastResponse{}, fmt.Errorf("%s failed: %w", tool, err)
	}
	resp := CastResponse{
		ID:        reading.Case.ID,
		Hexagram:  reading.Case.Original.Name,
		Verdict:   reading.Analysis.Evaluation.Verdict,
		Narrative: reading.Analysis.Narrative,
		Reading:   reading,
	}
	if reading.Case.Transformed != nil {
		resp.Transformed = reading.Case.Transformed.Name
	}
	return resp, nil
}

func (s *Server) handleLookup(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.CatalogEntry, error) {
	var in lookupArgs
	if err := decodeArgs(args, &in); err != nil {
		return domain.CatalogEntry{}, err
	}
	return s.engine.Lookup(in.Number)
}

func (s *Server) registerResources() {
	// EXPOSE: najia://hexagrams
	s.mcpServer.AddResource(mcp.NewResource(catalogURI, "Hexagram Catalog",
		mcp.WithResourceDescription("All 64 hexagrams in King Wen order with their palace placement"),
		mcp.WithMIMEType("application/json"),
	), s.readCatalog)
}

func (s *Server) readCatalog(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.engine.Catalog())
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      catalogURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
