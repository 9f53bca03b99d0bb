package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/spark"
	"github.com/aretw0/spark/pkg/classnames"
	"github.com/aretw0/spark/pkg/ports"
	"github.com/aretw0/spark/pkg/tree"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ThemesURI is the resource listing every theme.
const ThemesURI = "spark://themes"

// ThemesResponse lists the available themes.
type ThemesResponse struct {
	Themes []string `json:"themes" jsonschema_description:"Sorted theme names"`
}

// TokensResponse carries the resolved tokens of a theme.
type TokensResponse struct {
	Theme  string `json:"theme" jsonschema_description:"The resolved theme"`
	Tokens any    `json:"tokens" jsonschema_description:"Resolved token tree, or var() references when requested"`
}

// ClassNamesResponse carries a composed class attribute.
type ClassNamesResponse struct {
	Class string `json:"class" jsonschema_description:"Space separated class names"`
}

// Server wraps the Spark Engine and exposes it as an MCP Server.
type Server struct {
	engine    ports.ThemeEngine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.ThemeEngine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("spark-mcp", strings.TrimSpace(spark.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: list_themes
	listTool := mcp.NewTool("list_themes",
		mcp.WithDescription("List the available design token themes."),
		mcp.WithOutputSchema[ThemesResponse](),
	)
	s.mcpServer.AddTool(listTool, mcp.NewStructuredToolHandler(s.handleListThemes))

	// TOOL: resolve_tokens
	resolveTool := mcp.NewTool("resolve_tokens",
		mcp.WithDescription("Resolve a theme's tokens, applying every theme it extends."),
		mcp.WithString("theme", mcp.Required(), mcp.Description("Theme name")),
		mcp.WithBoolean("references", mcp.Description("Return var() references instead of values")),
		mcp.WithOutputSchema[TokensResponse](),
	)
	s.mcpServer.AddTool(resolveTool, mcp.NewStructuredToolHandler(s.handleResolveTokens))

	// TOOL: class_names
	classTool := mcp.NewTool("class_names",
		mcp.WithDescription("Compose a class attribute from strings, arrays and condition objects."),
		mcp.WithString("items", mcp.Required(), mcp.Description(`JSON array, e.g. ["btn", {"active": true}]`)),
		mcp.WithOutputSchema[ClassNamesResponse](),
	)
	s.mcpServer.AddTool(classTool, mcp.NewStructuredToolHandler(s.handleClassNames))

	// TOOL: theme_stylesheet
	s.mcpServer.AddTool(mcp.NewTool("theme_stylesheet",
		mcp.WithDescription("Render the CSS custom properties of a theme, or of every theme when omitted."),
		mcp.WithString("theme", mcp.Description("Theme name (optional)")),
	), s.handleStylesheet)
}

func (s *Server) handleListThemes(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ThemesResponse, error) {
	names, err := s.engine.Themes(ctx)
	if err != nil {
		return ThemesResponse{}, fmt.Errorf("list themes failed: %w", err)
	}
	return ThemesResponse{Themes: names}, nil
}

func (s *Server) handleResolveTokens(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TokensResponse, error) {
	name, _ := args["theme"].(string)
	if name == "" {
		return TokensResponse{}, errors.New("theme is required")
	}
	refs, _ := args["references"].(bool)

	var (
		out *tree.Object
		err error
	)
	if refs {
		out, err = s.engine.References(ctx, name)
	} else {
		out, err = s.engine.Tokens(ctx, name)
	}
	if err != nil {
		return TokensResponse{}, fmt.Errorf("resolve failed: %w", err)
	}
	return TokensResponse{Theme: name, Tokens: out}, nil
}

func (s *Server) handleClassNames(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ClassNamesResponse, error) {
	raw, _ := args["items"].(string)
	items, err := decodeItems(raw)
	if err != nil {
		return ClassNamesResponse{}, err
	}
	return ClassNamesResponse{Class: classnames.Join(items...)}, nil
}

// decodeItems parses a JSON array, keeping the key order of condition objects.
func decodeItems(raw string) ([]any, error) {
	if !json.Valid([]byte(raw)) {
		return nil, fmt.Errorf("items must be a JSON array")
	}
	doc, err := tree.Decode([]byte(`{"items": ` + raw + `}`))
	if err != nil {
		return nil, fmt.Errorf("invalid items: %w", err)
	}
	value, _ := doc.Get("items")
	items, ok := tree.AsSequence(value)
	if !ok {
		return nil, fmt.Errorf("items must be a JSON array")
	}
	return items, nil
}

func (s *Server) handleStylesheet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("theme", "")

	var (
		sheet string
		err   error
	)
	if name == "" {
		sheet, err = s.engine.Build(ctx)
	} else {
		sheet, err = s.engine.Stylesheet(ctx, name)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
	}
	return mcp.NewToolResultText(sheet), nil
}

func (s *Server) registerResources() {
	// EXPOSE: spark://themes
	s.mcpServer.AddResource(mcp.NewResource(ThemesURI, "Available Themes",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		names, err := s.engine.Themes(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list themes: %w", err)
		}
		jsonBytes, _ := json.Marshal(ThemesResponse{Themes: names})

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      ThemesURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
