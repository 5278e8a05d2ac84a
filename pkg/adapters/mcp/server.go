// Package mcp exposes the engine as an MCP server, so LLM assistants can
// drive the questionnaire and generate documents as tool calls.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/quillon/quillon"
	"github.com/quillon/quillon/pkg/domain"
)

// NextResponse is the structured output of next_question and answer tools.
type NextResponse struct {
	Question       *domain.Question `json:"question,omitempty" jsonschema_description:"The next question to ask, absent when done"`
	Done           bool             `json:"done" jsonschema_description:"True when every eligible question is answered"`
	CompletionRate int              `json:"completion_rate" jsonschema_description:"Questionnaire progress in percent"`
}

// ValidateResponse is the structured output of validate_answer.
type ValidateResponse struct {
	OK        bool   `json:"ok" jsonschema_description:"Whether the answer was accepted"`
	Value     string `json:"value,omitempty" jsonschema_description:"Canonical form of the accepted answer"`
	ErrorCode string `json:"error_code,omitempty" jsonschema_description:"required, pattern, length or type"`
	Message   string `json:"message,omitempty" jsonschema_description:"Human-readable rejection reason"`
}

// GenerateResponse is the structured output of generate_document.
type GenerateResponse struct {
	OK            bool     `json:"ok" jsonschema_description:"Whether the document was generated"`
	Document      string   `json:"document,omitempty" jsonschema_description:"The rendered document text"`
	MissingFields []string `json:"missing_fields,omitempty" jsonschema_description:"Required question IDs still unanswered"`
	MissingLabels []string `json:"missing_labels,omitempty" jsonschema_description:"Prompts of the missing questions"`
}

// Server wraps the engine and exposes it as an MCP server.
type Server struct {
	engine    *quillon.Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine *quillon.Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("quillon-mcp", strings.TrimSpace(quillon.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE, shutting down
// gracefully when ctx is canceled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
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
	// TOOL: list_documents
	s.mcpServer.AddTool(mcp.NewTool("list_documents",
		mcp.WithDescription("List the available document templates with id, name, category and estimated time."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, _ := json.Marshal(s.engine.ListDocuments())
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: get_template
	s.mcpServer.AddTool(mcp.NewTool("get_template",
		mcp.WithDescription("Get the full definition of a document template, including its questionnaire."),
		mcp.WithString("document_id", mcp.Required(), mcp.Description("Template ID, e.g. bail-habitation")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		documentID := request.GetString("document_id", "")
		tpl, err := s.engine.GetTemplate(documentID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		jsonBytes, _ := json.Marshal(tpl)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: next_question
	nextTool := mcp.NewTool("next_question",
		mcp.WithDescription("Get the next eligible unanswered question of a document, given the answers so far."),
		mcp.WithString("document_id", mcp.Required(), mcp.Description("Template ID")),
		mcp.WithString("answers", mcp.Description("JSON object mapping question IDs to answers (optional)")),
		mcp.WithOutputSchema[NextResponse](),
	)
	s.mcpServer.AddTool(nextTool, mcp.NewStructuredToolHandler(s.handleNextQuestion))

	// TOOL: validate_answer
	validateTool := mcp.NewTool("validate_answer",
		mcp.WithDescription("Validate one proposed answer and return its canonical stored form."),
		mcp.WithString("document_id", mcp.Required(), mcp.Description("Template ID")),
		mcp.WithString("question_id", mcp.Required(), mcp.Description("Question ID")),
		mcp.WithString("value", mcp.Required(), mcp.Description("Proposed answer")),
		mcp.WithOutputSchema[ValidateResponse](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidateAnswer))

	// TOOL: generate_document
	generateTool := mcp.NewTool("generate_document",
		mcp.WithDescription("Render the final document from the collected answers. Reports missing required fields."),
		mcp.WithString("document_id", mcp.Required(), mcp.Description("Template ID")),
		mcp.WithString("answers", mcp.Required(), mcp.Description("JSON object mapping question IDs to answers")),
		mcp.WithOutputSchema[GenerateResponse](),
	)
	s.mcpServer.AddTool(generateTool, mcp.NewStructuredToolHandler(s.handleGenerate))
}

func parseAnswers(args map[string]interface{}) domain.Answers {
	raw := make(map[string]any)
	if str, ok := args["answers"].(string); ok && str != "" {
		_ = json.Unmarshal([]byte(str), &raw)
	}
	return domain.AnswersFromAny(raw)
}

func (s *Server) handleNextQuestion(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (NextResponse, error) {
	documentID, _ := args["document_id"].(string)
	answers := parseAnswers(args)

	q, err := s.engine.NextQuestion(documentID, answers)
	if err != nil {
		return NextResponse{}, err
	}
	rate, err := s.engine.CompletionRate(documentID, answers)
	if err != nil {
		return NextResponse{}, err
	}
	return NextResponse{Question: q, Done: q == nil, CompletionRate: rate}, nil
}

func (s *Server) handleValidateAnswer(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ValidateResponse, error) {
	documentID, _ := args["document_id"].(string)
	questionID, _ := args["question_id"].(string)

	value, err := s.engine.ValidateAnswer(documentID, questionID, args["value"])
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return ValidateResponse{OK: false, ErrorCode: verr.Code, Message: verr.Message}, nil
		}
		return ValidateResponse{}, err
	}
	return ValidateResponse{OK: true, Value: value}, nil
}

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (GenerateResponse, error) {
	documentID, _ := args["document_id"].(string)

	doc, err := s.engine.Generate(documentID, parseAnswers(args))
	if err != nil {
		var missing *domain.MissingFieldsError
		if errors.As(err, &missing) {
			return GenerateResponse{OK: false, MissingFields: missing.Fields, MissingLabels: missing.Labels}, nil
		}
		return GenerateResponse{}, err
	}
	return GenerateResponse{OK: true, Document: doc}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: quillon://catalogue
	s.mcpServer.AddResource(mcp.NewResource("quillon://catalogue", "Document Catalogue",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, _ := json.Marshal(s.engine.ListDocuments())
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "quillon://catalogue",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
