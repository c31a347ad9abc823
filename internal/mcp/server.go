package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ticket-slash/internal/api"
	"ticket-slash/internal/config"
	"ticket-slash/internal/domain"
	"ticket-slash/internal/errors"
	"ticket-slash/internal/translator"
	"ticket-slash/internal/validation"
)

const (
	ServerName    = "Ticket Slash"
	ServerVersion = "1.0.0-beta"
)

type tools struct {
	businessAPI api.BusinessAPI
	translator  *translator.Translator
	validator   *validation.SearchValidator
	lang        string
}

// NewServer creates a new MCP server exposing the to-do list as tools.
func NewServer(businessAPI api.BusinessAPI, cfg *config.Config, tr *translator.Translator) *server.MCPServer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if tr == nil {
		tr = translator.Default()
	}
	t := &tools{
		businessAPI: businessAPI,
		translator:  tr,
		validator:   validation.NewSearchValidatorWithConfig(cfg),
		lang:        cfg.Application.Language,
	}

	s := server.NewMCPServer(ServerName, ServerVersion)

	s.AddTool(mcp.NewTool("add_todo",
		mcp.WithDescription("Add a pending todo. Surrounding whitespace is trimmed; blank text is rejected."),
		mcp.WithString("text", mcp.Description("Todo text"), mcp.Required()),
	), t.addTodo)

	s.AddTool(mcp.NewTool("toggle_todo",
		mcp.WithDescription("Mark a todo done, or not done if it already is."),
		mcp.WithString("id", mcp.Description("Todo ID"), mcp.Required()),
	), t.toggleTodo)

	s.AddTool(mcp.NewTool("delete_todo",
		mcp.WithDescription("Delete a todo. Refused unless confirm is true."),
		mcp.WithString("id", mcp.Description("Todo ID"), mcp.Required()),
		mcp.WithBoolean("confirm", mcp.Description("Must be true to delete")),
	), t.deleteTodo)

	s.AddTool(mcp.NewTool("list_todos",
		mcp.WithDescription("List todos in collection order."),
		mcp.WithString("tab", mcp.Description("todos or completed; omit for every todo")),
	), t.listTodos)

	s.AddTool(mcp.NewTool("search_todos",
		mcp.WithDescription("Search todos by status and an inclusive creation date range. At least one criterion is required."),
		mcp.WithString("status", mcp.Description("all, pending or completed (default all)")),
		mcp.WithString("from", mcp.Description("Start date, YYYY-MM-DD")),
		mcp.WithString("to", mcp.Description("End date, YYYY-MM-DD")),
	), t.searchTodos)

	return s
}

// ServeStdio serves s over stdin and stdout until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func (t *tools) addTodo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	task, err := t.businessAPI.AddTask(ctx, mcp.ParseString(request, "text", ""))
	if err != nil {
		return t.errorResult(err), nil
	}
	return jsonResult(task)
}

func (t *tools) toggleTodo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	task, err := t.businessAPI.ToggleTask(ctx, mcp.ParseString(request, "id", ""))
	if err != nil {
		return t.errorResult(err), nil
	}
	return jsonResult(task)
}

func (t *tools) deleteTodo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := mcp.ParseString(request, "id", "")
	if !mcp.ParseBoolean(request, "confirm", false) {
		return t.errorResult(errors.NewConfirmRequiredError(id)), nil
	}

	if err := t.businessAPI.DeleteTask(ctx, id); err != nil {
		return t.errorResult(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Todo '%s' deleted", id)), nil
}

func (t *tools) listTodos(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var (
		tasks []domain.Task
		err   error
	)
	if raw := mcp.ParseString(request, "tab", ""); raw != "" {
		tab, parseErr := domain.ParseTab(raw)
		if parseErr != nil {
			return t.errorResult(errors.NewInvalidInputError("tab", raw, "expected todos or completed")), nil
		}
		tasks, err = t.businessAPI.ListTab(ctx, tab)
	} else {
		tasks, err = t.businessAPI.ListTasks(ctx)
	}
	if err != nil {
		return t.errorResult(err), nil
	}

	if tasks == nil {
		tasks = []domain.Task{}
	}
	return jsonResult(map[string]interface{}{"todos": tasks})
}

func (t *tools) searchTodos(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts, err := t.validator.ParseOptions(
		mcp.ParseString(request, "status", ""),
		mcp.ParseString(request, "from", ""),
		mcp.ParseString(request, "to", ""),
		time.Local,
	)
	if err != nil {
		return t.errorResult(err), nil
	}

	result, err := t.businessAPI.Search(ctx, opts)
	if err != nil {
		return t.errorResult(err), nil
	}

	return jsonResult(map[string]interface{}{
		"todos":       result.Items,
		"description": t.translator.Localize(t.lang, translator.MsgFilteredBy, nil) + result.Description,
		"count":       result.Count(),
	})
}

func (t *tools) errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s: %s", errors.GetErrorCode(err), t.translator.Error(t.lang, err)))
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
