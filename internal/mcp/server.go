// Package mcp provides an MCP (Model Context Protocol) server that exposes
// the session's task list as MCP tools.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/valter-silva-au/lista-tareas/internal/core"
	"github.com/valter-silva-au/lista-tareas/internal/logging"
	"github.com/valter-silva-au/lista-tareas/internal/observability"
	"github.com/valter-silva-au/lista-tareas/pkg/models"
)

// Server wraps the task manager and exposes it as MCP tools.
type Server struct {
	server      *gomcp.Server
	taskMgr     core.TaskManager
	metricsCalc observability.MetricsCalculator
	logger      *log.Logger
}

// NewServer creates a new MCP server over taskMgr.
// metricsCalc and logger may be nil.
func NewServer(taskMgr core.TaskManager, metricsCalc observability.MetricsCalculator, logger *log.Logger, version string) *Server {
	if version == "" {
		version = "dev"
	}
	if logger == nil {
		logger = logging.Discard()
	}

	s := &Server{
		taskMgr:     taskMgr,
		metricsCalc: metricsCalc,
		logger:      logger,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "lt", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client
// disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type taskRefInput struct {
	Task string `json:"task" jsonschema:"required,the task: its position in the list (1-based and pending first) or its ID or ID prefix or title"`
}

type taskOutput struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Priority      string `json:"priority"`
	PriorityLabel string `json:"priority_label"`
	Completed     bool   `json:"completed"`
}

type listTasksInput struct {
	Group string `json:"group,omitempty" jsonschema:"only return this group: pending or completed"`
}

type listTasksOutput struct {
	Pending   []taskOutput `json:"pending"`
	Completed []taskOutput `json:"completed"`
	Count     int          `json:"count"`
}

type setTaskPriorityInput struct {
	Task     string `json:"task" jsonschema:"required,the task: its position in the list (1-based and pending first) or its ID or ID prefix or title"`
	Priority string `json:"priority" jsonschema:"required,the new priority: high, medium, low (or alta, media, baja)"`
}

type taskChangeOutput struct {
	Message string     `json:"message"`
	Task    taskOutput `json:"task"`
}

type getMetricsInput struct {
	Since string `json:"since,omitempty" jsonschema:"time window for metrics (e.g. 7d, 30d, 24h). Defaults to 7d."`
}

type metricsOutput struct {
	Toggles           int            `json:"toggles"`
	TasksCompleted    int            `json:"tasks_completed"`
	TasksReopened     int            `json:"tasks_reopened"`
	PriorityChanges   int            `json:"priority_changes"`
	ChangesByPriority map[string]int `json:"changes_by_priority"`
	EventCount        int            `json:"event_count"`
	OldestEvent       string         `json:"oldest_event,omitempty"`
	NewestEvent       string         `json:"newest_event,omitempty"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tasks",
		Description: "List the tasks split into pending and completed groups, in list order. Optionally return a single group.",
	}, s.handleListTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_task",
		Description: "Get a single task, including its description, priority and completion state.",
	}, s.handleGetTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "toggle_task",
		Description: "Mark a pending task completed or a completed task pending. Returns the updated task.",
	}, s.handleToggleTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "set_task_priority",
		Description: "Set a task's priority. Valid priorities: high (Alta), medium (Media), low (Baja).",
	}, s.handleSetTaskPriority)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_metrics",
		Description: "Get counts derived from the event log: toggles, completions, reopenings and priority changes.",
	}, s.handleGetMetrics)
}

// --- Tool handlers ---

func (s *Server) handleListTasks(_ context.Context, _ *gomcp.CallToolRequest, input listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	switch input.Group {
	case "", "pending", "completed":
	default:
		return errorResult(fmt.Sprintf("invalid group %q: must be pending or completed", input.Group)), listTasksOutput{}, nil
	}

	tasks, err := s.taskMgr.GetAllTasks()
	if err != nil {
		return errorResult(fmt.Sprintf("listing tasks: %s", err)), listTasksOutput{}, nil
	}

	pending, completed := core.Partition(tasks)
	out := listTasksOutput{
		Pending:   []taskOutput{},
		Completed: []taskOutput{},
	}
	if input.Group != "completed" {
		for _, t := range pending {
			out.Pending = append(out.Pending, taskToOutput(t))
		}
	}
	if input.Group != "pending" {
		for _, t := range completed {
			out.Completed = append(out.Completed, taskToOutput(t))
		}
	}
	out.Count = len(out.Pending) + len(out.Completed)

	return nil, out, nil
}

func (s *Server) handleGetTask(_ context.Context, _ *gomcp.CallToolRequest, input taskRefInput) (*gomcp.CallToolResult, taskOutput, error) {
	if input.Task == "" {
		return errorResult("task is required"), taskOutput{}, nil
	}

	task, err := s.taskMgr.ResolveTask(input.Task)
	if err != nil {
		return errorResult(fmt.Sprintf("getting task %s: %s", input.Task, err)), taskOutput{}, nil
	}

	return nil, taskToOutput(task), nil
}

func (s *Server) handleToggleTask(_ context.Context, _ *gomcp.CallToolRequest, input taskRefInput) (*gomcp.CallToolResult, taskChangeOutput, error) {
	if input.Task == "" {
		return errorResult("task is required"), taskChangeOutput{}, nil
	}

	task, err := s.taskMgr.ResolveTask(input.Task)
	if err != nil {
		return errorResult(fmt.Sprintf("resolving task %s: %s", input.Task, err)), taskChangeOutput{}, nil
	}

	updated, err := s.taskMgr.ToggleCompletion(task.ID)
	if err != nil {
		return errorResult(fmt.Sprintf("toggling task %s: %s", task.Title, err)), taskChangeOutput{}, nil
	}
	s.logger.Info("task toggled", "task", updated.Title, "completed", updated.Completed)

	state := "pending"
	if updated.Completed {
		state = "completed"
	}
	out := taskChangeOutput{
		Message: fmt.Sprintf("task %q marked %s", updated.Title, state),
		Task:    taskToOutput(updated),
	}
	return nil, out, nil
}

func (s *Server) handleSetTaskPriority(_ context.Context, _ *gomcp.CallToolRequest, input setTaskPriorityInput) (*gomcp.CallToolResult, taskChangeOutput, error) {
	if input.Task == "" {
		return errorResult("task is required"), taskChangeOutput{}, nil
	}
	if input.Priority == "" {
		return errorResult("priority is required"), taskChangeOutput{}, nil
	}

	priority, err := models.ParsePriority(input.Priority)
	if err != nil {
		return errorResult(err.Error()), taskChangeOutput{}, nil
	}

	task, err := s.taskMgr.ResolveTask(input.Task)
	if err != nil {
		return errorResult(fmt.Sprintf("resolving task %s: %s", input.Task, err)), taskChangeOutput{}, nil
	}

	updated, err := s.taskMgr.ChangePriority(task.ID, priority)
	if err != nil {
		return errorResult(fmt.Sprintf("setting priority of %s: %s", task.Title, err)), taskChangeOutput{}, nil
	}
	s.logger.Info("priority changed", "task", updated.Title, "from", task.Priority, "to", updated.Priority)

	out := taskChangeOutput{
		Message: fmt.Sprintf("task %q priority set to %s", updated.Title, updated.Priority.Label()),
		Task:    taskToOutput(updated),
	}
	return nil, out, nil
}

func (s *Server) handleGetMetrics(_ context.Context, _ *gomcp.CallToolRequest, input getMetricsInput) (*gomcp.CallToolResult, metricsOutput, error) {
	if s.metricsCalc == nil {
		return errorResult("metrics calculator not available"), emptyMetricsOutput(), nil
	}

	sinceTime, err := observability.ParseSince(input.Since, time.Now().UTC())
	if err != nil {
		return errorResult(fmt.Sprintf("parsing since duration: %s", err)), emptyMetricsOutput(), nil
	}

	metrics, err := s.metricsCalc.Calculate(sinceTime)
	if err != nil {
		return errorResult(fmt.Sprintf("calculating metrics: %s", err)), emptyMetricsOutput(), nil
	}

	out := metricsOutput{
		Toggles:           metrics.Toggles,
		TasksCompleted:    metrics.TasksCompleted,
		TasksReopened:     metrics.TasksReopened,
		PriorityChanges:   metrics.PriorityChanges,
		ChangesByPriority: metrics.ChangesByPriority,
		EventCount:        metrics.EventCount,
	}
	if out.ChangesByPriority == nil {
		out.ChangesByPriority = make(map[string]int)
	}
	if metrics.OldestEvent != nil {
		out.OldestEvent = metrics.OldestEvent.Format(time.RFC3339)
	}
	if metrics.NewestEvent != nil {
		out.NewestEvent = metrics.NewestEvent.Format(time.RFC3339)
	}

	return nil, out, nil
}

// --- Helpers ---

func taskToOutput(t models.Task) taskOutput {
	return taskOutput{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Priority:      string(t.Priority),
		PriorityLabel: t.Priority.Label(),
		Completed:     t.Completed,
	}
}

func emptyMetricsOutput() metricsOutput {
	return metricsOutput{ChangesByPriority: make(map[string]int)}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
