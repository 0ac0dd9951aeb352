package mcp

import (
	"context"
	"log/slog"

	"github.com/claude/daymark/internal/fatigue"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, engine *fatigue.Engine, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Daymark", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Daymark personal dashboard server. Query muscle fatigue, workout templates and logs, habit streaks, and study hours. All data is scoped to the authenticated user."),
	)

	h := &handlers{ds: ds, engine: engine, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetMuscleFatigue, Handler: h.getMuscleFatigue},
		server.ServerTool{Tool: toolGetWorkoutTemplates, Handler: h.getWorkoutTemplates},
		server.ServerTool{Tool: toolGetWorkoutLogs, Handler: h.getWorkoutLogs},
		server.ServerTool{Tool: toolGetHabitStreaks, Handler: h.getHabitStreaks},
		server.ServerTool{Tool: toolGetStudyHours, Handler: h.getStudyHours},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resFatigueSnapshot, Handler: h.fatigueSnapshot},
		server.ServerResource{Resource: resToday, Handler: h.today},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds     DataSource
	engine *fatigue.Engine
	log    *slog.Logger
}

// --- Resource definitions ---

var resFatigueSnapshot = mcp.NewResource(
	"daymark://fatigue_snapshot",
	"Muscle Fatigue Snapshot",
	mcp.WithResourceDescription("Current per-muscle fatigue scores (0-100) estimated from the last two weeks of logged workouts"),
	mcp.WithMIMEType("application/json"),
)

var resToday = mcp.NewResource(
	"daymark://today",
	"Today",
	mcp.WithResourceDescription("Today at a glance: study hours scheduled and completed, habit streak state, and today's logged workouts"),
	mcp.WithMIMEType("application/json"),
)
