package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"sfadsms/internal/application"
	"sfadsms/internal/application/commands"
	"sfadsms/internal/domain"
	"sfadsms/internal/ports"
)

// Deps are the components the tools operate on. Handlers registered with the
// same Deps run one at a time; the stdio server dispatches calls concurrently.
type Deps struct {
	Store      ports.FilingStore
	Reconciler *application.Reconciler
	Prober     ports.DirectoryProber
	Index      ports.EntryCounter
	Auditor    *application.Auditor
	Audit      ports.AuditLog // nil disables the history tool's results

	mu sync.Mutex
}

func (d *Deps) serialized(h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		d.mu.Lock()
		defer d.mu.Unlock()
		return h(ctx, req)
	}
}

// RegisterReadTools adds all read-only store tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, deps *Deps) {
	s.AddTool(listTool(), deps.serialized(listHandler(deps)))
	s.AddTool(statusTool(), deps.serialized(statusHandler(deps)))
	s.AddTool(historyTool(), deps.serialized(historyHandler(deps)))
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List store contents. No arguments lists categories, a category lists its records, a category and record list its files in index order. Stale metadata is reconciled first."),
		mcp.WithString("category",
			mcp.Description("Category name (e.g. Grade7)"),
		),
		mcp.WithString("record",
			mcp.Description("Record name inside the category. Requires category."),
		),
	)
}

func listHandler(deps *Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category := req.GetString("category", "")
		record := req.GetString("record", "")

		switch {
		case category == "" && record != "":
			return toolError(fmt.Errorf("record requires category"))
		case category == "":
			cats, err := commands.NewListCategoriesCommand(deps.Reconciler, deps.Store).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return formatEntities(cats, formatCategory)
		case record == "":
			recs, err := commands.NewListRecordsCommand(deps.Reconciler, deps.Store, category).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return formatEntities(recs, formatRecord)
		default:
			files, err := commands.NewListFilesCommand(deps.Reconciler, deps.Store, category, record).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return formatEntities(files, formatFile)
		}
	}
}

// --- status ---

func statusTool() mcp.Tool {
	return mcp.NewTool("status",
		mcp.WithDescription("Report which categories have metadata that needs a sync. Does not rewrite any index."),
	)
}

func statusHandler(deps *Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewStatusCommand(deps.Reconciler.Registry(), deps.Prober, deps.Index)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(result.Message)
		sb.WriteByte('\n')
		for _, c := range result.Categories {
			sb.WriteString(formatCategoryStatus(c))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("history",
		mcp.WithDescription("Show the most recent audit trail events, newest first."),
		mcp.WithString("category",
			mcp.Description("Only show events for this category"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of events (default 50)"),
		),
	)
}

func historyHandler(deps *Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category := req.GetString("category", "")
		limit := req.GetInt("limit", 0)

		events, err := commands.NewHistoryCommand(deps.Audit, category, limit).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(events, domain.AuditEvent.String)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatCategory(c domain.Category) string {
	if c.Dirty {
		return c.Name + "  (needs sync)"
	}
	return c.Name
}

func formatRecord(r domain.Record) string {
	return r.Name
}

func formatFile(f domain.File) string {
	if f.Timestamp == "" {
		return fmt.Sprintf("%d  %s", f.Index, f.Name)
	}
	return fmt.Sprintf("%d  %s  %s", f.Index, f.Name, f.Timestamp)
}

func formatCategoryStatus(c commands.CategoryStatus) string {
	state := "clean"
	if c.Dirty {
		state = "dirty"
	}
	return fmt.Sprintf("%-5s  %s  records=%d files=%d indexed=%d", state, c.Name, c.Records, c.Files, c.Indexed)
}
