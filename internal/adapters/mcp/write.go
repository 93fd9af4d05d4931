package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"sfadsms/internal/application/commands"
)

// RegisterWriteTools adds all store mutation tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, deps *Deps) {
	s.AddTool(createTool(), deps.serialized(createHandler(deps)))
	s.AddTool(uploadTool(), deps.serialized(uploadHandler(deps)))
	s.AddTool(renameTool(), deps.serialized(renameHandler(deps)))
	s.AddTool(moveTool(), deps.serialized(moveHandler(deps)))
	s.AddTool(deleteTool(), deps.serialized(deleteHandler(deps)))
	s.AddTool(syncTool(), deps.serialized(syncHandler(deps)))
}

// --- create ---

func createTool() mcp.Tool {
	return mcp.NewTool("create",
		mcp.WithDescription("Create a category, or a record inside a category when record is given."),
		mcp.WithString("category",
			mcp.Description("Category name"),
			mcp.Required(),
		),
		mcp.WithString("record",
			mcp.Description("Record name. Omit to create the category itself."),
		),
	)
}

func createHandler(deps *Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category := req.GetString("category", "")
		record := req.GetString("record", "")

		if record == "" {
			result, err := commands.NewCreateCategoryCommand(deps.Store, deps.Auditor, category).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil
		}

		result, err := commands.NewCreateRecordCommand(deps.Store, deps.Auditor, category, record).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- upload ---

func uploadTool() mcp.Tool {
	return mcp.NewTool("upload",
		mcp.WithDescription("Copy a local file into a record and append it to the record's index. The source file is removed unless keep_source is set."),
		mcp.WithString("source",
			mcp.Description("Absolute path of the file to upload"),
			mcp.Required(),
		),
		mcp.WithString("category",
			mcp.Description("Destination category"),
			mcp.Required(),
		),
		mcp.WithString("record",
			mcp.Description("Destination record"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("Stored file name without extension. Defaults to the source name."),
		),
		mcp.WithBoolean("keep_source",
			mcp.Description("Keep the source file after upload"),
		),
	)
}

func uploadHandler(deps *Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewUploadCommand(
			deps.Store,
			deps.Auditor,
			req.GetString("source", ""),
			req.GetString("category", ""),
			req.GetString("record", ""),
			req.GetString("name", ""),
			req.GetBool("keep_source", false),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- rename ---

func renameTool() mcp.Tool {
	return mcp.NewTool("rename",
		mcp.WithDescription("Rename a category, a record, or a file. The most specific of category/record/file given is renamed. File renames keep the extension."),
		mcp.WithString("category",
			mcp.Description("Category name"),
			mcp.Required(),
		),
		mcp.WithString("record",
			mcp.Description("Record name"),
		),
		mcp.WithString("file",
			mcp.Description("File name inside the record. Requires record."),
		),
		mcp.WithString("new_name",
			mcp.Description("New name"),
			mcp.Required(),
		),
	)
}

func renameHandler(deps *Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category := req.GetString("category", "")
		record := req.GetString("record", "")
		file := req.GetString("file", "")
		newName := req.GetString("new_name", "")

		var (
			result *commands.RenameResult
			err    error
		)
		switch {
		case file != "" && record == "":
			return toolError(fmt.Errorf("file requires record"))
		case file != "":
			result, err = commands.NewRenameFileCommand(deps.Store, deps.Auditor, category, record, file, newName).Execute(ctx)
		case record != "":
			result, err = commands.NewRenameRecordCommand(deps.Store, deps.Auditor, category, record, newName).Execute(ctx)
		default:
			result, err = commands.NewRenameCategoryCommand(deps.Store, deps.Auditor, category, newName).Execute(ctx)
		}
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- move ---

func moveTool() mcp.Tool {
	return mcp.NewTool("move",
		mcp.WithDescription("Move a file to another record, or a record to another category. A file move needs file and destination_record."),
		mcp.WithString("category",
			mcp.Description("Source category"),
			mcp.Required(),
		),
		mcp.WithString("record",
			mcp.Description("Source record"),
			mcp.Required(),
		),
		mcp.WithString("file",
			mcp.Description("File to move. Omit to move the whole record."),
		),
		mcp.WithString("destination_category",
			mcp.Description("Destination category"),
			mcp.Required(),
		),
		mcp.WithString("destination_record",
			mcp.Description("Destination record (file moves only)"),
		),
	)
}

func moveHandler(deps *Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category := req.GetString("category", "")
		record := req.GetString("record", "")
		file := req.GetString("file", "")
		dstCategory := req.GetString("destination_category", "")
		dstRecord := req.GetString("destination_record", "")

		if file == "" {
			result, err := commands.NewMoveRecordCommand(deps.Store, deps.Auditor, category, record, dstCategory).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil
		}

		result, err := commands.NewMoveFileCommand(deps.Store, deps.Auditor, category, record, file, dstCategory, dstRecord).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Permanently delete a category, a record, or a file. The most specific of category/record/file given is deleted."),
		mcp.WithString("category",
			mcp.Description("Category name"),
			mcp.Required(),
		),
		mcp.WithString("record",
			mcp.Description("Record name"),
		),
		mcp.WithString("file",
			mcp.Description("File name inside the record. Requires record."),
		),
	)
}

func deleteHandler(deps *Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category := req.GetString("category", "")
		record := req.GetString("record", "")
		file := req.GetString("file", "")

		var (
			result *commands.DeleteResult
			err    error
		)
		switch {
		case file != "" && record == "":
			return toolError(fmt.Errorf("file requires record"))
		case file != "":
			result, err = commands.NewDeleteFileCommand(deps.Store, deps.Auditor, category, record, file).Execute(ctx)
		case record != "":
			result, err = commands.NewDeleteRecordCommand(deps.Store, deps.Auditor, category, record).Execute(ctx)
		default:
			result, err = commands.NewDeleteCategoryCommand(deps.Store, deps.Auditor, category).Execute(ctx)
		}
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- sync ---

func syncTool() mcp.Tool {
	return mcp.NewTool("sync",
		mcp.WithDescription("Reconcile metadata indices with the files on disk. Only categories flagged as needing sync are scanned unless force is set."),
		mcp.WithBoolean("force",
			mcp.Description("Sync every category regardless of its flag"),
		),
	)
}

func syncHandler(deps *Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewSyncCommand(deps.Reconciler, deps.Auditor, req.GetBool("force", false)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
