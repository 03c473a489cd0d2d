// Package server provides the MCP server implementation.
package server

import (
	"github.com/jbeshir/internship-recommender/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server is the MCP server for the internship recommender.
type Server struct {
	client    *client.Client
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient *client.Client) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"internship-recommender",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("get_recommendations",
		mcp.WithDescription(
			"Get internship recommendations for a student. Content-based recommendations match the "+
				"student's skills, collaborative ones come from students with similar application "+
				"history, and hybrid combines both."),
		mcp.WithNumber("student_id",
			mcp.Required(),
			mcp.Description("The id of the student to recommend internships for"),
		),
		mcp.WithString("algorithm",
			mcp.Description("One of 'content', 'collaborative' or 'hybrid' (default: hybrid)"),
			mcp.Enum("content", "collaborative", "hybrid"),
		),
	), s.handleGetRecommendations)

	s.mcpServer.AddTool(mcp.NewTool("get_diagnostics",
		mcp.WithDescription(
			"Report whether the dataset has enough skill data and application history "+
				"for each recommendation algorithm, including cold start users and sparsity."),
	), s.handleGetDiagnostics)

	s.mcpServer.AddTool(mcp.NewTool("submit_feedback",
		mcp.WithDescription("Rate a recommended internship on behalf of a student."),
		mcp.WithNumber("student_id",
			mcp.Required(),
			mcp.Description("The id of the student giving feedback"),
		),
		mcp.WithNumber("internship_id",
			mcp.Required(),
			mcp.Description("The id of the recommended internship"),
		),
		mcp.WithNumber("rating",
			mcp.Required(),
			mcp.Description("Rating from 1 (poor match) to 5 (excellent match)"),
		),
		mcp.WithString("feedback",
			mcp.Description("Optional free-text feedback (max 2000 characters)"),
			mcp.MaxLength(2000),
		),
	), s.handleSubmitFeedback)

	s.mcpServer.AddTool(mcp.NewTool("get_feedback_summary",
		mcp.WithDescription(
			"Summarize the ratings students have given recommended internships: total count, "+
				"average rating, rating distribution and the share rated 4 or higher."),
	), s.handleGetFeedbackSummary)
}
