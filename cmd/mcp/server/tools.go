package server

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jbeshir/internship-recommender/internal/domain"
	"github.com/jbeshir/internship-recommender/internal/transport/web/controller"
	"github.com/mark3labs/mcp-go/mcp"
)

// positiveID reads a required numeric id argument. JSON numbers arrive as float64.
func positiveID(args map[string]any, name string) (int64, error) {
	v, ok := args[name].(float64)
	if !ok || v <= 0 || v != float64(int64(v)) {
		return 0, fmt.Errorf("%s is required and must be a positive integer", name)
	}
	return int64(v), nil
}

func (s *Server) handleGetRecommendations(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	studentID, err := positiveID(args, "student_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	algorithm, _ := args["algorithm"].(string)
	if algorithm != "" {
		if _, err := domain.ParseAlgorithm(algorithm); err != nil {
			return mcp.NewToolResultError("algorithm must be 'content', 'collaborative' or 'hybrid'"), nil
		}
	}

	recs, err := s.client.GetRecommendations(ctx, studentID, algorithm)
	if err != nil {
		errMsg := fmt.Sprintf("failed to get recommendations: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	return formatRecommendationsResult(recs)
}

func (s *Server) handleGetDiagnostics(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	diagnostics, err := s.client.GetDiagnostics(ctx)
	if err != nil {
		errMsg := fmt.Sprintf("failed to get diagnostics: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	data, err := json.MarshalIndent(diagnostics, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format diagnostics: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleSubmitFeedback(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	studentID, err := positiveID(args, "student_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	internshipID, err := positiveID(args, "internship_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rating, ok := args["rating"].(float64)
	if !ok || rating < 1 || rating > 5 || rating != float64(int(rating)) {
		return mcp.NewToolResultError("rating is required and must be an integer from 1 to 5"), nil
	}

	feedback, _ := args["feedback"].(string)

	record, err := s.client.SubmitFeedback(ctx, studentID, controller.FeedbackCreateRequest{
		InternshipID: internshipID,
		Rating:       int(rating),
		Feedback:     feedback,
	})
	if err != nil {
		errMsg := fmt.Sprintf("failed to submit feedback: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	msg := fmt.Sprintf("Recorded rating %d for internship %d from student %d",
		record.Rating, record.InternshipID, record.UserID)
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleGetFeedbackSummary(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	summary, err := s.client.GetFeedbackSummary(ctx)
	if err != nil {
		errMsg := fmt.Sprintf("failed to get feedback summary: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	if summary.TotalFeedback == 0 {
		return mcp.NewToolResultText("No feedback has been submitted yet."), nil
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format feedback summary: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

func formatRecommendationsResult(recs []domain.Recommendation) (*mcp.CallToolResult, error) {
	if len(recs) == 0 {
		return mcp.NewToolResultText("No recommendations found."), nil
	}

	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format recommendations: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	msg := fmt.Sprintf("Found %d recommendation(s):\n\n%s", len(recs), string(data))
	return mcp.NewToolResultText(msg), nil
}
