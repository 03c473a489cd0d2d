package server

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	studentURIPrefix         = "student://"
	recommendationsURISuffix = "/recommendations"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"student://{student_id}/recommendations",
			"Hybrid internship recommendations for a student",
			mcp.WithTemplateDescription(
				"Fetch the hybrid recommendations for a student by id. Each entry carries the "+
					"internship details, company name, similarity score and which algorithm produced it."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleRecommendationsResource,
	)
}

// parseStudentURI extracts the student id from student://{student_id}/recommendations.
func parseStudentURI(uri string) (int64, error) {
	if !strings.HasPrefix(uri, studentURIPrefix) || !strings.HasSuffix(uri, recommendationsURISuffix) {
		return 0, fmt.Errorf("invalid recommendations URI format: %s", uri)
	}

	raw := strings.TrimSuffix(strings.TrimPrefix(uri, studentURIPrefix), recommendationsURISuffix)
	studentID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || studentID <= 0 {
		return 0, fmt.Errorf("invalid student_id in URI: %s", uri)
	}

	return studentID, nil
}

func (s *Server) handleRecommendationsResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI

	studentID, err := parseStudentURI(uri)
	if err != nil {
		return nil, err
	}

	recs, err := s.client.GetRecommendations(ctx, studentID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recommendations for student %d: %w", studentID, err)
	}

	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
