// Package main provides the entry point for the internship recommender MCP server.
//
// The MCP server lets AI agents fetch internship recommendations, check
// dataset readiness and submit feedback through the recommender's HTTP API.
//
// Configuration:
//
//	RECOMMENDER_API_URL - Base URL of the API (default: http://localhost:8080)
package main

import (
	"log"

	"github.com/jbeshir/internship-recommender/cmd/mcp/client"
	"github.com/jbeshir/internship-recommender/cmd/mcp/server"
	"github.com/jbeshir/internship-recommender/internal/app"
)

func main() {
	apiClient := client.NewClient(app.GetEnvAsString("RECOMMENDER_API_URL", "http://localhost:8080"))
	srv := server.NewServer(apiClient)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
