// ABOUTME: MCP resource implementations for the summit health store.
// ABOUTME: Provides summit://metrics/recent, summit://scores/latest, and summit://trends.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/summit/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// summit://metrics/recent - last 14 days of metrics
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "summit://metrics/recent",
		Name:        "Recent Daily Metrics",
		Description: "Daily health metrics for the last 14 logged days",
		MIMEType:    "application/json",
	}, s.handleRecentMetricsResource)

	// summit://scores/latest - most recent vital score
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "summit://scores/latest",
		Name:        "Latest Vital Score",
		Description: "The most recently dated vital score with its components",
		MIMEType:    "application/json",
	}, s.handleLatestScoreResource)

	// summit://trends - all detected trends grouped by metric
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "summit://trends",
		Name:        "Detected Trends",
		Description: "All detected trends grouped by metric",
		MIMEType:    "application/json",
	}, s.handleTrendsResource)
}

// Resource handlers

func (s *Server) handleRecentMetricsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	metrics, err := s.repo.ListMetrics(14)
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}

	result := map[string]any{
		"metrics": metrics,
		"count":   len(metrics),
	}

	return resourceResult("summit://metrics/recent", result)
}

func (s *Server) handleLatestScoreResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	score, err := s.repo.LatestVitalScore()
	if err != nil {
		if storage.IsNotFound(err) {
			return resourceResult("summit://scores/latest", map[string]any{
				"message": "No vital scores recorded.",
			})
		}
		return nil, fmt.Errorf("failed to get latest vital score: %w", err)
	}

	return resourceResult("summit://scores/latest", map[string]any{
		"score": score,
	})
}

func (s *Server) handleTrendsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	trends, err := s.repo.ListTrends()
	if err != nil {
		return nil, fmt.Errorf("failed to list trends: %w", err)
	}

	byMetric := make(map[string][]map[string]any)
	for _, tr := range trends {
		byMetric[tr.Metric] = append(byMetric[tr.Metric], map[string]any{
			"timeframe":      tr.Timeframe,
			"baseline":       tr.Baseline,
			"current_avg":    tr.CurrentAvg,
			"percent_change": tr.PercentChange,
			"direction":      tr.Direction,
		})
	}

	result := map[string]any{
		"generated_at": time.Now().Format(time.RFC3339),
		"trends":       byMetric,
		"count":        len(trends),
	}

	return resourceResult("summit://trends", result)
}

// resourceResult marshals payload as indented JSON resource contents.
func resourceResult(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
