package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/seetoh/coursefinder/internal/dataset"
	"github.com/seetoh/coursefinder/internal/query"
)

func (s *Server) registerHandlers() {
	s.handlers["search_courses"] = s.handleSearchCourses
	s.handlers["get_course"] = s.handleGetCourse
	s.handlers["list_options"] = s.handleListOptions
	s.handlers["list_med_schools"] = s.handleListMedSchools
	s.handlers["get_stats"] = s.handleGetStats
}

type searchCoursesParams struct {
	Query          string   `json:"query"`
	University     string   `json:"university"`
	Domain         string   `json:"domain"`
	MaxALevelScore *int     `json:"max_alevel_score"`
	MaxIBPoints    *int     `json:"max_ib_points"`
	GlobalWeight   *float64 `json:"global_weight"`
	Limit          int      `json:"limit"`
}

func (s *Server) handleSearchCourses(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p searchCoursesParams
	if params != nil {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, fmt.Errorf("invalid parameters: %w", err)
		}
	}

	records, err := s.cache.Records()
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	filters := query.Filters{
		Search:    p.Query,
		MaxALevel: p.MaxALevelScore,
		MaxIB:     p.MaxIBPoints,
	}
	if p.University != "" {
		filters.Universities = []string{p.University}
	}
	if p.Domain != "" {
		filters.Domains = []string{p.Domain}
	}

	weight := s.config.Scoring.GlobalWeight
	if p.GlobalWeight != nil {
		if *p.GlobalWeight < 0 || *p.GlobalWeight > 1 {
			return nil, fmt.Errorf("global_weight must be between 0 and 1, got %g", *p.GlobalWeight)
		}
		weight = *p.GlobalWeight
	}

	results := filters.Apply(records)
	results = query.WithScores(results, weight)
	results = query.Sort(results, query.SortWeightedScore, true)

	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}
	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

type getCourseParams struct {
	Identifier string `json:"identifier"`
	University string `json:"university"`
}

func (s *Server) handleGetCourse(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p getCourseParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if p.Identifier == "" {
		return nil, fmt.Errorf("identifier is required")
	}

	records, err := s.cache.Records()
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	// Try ID first, then partial course-name match.
	for i := range records {
		if records[i].ID == p.Identifier {
			return records[i], nil
		}
	}

	needle := strings.ToLower(p.Identifier)
	uni := strings.ToLower(p.University)
	for i := range records {
		if !strings.Contains(strings.ToLower(records[i].Course), needle) {
			continue
		}
		if uni != "" && !strings.Contains(strings.ToLower(records[i].University), uni) {
			continue
		}
		return records[i], nil
	}

	return nil, fmt.Errorf("course not found: %s", p.Identifier)
}

func (s *Server) handleListOptions(ctx context.Context, params json.RawMessage) (interface{}, error) {
	records, err := s.cache.Records()
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return query.CollectOptions(records), nil
}

type listMedSchoolsParams struct {
	Test    string `json:"test"`
	SMCOnly bool   `json:"smc_only"`
}

func (s *Server) handleListMedSchools(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p listMedSchoolsParams
	if params != nil {
		json.Unmarshal(params, &p)
	}

	rows, err := dataset.LoadMedSchools(s.config.Data.SourcePaths().MedSchools)
	if err != nil {
		return nil, fmt.Errorf("failed to load medical schools: %w", err)
	}

	filters := query.MedFilters{SMCApprovedOnly: p.SMCOnly}
	if p.Test != "" {
		filters.TestCategories = []string{p.Test}
	}

	return filters.Apply(rows), nil
}

func (s *Server) handleGetStats(ctx context.Context, params json.RawMessage) (interface{}, error) {
	records, err := s.cache.Records()
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return dataset.ComputeStats(records), nil
}

// Resource handlers

func (s *Server) handleReadResource(ctx context.Context, uri string) (string, error) {
	switch uri {
	case "coursefinder://summary":
		return s.getResourceSummary(ctx)
	case "coursefinder://domains":
		return s.getResourceDomains(ctx)
	case "coursefinder://universities":
		return s.getResourceUniversities(ctx)
	default:
		return "", fmt.Errorf("unknown resource: %s", uri)
	}
}

func (s *Server) getResourceSummary(ctx context.Context) (string, error) {
	records, err := s.cache.Records()
	if err != nil {
		return "", err
	}
	stats := dataset.ComputeStats(records)

	summary := fmt.Sprintf(`Course Dataset Summary
======================
Total courses:        %d
Universities:         %d
Domains:              %d
With subject ranking: %d
With med-school data: %d
With admissions data: %d
`, stats.Courses, stats.Universities, stats.Domains,
		stats.WithSubjectRank, stats.WithMedData, stats.WithAdmissions)

	return summary, nil
}

func (s *Server) getResourceDomains(ctx context.Context) (string, error) {
	records, err := s.cache.Records()
	if err != nil {
		return "", err
	}

	counts := map[string]int{}
	for _, r := range records {
		counts[r.Domain]++
	}

	opts := query.CollectOptions(records)
	result := "Subject Domains\n===============\n\n"
	for _, d := range opts.Domains {
		result += fmt.Sprintf("  - %s (%d courses)\n", d, counts[d])
	}
	return result, nil
}

func (s *Server) getResourceUniversities(ctx context.Context) (string, error) {
	records, err := s.cache.Records()
	if err != nil {
		return "", err
	}

	counts := map[string]int{}
	for _, r := range records {
		counts[r.University]++
	}

	opts := query.CollectOptions(records)
	result := "Universities\n============\n\n"
	for _, u := range opts.Universities {
		result += fmt.Sprintf("  - %s (%d courses)\n", u, counts[u])
	}
	return result, nil
}
