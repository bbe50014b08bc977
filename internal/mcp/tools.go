package mcp

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolDefinitions contains all available MCP tools
var ToolDefinitions = []Tool{
	{
		Name:        "search_courses",
		Description: "Search UK undergraduate courses with filters. Keywords split on commas when present, otherwise whitespace; prefix a term with '-' to exclude it. Results are sorted by blended ranking score.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Course name keywords, e.g. 'comp, -philosophy'",
				},
				"university": map[string]interface{}{
					"type":        "string",
					"description": "Filter by exact university name",
				},
				"domain": map[string]interface{}{
					"type":        "string",
					"description": "Filter by subject domain, e.g. 'Computing & Technology'",
				},
				"max_alevel_score": map[string]interface{}{
					"type":        "integer",
					"description": "Your A-level tally score; hides offers above it",
				},
				"max_ib_points": map[string]interface{}{
					"type":        "integer",
					"description": "Your IB points; hides offers above them",
				},
				"global_weight": map[string]interface{}{
					"type":        "number",
					"description": "Blend between global and subject rankings, 0-1 (default from config)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (default: 20)",
				},
			},
		},
	},
	{
		Name:        "get_course",
		Description: "Get one course record with its rankings, offer requirements and any medical-school or admissions data.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"identifier": map[string]interface{}{
					"type":        "string",
					"description": "Course name (case-insensitive partial match) or record ID",
				},
				"university": map[string]interface{}{
					"type":        "string",
					"description": "Disambiguate by university (partial match)",
				},
			},
			"required": []string{"identifier"},
		},
	},
	{
		Name:        "list_options",
		Description: "List the distinct universities, domains, study modes and durations in the record set, plus the observed grade-score ranges.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
	{
		Name:        "list_med_schools",
		Description: "List medical schools with admission tests, interview formats and international admissions statistics.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"test": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"UCAT", "Other", "Unknown"},
					"description": "Filter by admission test category",
				},
				"smc_only": map[string]interface{}{
					"type":        "boolean",
					"description": "Only schools on the Singapore Medical Council register",
				},
			},
		},
	},
	{
		Name:        "get_stats",
		Description: "Get aggregate counts over the merged record set: courses, universities, domains and data coverage.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
}
