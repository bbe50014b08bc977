package mcp

// Resource defines an MCP resource
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// ResourceDefinitions lists all available resources
var ResourceDefinitions = []Resource{
	{
		URI:         "coursefinder://summary",
		Name:        "Dataset Summary",
		Description: "Aggregate counts over the merged course record set",
		MimeType:    "text/plain",
	},
	{
		URI:         "coursefinder://domains",
		Name:        "Subject Domains",
		Description: "Subject domains with course counts",
		MimeType:    "text/plain",
	},
	{
		URI:         "coursefinder://universities",
		Name:        "Universities",
		Description: "Universities in the dataset with course counts",
		MimeType:    "text/plain",
	},
}

// resourcesListResult is the response for resources/list
type resourcesListResult struct {
	Resources []Resource `json:"resources"`
}

// readResourceParams is the params for resources/read
type readResourceParams struct {
	URI string `json:"uri"`
}

// readResourceResult is the response for resources/read
type readResourceResult struct {
	Contents []resourceContent `json:"contents"`
}

type resourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
}
