package types

// PlanRequest is the payload of POST /plan.
type PlanRequest struct {
	// Model to plan for.
	Model ModelDescriptor `json:"model"`
	// Accelerator family. If empty, the server default is used.
	// example: gpu
	Accelerator string `json:"accelerator,omitempty" example:"gpu"`
}

// InstancesResponse wraps the catalog returned by GET /instances.
type InstancesResponse struct {
	// Instances keyed by accelerator, ascending by memory.
	Instances map[string][]Instance `json:"instances"`
}

// TasksResponse wraps the template keys returned by GET /tasks.
type TasksResponse struct {
	// example: ["text-classification","tgi"]
	Tasks []string `json:"tasks" example:"text-classification,tgi"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
