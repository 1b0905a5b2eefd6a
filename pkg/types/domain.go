package types

// ModelDescriptor describes a model whose deployment is being planned.
type ModelDescriptor struct {
	// Model identifier on the hub.
	// example: distilbert-base-uncased-finetuned-sst-2-english
	ID string `json:"id" yaml:"id" toml:"id" example:"distilbert-base-uncased-finetuned-sst-2-english"`
	// Pipeline task of the model.
	// example: text-classification
	Task string `json:"task" yaml:"task" toml:"task" example:"text-classification"`
	// Size of the weights in bytes at fp32 precision.
	// example: 267832560
	SizeInBytesFP32 int64 `json:"size_in_bytes_fp32" yaml:"size_in_bytes_fp32" toml:"size_in_bytes_fp32" example:"267832560"`
	// Whether the model can be served by Text Generation Inference.
	// example: false
	IsTGISupported bool `json:"is_tgi_supported" yaml:"is_tgi_supported" toml:"is_tgi_supported" example:"false"`
}

// Instance is one entry of the instance catalog.
type Instance struct {
	// Instance type name.
	// example: ml.g5.xlarge
	Name string `json:"name" yaml:"name" toml:"name" example:"ml.g5.xlarge"`
	// Accelerator (or host, for cpu) memory in GB.
	// example: 24
	MemoryInGB int `json:"memoryInGB" yaml:"memoryInGB" toml:"memoryInGB" example:"24"`
	// Number of GPUs. Zero when absent.
	// example: 1
	NumGPUs int `json:"num_gpus,omitempty" yaml:"num_gpus,omitempty" toml:"num_gpus,omitempty" example:"1"`
}

// InferencePlan is the outcome of planning a deployment.
type InferencePlan struct {
	// Smallest cataloged instance able to hold the model.
	// example: ml.g5.xlarge
	MinInstanceType string `json:"min_instance_type" example:"ml.g5.xlarge"`
	// Rendered deployment snippet.
	CodeSnippet string `json:"code_snippet"`
	// True when the snippet targets the LLM serving container.
	// example: false
	IsLLM bool `json:"is_llm" example:"false"`
}
