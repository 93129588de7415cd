// Package types holds configuration structs shared across the CLI.
package types

// AppConfig represents the complete application configuration.
type AppConfig struct {
	Verbose       bool                `mapstructure:"verbose"`
	Config        string              `mapstructure:"config"`
	Project       ProjectConfig       `mapstructure:"project" validate:"required"`
	LLM           LLMConfig           `mapstructure:"llm" validate:"omitempty"`
	Decomposition DecompositionConfig `mapstructure:"decomposition" validate:"required"`
}

// ProjectConfig holds project-related settings.
type ProjectConfig struct {
	RootDir      string `mapstructure:"rootDir" validate:"required"`
	PlansDir     string `mapstructure:"plansDir" validate:"required"`
	TemplatesDir string `mapstructure:"templatesDir" validate:"required"`
}

// LLMConfig holds configuration for the completion collaborator.
type LLMConfig struct {
	Provider              string  `mapstructure:"provider" validate:"omitempty,oneof=openai ollama anthropic gemini"`
	Model                 string  `mapstructure:"model" validate:"omitempty,min=1"`
	APIKey                string  `mapstructure:"apiKey" validate:"omitempty,min=1"`
	BaseURL               string  `mapstructure:"baseUrl" validate:"omitempty,url"`
	Temperature           float64 `mapstructure:"temperature" validate:"omitempty,min=0,max=2"`
	RequestTimeoutSeconds int     `mapstructure:"requestTimeoutSeconds" validate:"omitempty,min=5,max=600"`
}

// DecompositionConfig holds the engine knobs.
type DecompositionConfig struct {
	// MinDurationMinutes and MaxDurationMinutes bound every task estimate.
	MinDurationMinutes int `mapstructure:"minDurationMinutes" validate:"required,min=1"`
	MaxDurationMinutes int `mapstructure:"maxDurationMinutes" validate:"required,gtefield=MinDurationMinutes"`

	// MaxSubtasks truncates parsed tasks in document order; 0 = unbounded.
	MaxSubtasks int `mapstructure:"maxSubtasks" validate:"min=0"`

	// MinAcceptanceCriteria is the padded minimum per task.
	MinAcceptanceCriteria int `mapstructure:"minAcceptanceCriteria" validate:"required,min=1"`
}
