package config

// ReporterConfig defines how diff results are rendered and where they go.
type ReporterConfig struct {
	// Format selects the output renderer: "text" or "json".
	Format string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,oneof=text json"`
	// OutputPath writes the report to a file instead of stdout when set.
	OutputPath string `json:"output_path,omitempty" yaml:"output_path,omitempty"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		Format: DefaultReportFormat,
	}
}
