// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

const (
	// DefaultInputName is the document the notes builder looks for.
	DefaultInputName = "Lachlan @ Work.pdf"

	// DefaultOutputName is the script file the notes page loads.
	DefaultOutputName = "notes-data.js"

	// DefaultLogLevel keeps routine runs quiet on stderr.
	DefaultLogLevel = "warn"
)

// NotesConfig holds settings for a notes build.
type NotesConfig struct {
	// Dir is the working directory holding the input and receiving the output.
	// Empty means the process working directory.
	Dir string `json:"dir" yaml:"dir"`

	// InputName is the document file name inside Dir.
	InputName string `json:"input" yaml:"input"`

	// OutputName is the generated script file name inside Dir.
	OutputName string `json:"output" yaml:"output"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// DefaultNotesConfig returns the fixed-name configuration used when no
// flags or config file override it.
func DefaultNotesConfig() NotesConfig {
	return NotesConfig{
		InputName:  DefaultInputName,
		OutputName: DefaultOutputName,
		LogLevel:   DefaultLogLevel,
	}
}
