package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// JSONFormatter writes a report value as indented JSON, either to a file or
// to the given writer.
type JSONFormatter struct {
	w          io.Writer
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(w io.Writer, outputFile string) *JSONFormatter {
	return &JSONFormatter{w: w, outputFile: outputFile}
}

// Format marshals v and writes it out.
func (f *JSONFormatter) Format(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling report: %w", err)
	}
	data = append(data, '\n')

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, data, 0644); err != nil {
			return fmt.Errorf("error writing report file: %w", err)
		}
		return nil
	}
	_, err = f.w.Write(data)
	return err
}
