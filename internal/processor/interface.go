package processor

import "context"

// Processor defines the interface for subtitle conversion operations
type Processor interface {
	// Process converts a single .srt file and returns the text file written.
	Process(ctx context.Context, srtPath string) (string, error)
	// Run processes paths in order, skipping anything that is not an .srt file.
	Run(ctx context.Context, paths []string) Result
}
