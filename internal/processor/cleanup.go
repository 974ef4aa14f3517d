package processor

import (
	"context"
	"fmt"
)

// removeSource deletes the original subtitle once its text file exists.
// A failure here leaves both files on disk.
func (p *implProcessor) removeSource(ctx context.Context, srtPath string) error {
	p.logger.Debug(ctx, "Removing source subtitle: %s", srtPath)

	if err := p.fs.Remove(srtPath); err != nil {
		return fmt.Errorf("remove subtitle: %w", err)
	}

	return nil
}
