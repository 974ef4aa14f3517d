package processor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/nguyentantai21042004/srt-strip/internal/converter"
	"github.com/spf13/afero"
)

// Process reads an .srt file, writes its dialogue next to it as .txt and
// removes the source. The source is only removed after the write succeeded.
func (p *implProcessor) Process(ctx context.Context, srtPath string) (string, error) {
	p.logger.Debug(ctx, "Converting subtitle: %s", srtPath)

	// Step 1: Read and decode
	raw, err := afero.ReadFile(p.fs, srtPath)
	if err != nil {
		return "", fmt.Errorf("read subtitle: %w", err)
	}

	content, err := decodeUTF8(raw)
	if err != nil {
		return "", fmt.Errorf("decode subtitle: %w", err)
	}

	// Step 2: Strip markup
	text := converter.Convert(content)

	// Step 3: Write text file, overwriting any previous one
	txtPath := converter.OutputPath(srtPath)
	if err := afero.WriteFile(p.fs, txtPath, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("write text: %w", err)
	}
	p.logger.Debug(ctx, "Wrote %d bytes: %s", len(text), txtPath)

	// Step 4: Remove the original subtitle
	if err := p.removeSource(ctx, srtPath); err != nil {
		return txtPath, err
	}

	fmt.Fprintf(p.out, "Converted: %s\n", filepath.Base(txtPath))
	return txtPath, nil
}
