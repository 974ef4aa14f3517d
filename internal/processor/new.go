package processor

import (
	"io"

	"github.com/nguyentantai21042004/srt-strip/internal/config"
	"github.com/nguyentantai21042004/srt-strip/internal/logger"
	"github.com/spf13/afero"
)

type implProcessor struct {
	cfg    *config.Config
	fs     afero.Fs
	out    io.Writer
	logger logger.Logger
}

// New creates a new Processor instance. Confirmation lines go to out.
func New(cfg *config.Config, fs afero.Fs, out io.Writer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:    cfg,
		fs:     fs,
		out:    out,
		logger: log,
	}
}
