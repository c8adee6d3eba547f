package export

import (
	"github.com/slidecast/slidecast/internal/logger"
)

type implExporter struct {
	logger logger.Logger
}

// New creates an Exporter.
func New(log logger.Logger) Exporter {
	return &implExporter{logger: log}
}
