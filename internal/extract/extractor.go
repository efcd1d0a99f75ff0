// Package extract turns uploaded CV files into plain text.
package extract

import (
	"context"
	"fmt"
	"path"
	"strings"

	"go.uber.org/zap"

	logpkg "github.com/LBuyana/talentflow-app/internal/logger"
	"github.com/LBuyana/talentflow-app/internal/metrics"
)

// Downloader fetches raw file bytes by storage path.
type Downloader interface {
	Download(ctx context.Context, path string) ([]byte, error)
}

// parser converts file bytes to text.
type parser func(data []byte) (string, error)

var parsers = map[string]parser{
	".pdf":  pdfText,
	".docx": docxText,
}

// Extractor converts stored CV documents to text. It never fails: unreadable files yield "".
type Extractor struct {
	files Downloader
}

// New creates an extractor reading from files.
func New(files Downloader) *Extractor {
	return &Extractor{files: files}
}

// Extract downloads the file at path and returns its text, or "" when the file is
// missing, unsupported or unreadable. Failures are logged with the request logger.
func (e *Extractor) Extract(ctx context.Context, filePath string) string {
	log := logpkg.FromContext(ctx).With(zap.String("cv_file_path", filePath))

	ext := strings.ToLower(path.Ext(filePath))
	parse, ok := parsers[ext]
	if !ok {
		log.Debug("Unsupported CV format, skipping", zap.String("ext", ext))
		metrics.CVExtractionsTotal.WithLabelValues("unsupported").Inc()
		return ""
	}

	data, err := e.files.Download(ctx, filePath)
	if err != nil {
		log.Warn("CV download failed", zap.Error(err))
		metrics.CVExtractionsTotal.WithLabelValues("error").Inc()
		return ""
	}

	text, err := safeParse(parse, data)
	if err != nil {
		log.Warn("CV parse failed", zap.Error(err))
		metrics.CVExtractionsTotal.WithLabelValues("error").Inc()
		return ""
	}

	if text == "" {
		metrics.CVExtractionsTotal.WithLabelValues("empty").Inc()
		return ""
	}
	metrics.CVExtractionsTotal.WithLabelValues("ok").Inc()
	return text
}

// safeParse converts parser panics on malformed input into errors.
func safeParse(parse parser, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()
	text, err = parse(data)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
