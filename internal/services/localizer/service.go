// -----------------------------------------------------------------------
// Localizer Service
// Downloads the remote images of a markdown document and writes a copy
// that references the local files
// -----------------------------------------------------------------------

package localizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/mdlocal/internal/interfaces"
	"github.com/ternarybob/mdlocal/internal/models"
	"github.com/ternarybob/mdlocal/internal/services/markdown"
)

// DefaultSuffix is appended to the input file stem to name the output document
const DefaultSuffix = "_local"

// Service localizes one markdown document per call; it keeps no state between calls
type Service struct {
	downloader interfaces.ImageDownloader
	suffix     string
	logger     arbor.ILogger
}

// NewService creates a new localizer service
func NewService(downloader interfaces.ImageDownloader, suffix string, logger arbor.ILogger) *Service {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return &Service{
		downloader: downloader,
		suffix:     suffix,
		logger:     logger,
	}
}

// OutputPath returns <dir>/<stem><suffix>.md for inputPath
func (s *Service) OutputPath(inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(inputPath), stem+s.suffix+".md")
}

// Localize downloads every remote image referenced by the document at inputPath
// and writes the rewritten document beside it. Individual download failures are
// logged and leave the original URL in place; only read and write failures of the
// document itself are returned as errors.
func (s *Service) Localize(ctx context.Context, inputPath string) (*models.LocalizeResult, error) {
	runID := uuid.New().String()
	logger := s.logger.WithCorrelationId(runID)

	result := &models.LocalizeResult{
		RunID:     runID,
		InputPath: inputPath,
	}

	content, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, &InputReadError{Path: inputPath, Err: err}
	}
	text := string(content)

	logger.Info().Str("path", inputPath).Int("bytes", len(content)).Msg("Read markdown file")

	refs := markdown.Extract(text)
	result.Found = len(refs)
	if len(refs) == 0 {
		logger.Info().Str("path", inputPath).Msg("No remote images found, nothing to do")
		return result, nil
	}

	logger.Info().Int("image_count", len(refs)).Msg("Found remote images")

	documentDir := filepath.Dir(inputPath)
	replacements := make(models.ReplacementMap, len(refs))

	for i, ref := range refs {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("localize cancelled: %w", err)
		}

		// The same URL is only downloaded once per run
		if _, seen := replacements[ref.URL]; seen {
			logger.Debug().Str("url", ref.URL).Msg("Reusing earlier download result")
			continue
		}

		stored, err := s.downloader.Download(ctx, ref.URL, documentDir)
		result.Images = append(result.Images, stored)
		if err != nil {
			logger.Warn().
				Err(err).
				Int("index", i+1).
				Str("url", ref.URL).
				Msg("Image download failed, keeping original URL")
			replacements[ref.URL] = ref.URL
			continue
		}

		logger.Info().
			Int("index", i+1).
			Str("url", ref.URL).
			Str("path", stored.LocalPath).
			Msg("Image downloaded")
		replacements[ref.URL] = stored.LocalPath
	}

	// A download interrupted by cancellation must not produce output
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("localize cancelled: %w", err)
	}

	for _, ref := range refs {
		if replacements.Converted(ref.URL) {
			result.Converted++
		}
	}
	result.Failed = result.Found - result.Converted

	output := markdown.Rewrite(text, refs, replacements)
	outputPath := s.OutputPath(inputPath)

	if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
		return nil, &OutputWriteError{Path: outputPath, Err: err}
	}
	result.OutputPath = outputPath
	result.Remaining = markdown.CountRemoteImages(output)

	logger.Info().
		Str("path", outputPath).
		Int("found", result.Found).
		Int("converted", result.Converted).
		Int("failed", result.Failed).
		Int("remaining_remote", result.Remaining).
		Msg("Localized markdown written")

	return result, nil
}
