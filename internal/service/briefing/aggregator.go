// Package briefing aggregates uploaded briefing files into one context
// block for the prompt composer.
package briefing

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/contentwerk/seo-engine/internal/service/llm"
	"github.com/contentwerk/seo-engine/internal/storage"
)

// maxFileChars caps the content taken from a single briefing file.
const maxFileChars = 10000

// Downloader is the storage surface the aggregator needs.
type Downloader interface {
	Download(ctx context.Context, path string, maxBytes int64) (string, error)
}

// Aggregator downloads briefing files and compresses them into a summary
// via one extra gateway call.
type Aggregator struct {
	storage Downloader
	gateway llm.Completer
	logger  llm.Logger
}

// NewAggregator creates a briefing aggregator.
func NewAggregator(store *storage.Client, gateway llm.Completer, logger llm.Logger) *Aggregator {
	if logger == nil {
		logger = llm.NewDefaultLogger()
	}
	return &Aggregator{storage: store, gateway: gateway, logger: logger}
}

// Aggregate downloads all briefing files concurrently, joins them with
// per-file headers and summarizes the result. Download failures skip the
// file instead of failing the request; a failed summarization falls back to
// the truncated raw content.
func (a *Aggregator) Aggregate(ctx context.Context, paths []string, modelID string) string {
	if len(paths) == 0 || a.storage == nil {
		return ""
	}

	contents := make([]string, len(paths))
	var wg sync.WaitGroup
	for i, filePath := range paths {
		wg.Add(1)
		go func(i int, filePath string) {
			defer wg.Done()

			// maxFileChars is a rune cap; fetch a few extra bytes for
			// multi-byte text before cutting.
			content, err := a.storage.Download(ctx, filePath, maxFileChars*4)
			if err != nil {
				a.logger.Error("Briefing download failed, skipping file",
					"path", filePath, "error", err)
				return
			}
			contents[i] = truncateRunes(content, maxFileChars)
		}(i, filePath)
	}
	wg.Wait()

	var sb strings.Builder
	for i, content := range contents {
		if strings.TrimSpace(content) == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("=== Briefing: %s ===\n", path.Base(paths[i])))
		sb.WriteString(content)
		sb.WriteString("\n\n")
	}

	combined := strings.TrimSpace(sb.String())
	if combined == "" {
		return ""
	}

	return a.summarize(ctx, combined, modelID)
}

// summarize compresses the combined briefing content into the essentials a
// text briefing needs.
func (a *Aggregator) summarize(ctx context.Context, combined, modelID string) string {
	messages := []llm.Message{
		{
			Role: "system",
			Content: "Du fasst Kunden-Briefings für SEO-Texter zusammen. " +
				"Behalte alle konkreten Vorgaben (Begriffe, Verbote, Produktdaten, Zielgruppen) und streiche alles Redundante. " +
				"Antworte nur mit der Zusammenfassung.",
		},
		{
			Role:    "user",
			Content: combined,
		},
	}

	summary, err := a.gateway.ChatCompletion(ctx, modelID, messages)
	if err != nil || strings.TrimSpace(summary) == "" {
		a.logger.Error("Briefing summarization failed, using raw content", "error", err)
		return truncateRunes(combined, maxFileChars)
	}
	return strings.TrimSpace(summary)
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
