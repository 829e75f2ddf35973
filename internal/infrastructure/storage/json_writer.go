package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"NewsScanner/internal/domain"
	"NewsScanner/internal/ports"
)

// JSONWriter persists the run snapshot as a single JSON array, replacing the previous file.
type JSONWriter struct {
	path         string
	legacyScores bool
}

var _ ports.RecordWriter = (*JSONWriter)(nil)

// NewJSONWriter targets path. With legacyScores the score fields are rendered
// as "'neg': 0.0, 'neu': 1.0, 'pos': 0.0" strings instead of objects.
func NewJSONWriter(path string, legacyScores bool) *JSONWriter {
	return &JSONWriter{path: path, legacyScores: legacyScores}
}

type recordJSON struct {
	Newspaper                domain.Newspaper `json:"newspaper"`
	ArticleTitle             string           `json:"article_title"`
	ArticleText              string           `json:"article_text"`
	SummaryTitle             string           `json:"summary_title"`
	SentimentTitleScores     any              `json:"sentiment_title_scores"`
	SentimentTitle           domain.Label     `json:"sentiment_title"`
	SalientSentences         string           `json:"salient_sentences"`
	SentimentAnalysisArticle any              `json:"sentiment_analysis_article"`
	ArticleSentimentOverall  domain.Label     `json:"article_sentiment_overall"`
}

type scoresJSON struct {
	Neg float64 `json:"neg"`
	Neu float64 `json:"neu"`
	Pos float64 `json:"pos"`
}

// WriteRecords writes records to a temporary file and renames it over the target.
func (w *JSONWriter) WriteRecords(ctx context.Context, records []domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload := make([]recordJSON, 0, len(records))
	for _, r := range records {
		payload = append(payload, recordJSON{
			Newspaper:                r.Newspaper,
			ArticleTitle:             r.ArticleTitle,
			ArticleText:              r.ArticleText,
			SummaryTitle:             r.SummaryTitle,
			SentimentTitleScores:     w.scores(r.TitleScores),
			SentimentTitle:           r.TitleSentiment,
			SalientSentences:         r.SalientSentences,
			SentimentAnalysisArticle: w.scores(r.ArticleScores),
			ArticleSentimentOverall:  r.ArticleSentiment,
		})
	}

	tmp, err := os.CreateTemp(filepath.Dir(w.path), ".scraped-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode records: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), w.path); err != nil {
		return fmt.Errorf("replace %s: %w", w.path, err)
	}

	return nil
}

func (w *JSONWriter) scores(s domain.SentimentScores) any {
	if w.legacyScores {
		return LegacyScores(s)
	}
	return scoresJSON{Neg: s.Negative, Neu: s.Neutral, Pos: s.Positive}
}

// LegacyScores renders scores the way older consumers of the file expect.
func LegacyScores(s domain.SentimentScores) string {
	return fmt.Sprintf("'neg': %s, 'neu': %s, 'pos': %s",
		decimal(s.Negative), decimal(s.Neutral), decimal(s.Positive))
}

func decimal(v float64) string {
	out := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
