package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"NewsScanner/internal/analysis"
	"NewsScanner/internal/domain"
	"NewsScanner/internal/ports"
	"NewsScanner/internal/sentiment"
)

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Source    ports.CandidateSource
	Writer    ports.RecordWriter
	Notifier  ports.Notifier
	Tokenizer *analysis.Tokenizer
	TopWords  int
	Logger    *slog.Logger
}

// Pipeline turns candidates into analyzed records and writes the snapshot.
type Pipeline struct {
	source    ports.CandidateSource
	writer    ports.RecordWriter
	notifier  ports.Notifier
	tokenizer *analysis.Tokenizer
	topWords  int
	logger    *slog.Logger
}

// NewPipeline constructs the orchestration component and loads NLP resources once.
func NewPipeline(deps PipelineDeps) *Pipeline {
	tokenizer := deps.Tokenizer
	if tokenizer == nil {
		tokenizer = analysis.NewTokenizer(nil)
	}
	topWords := deps.TopWords
	if topWords <= 0 {
		topWords = analysis.DefaultTopWords
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	sentiment.Ensure()

	return &Pipeline{
		source:    deps.Source,
		writer:    deps.Writer,
		notifier:  deps.Notifier,
		tokenizer: tokenizer,
		topWords:  topWords,
		logger:    logger,
	}
}

// ProcessDay collects the day's candidates, analyzes them, writes the snapshot
// and publishes a digest when a notifier is configured.
func (p *Pipeline) ProcessDay(ctx context.Context, day time.Time) error {
	if p.source == nil {
		return nil
	}

	logger := p.logger.With("run_id", uuid.NewString())
	logger.Info("run started", "day", day.Format("2006-01-02"))

	batches, err := p.source.CollectDaily(ctx, day)
	if err != nil {
		return fmt.Errorf("collect daily: %w", err)
	}

	var records []domain.Record
	for _, batch := range batches {
		for _, candidate := range batch {
			records = append(records, p.analyze(logger, candidate))
		}
	}

	if p.writer != nil {
		if err := p.writer.WriteRecords(ctx, records); err != nil {
			return fmt.Errorf("write records: %w", err)
		}
	}
	logger.Info("run finished", "records", len(records))

	if p.notifier == nil || len(records) == 0 {
		return nil
	}

	if err := p.notifier.PublishDigest(ctx, BuildDigest(day, records)); err != nil {
		logger.Warn("digest not delivered", "error", err)
	}
	return nil
}

// Analyze builds the record for one candidate.
func (p *Pipeline) Analyze(candidate domain.Candidate) domain.Record {
	return p.analyze(p.logger, candidate)
}

func (p *Pipeline) analyze(logger *slog.Logger, c domain.Candidate) domain.Record {
	titleScores := sentiment.Score(c.Title)

	words := p.tokenizer.Tokenize(c.Body)
	logger.Debug("top words", "link", c.Link, "words", analysis.MostCommonWords(words, p.topWords))

	var salient string
	quadgram, err := analysis.TopQuadgram(words)
	var insufficient *analysis.InsufficientTextError
	switch {
	case err == nil:
		salient = analysis.JoinSentences(analysis.SalientSentences(quadgram, c.Body))
	case errors.As(err, &insufficient):
		logger.Info("salience skipped", "link", c.Link, "error", err)
	default:
		logger.Warn("salience failed", "link", c.Link, "error", err)
	}

	articleScores := sentiment.Score(c.Body)

	return domain.Record{
		Newspaper:        c.Newspaper,
		ArticleTitle:     c.Title,
		ArticleText:      c.Body,
		SummaryTitle:     analysis.SummarizeTitle(c.Title),
		TitleScores:      titleScores,
		TitleSentiment:   sentiment.Dominant(titleScores),
		SalientSentences: salient,
		ArticleScores:    articleScores,
		ArticleSentiment: sentiment.Dominant(articleScores),
	}
}

// BuildDigest renders a plain-text overview of the run, one block per record.
func BuildDigest(day time.Time, records []domain.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "News sentiment %s\n\n", day.Format("2006/01/02"))
	for _, r := range records {
		fmt.Fprintf(&b, "[%s] %s\nTitle: %s, Article: %s\n\n",
			r.Newspaper, r.SummaryTitle, r.TitleSentiment, r.ArticleSentiment)
	}
	return strings.TrimRight(b.String(), "\n")
}
