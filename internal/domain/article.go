package domain

// Newspaper identifies the publisher a record was scraped from.
type Newspaper string

const (
	Guardian Newspaper = "guardian"
	Mail     Newspaper = "mail"
	Metro    Newspaper = "metro"
)

// Candidate is a discovered article before analysis.
type Candidate struct {
	Newspaper Newspaper
	Link      string
	Title     string
	Body      string
}

// Label is the dominant sentiment of a text span.
type Label string

const (
	Positive Label = "Positive"
	Neutral  Label = "Neutral"
	Negative Label = "Negative"
)

// SentimentScores keeps the three polarity axes of a text span.
type SentimentScores struct {
	Positive float64
	Neutral  float64
	Negative float64
}

// Record is the final per-article output unit.
type Record struct {
	Newspaper        Newspaper
	ArticleTitle     string
	ArticleText      string
	SummaryTitle     string
	TitleScores      SentimentScores
	TitleSentiment   Label
	SalientSentences string
	ArticleScores    SentimentScores
	ArticleSentiment Label
}
