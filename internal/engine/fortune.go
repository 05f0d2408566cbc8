package engine

import "time"

// FortuneRecord is the fortune for one reference-zone calendar day.
// Date uniquely identifies the day; two records with equal Date are the
// same fortune as far as the scheduler is concerned. Records are created
// whole by the generator and replaced whole in the store, never patched.
type FortuneRecord struct {
	// Date is the canonical YYYY-MM-DD key in the reference zone.
	Date string `json:"date"`

	// ZodiacSign is one of the 12 animal labels, computed locally.
	ZodiacSign string `json:"zodiacSign"`

	// StarSign is one of the 12 sign labels, computed locally.
	StarSign string `json:"starSign"`

	ZodiacFortune string `json:"zodiacFortune"`
	StarFortune   string `json:"starFortune"`

	// LuckyNumber is free text; the service is asked for 1-99.
	LuckyNumber string `json:"luckyNumber"`
	LuckyColor  string `json:"luckyColor"`

	// OverallScore is 0-100 inclusive and drives the display tier.
	OverallScore int `json:"overallScore"`

	DailyQuote  string `json:"dailyQuote"`
	QuoteAuthor string `json:"quoteAuthor"`

	// LastUpdated is the fetch completion timestamp.
	LastUpdated time.Time `json:"lastUpdated"`
}
