package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/stacieblesley-tech/dailyluck/internal/config"
)

// Generator is the core service turning a registered profile into the
// fortune record for the current reference-zone day.
type Generator struct {
	Clock  Clock         // Interface for time mocking.
	Client FortuneClient // Interface for service abstraction.
}

// fortunePayload mirrors the mandatory response shape. Pointer fields
// distinguish a missing key from a present-but-empty value.
type fortunePayload struct {
	ZodiacFortune *string  `json:"zodiacFortune"`
	StarFortune   *string  `json:"starFortune"`
	LuckyNumber   *string  `json:"luckyNumber"`
	LuckyColor    *string  `json:"luckyColor"`
	OverallScore  *float64 `json:"overallScore"`
	DailyQuote    *string  `json:"dailyQuote"`
	QuoteAuthor   *string  `json:"quoteAuthor"`
}

// FetchDaily requests today's fortune for the profile. On success the
// returned record is complete (Date stamped with today's key, LastUpdated
// with the fetch completion time); on any failure nothing is produced and
// the error wraps one of the sentinel kinds. No retries happen here.
func (g *Generator) FetchDaily(ctx context.Context, profile *UserProfile) (*FortuneRecord, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	zodiac := ZodiacAnimalFor(profile.BirthDate.Year())
	starSign := StarSignFor(int(profile.BirthDate.Month()), profile.BirthDate.Day())
	todayKey := DateKey(ReferenceNow(g.Clock))

	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyDateKey, todayKey,
		config.LogKeyZodiac, zodiac,
		config.LogKeyStarSign, starSign,
	)
	log.Info(config.MsgUpdateStarted)

	prompt := fmt.Sprintf(config.PromptTemplate,
		todayKey,
		profile.Name,
		profile.BirthDate.Format(config.DateFormatFullDash),
		zodiac,
		starSign,
	)

	text, err := g.Client.Generate(ctx, prompt)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}

	payload, err := parsePayload(text)
	if err != nil {
		return nil, err
	}

	record := &FortuneRecord{
		Date:          todayKey,
		ZodiacSign:    zodiac,
		StarSign:      starSign,
		ZodiacFortune: *payload.ZodiacFortune,
		StarFortune:   *payload.StarFortune,
		LuckyNumber:   *payload.LuckyNumber,
		LuckyColor:    *payload.LuckyColor,
		OverallScore:  int(math.Round(*payload.OverallScore)),
		DailyQuote:    *payload.DailyQuote,
		QuoteAuthor:   *payload.QuoteAuthor,
		LastUpdated:   g.Clock.Now(),
	}

	log.Info(config.MsgUpdateSuccess,
		config.LogKeyScore, record.OverallScore,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return record, nil
}

// parsePayload decodes and validates the structured response text.
// All seven fields are mandatory; the score must land in [0, 100].
func parsePayload(text string) (*fortunePayload, error) {
	var payload fortunePayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	required := map[string]*string{
		config.FieldZodiacFortune: payload.ZodiacFortune,
		config.FieldStarFortune:   payload.StarFortune,
		config.FieldLuckyNumber:   payload.LuckyNumber,
		config.FieldLuckyColor:    payload.LuckyColor,
		config.FieldDailyQuote:    payload.DailyQuote,
		config.FieldQuoteAuthor:   payload.QuoteAuthor,
	}
	for field, value := range required {
		if value == nil || *value == "" {
			return nil, fmt.Errorf("%w: missing %s", ErrMalformedResponse, field)
		}
	}

	if payload.OverallScore == nil {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedResponse, config.FieldOverallScore)
	}
	score := *payload.OverallScore
	if score < config.MinOverallScore || score > config.MaxOverallScore {
		return nil, fmt.Errorf("%w: %s (%v)", ErrMalformedResponse, config.ErrScoreOutOfRange, score)
	}

	return &payload, nil
}
