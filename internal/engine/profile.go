package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/stacieblesley-tech/dailyluck/internal/config"
)

// UserProfile is the single registered user. It is created once at
// registration and immutable afterwards except by full reset.
type UserProfile struct {
	Name string `json:"name"`

	// BirthDate carries only the calendar date; the time component is zero.
	BirthDate time.Time `json:"birthDate"`

	// BirthTime is the optional "HH:mm" birth time, empty when unknown.
	BirthTime string `json:"birthTime,omitempty"`

	// IsRegistered becomes true once onboarding completes.
	IsRegistered bool `json:"isRegistered"`
}

// Validate checks the profile is complete enough to fetch a fortune for.
func (p *UserProfile) Validate() error {
	if p == nil || !p.IsRegistered {
		return ErrNotRegistered
	}
	if p.Name == "" {
		return errors.New(config.ErrNameEmpty)
	}
	if p.BirthDate.IsZero() {
		return errors.New(config.ErrBirthDateZero)
	}
	return nil
}

// ParseBirthDate accepts the date layouts seen in UI entry and vCard BDAY
// fields. Truncated no-year forms are rejected: a zodiac animal needs the
// birth year.
func ParseBirthDate(value string) (time.Time, error) {
	formats := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}

	for _, f := range formats {
		if t, err := time.Parse(f, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("%s: %q", config.ErrDateParse, value)
}

// ImportProfile reads a vCard stream and builds an unregistered profile from
// the first contact carrying a parseable BDAY. Malformed cards are skipped
// to maximize data recovery; the caller completes registration afterwards.
func ImportProfile(r io.Reader) (*UserProfile, error) {
	log := slog.With(config.LogKeyComponent, config.CompEngine)
	decoder := vcard.NewDecoder(r)

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			continue
		}

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birthDate, err := ParseBirthDate(bday.Value)
		if err != nil {
			log.Debug(config.MsgSkippedDate, config.LogKeyError, err)
			continue
		}

		// Name Strategy: FN (Formatted) > N (Structured) > empty
		name := ""
		if fn := card.Get(config.VCardFN); fn != nil {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil {
			name = n.Value
		}

		return &UserProfile{
			Name:      name,
			BirthDate: birthDate,
		}, nil
	}

	return nil, errors.New(config.ErrNoBirthDateCard)
}
