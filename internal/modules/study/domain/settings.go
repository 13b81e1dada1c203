package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	apperrors "flashcards/internal/platform/errors"
)

const (
	MinFlipDelay = 500 * time.Millisecond
	MinFontSize  = 10

	// maxFlipDelayMS is the largest delay that still fits in a time.Duration.
	maxFlipDelayMS = math.MaxInt64 / int64(time.Millisecond)
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

type Settings struct {
	FlipDelay  time.Duration
	FontSize   int
	Background string
	CardFront  string
	CardBack   string
}

// Normalize raises delay and font size to their minimums.
func (s Settings) Normalize() Settings {
	if s.FlipDelay < MinFlipDelay {
		s.FlipDelay = MinFlipDelay
	}
	if s.FontSize < MinFontSize {
		s.FontSize = MinFontSize
	}
	return s
}

// SettingsText is the settings form as typed by the user.
type SettingsText struct {
	FlipDelayMS string
	FontSize    string
	Background  string
	CardFront   string
	CardBack    string
}

// ParseSettings validates typed settings on top of prior. Numbers must be
// whole; values under the minimum are raised to it. Blank colors keep the
// prior value. On error prior is returned unchanged.
func ParseSettings(prior Settings, in SettingsText) (Settings, error) {
	delayMS, err := strconv.Atoi(strings.TrimSpace(in.FlipDelayMS))
	if err != nil {
		return prior, fmt.Errorf("%w: flip delay must be a whole number of milliseconds", apperrors.ErrInvalidInput)
	}
	if int64(delayMS) > maxFlipDelayMS || int64(delayMS) < -maxFlipDelayMS {
		return prior, fmt.Errorf("%w: flip delay is out of range", apperrors.ErrInvalidInput)
	}
	font, err := strconv.Atoi(strings.TrimSpace(in.FontSize))
	if err != nil {
		return prior, fmt.Errorf("%w: font size must be a whole number", apperrors.ErrInvalidInput)
	}

	next := Settings{
		FlipDelay: time.Duration(delayMS) * time.Millisecond,
		FontSize:  font,
	}
	colors := []struct {
		name  string
		value string
		prior string
		dst   *string
	}{
		{"background", in.Background, prior.Background, &next.Background},
		{"card front", in.CardFront, prior.CardFront, &next.CardFront},
		{"card back", in.CardBack, prior.CardBack, &next.CardBack},
	}
	for _, c := range colors {
		v := strings.TrimSpace(c.value)
		if v == "" {
			*c.dst = c.prior
			continue
		}
		if !hexColor.MatchString(v) {
			return prior, fmt.Errorf("%w: %s color must look like #rrggbb", apperrors.ErrInvalidInput, c.name)
		}
		*c.dst = v
	}
	return next.Normalize(), nil
}
