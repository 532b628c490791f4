package preferences

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/yanqian/runready/internal/domain/i18n"
	"github.com/yanqian/runready/internal/domain/running"
)

var profilePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// Defaults returns the preferences used when nothing is stored.
func Defaults() Preferences {
	return Preferences{
		Duration:      45,
		Gender:        running.GenderUnspecified,
		Intensity:     running.IntensityModerate,
		AllowDark:     false,
		PreferredTime: running.WindowAny,
		Language:      i18n.DefaultLocale,
	}
}

// Merge overlays every non-nil patch field on base. It performs no
// validation; callers normalize the result.
func Merge(base Preferences, patch Patch) Preferences {
	if patch.Duration != nil {
		base.Duration = *patch.Duration
	}
	if patch.Gender != nil {
		base.Gender = *patch.Gender
	}
	if patch.Intensity != nil {
		base.Intensity = *patch.Intensity
	}
	if patch.AllowDark != nil {
		base.AllowDark = *patch.AllowDark
	}
	if patch.PreferredTime != nil {
		base.PreferredTime = *patch.PreferredTime
	}
	if patch.Language != nil {
		base.Language = *patch.Language
	}
	return base
}

// Normalize clamps the duration and replaces unknown enum values with
// their defaults.
func Normalize(p Preferences) Preferences {
	def := Defaults()
	switch {
	case p.Duration < MinDuration:
		p.Duration = MinDuration
	case p.Duration > MaxDuration:
		p.Duration = MaxDuration
	}
	if g, ok := running.ParseGender(string(p.Gender)); ok {
		p.Gender = g
	} else {
		p.Gender = def.Gender
	}
	if v, ok := running.ParseIntensity(string(p.Intensity)); ok {
		p.Intensity = v
	} else {
		p.Intensity = def.Intensity
	}
	if w, ok := running.ParseTimeWindow(string(p.PreferredTime)); ok {
		p.PreferredTime = w
	} else {
		p.PreferredTime = def.PreferredTime
	}
	if l, ok := i18n.ParseLocale(string(p.Language)); ok {
		p.Language = l
	} else {
		p.Language = def.Language
	}
	return p
}

// Validate rejects enum values that are not recognized. Durations outside
// the supported range are clamped later, not rejected.
func (p Patch) Validate() error {
	var problems []string
	if p.Gender != nil {
		if _, ok := running.ParseGender(string(*p.Gender)); !ok {
			problems = append(problems, fmt.Sprintf("unknown gender %q", *p.Gender))
		}
	}
	if p.Intensity != nil {
		if _, ok := running.ParseIntensity(string(*p.Intensity)); !ok {
			problems = append(problems, fmt.Sprintf("unknown intensity %q", *p.Intensity))
		}
	}
	if p.PreferredTime != nil {
		if _, ok := running.ParseTimeWindow(string(*p.PreferredTime)); !ok {
			problems = append(problems, fmt.Sprintf("unknown preferred time %q", *p.PreferredTime))
		}
	}
	if p.Language != nil {
		if _, ok := i18n.ParseLocale(string(*p.Language)); !ok {
			problems = append(problems, fmt.Sprintf("unsupported language %q", *p.Language))
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// ProfileKey validates a client supplied profile id. Blank ids map to
// DefaultProfile.
func ProfileKey(raw string) (string, error) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return DefaultProfile, nil
	}
	if !profilePattern.MatchString(key) {
		return "", errors.New("profile id must be 1-64 characters of letters, digits, '.', '_' or '-'")
	}
	return key, nil
}
