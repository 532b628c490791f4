package preferences

import (
	"context"

	"github.com/yanqian/runready/internal/domain/i18n"
	"github.com/yanqian/runready/internal/domain/running"
)

const (
	// MinDuration and MaxDuration bound the planned workout length in minutes.
	MinDuration = 15
	MaxDuration = 120

	// DefaultProfile is used when the client does not identify its device.
	DefaultProfile = "default"
)

// Preferences are the runner inputs that shape every recommendation.
type Preferences struct {
	Duration      int                `json:"duration"`
	Gender        running.Gender     `json:"gender"`
	Intensity     running.Intensity  `json:"intensity"`
	AllowDark     bool               `json:"allowDark"`
	PreferredTime running.TimeWindow `json:"preferredTime"`
	Language      i18n.Locale        `json:"language"`
}

// Patch is a partial update. Nil fields leave the base value unchanged.
// Stored documents decode into a Patch so missing keys keep their defaults.
type Patch struct {
	Duration      *int                `json:"duration,omitempty"`
	Gender        *running.Gender     `json:"gender,omitempty"`
	Intensity     *running.Intensity  `json:"intensity,omitempty"`
	AllowDark     *bool               `json:"allowDark,omitempty"`
	PreferredTime *running.TimeWindow `json:"preferredTime,omitempty"`
	Language      *i18n.Locale        `json:"language,omitempty"`
}

// Store persists one serialized preferences document per profile.
type Store interface {
	Load(ctx context.Context, profile string) ([]byte, bool, error)
	Save(ctx context.Context, profile string, doc []byte) error
	Delete(ctx context.Context, profile string) error
}
