// Package archive stores raw upstream forecast payloads in object storage.
package archive

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yanqian/runready/internal/domain/forecast"
)

const defaultPrefix = "forecasts"

// objectKey lays payloads out as <prefix>/<yyyy>/<mm>/<dd>/<lat,lon>/<uuid>.json
// using the fetch time in UTC.
func objectKey(prefix string, f forecast.Forecast, id uuid.UUID) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		prefix = defaultPrefix
	}
	ts := f.FetchedAt.UTC()
	return fmt.Sprintf("%s/%04d/%02d/%02d/%s/%s.json", prefix, ts.Year(), ts.Month(), ts.Day(), f.Location.Key(), id)
}
