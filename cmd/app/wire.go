//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/runready/internal/bootstrap"
	"github.com/yanqian/runready/internal/domain/advisor"
	"github.com/yanqian/runready/internal/domain/forecast"
	"github.com/yanqian/runready/internal/domain/location"
	"github.com/yanqian/runready/internal/domain/preferences"
	"github.com/yanqian/runready/internal/infra/chart"
	"github.com/yanqian/runready/internal/infra/config"
	"github.com/yanqian/runready/internal/infra/geo/nominatim"
	"github.com/yanqian/runready/internal/infra/weather/openmeteo"
	httpiface "github.com/yanqian/runready/internal/interface/http"
	"github.com/yanqian/runready/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideMetrics,
		provideForecastConfig,
		provideForecastClient,
		provideForecastCache,
		provideForecastArchive,
		provideGeocoder,
		providePreferenceStore,
		provideAdvisorConfig,
		provideDefaultLocation,
		chart.NewRenderer,
		forecast.NewService,
		location.NewService,
		preferences.NewService,
		advisor.NewService,
		wire.Bind(new(forecast.Provider), new(*openmeteo.Client)),
		wire.Bind(new(location.Geocoder), new(*nominatim.Client)),
		wire.Bind(new(advisor.ChartRenderer), new(*chart.Renderer)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
