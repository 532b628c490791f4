package i18n

// MessageID names one translatable string.
type MessageID string

// Outfit garments.
const (
	TopSleeveless        MessageID = "outfit.top.sleeveless"
	TopSportsTop         MessageID = "outfit.top.sports_top"
	TopBreathableTee     MessageID = "outfit.top.breathable_tee"
	TopBreathableTank    MessageID = "outfit.top.breathable_tank"
	TopShortSleeve       MessageID = "outfit.top.short_sleeve"
	TopLongSleeve        MessageID = "outfit.top.long_sleeve"
	TopLongSleeveShell   MessageID = "outfit.top.long_sleeve_shell"
	TopBaseLayerJacket   MessageID = "outfit.top.base_layer_jacket"
	BottomRunningShorts  MessageID = "outfit.bottom.running_shorts"
	BottomShortsLeggings MessageID = "outfit.bottom.shorts_leggings"
	BottomShortsCapris   MessageID = "outfit.bottom.shorts_capris"
	BottomTights         MessageID = "outfit.bottom.tights"
	BottomWarmTights     MessageID = "outfit.bottom.warm_tights"
	HeadBrimmedCap       MessageID = "outfit.head.brimmed_cap"
	HeadLightCap         MessageID = "outfit.head.light_cap"
	HeadThinHat          MessageID = "outfit.head.thin_hat"
	HeadWarmHat          MessageID = "outfit.head.warm_hat"
	HeadSunglasses       MessageID = "outfit.head.sunglasses"
	ShoesAntiSlip        MessageID = "outfit.feet.anti_slip_shoes"
	SocksWarm            MessageID = "outfit.feet.warm_socks"
	ShoesStandard        MessageID = "outfit.feet.standard_shoes"
	SocksMedium          MessageID = "outfit.feet.medium_socks"
	ShoesLight           MessageID = "outfit.feet.light_shoes"
	SocksThin            MessageID = "outfit.feet.thin_socks"
	AccessoryGloves      MessageID = "outfit.accessory.gloves"
	AccessoryTowel       MessageID = "outfit.accessory.towel"
	AccessoryWaterBelt   MessageID = "outfit.accessory.water_belt"
	ExtraWindVest        MessageID = "outfit.extra.wind_vest"
	ExtraSpareShirt      MessageID = "outfit.extra.spare_shirt"
	ExtraBalaclava       MessageID = "outfit.extra.balaclava"
	ExtraSportsWatch     MessageID = "outfit.extra.sports_watch"
)

// Sun protection and hydration.
const (
	SPFHigh            MessageID = "spf.high"
	SPFModerate        MessageID = "spf.moderate"
	SPFLow             MessageID = "spf.low"
	PacingFrequentSips MessageID = "water.pacing.frequent"
	PacingRegular      MessageID = "water.pacing.regular"
	PacingBeforeAfter  MessageID = "water.pacing.before_after"
)

// Safety warnings.
const (
	WarnHighTemp   MessageID = "warning.high_temp"
	WarnFreezing   MessageID = "warning.freezing"
	WarnStrongWind MessageID = "warning.strong_wind"
	WarnHighRain   MessageID = "warning.high_rain"
	WarnHighUV     MessageID = "warning.high_uv"
)

// Condition interpretations. FeelsLike* templates take the rounded
// apparent temperature as their only argument.
const (
	WindCalm             MessageID = "wind.calm"
	WindLight            MessageID = "wind.light"
	WindModerate         MessageID = "wind.moderate"
	WindStrong           MessageID = "wind.strong"
	WindExtreme          MessageID = "wind.extreme"
	HumidityVeryDry      MessageID = "humidity.very_dry"
	HumidityDry          MessageID = "humidity.dry"
	HumidityComfortable  MessageID = "humidity.comfortable"
	HumidityHumid        MessageID = "humidity.humid"
	HumidityVeryHumid    MessageID = "humidity.very_humid"
	HumidityExtreme      MessageID = "humidity.extreme"
	FeelsLikeMinimal     MessageID = "feels_like.minimal"
	FeelsLikeWarmer      MessageID = "feels_like.slight_warmer"
	FeelsLikeCooler      MessageID = "feels_like.slight_cooler"
	FeelsLikeMuchWarmer  MessageID = "feels_like.moderate_warmer"
	FeelsLikeMuchCooler  MessageID = "feels_like.moderate_cooler"
	FeelsLikeOverheating MessageID = "feels_like.extreme_warmer"
	FeelsLikeHypothermia MessageID = "feels_like.extreme_cooler"
)

// Comfort levels used by the weekly outlook.
const (
	ComfortExcellent MessageID = "comfort.excellent"
	ComfortGood      MessageID = "comfort.good"
	ComfortFair      MessageID = "comfort.fair"
	ComfortHard      MessageID = "comfort.hard"
)

// Summary and chrome.
const (
	// QuickAdvice takes temperature(int), top, bottom, extras suffix,
	// spf(int), water ml(int) and best-time label.
	QuickAdvice    MessageID = "summary.quick_advice"
	Or             MessageID = "summary.or"
	NoBestTime     MessageID = "summary.no_best_time"
	ChartTitle     MessageID = "chart.title"
	ChartSeries    MessageID = "chart.series"
	ChartBest      MessageID = "chart.best"
	UnknownRegion  MessageID = "location.unknown_region"
	WeekdaySun     MessageID = "weekday.sun"
	WeekdayMon     MessageID = "weekday.mon"
	WeekdayTue     MessageID = "weekday.tue"
	WeekdayWed     MessageID = "weekday.wed"
	WeekdayThu     MessageID = "weekday.thu"
	WeekdayFri     MessageID = "weekday.fri"
	WeekdaySat     MessageID = "weekday.sat"
	WeatherLoadErr MessageID = "error.weather_load"
)
