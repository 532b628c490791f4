package i18n

var english = map[MessageID]string{
	TopSleeveless:        "sleeveless top or ultralight tee",
	TopSportsTop:         "sports top or ultralight tank",
	TopBreathableTee:     "light breathable tee",
	TopBreathableTank:    "light breathable tee or tank",
	TopShortSleeve:       "short-sleeve tee",
	TopLongSleeve:        "long sleeve or light thermal layer",
	TopLongSleeveShell:   "warm long sleeve + light windbreaker",
	TopBaseLayerJacket:   "base layer + insulated jacket",
	BottomRunningShorts:  "running shorts",
	BottomShortsLeggings: "short shorts or leggings",
	BottomShortsCapris:   "shorts or capris",
	BottomTights:         "leggings or running tights",
	BottomWarmTights:     "warm tights or running pants",
	HeadBrimmedCap:       "brimmed cap",
	HeadLightCap:         "light cap",
	HeadThinHat:          "thin hat or headband",
	HeadWarmHat:          "warm hat",
	HeadSunglasses:       "sunglasses",
	ShoesAntiSlip:        "anti-slip running shoes",
	SocksWarm:            "warm sports socks",
	ShoesStandard:        "running shoes",
	SocksMedium:          "medium-thickness socks",
	ShoesLight:           "lightweight running shoes",
	SocksThin:            "thin sports socks",
	AccessoryGloves:      "light gloves",
	AccessoryTowel:       "small towel or wristband",
	AccessoryWaterBelt:   "hydration belt",
	ExtraWindVest:        "windproof vest",
	ExtraSpareShirt:      "spare shirt to change into",
	ExtraBalaclava:       "balaclava or scarf",
	ExtraSportsWatch:     "sports watch for monitoring",

	SPFHigh:            "high UV: SPF 50, reapply every 2 h, cap and sunglasses are a must",
	SPFModerate:        "moderate UV: SPF 30, cap and sunglasses recommended",
	SPFLow:             "low UV: SPF 15 is enough; for an evening run you can skip it",
	PacingFrequentSips: "Take small sips every 10-15 minutes",
	PacingRegular:      "Drink every 15-20 minutes while running",
	PacingBeforeAfter:  "Drinking before and after the workout is enough",

	WarnHighTemp:   "High temperature: avoid direct sunlight",
	WarnFreezing:   "Icing: be careful on the road",
	WarnStrongWind: "Strong wind: may complicate running",
	WarnHighRain:   "High rain risk: consider an indoor route",
	WarnHighUV:     "Very high UV: protection mandatory",

	WindCalm:             "Calm or light breeze: perfect running conditions. Wind won't affect your pace.",
	WindLight:            "Light wind: comfortable conditions. May even help cool you down during running.",
	WindModerate:         "Moderate wind: may complicate running somewhat, especially against a headwind. Plan your route around the wind direction.",
	WindStrong:           "Strong wind: will significantly complicate running. Reduce pace and watch your balance. Consider sheltered areas.",
	WindExtreme:          "Very strong wind: dangerous for open-space running. Better postpone the workout or run indoors.",
	HumidityVeryDry:      "Very dry air: moisturize airways and drink enough water. Moisture loss may be faster.",
	HumidityDry:          "Dry air: comfortable running conditions. Sweat evaporates efficiently, cooling the body.",
	HumidityComfortable:  "Optimal humidity: perfect running conditions. The body regulates temperature efficiently.",
	HumidityHumid:        "Increased humidity: sweat evaporates slower. Reduce pace and drink more water.",
	HumidityVeryHumid:    "High humidity: body cooling is much harder. Take frequent breaks, drink plenty, watch for overheating.",
	HumidityExtreme:      "Critical humidity: very dangerous for intense running. Consider a light workout or postpone.",
	FeelsLikeMinimal:     "Feels like %d°C: practically the same as the actual temperature.",
	FeelsLikeWarmer:      "Feels warmer (%d°C) due to humidity and low wind.",
	FeelsLikeCooler:      "Feels cooler (%d°C) due to wind chill.",
	FeelsLikeMuchWarmer:  "Feels significantly warmer (%d°C): dress lighter, drink more.",
	FeelsLikeMuchCooler:  "Feels significantly cooler (%d°C): dress warmer.",
	FeelsLikeOverheating: "Critical difference! Feels like %d°C: overheating risk, reduce distance.",
	FeelsLikeHypothermia: "Critical difference! Feels like %d°C: hypothermia risk, protection mandatory.",

	ComfortExcellent: "Excellent",
	ComfortGood:      "Good",
	ComfortFair:      "Fair",
	ComfortHard:      "Hard",

	QuickAdvice:    "Today ~%d°C. Wear %s, %s%s; SPF %d. Take %d ml of water. Best time: %s.",
	Or:             " or ",
	NoBestTime:     "no suitable hours",
	ChartTitle:     "Running comfort",
	ChartSeries:    "Discomfort score",
	ChartBest:      "Best hours",
	UnknownRegion:  "Unknown",
	WeekdaySun:     "Sun",
	WeekdayMon:     "Mon",
	WeekdayTue:     "Tue",
	WeekdayWed:     "Wed",
	WeekdayThu:     "Thu",
	WeekdayFri:     "Fri",
	WeekdaySat:     "Sat",
	WeatherLoadErr: "Failed to load the forecast",
}
