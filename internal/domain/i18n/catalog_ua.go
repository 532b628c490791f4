package i18n

var ukrainian = map[MessageID]string{
	TopSleeveless:        "майка без рукавів або ультралегка футболка",
	TopSportsTop:         "спортивний топ або ультралегка майка",
	TopBreathableTee:     "легка дихаюча футболка",
	TopBreathableTank:    "легка дихаюча футболка або майка",
	TopShortSleeve:       "футболка з коротким рукавом",
	TopLongSleeve:        "лонгслів або легкий термошар",
	TopLongSleeveShell:   "теплий лонгслів + легка вітровка",
	TopBaseLayerJacket:   "термошар + утеплена куртка",
	BottomRunningShorts:  "бігові шорти",
	BottomShortsLeggings: "короткі шорти або легінси",
	BottomShortsCapris:   "шорти або капрі",
	BottomTights:         "легінси або бігові тайти",
	BottomWarmTights:     "теплі тайти або бігові штани",
	HeadBrimmedCap:       "кепка з козирком",
	HeadLightCap:         "легка кепка",
	HeadThinHat:          "тонка шапка або пов'язка",
	HeadWarmHat:          "тепла шапка",
	HeadSunglasses:       "сонцезахисні окуляри",
	ShoesAntiSlip:        "кросівки з протиковзною підошвою",
	SocksWarm:            "теплі спортивні шкарпетки",
	ShoesStandard:        "бігові кросівки",
	SocksMedium:          "середньої товщини шкарпетки",
	ShoesLight:           "легкі бігові кросівки",
	SocksThin:            "тонкі спортивні шкарпетки",
	AccessoryGloves:      "легкі рукавички",
	AccessoryTowel:       "рушничок або пов'язка на зап'ястя",
	AccessoryWaterBelt:   "поясна сумка для води",
	ExtraWindVest:        "вітрозахисна жилетка",
	ExtraSpareShirt:      "додаткова футболка для зміни",
	ExtraBalaclava:       "балаклава або шарф",
	ExtraSportsWatch:     "спортивний годинник для моніторингу",

	SPFHigh:            "високий UV: SPF 50, оновлюй кожні 2 год, кепка й окуляри обов'язково",
	SPFModerate:        "помірний UV: SPF 30 + кепка/окуляри бажано",
	SPFLow:             "низький UV: SPF 15 достатньо; якщо біг ввечері, можна мінімально",
	PacingFrequentSips: "Пийте невеликими ковтками кожні 10-15 хвилин",
	PacingRegular:      "Пийте кожні 15-20 хвилин під час бігу",
	PacingBeforeAfter:  "Достатньо пити до та після тренування",

	WarnHighTemp:   "Висока температура: уникай прямого сонця",
	WarnFreezing:   "Обледеніння: будь обережним на дорозі",
	WarnStrongWind: "Сильний вітер: може ускладнити біг",
	WarnHighRain:   "Високий ризик дощу: розглянь закритий маршрут",
	WarnHighUV:     "Дуже високий UV: обов'язковий захист",

	WindCalm:             "Штиль або легкий бриз: ідеальні умови для бігу. Вітер не вплине на ваш темп.",
	WindLight:            "Легкий вітер: комфортні умови. Може навіть допомогти охолоджуватися під час бігу.",
	WindModerate:         "Помірний вітер: може дещо ускладнити біг, особливо проти вітру. Плануйте маршрут з урахуванням напрямку.",
	WindStrong:           "Сильний вітер: значно ускладнить біг. Знизьте темп, будьте обережні з рівновагою. Розгляньте біг у захищеному місці.",
	WindExtreme:          "Дуже сильний вітер: небезпечно для бігу на відкритому просторі. Краще перенести тренування або бігти в залі.",
	HumidityVeryDry:      "Дуже сухе повітря: зволожуйте дихальні шляхи, пийте достатньо води. Можлива швидша втрата вологи.",
	HumidityDry:          "Сухе повітря: комфортні умови для бігу. Піт випаровується ефективно, охолоджуючи тіло.",
	HumidityComfortable:  "Оптимальна вологість: ідеальні умови для бігу. Тіло ефективно регулює температуру.",
	HumidityHumid:        "Підвищена вологість: піт випаровується повільніше. Знизьте темп, пийте більше води.",
	HumidityVeryHumid:    "Висока вологість: значно ускладнює охолодження тіла. Часті перерви, багато води, обережно з перегрівом.",
	HumidityExtreme:      "Критична вологість: дуже небезпечно для інтенсивного бігу. Розгляньте легке тренування або перенесіть на інший час.",
	FeelsLikeMinimal:     "Відчувається як %d°C: практично як фактична температура.",
	FeelsLikeWarmer:      "Відчувається тепліше (%d°C) через вологість та безвітря.",
	FeelsLikeCooler:      "Відчувається холодніше (%d°C) через вітер.",
	FeelsLikeMuchWarmer:  "Значно відчувається тепліше (%d°C): одягайтеся легше, пийте більше.",
	FeelsLikeMuchCooler:  "Значно відчувається холодніше (%d°C): одягайтеся тепліше.",
	FeelsLikeOverheating: "Критична різниця! Відчувається як %d°C: ризик перегріву, скоротіть дистанцію.",
	FeelsLikeHypothermia: "Критична різниця! Відчувається як %d°C: ризик переохолодження, захист обов'язковий.",

	ComfortExcellent: "Відмінно",
	ComfortGood:      "Добре",
	ComfortFair:      "Задовільно",
	ComfortHard:      "Складно",

	QuickAdvice:    "Сьогодні ~%d°C. Одягни %s, %s%s; SPF %d. Візьми %d мл води. Найкращий час: %s.",
	Or:             " або ",
	NoBestTime:     "немає відповідних годин",
	ChartTitle:     "Комфорт для бігу",
	ChartSeries:    "Індекс дискомфорту",
	ChartBest:      "Найкращі години",
	UnknownRegion:  "Невідомо",
	WeekdaySun:     "Нд",
	WeekdayMon:     "Пн",
	WeekdayTue:     "Вт",
	WeekdayWed:     "Ср",
	WeekdayThu:     "Чт",
	WeekdayFri:     "Пт",
	WeekdaySat:     "Сб",
	WeatherLoadErr: "Помилка завантаження прогнозу",
}
