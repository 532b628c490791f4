package running

import "github.com/yanqian/runready/internal/domain/i18n"

// OutfitInput collects the weather and runner attributes the outfit depends on.
type OutfitInput struct {
	Temperature float64
	Wind        float64
	Humidity    float64
	UV          float64
	Heat        HeatPreference
	Gender      Gender
	Intensity   Intensity
}

// Outfit is a clothing recommendation expressed as message ids. List
// fields are never nil.
type Outfit struct {
	Top         i18n.MessageID   `json:"top"`
	Bottom      i18n.MessageID   `json:"bottom"`
	Headwear    []i18n.MessageID `json:"headwear"`
	Footwear    []i18n.MessageID `json:"footwear"`
	Accessories []i18n.MessageID `json:"accessories"`
	Extras      []i18n.MessageID `json:"extras"`
}

// EffectiveTemperature applies the heat-preference offset and then the
// intensity offset to the air temperature.
func EffectiveTemperature(t float64, heat HeatPreference, intensity Intensity) float64 {
	switch heat {
	case HeatRunsHot:
		t += 2
	case HeatRunsCold:
		t -= 2
	}
	switch intensity {
	case IntensityIntense:
		t += 3
	case IntensityLight:
		t--
	}
	return t
}

// OutfitAdvice picks garments for the effective temperature. Tiered
// choices are evaluated top-down and the first matching band wins.
func OutfitAdvice(in OutfitInput) Outfit {
	temp := EffectiveTemperature(in.Temperature, in.Heat, in.Intensity)
	female := in.Gender == GenderFemale

	return Outfit{
		Top:         topFor(temp, female),
		Bottom:      bottomFor(temp, female),
		Headwear:    headwearFor(temp, in.UV),
		Footwear:    footwearFor(temp),
		Accessories: accessoriesFor(temp, in.Humidity, in.Intensity),
		Extras:      extrasFor(temp, in.Wind, in.Humidity, in.Intensity),
	}
}

func topFor(temp float64, female bool) i18n.MessageID {
	switch {
	case temp >= 25:
		if female {
			return i18n.TopSportsTop
		}
		return i18n.TopSleeveless
	case temp >= 20:
		if female {
			return i18n.TopBreathableTank
		}
		return i18n.TopBreathableTee
	case temp >= 12:
		return i18n.TopShortSleeve
	case temp >= 6:
		return i18n.TopLongSleeve
	case temp >= 0:
		return i18n.TopLongSleeveShell
	default:
		return i18n.TopBaseLayerJacket
	}
}

func bottomFor(temp float64, female bool) i18n.MessageID {
	switch {
	case temp >= 15:
		if female {
			return i18n.BottomShortsLeggings
		}
		return i18n.BottomRunningShorts
	case temp >= 8:
		return i18n.BottomShortsCapris
	case temp >= 0:
		return i18n.BottomTights
	default:
		return i18n.BottomWarmTights
	}
}

// headwearFor adds at most one sun cap, at most one cold-weather hat and
// sunglasses. The warmest applicable hat is the only one listed.
func headwearFor(temp, uv float64) []i18n.MessageID {
	items := make([]i18n.MessageID, 0, 3)
	switch {
	case uv >= 6:
		items = append(items, i18n.HeadBrimmedCap)
	case uv >= 3:
		items = append(items, i18n.HeadLightCap)
	}
	switch {
	case temp <= 0:
		items = append(items, i18n.HeadWarmHat)
	case temp <= 4:
		items = append(items, i18n.HeadThinHat)
	}
	if uv >= 3 {
		items = append(items, i18n.HeadSunglasses)
	}
	return items
}

func footwearFor(temp float64) []i18n.MessageID {
	switch {
	case temp <= 0:
		return []i18n.MessageID{i18n.ShoesAntiSlip, i18n.SocksWarm}
	case temp <= 10:
		return []i18n.MessageID{i18n.ShoesStandard, i18n.SocksMedium}
	default:
		return []i18n.MessageID{i18n.ShoesLight, i18n.SocksThin}
	}
}

func accessoriesFor(temp, humidity float64, intensity Intensity) []i18n.MessageID {
	items := make([]i18n.MessageID, 0, 3)
	if temp <= 4 {
		items = append(items, i18n.AccessoryGloves)
	}
	if humidity >= 80 || temp >= 20 {
		items = append(items, i18n.AccessoryTowel)
	}
	if intensity == IntensityIntense && temp >= 15 {
		items = append(items, i18n.AccessoryWaterBelt)
	}
	return items
}

func extrasFor(temp, wind, humidity float64, intensity Intensity) []i18n.MessageID {
	items := make([]i18n.MessageID, 0, 4)
	if wind >= 20 && temp < 16 {
		items = append(items, i18n.ExtraWindVest)
	}
	if humidity >= 85 && temp >= 18 {
		items = append(items, i18n.ExtraSpareShirt)
	}
	if temp <= -5 {
		items = append(items, i18n.ExtraBalaclava)
	}
	if intensity == IntensityIntense {
		items = append(items, i18n.ExtraSportsWatch)
	}
	return items
}
