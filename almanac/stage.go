package almanac

import "strings"

// Stage identifies one of the seven remapping steps by position.
type Stage int

// The stages in pipeline order.
const (
	SeedToSoil Stage = iota
	SoilToFertilizer
	FertilizerToWater
	WaterToLight
	LightToTemperature
	TemperatureToHumidity
	HumidityToLocation
)

// StageCount is the number of stages in an almanac.
const StageCount = 7

var stageNames = [StageCount]string{
	"seed-to-soil",
	"soil-to-fertilizer",
	"fertilizer-to-water",
	"water-to-light",
	"light-to-temperature",
	"temperature-to-humidity",
	"humidity-to-location",
}

// Stages returns all stages in order.
func Stages() [StageCount]Stage {
	var out [StageCount]Stage
	for i := range out {
		out[i] = Stage(i)
	}

	return out
}

// String returns the header name, e.g. "seed-to-soil".
func (s Stage) String() string {
	if s < 0 || int(s) >= StageCount {
		return "unknown-stage"
	}

	return stageNames[s]
}

// Source returns the input category, e.g. "seed".
func (s Stage) Source() string {
	src, _, _ := strings.Cut(s.String(), "-to-")
	return src
}

// Destination returns the output category, e.g. "soil".
func (s Stage) Destination() string {
	_, dst, _ := strings.Cut(s.String(), "-to-")
	return dst
}

func stageByName(name string) (Stage, bool) {
	for i, n := range stageNames {
		if n == name {
			return Stage(i), true
		}
	}

	return 0, false
}
