package rocket

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

var (
	cfgOnce sync.Once
	config  = _simconfig{}
)

// _simconfig is a "hidden" struct, just use `simConfig`.
type _simconfig struct {
	stepSize        float64 // s, default integration step
	massFloor       float64 // kg, mass never drops below this
	coastDuration   float64 // s, coast/insertion time budget
	budgetMargin    float64 // multiplier on the nominal per-phase step count
	maxFaultRetries int     // step-halving retries before a run fails

	// The insertion derating factors are empirical, not physically
	// derived, hence tunable.
	insertionThrustFactor float64
	insertionISPFactor    float64
	insertionAltFraction  float64 // of the target altitude
	insertionDeficit      float64 // m/s below the required orbital velocity

	outputDir string
}

// simConfig returns the simulator tunables. Without a ROCKET_CONFIG
// environment variable the defaults apply; with one, conf.toml in that
// directory overrides them key by key.
func simConfig() _simconfig {
	cfgOnce.Do(loadConfig)
	return config
}

func loadConfig() {
	config = _simconfig{
		stepSize:              0.5,
		massFloor:             1.0,
		coastDuration:         600,
		budgetMargin:          1.25,
		maxFaultRetries:       3,
		insertionThrustFactor: 0.8,
		insertionISPFactor:    1.1,
		insertionAltFraction:  0.9,
		insertionDeficit:      50,
		outputDir:             ".",
	}
	if confPath := os.Getenv("ROCKET_CONFIG"); confPath != "" {
		viper.SetConfigName("conf")
		viper.AddConfigPath(confPath)
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("%s/conf.toml not found", confPath))
		}
		setIfPresent := func(key string, dst *float64) {
			if viper.IsSet(key) {
				*dst = viper.GetFloat64(key)
			}
		}
		setIfPresent("sim.step", &config.stepSize)
		setIfPresent("sim.mass_floor", &config.massFloor)
		setIfPresent("sim.coast_duration", &config.coastDuration)
		setIfPresent("sim.budget_margin", &config.budgetMargin)
		setIfPresent("insertion.thrust_factor", &config.insertionThrustFactor)
		setIfPresent("insertion.isp_factor", &config.insertionISPFactor)
		setIfPresent("insertion.alt_fraction", &config.insertionAltFraction)
		setIfPresent("insertion.deficit", &config.insertionDeficit)
		if viper.IsSet("sim.max_fault_retries") {
			config.maxFaultRetries = viper.GetInt("sim.max_fault_retries")
		}
		if viper.IsSet("general.output_path") {
			config.outputDir = viper.GetString("general.output_path")
		}
	}
}
