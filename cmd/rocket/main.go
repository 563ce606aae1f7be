package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/User123-spec328/Rocket"
	"github.com/soniakeys/meeus/julian"
	"github.com/spf13/viper"
)

// This code effectively only reads the scenario file and propagates the ascent.

const defaultScenario = "~~unset~~"

var (
	scenario string
	stepSize float64
	verbose  bool
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "ascent scenario TOML file")
	flag.Float64Var(&stepSize, "step", 0, "integration step in seconds (0 uses the configured default)")
	flag.BoolVar(&verbose, "verbose", false, "really verbose (esp. for configuration)")
}

func main() {
	flag.Parse()
	// Load scenario
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}

	// Read launch site and target orbit
	params := rocket.LaunchParameters{
		Latitude:       viper.GetFloat64("launch.latitude"),
		Longitude:      viper.GetFloat64("launch.longitude"),
		TargetAltitude: viper.GetFloat64("launch.targetAltitude"),
		Epoch:          confReadJDEorTime("launch.epoch"),
	}

	// Read vehicle
	params.Spec = rocket.RocketSpecification{
		Stage1: rocket.StageSpec{
			Thrust: viper.GetFloat64("stage1.thrust"),
			ISP:    viper.GetFloat64("stage1.isp"),
			Burn:   viper.GetFloat64("stage1.burn"),
		},
		Stage2: rocket.StageSpec{
			Thrust: viper.GetFloat64("stage2.thrust"),
			ISP:    viper.GetFloat64("stage2.isp"),
			Burn:   viper.GetFloat64("stage2.burn"),
		},
		TotalMass:       viper.GetFloat64("vehicle.totalMass"),
		SeparationMass:  viper.GetFloat64("vehicle.separationMass"),
		DragCoefficient: viper.GetFloat64("vehicle.dragCoefficient"),
		ReferenceArea:   viper.GetFloat64("vehicle.referenceArea"),
	}
	if verbose {
		log.Printf("[conf] %+v", params)
	}

	// Read export
	export := rocket.ExportConfig{
		Filename:  viper.GetString("export.filename"),
		AsCSV:     viper.GetBool("export.csv"),
		AsJSON:    viper.GetBool("export.json"),
		Timestamp: viper.GetBool("export.timestamp"),
	}
	if export.Filename == "" {
		export.Filename = scenario
	}

	var mission *rocket.Mission
	var err error
	if stepSize > 0 {
		mission, err = rocket.NewPreciseMission(params, stepSize, export)
	} else {
		mission, err = rocket.NewMission(params, export)
	}
	if err != nil {
		log.Fatalf("scenario rejected: %s", err)
	}
	if planetName := viper.GetString("launch.planet"); planetName != "" {
		planet, err := rocket.PlanetFromString(planetName)
		if err != nil {
			log.Fatalf("could not understand planet `%s`: %s", planetName, err)
		}
		mission.SetPlanet(planet)
	}

	res, err := mission.Propagate()
	if err != nil {
		log.Fatalf("propagation failed: %s", err)
	}
	sum := res.Summary
	log.Printf("required orbital velocity: %.1f m/s (rotation bonus %.1f m/s)", sum.RequiredOrbitalVelocity, sum.RotationBonus)
	log.Printf("achieved velocity: %.1f m/s at up to %.1f km altitude", sum.AchievedVelocity, sum.MaxAltitude/1e3)
	log.Printf("stage separation at t=%.1f s, %.1f km", sum.SeparationTime, sum.SeparationAltitude/1e3)
	log.Printf("total flight time: %.1f s over %d samples", sum.TotalFlightTime, len(res.Samples))
	if res.Budget != nil {
		log.Printf("[WARNING] %s", res.Budget.Error())
	}
}

func confReadJDEorTime(key string) (dt time.Time) {
	jde := viper.GetFloat64(key)
	if jde == 0 {
		dt = viper.GetTime(key)
	} else {
		dt = julian.JDToTime(jde)
	}
	return
}
