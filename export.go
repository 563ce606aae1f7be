package rocket

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/soniakeys/meeus/julian"
)

// ExportConfig configures the exporting of the simulation.
type ExportConfig struct {
	Filename     string
	AsCSV        bool
	AsJSON       bool
	Timestamp    bool
	CSVAppend    func(s TrajectorySample) string // Custom export (do not include leading comma)
	CSVAppendHdr func() string                   // Header for the custom export
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV && !c.AsJSON
}

// trajectoryRun is the JSON export layout: the launch inputs followed by
// every recorded sample.
type trajectoryRun struct {
	Params  LaunchParameters   `json:"params"`
	Samples []TrajectorySample `json:"samples"`
}

// createTrajectoryCSVFile returns a file which requires a defer close statement!
func createTrajectoryCSVFile(filename string, conf ExportConfig, epoch time.Time) *os.File {
	config := simConfig()
	if conf.Timestamp {
		t := time.Now()
		filename = fmt.Sprintf("%s/ascent-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", config.outputDir, filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		filename = fmt.Sprintf("%s/ascent-%s.csv", config.outputDir, filename)
	}
	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	// Header
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Records are jd, t, altitude, velocity, acceleration, thrust, mass, downrange, stage.
#   Time is a UTC Julian date; everything else is SI (m, m/s, m/s², N, kg, s).
#   Launch epoch (UTC): %s
jd,t,altitude,velocity,acceleration,thrust,mass,downrange,stage`, time.Now(), epoch.UTC()))
	if conf.CSVAppendHdr != nil {
		f.WriteString("," + conf.CSVAppendHdr())
	}
	return f
}

// formatSample renders one CSV record. The Julian date ties the sample to
// wall-clock time for cross-referencing with external tooling.
func formatSample(s TrajectorySample, epoch time.Time) string {
	dt := epoch.Add(time.Duration(s.Time * float64(time.Second)))
	return fmt.Sprintf("%f,%.3f,%.3f,%.3f,%.4f,%.1f,%.3f,%.3f,%d",
		julian.TimeToJD(dt), s.Time, s.Altitude, s.Velocity, s.Acceleration, s.Thrust, s.Mass, s.Downrange, s.Stage)
}

// StreamSamples streams the trajectory channel to the configured files. It
// returns when the channel is closed and the files are flushed, so callers
// run it in a goroutine and wait on it.
func StreamSamples(conf ExportConfig, params LaunchParameters, sampleChan <-chan TrajectorySample) {
	epoch := params.Epoch
	if epoch.IsZero() {
		epoch = time.Now().UTC()
	}
	var fCSV *os.File
	var samples []TrajectorySample
	for {
		sample, more := <-sampleChan
		if !more {
			break
		}
		if conf.AsCSV {
			if fCSV == nil {
				fCSV = createTrajectoryCSVFile(conf.Filename, conf, epoch)
			}
			asTxt := formatSample(sample, epoch)
			if conf.CSVAppend != nil {
				asTxt += "," + conf.CSVAppend(sample)
			}
			if _, err := fCSV.WriteString("\n" + asTxt); err != nil {
				panic(err)
			}
		}
		if conf.AsJSON {
			samples = append(samples, sample)
		}
	}
	if fCSV != nil {
		fCSV.WriteString(fmt.Sprintf("\n# Simulation end (UTC): %s\n", time.Now()))
		fCSV.Close()
	}
	if conf.AsJSON {
		fn := fmt.Sprintf("%s/ascent-%s.json", simConfig().outputDir, conf.Filename)
		fJSON, err := os.Create(fn)
		if err != nil {
			panic(err)
		}
		defer fJSON.Close()
		run := trajectoryRun{Params: params, Samples: samples}
		if marsh, err := json.Marshal(run); err != nil {
			panic(err)
		} else {
			fJSON.Write(marsh)
		}
	}
}
