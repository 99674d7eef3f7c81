// SPDX-License-Identifier: MIT

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bootci/cmd/config"
)

// report is the document printed by the run command.
type report struct {
	Observations int        `json:"observations" yaml:"observations" toml:"observations"`
	Replicates   int        `json:"replicates" yaml:"replicates" toml:"replicates"`
	Level        float64    `json:"level" yaml:"level" toml:"level"`
	Seed         *int64     `json:"seed,omitempty" yaml:"seed,omitempty" toml:"seed,omitempty"`
	Estimates    []estimate `json:"estimates" yaml:"estimates" toml:"estimates"`
}

type estimate struct {
	Statistic string     `json:"statistic" yaml:"statistic" toml:"statistic"`
	Original  float64    `json:"original" yaml:"original" toml:"original"`
	Bias      float64    `json:"bias" yaml:"bias" toml:"bias"`
	StdError  float64    `json:"std_error" yaml:"std_error" toml:"std_error"`
	Intervals []interval `json:"intervals" yaml:"intervals" toml:"intervals"`
}

// interval is one method's limits, or the reason it is undefined.
type interval struct {
	Method string  `json:"method" yaml:"method" toml:"method"`
	Low    float64 `json:"low" yaml:"low" toml:"low"`
	High   float64 `json:"high" yaml:"high" toml:"high"`
	Error  string  `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

func writeReport(w io.Writer, rep *report, format string) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputTOML:
		b, err := toml.Marshal(*rep)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return writeText(w, rep)
	}
}

func writeText(w io.Writer, rep *report) error {
	fmt.Fprintf(w, "observations: %d  replicates: %d  level: %g", rep.Observations, rep.Replicates, rep.Level)
	if rep.Seed != nil {
		fmt.Fprintf(w, "  seed: %d", *rep.Seed)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATISTIC\tORIGINAL\tBIAS\tSTD.ERROR\tMETHOD\tLOW\tHIGH")
	var failures []string
	for _, e := range rep.Estimates {
		for _, iv := range e.Intervals {
			low, high := fmt.Sprintf("%.6g", iv.Low), fmt.Sprintf("%.6g", iv.High)
			if iv.Error != "" {
				low, high = "n/a", "n/a"
				failures = append(failures, fmt.Sprintf("%s %s: %s", e.Statistic, iv.Method, iv.Error))
			}
			fmt.Fprintf(tw, "%s\t%.6g\t%.6g\t%.6g\t%s\t%s\t%s\n",
				e.Statistic, e.Original, e.Bias, e.StdError, iv.Method, low, high)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, f := range failures {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
	}
	return nil
}
