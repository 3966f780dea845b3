/*
 * config.go, part of gofission.
 *
 *
 * Copyright 2024 The gofission Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package batch

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/nucastro/gofission/channels"
	"github.com/nucastro/gofission/halflife"
	"github.com/nucastro/gofission/netfile"
)

//DefaultPattern is the name GEF gives to spontaneous-fission event files.
const DefaultPattern = "Z%d_A%d_sf_E0MeV.lmd"

//DefaultInducedPattern names the neutron-induced fission event file of a target nucleus.
const DefaultInducedPattern = "Z%d_A%d_nf.lmd"

//Range is an inclusive range of integers.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

//Config describes a batch run.
type Config struct {
	Dir            string `yaml:"dir"`             //directory with the event files. Environment variables are expanded.
	Pattern        string `yaml:"pattern"`         //printf pattern taking Z and A.
	InducedPattern string `yaml:"induced_pattern"` //same, for neutron-induced fission. Z and A are those of the target.
	Z              Range  `yaml:"z"`
	A              Range  `yaml:"a"`

	Source    string  `yaml:"source"`
	RateModel string  `yaml:"rate_model"` //fixed, exp or systematics
	Rate      float64 `yaml:"rate"`       //for the fixed model

	//Neutron-induced fission: entries are rate tables with Table as rows.
	Induced bool                `yaml:"induced"`
	Table   []netfile.RatePoint `yaml:"table"`

	//If positive, a single threshold is used and Prune is ignored.
	FixedThreshold float64         `yaml:"fixed_threshold"`
	Prune          channels.Options `yaml:"prune"`

	Workers int `yaml:"workers"`
}

//DefaultConfig returns the settings used for the hypothetical spontaneous-fission
//entries of the heavy nuclides.
func DefaultConfig() Config {
	return Config{
		Dir:            ".",
		Pattern:        DefaultPattern,
		InducedPattern: DefaultInducedPattern,
		Z:              Range{100, 106},
		A:              Range{260, 315},
		Source:         "hypothetical SFs",
		RateModel:      halflife.FixedName,
		Rate:           10000,
		Prune:          channels.DefaultOptions(),
		Workers:        runtime.NumCPU(),
	}
}

//LoadConfig reads a YAML configuration. Fields not in the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("gofission/batch: config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

//Validate checks the configuration.
func (C Config) Validate() error {
	if C.Z.Min > C.Z.Max || C.A.Min > C.A.Max {
		return fmt.Errorf("gofission/batch: empty Z or A range")
	}
	if C.Z.Min < 1 || C.A.Min < 1 {
		return fmt.Errorf("gofission/batch: Z and A must be positive")
	}
	if C.Pattern == "" || C.InducedPattern == "" {
		return fmt.Errorf("gofission/batch: no file pattern")
	}
	if C.FixedThreshold < 0 {
		return fmt.Errorf("gofission/batch: negative fixed threshold")
	}
	if C.FixedThreshold == 0 {
		if err := C.Prune.Validate(); err != nil {
			return err
		}
	}
	if _, err := halflife.ByName(C.RateModel, C.Rate); err != nil && !C.Induced {
		return err
	}
	return nil
}
