// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Bench struct {
		Iterations  int       `json:"iterations"`
		Workers     int       `json:"workers"`
		RotateEvery *int      `json:"rotate_every"`
		Kinds       []string  `json:"kinds"`
		Timeout     *Duration `json:"timeout"`
	} `json:"bench,omitempty"`

	KeySource struct {
		Seed string `json:"seed"`
	} `json:"key_source,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Bench: Bench{
			Iterations:  jsonCfg.Bench.Iterations,
			Workers:     jsonCfg.Bench.Workers,
			Kinds:       jsonCfg.Bench.Kinds,
		},
		KeySource: KeySource{
			Seed: jsonCfg.KeySource.Seed,
		},
	}
	if jsonCfg.Bench.RotateEvery != nil {
		cfg.Bench.RotateEvery = *jsonCfg.Bench.RotateEvery
	}
	if jsonCfg.Bench.Timeout != nil {
		cfg.Bench.Timeout = time.Duration(*jsonCfg.Bench.Timeout)
	}
	cfg.Bench.markExplicitZeros(jsonCfg.Bench.RotateEvery != nil, jsonCfg.Bench.Timeout != nil)

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
