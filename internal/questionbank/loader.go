package questionbank

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/crispai/interview-assistant/internal/model"
)

// tierFile is the YAML shape of one difficulty tier.
type tierFile struct {
	TimeLimit int      `yaml:"time_limit"`
	Prompts   []string `yaml:"prompts"`
}

// bankFile is the YAML shape of a prompt pool file:
//
//	easy:
//	  time_limit: 20
//	  prompts:
//	    - ...
//	medium:
//	  ...
type bankFile struct {
	Easy   tierFile `yaml:"easy"`
	Medium tierFile `yaml:"medium"`
	Hard   tierFile `yaml:"hard"`
}

// LoadFile reads a prompt pool file, falling back to the built-in time
// limits for tiers that omit one.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank %s: %w", path, err)
	}

	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse question bank %s: %w", path, err)
	}

	b := &Bank{
		pools: map[model.Difficulty][]string{
			model.DifficultyEasy:   f.Easy.Prompts,
			model.DifficultyMedium: f.Medium.Prompts,
			model.DifficultyHard:   f.Hard.Prompts,
		},
		limits: map[model.Difficulty]int{
			model.DifficultyEasy:   orDefault(f.Easy.TimeLimit, model.DifficultyEasy),
			model.DifficultyMedium: orDefault(f.Medium.TimeLimit, model.DifficultyMedium),
			model.DifficultyHard:   orDefault(f.Hard.TimeLimit, model.DifficultyHard),
		},
	}

	if err := b.validate(); err != nil {
		return nil, fmt.Errorf("invalid question bank %s: %w", path, err)
	}
	return b, nil
}

func orDefault(limit int, d model.Difficulty) int {
	if limit > 0 {
		return limit
	}
	return defaultTimeLimits[d]
}
