package entity

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/femnad/pat/settings"
)

type Config struct {
	Filename string
	Patches  []Patch           `yaml:"patch"`
	Settings settings.Settings `yaml:"settings"`
}

// UnmarshalConfig reads a patch spec, falling back to the built-in patch set
// when no spec file exists at the given path.
func UnmarshalConfig(filename string) (Config, error) {
	var config Config

	content, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		config.Patches = BuiltinPatches()
		return config, nil
	} else if err != nil {
		return config, err
	}

	err = yaml.Unmarshal(content, &config)
	if err != nil {
		return config, fmt.Errorf("error deserializing patch spec from %s: %v", filename, err)
	}

	config.Filename = filename
	return config, nil
}
