package cfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/malivvan/boxkit"
	"github.com/malivvan/boxkit/log"
)

// Config is the on-disk YAML description of an s-box/p-box pair. Table values
// are plain integers so a hand-edited file stays readable.
type Config struct {
	Sbox    []int      `yaml:"sbox"`
	Pbox    []int      `yaml:"pbox"`
	Logging log.Config `yaml:"logging"`
}

// Default returns a config holding the reference tables.
func Default() Config {
	config := Config{
		Sbox: make([]int, boxkit.SBoxLen),
		Pbox: make([]int, boxkit.PBoxLen),
		Logging: log.Config{
			Level:   "info",
			Console: true,
			MaxSize: 10,
			MaxAge:  60,
		},
	}
	for i, v := range boxkit.DefaultSBoxTable {
		config.Sbox[i] = int(v)
	}
	for i, v := range boxkit.DefaultPBoxTable {
		config.Pbox[i] = int(v)
	}
	return config
}

// LoadFile reads the YAML config at path into config. If the file does not
// exist the current config is written there first, so a fresh deployment
// starts from the defaults.
func LoadFile(path string, config *Config) error {

	// 1. read bytes, if not exist write initial config
	configBytes, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		configBytes, err = yaml.Marshal(config)
		if err != nil {
			return err
		}
		err = os.WriteFile(path, configBytes, 0600)
		if err != nil {
			return err
		}
	}

	// 2. decode config
	configBytes, err = os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(configBytes, config)
}

// Boxes constructs validated engines from the loaded table values. Table
// length and entry range are checked here, bijectivity inside boxkit.
func (c *Config) Boxes() (*boxkit.SBox, *boxkit.PBox, error) {
	var stable [boxkit.SBoxLen]byte
	if err := toTable(stable[:], c.Sbox, "sbox"); err != nil {
		return nil, nil, err
	}
	var ptable [boxkit.PBoxLen]byte
	if err := toTable(ptable[:], c.Pbox, "pbox"); err != nil {
		return nil, nil, err
	}
	sbox, err := boxkit.NewSBox(stable)
	if err != nil {
		return nil, nil, err
	}
	pbox, err := boxkit.NewPBox(ptable)
	if err != nil {
		return nil, nil, err
	}
	return sbox, pbox, nil
}

func toTable(dst []byte, src []int, name string) error {
	if len(src) != len(dst) {
		return fmt.Errorf("%s must have %d entries, got %d", name, len(dst), len(src))
	}
	for i, v := range src {
		if v < 0 || v > 255 {
			return fmt.Errorf("%s entry %d does not fit a byte: %d", name, i, v)
		}
		dst[i] = byte(v)
	}
	return nil
}
