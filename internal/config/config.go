package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/ansel1/merry"
	"github.com/fpawel/ethprop/internal/pkg/must"
	"github.com/fpawel/ethprop/internal/thermo"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Reference Reference `yaml:"reference"`
	Substance Substance `yaml:"substance"`
	Validity  Validity  `yaml:"validity"`
	Output    Output    `yaml:"output"`
	Database  string    `yaml:"database"`
	Api       Net       `yaml:"api"`
	Ws        Net       `yaml:"ws"`
}

type Net struct {
	Addr string `yaml:"addr"`
}

// Open reads the config file, filling absent values with defaults. A missing file is
// created with the default config.
func Open(name string) error {
	c, err := readFile(name)
	if os.IsNotExist(err) {
		c = defaultConfig()
		err = nil
	}
	if err != nil {
		return merry.Append(err, name)
	}
	c.validate()
	if err := c.Validate(); err != nil {
		return merry.Prepend(err, name)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	if err := ioutil.WriteFile(name, b, 0666); err != nil {
		return err
	}
	filename = name
	cfg = c
	return nil
}

// Filename returns the default location: config.yaml next to the executable.
func Filename() string {
	return filepath.Join(filepath.Dir(os.Args[0]), "config.yaml")
}

func SetYaml(strYaml []byte) error {
	var c Config
	if err := yaml.Unmarshal(strYaml, &c); err != nil {
		return err
	}
	return Set(c)
}

func Get() (r Config) {
	mu.Lock()
	defer mu.Unlock()
	must.UnmarshalYaml(must.MarshalYaml(cfg), &r)
	return
}

func Set(c Config) error {
	c.validate()
	if err := c.Validate(); err != nil {
		return err
	}
	b := must.MarshalYaml(c)
	mu.Lock()
	defer mu.Unlock()
	if len(filename) > 0 {
		if err := ioutil.WriteFile(filename, b, 0666); err != nil {
			return err
		}
	}
	cfg = c
	return nil
}

func (c Config) Yaml() []byte {
	return must.MarshalYaml(c)
}

// Validate reports every invalid section at once.
func (c Config) Validate() error {
	var mulErr *multierror.Error
	for _, err := range []error{
		c.Reference.Validate(),
		c.Substance.Validate(),
		c.Validity.Validate(),
		c.Output.Validate(),
	} {
		if err != nil {
			mulErr = multierror.Append(mulErr, err)
		}
	}
	return mulErr.ErrorOrNil()
}

// Engine builds the property engine from the configured constants.
func (c Config) Engine() (*thermo.Engine, error) {
	return thermo.New(c.Substance.Thermo(), c.Reference.Thermo(), c.Validity.Thermo())
}

func (c *Config) validate() {
	d := defaultConfig()
	if c.Reference == (Reference{}) {
		c.Reference = d.Reference
	}
	if c.Substance == (Substance{}) {
		c.Substance = d.Substance
	}
	if c.Validity == (Validity{}) {
		c.Validity = d.Validity
	}
	if c.Output.Basis == "" {
		c.Output.Basis = d.Output.Basis
	}
	if c.Output.FloatPrecision == 0 {
		c.Output.FloatPrecision = d.Output.FloatPrecision
	}
	if c.Output.Tabulated == (Tabulated{}) {
		c.Output.Tabulated = d.Output.Tabulated
	}
	if len(c.Database) == 0 {
		c.Database = d.Database
	}
	if len(c.Api.Addr) == 0 {
		c.Api = d.Api
	}
	if len(c.Ws.Addr) == 0 {
		c.Ws = d.Ws
	}
}

func readFile(name string) (Config, error) {
	var c Config
	data, err := ioutil.ReadFile(name)
	if err != nil {
		return c, err
	}
	err = yaml.Unmarshal(data, &c)
	return c, err
}

var (
	mu       sync.Mutex
	cfg      = defaultConfig()
	filename string
)
