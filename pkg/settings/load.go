package settings

import (
	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the TOML file at path over Default and validates the result.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode config %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Errorf("unknown config keys in %s: %v", path, undecoded)
		}
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cfg against its field constraints.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
