// Package config loads the launcher's optional configuration file.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the file name looked up beside the executable.
const ConfigurationName = "winlaunch.yaml"

// Configuration controls how command names are classified and which
// shell interprets the ones classified as builtins.
type Configuration struct {
	// Shell is the command interpreter invoked for shell builtins,
	// e.g. "cmd.exe".
	Shell string `json:"shell" validate:"required"`

	// ExtraBuiltins are additional command names treated as shell
	// builtins on top of the standard cmd.exe set.
	ExtraBuiltins []string `json:"extra_builtins" validate:"unique"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
