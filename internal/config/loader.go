package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"merge-generator/internal/gen"
	"merge-generator/internal/plan"
)

// Config file lookup.
const (
	EnvPrefix  = "MERGEGEN"
	ConfigName = "merge-generator"
)

// NewViper returns a viper instance with every key defaulted and bound to
// its MERGEGEN_* environment variable (dots become underscores).
func NewViper() *viper.Viper {
	v := viper.New()

	genDefaults := gen.DefaultGeneratorConfig()

	v.SetDefault("dir", "")
	v.SetDefault("schemas", []string{})
	v.SetDefault("packages", []string{})
	v.SetDefault("scan", []string{})
	v.SetDefault("manifest", "")
	v.SetDefault("runtime", genDefaults.RuntimePackage)
	v.SetDefault("merger.suffix", plan.DefaultPlannerConfig().MergerSuffix)
	v.SetDefault("merger.fileSuffix", genDefaults.FileSuffix)
	v.SetDefault("merger.comments", genDefaults.GenerateComments)
	v.SetDefault("output.dir", genDefaults.OutputDir)
	v.SetDefault("output.debugDir", "")
	v.SetDefault("registry.package", "")
	v.SetDefault("registry.name", "")
	v.SetDefault("registry.dir", "")
	v.SetDefault("registry.file", genDefaults.RegistryFile)
	v.SetDefault("registry.func", genDefaults.RegistryFunc)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file at path into v and decodes the result.
// Without a path, merge-generator.yaml is looked up in the current directory
// and its absence is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config

	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
		trimStringsHook(),
	)))
	if err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return &cfg, nil
}

// trimStringsHook drops surrounding whitespace from string values, so
// "a, b" from the environment decodes like "a,b".
func trimStringsHook() mapstructure.DecodeHookFuncKind {
	return func(from, to reflect.Kind, data any) (any, error) {
		if from != reflect.String || to != reflect.String {
			return data, nil
		}

		return strings.TrimSpace(data.(string)), nil
	}
}
