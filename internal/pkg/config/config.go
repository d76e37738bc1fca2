package config

import (
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultTag = "config_default"
const descriptionTag = "config_description"

// Parse fills the given configuration struct from defaults, environment
// variables and command line flags (in increasing order of precedence).
//
// Each exported field declares its default with the config_default tag and
// its help text with config_description. A field named Port of application
// voice-backend is configurable as VOICE_BACKEND_PORT=8081 or --Port 8081.
func Parse(configuration any, applicationName string) {
	err := parseWithFlagSet(configuration, applicationName,
		pflag.CommandLine, os.Args[1:], nil)
	if err != nil {
		log.Fatal().Err(err).Msg("config.Parse() failed")
	}
}

func parseWithFlagSet(configuration any, applicationName string,
	flagSet *pflag.FlagSet, arguments []string, environment map[string]string) error {

	value := reflect.ValueOf(configuration).Elem()
	valueType := value.Type()

	settings := viper.New()
	envPrefix := strings.ToUpper(strings.ReplaceAll(applicationName, "-", "_"))
	envOverrides := map[string]any{}

	for i := 0; i < valueType.NumField(); i++ {
		field := valueType.Field(i)
		defaultValue := field.Tag.Get(defaultTag)
		description := field.Tag.Get(descriptionTag)
		envKey := envPrefix + "_" + strings.ToUpper(field.Name)

		switch field.Type.Kind() {
		case reflect.String:
			settings.SetDefault(field.Name, defaultValue)
			if flagSet.Lookup(field.Name) == nil {
				flagSet.String(field.Name, defaultValue, description)
			}
		case reflect.Int:
			parsed, err := strconv.Atoi(defaultValue)
			if defaultValue != "" && err != nil {
				return err
			}
			settings.SetDefault(field.Name, parsed)
			if flagSet.Lookup(field.Name) == nil {
				flagSet.Int(field.Name, parsed, description)
			}
		case reflect.Bool:
			parsed := defaultValue == "true"
			settings.SetDefault(field.Name, parsed)
			if flagSet.Lookup(field.Name) == nil {
				flagSet.Bool(field.Name, parsed, description)
			}
		default:
			continue
		}

		if environment == nil {
			if err := settings.BindEnv(field.Name, envKey); err != nil {
				return err
			}
		} else if envValue, ok := environment[envKey]; ok {
			// Injected environment sits below changed flags, like real
			// env bindings do.
			envOverrides[field.Name] = envValue
		}

		if err := settings.BindPFlag(field.Name, flagSet.Lookup(field.Name)); err != nil {
			return err
		}
	}

	// Flags must be parsed before the settings are read, or they would
	// never outrank the environment.
	if err := flagSet.Parse(arguments); err != nil {
		return err
	}

	if len(envOverrides) > 0 {
		if err := settings.MergeConfigMap(envOverrides); err != nil {
			return err
		}
	}

	for i := 0; i < valueType.NumField(); i++ {
		field := valueType.Field(i)
		target := value.Field(i)

		switch field.Type.Kind() {
		case reflect.String:
			target.SetString(settings.GetString(field.Name))
		case reflect.Int:
			target.SetInt(int64(settings.GetInt(field.Name)))
		case reflect.Bool:
			target.SetBool(settings.GetBool(field.Name))
		}
	}

	return nil
}
