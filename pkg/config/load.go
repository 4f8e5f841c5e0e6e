package config

import (
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ProjectFileName is the name, without extension, of the optional project file read by viper
const ProjectFileName = "vmdeploy"

// Setting is a config field addressable from the environment, the project file and the command line
type Setting struct {
	// Env is the variable name without EnvPrefix, e.g. RESOURCE_GROUP
	Env string
	// Key is the project file key, e.g. resource_group
	Key string
	// Flag is the command line flag name, e.g. resource-group
	Flag string
	// Shared settings carry an explicit envconfig tag and are also read from the bare variable, e.g. AZURE_TENANT_ID
	Shared bool

	index int
}

// Variables lists the environment variables the setting is read from, in lookup order
func (s Setting) Variables() []string {
	if s.Shared {
		return []string{EnvPrefix + "_" + s.Env, s.Env}
	}
	return []string{EnvPrefix + "_" + s.Env}
}

var (
	wordsRegexp   = regexp.MustCompile("([^A-Z]+|[A-Z]+[^A-Z]+|[A-Z]+)")
	acronymRegexp = regexp.MustCompile("([A-Z]+)([A-Z][^A-Z]+)")
)

// Settings lists every field of Config read by envconfig
func Settings() []Setting {
	rt := reflect.TypeOf(Config{})
	settings := make([]Setting, 0, rt.NumField())

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)

		env, shared := field.Tag.Lookup("envconfig")
		if !shared {
			if field.Tag.Get("split_words") != "true" {
				continue
			}
			env = splitWords(field.Name)
		}

		key := strings.ToLower(env)
		settings = append(settings, Setting{
			Env:    env,
			Key:    key,
			Flag:   strings.ReplaceAll(key, "_", "-"),
			Shared: shared,
			index:  i,
		})
	}

	return settings
}

// splitWords names a field the way envconfig does for split_words, e.g. ManagedIdentityClientID
// becomes MANAGED_IDENTITY_CLIENT_ID
func splitWords(name string) string {
	var words []string
	for _, match := range wordsRegexp.FindAllStringSubmatch(name, -1) {
		if m := acronymRegexp.FindStringSubmatch(match[0]); len(m) == 3 {
			words = append(words, m[1], m[2])
		} else {
			words = append(words, match[0])
		}
	}

	return strings.ToUpper(strings.Join(words, "_"))
}

// Load resolves the config from, in order of precedence, changed command line flags, environment
// variables, the project file and the defaults. Either source may be nil.
func Load(project *viper.Viper, flags *pflag.FlagSet) (cfg Config, err error) {
	err = envconfig.Process(EnvPrefix, &cfg)
	if err != nil {
		return
	}

	rv := reflect.ValueOf(&cfg).Elem()

	for _, s := range Settings() {
		field := rv.Field(s.index)

		if flags != nil {
			if f := flags.Lookup(s.Flag); f != nil && f.Changed {
				if err = setField(field, f.Value.String()); err != nil {
					return cfg, fmt.Errorf("flag --%s: %w", s.Flag, err)
				}
				continue
			}
		}

		if project != nil && project.InConfig(s.Key) && !envIsSet(s) {
			if err = setField(field, project.GetString(s.Key)); err != nil {
				return cfg, fmt.Errorf("%s in %s: %w", s.Key, project.ConfigFileUsed(), err)
			}
		}
	}

	cfg.Normalize()

	err = cfg.Validate()

	return
}

// ReadProjectFile reads vmdeploy.yml from the given path, or from the working directory when path is
// empty. A missing project file in the working directory is not an error.
func ReadProjectFile(path string) (*viper.Viper, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ProjectFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && path == "" {
			return v, nil
		}
		return nil, err
	}

	return v, nil
}

func envIsSet(s Setting) bool {
	for _, name := range s.Variables() {
		if _, ok := os.LookupEnv(name); ok {
			return true
		}
	}

	return false
}

func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		field.SetInt(int64(n))
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported setting type %s", field.Kind())
	}

	return nil
}
