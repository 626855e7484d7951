package config

import (
	"errors"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	perrors "github.com/matzehuels/pedigree/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by [Config.ApplyEnv].
const EnvPrefix = "PEDIGREE_"

// EnvVar describes one variable read by [Config.ApplyEnv]. Name excludes
// [EnvPrefix].
type EnvVar struct {
	Name string
	Help string
}

// EnvVars lists every variable [Config.ApplyEnv] reads.
var EnvVars = []EnvVar{
	{"ORIENTATION", "layout: down, up, right, left"},
	{"GENERATIONS", "generations to draw"},
	{"SHOW_EMPTY_BOXES", "draw placeholder boxes (true/false)"},
	{"RTL", "right-to-left host text direction (true/false)"},
	{"FORMATS", "comma-separated output formats"},
	{"MEASURE", "text measurement: face, estimate"},
	{"CACHE", "cache backend: file, redis, none"},
	{"CACHE_DIR", "file cache directory"},
	{"CACHE_PREFIX", "key namespace"},
	{"REDIS_ADDR", "redis host:port"},
	{"REDIS_PASSWORD", "redis password"},
	{"REDIS_DB", "redis database number"},
}

// LoadDotEnv reads .env files into the process environment. Variables that
// are already set win. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "load %s", p)
		}
	}
	return nil
}

// ApplyEnv overrides fields of c from PEDIGREE_* variables looked up with
// lookup (usually os.LookupEnv).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("ORIENTATION"); ok {
		c.Orientation = v
	}
	if v, ok := get("GENERATIONS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return perrors.Wrap(perrors.ErrCodeInvalidGenerations, err, "%sGENERATIONS", EnvPrefix)
		}
		c.Generations = n
	}
	for name, dst := range map[string]*bool{
		"SHOW_EMPTY_BOXES": &c.ShowEmptyBoxes,
		"RTL":              &c.RTL,
	} {
		if v, ok := get(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "%s%s", EnvPrefix, name)
			}
			*dst = b
		}
	}
	if v, ok := get("FORMATS"); ok {
		c.Formats = strings.Split(v, ",")
	}
	if v, ok := get("MEASURE"); ok {
		c.Font.Measure = v
	}
	if v, ok := get("CACHE"); ok {
		c.Cache.Backend = v
	}
	if v, ok := get("CACHE_DIR"); ok {
		c.Cache.Dir = v
	}
	if v, ok := get("CACHE_PREFIX"); ok {
		c.Cache.Prefix = v
	}
	if v, ok := get("REDIS_ADDR"); ok {
		c.Cache.RedisAddr = v
	}
	if v, ok := get("REDIS_PASSWORD"); ok {
		c.Cache.RedisPassword = v
	}
	if v, ok := get("REDIS_DB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "%sREDIS_DB", EnvPrefix)
		}
		c.Cache.RedisDB = n
	}
	return nil
}
