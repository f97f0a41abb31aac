package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gofmlint/pkg/config"
)

// envVarPrefix is the prefix for all gofmlint environment variables.
const envVarPrefix = "GOFMLINT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FIX":                 {field: "fix", typ: envTypeBool},
	"RECURSIVE":           {field: "recursive", typ: envTypeBool},
	"QUIET":               {field: "quiet", typ: envTypeBool},
	"MANDATORY":           {field: "mandatory", typ: envTypeBool},
	"JOBS":                {field: "jobs", typ: envTypeInt},
	"FORMAT":              {field: "format", typ: envTypeString},
	"EXTENSIONS":          {field: "extensions", typ: envTypeSlice},
	"EXCLUDE_DIRS":        {field: "exclude_dirs", typ: envTypeSlice},
	"INCLUDE_DIRS":        {field: "include_dirs", typ: envTypeSlice},
	"EXTRA_EXCLUDE_DIRS":  {field: "extra_exclude_dirs", typ: envTypeSlice},
	"REQUIRED_ATTRIBUTES": {field: "required_attributes", typ: envTypeSlice},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOFMLINT_ (e.g., GOFMLINT_FIX).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "fix":
		cfg.Fix = value
	case "recursive":
		cfg.Recursive = value
	case "quiet":
		cfg.Quiet = value
	case "mandatory":
		cfg.Mandatory = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "extensions":
		cfg.Extensions = value
	case "exclude_dirs":
		cfg.ExcludeDirs = value
	case "include_dirs":
		cfg.IncludeDirs = value
	case "extra_exclude_dirs":
		cfg.ExtraExcludeDirs = value
	case "required_attributes":
		cfg.RequiredAttributes = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GOFMLINT_FIX":                 "Enable auto-fix: true or false",
		"GOFMLINT_RECURSIVE":           "Recurse into subdirectories: true or false",
		"GOFMLINT_QUIET":               "Suppress warning output: true or false",
		"GOFMLINT_MANDATORY":           "Treat missing front matter as an error: true or false",
		"GOFMLINT_JOBS":                "Number of parallel workers (0 = auto)",
		"GOFMLINT_FORMAT":              "Output format: text, json, or summary",
		"GOFMLINT_EXTENSIONS":          "Comma-separated list of file extensions",
		"GOFMLINT_EXCLUDE_DIRS":        "Comma-separated list of directories to exclude",
		"GOFMLINT_INCLUDE_DIRS":        "Comma-separated list of directories to include despite exclusion",
		"GOFMLINT_EXTRA_EXCLUDE_DIRS":  "Comma-separated list of extra directories to exclude",
		"GOFMLINT_REQUIRED_ATTRIBUTES": "Comma-separated list of required front-matter keys",
	}
}
