package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the workspace-level config file looked up in the workspace root.
const FileName = "mngr.yaml"

// Config is the effective mngr configuration.
type Config struct {
	AppsDir        string    `mapstructure:"apps_dir" yaml:"apps_dir" validate:"required,excludesall=/"`
	LibsDir        string    `mapstructure:"libs_dir" yaml:"libs_dir" validate:"required,excludesall=/,nefield=AppsDir"`
	Manifest       string    `mapstructure:"manifest" yaml:"manifest" validate:"required,excludesall=/"`
	Template       string    `mapstructure:"template" yaml:"template" validate:"required,excludesall=/,nefield=Manifest"`
	ArtifactDir    string    `mapstructure:"artifact_dir" yaml:"artifact_dir" validate:"required,excludesall=/"`
	SkipDirs       []string  `mapstructure:"skip_dirs" yaml:"skip_dirs"`
	PackageManager string    `mapstructure:"package_manager" yaml:"package_manager" validate:"required"`
	Jobs           int       `mapstructure:"jobs" yaml:"jobs" validate:"gte=0"`
	AppsNamespace  string    `mapstructure:"apps_namespace" yaml:"apps_namespace,omitempty" validate:"excludesall=:"`
	LibsNamespace  string    `mapstructure:"libs_namespace" yaml:"libs_namespace,omitempty" validate:"excludesall=:"`
	Install        Install   `mapstructure:"install" yaml:"install"`
	Aggregate      Aggregate `mapstructure:"aggregate" yaml:"aggregate"`
	Doctor         Doctor    `mapstructure:"doctor" yaml:"doctor"`
}

// Install controls which sub-projects are treated as installable.
type Install struct {
	// RequireKind restricts installs to sub-projects whose manifest declares
	// project.kind == Kind. When false, manifest presence is enough.
	RequireKind bool   `mapstructure:"require_kind" yaml:"require_kind"`
	Kind        string `mapstructure:"kind" yaml:"kind" validate:"required_if=RequireKind true"`
}

// Aggregate configures the synthesized fan-out scripts.
type Aggregate struct {
	Runner       string   `mapstructure:"runner" yaml:"runner" validate:"required"`
	EnsureRunner bool     `mapstructure:"ensure_runner" yaml:"ensure_runner"`
	Exclude      []string `mapstructure:"exclude" yaml:"exclude"`
	DevLead      string   `mapstructure:"dev_lead" yaml:"dev_lead"`
	TestWatch    bool     `mapstructure:"test_watch" yaml:"test_watch"`
}

// Doctor lists the tools checked by `mngr doctor`.
type Doctor struct {
	Tools       []string          `mapstructure:"tools" yaml:"tools" validate:"dive,required"`
	MinVersions map[string]string `mapstructure:"min_versions" yaml:"min_versions,omitempty" validate:"dive,keys,required,endkeys,semver"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		AppsDir:        "apps",
		LibsDir:        "libs",
		Manifest:       "package.json",
		Template:       "package-tmpl.json",
		ArtifactDir:    "node_modules",
		SkipDirs:       []string{".git"},
		PackageManager: "npm",
		Install: Install{
			Kind: "npm",
		},
		Aggregate: Aggregate{
			Runner:       "concurrently",
			EnsureRunner: true,
			Exclude:      []string{},
			DevLead:      "libs:dev",
		},
		Doctor: Doctor{
			Tools: []string{"volta", "npm", "node"},
		},
	}
}

// LoadOptions selects where configuration is read from.
type LoadOptions struct {
	// Root is the workspace root; Root/mngr.yaml is read when present.
	Root string
	// File is an explicit config file path. It takes precedence over Root
	// and must exist.
	File string
}

// Load builds the effective configuration from defaults, the config file and
// MNGR_* environment variables, then validates it.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MNGR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := opts.File
	if path == "" && opts.Root != "" {
		candidate := filepath.Join(opts.Root, FileName)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		if path != "" {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("apps_dir", d.AppsDir)
	v.SetDefault("libs_dir", d.LibsDir)
	v.SetDefault("manifest", d.Manifest)
	v.SetDefault("template", d.Template)
	v.SetDefault("artifact_dir", d.ArtifactDir)
	v.SetDefault("skip_dirs", d.SkipDirs)
	v.SetDefault("package_manager", d.PackageManager)
	v.SetDefault("jobs", d.Jobs)
	v.SetDefault("apps_namespace", d.AppsNamespace)
	v.SetDefault("libs_namespace", d.LibsNamespace)
	v.SetDefault("install.require_kind", d.Install.RequireKind)
	v.SetDefault("install.kind", d.Install.Kind)
	v.SetDefault("aggregate.runner", d.Aggregate.Runner)
	v.SetDefault("aggregate.ensure_runner", d.Aggregate.EnsureRunner)
	v.SetDefault("aggregate.exclude", d.Aggregate.Exclude)
	v.SetDefault("aggregate.dev_lead", d.Aggregate.DevLead)
	v.SetDefault("aggregate.test_watch", d.Aggregate.TestWatch)
	v.SetDefault("doctor.tools", d.Doctor.Tools)
	v.SetDefault("doctor.min_versions", map[string]string{})
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and reports the first offending key.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid config: %s fails %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
	}
	return fmt.Errorf("invalid config: %w", err)
}

// Write renders cfg as YAML.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
