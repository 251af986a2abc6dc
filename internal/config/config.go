package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/tmux-popup-convert/internal/app"
	"github.com/atomicstack/tmux-popup-convert/internal/clipboard"
	"github.com/atomicstack/tmux-popup-convert/internal/tmux"
)

var insideTmuxFn = tmux.InsideTmux

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	FilePath string
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfigFile = "TMUX_POPUP_CONVERT_CONFIG"
	envSocketPath = "TMUX_POPUP_CONVERT_SOCKET"
	envWidth      = "TMUX_POPUP_CONVERT_WIDTH"
	envHeight     = "TMUX_POPUP_CONVERT_HEIGHT"
	envShowFooter = "TMUX_POPUP_CONVERT_FOOTER"
	envVerbose    = "TMUX_POPUP_CONVERT_VERBOSE"
	envTrace      = "TMUX_POPUP_CONVERT_TRACE"
	envLogFile    = "TMUX_POPUP_CONVERT_LOG_FILE"
	envName       = "TMUX_POPUP_CONVERT_NAME"
	envCopy       = "TMUX_POPUP_CONVERT_COPY"
)

// fileConfig mirrors the optional YAML file. Pointer fields distinguish
// "unset" from zero values.
type fileConfig struct {
	Socket  *string `yaml:"socket"`
	Width   *int    `yaml:"width"`
	Height  *int    `yaml:"height"`
	Footer  *bool   `yaml:"footer"`
	Trace   *bool   `yaml:"trace"`
	Verbose *bool   `yaml:"verbose"`
	LogFile *string `yaml:"log_file"`
	Name    *string `yaml:"name"`
	Copy    *string `yaml:"copy"`
}

type defaults struct {
	socket  string
	width   int
	height  int
	footer  bool
	trace   bool
	verbose bool
	logFile string
	name    string
	copy    string
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// flags, then environment, then the YAML config file.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	filePath := configPathFromArgs(args)
	if filePath == "" {
		filePath = envOrDefault(env, envConfigFile, "")
	}
	base := defaults{copy: string(clipboard.TargetAuto)}
	if filePath != "" {
		if err := applyFile(&base, filePath); err != nil {
			return Config{}, err
		}
	}

	fs := flag.NewFlagSet("tmux-popup-convert", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", filePath, "path to a YAML config file")
	socket := fs.String("socket", envOrDefault(env, envSocketPath, base.socket), "tmux socket used for copying results")
	width := fs.Int("width", envOrInt(env, envWidth, base.width), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, base.height), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, base.footer), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, base.trace), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, base.verbose), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, base.logFile), "path to the log file")
	name := fs.String("name", envOrDefault(env, envName, base.name), "prefill the name field")
	copyTarget := fs.String("copy", envOrDefault(env, envCopy, base.copy), "copy target: auto, tmux, clipboard or none")
	script := fs.String("script", "", "run a key script instead of the UI ('-' reads stdin)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	target, err := clipboard.ParseTarget(*copyTarget)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			SocketPath: *socket,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			Name:       *name,
			CopyTarget: target,
			Script:     *script,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		FilePath: filePath,
		Flags: map[string]string{
			"config":  filePath,
			"socket":  *socket,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
			"name":    *name,
			"copy":    string(target),
			"script":  *script,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// configPathFromArgs finds --config ahead of the real parse so the file can
// seed flag defaults.
func configPathFromArgs(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		for _, prefix := range []string{"--config", "-config"} {
			if arg == prefix && i+1 < len(args) {
				return args[i+1]
			}
			if strings.HasPrefix(arg, prefix+"=") {
				return strings.TrimPrefix(arg, prefix+"=")
			}
		}
	}
	return ""
}

func applyFile(base *defaults, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if fc.Socket != nil {
		base.socket = *fc.Socket
	}
	if fc.Width != nil {
		base.width = *fc.Width
	}
	if fc.Height != nil {
		base.height = *fc.Height
	}
	if fc.Footer != nil {
		base.footer = *fc.Footer
	}
	if fc.Trace != nil {
		base.trace = *fc.Trace
	}
	if fc.Verbose != nil {
		base.verbose = *fc.Verbose
	}
	if fc.LogFile != nil {
		base.logFile = *fc.LogFile
	}
	if fc.Name != nil {
		base.name = *fc.Name
	}
	if fc.Copy != nil {
		base.copy = *fc.Copy
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects combinations LoadArgs cannot catch on its own.
func Validate(cfg Config) error {
	if cfg.App.Script != "" && cfg.App.Script != "-" && strings.TrimSpace(cfg.App.Script) == "" {
		return errors.New("script must not be blank")
	}
	if cfg.App.CopyTarget == clipboard.TargetTmux && cfg.App.SocketPath == "" && !insideTmuxFn() {
		return errors.New("copy target tmux needs --socket when not running inside tmux")
	}
	return nil
}
