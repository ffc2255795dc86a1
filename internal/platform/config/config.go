// internal/platform/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/shlex"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"sbomatic/internal/core/domain"
	"sbomatic/internal/core/ports"
	"sbomatic/internal/platform/errors"
)

// DefaultConfigFile se carga si existe en el cwd y no se indicó otro.
const DefaultConfigFile = "sbomatic.yaml"

var (
	// ErrHelp se retorna cuando se pidió -h/--help.
	ErrHelp = errors.New("help requested")

	// ErrUsage envuelve los errores de línea de comandos (exit 2).
	ErrUsage = errors.New("usage error")
)

type Config struct {
	// App
	Root         string // único argumento posicional
	ConfigPath   string // archivo YAML efectivamente cargado ("" = ninguno)
	PrintVersion bool
	CheckTools   bool

	// Output
	Quiet      bool   // oculta stdout/stderr de las tools
	NoColor    bool   // desactiva colores aunque stdout sea terminal
	UI         string // auto | pretty | plain | raw | none
	RawFormat  string // text | json (solo ui=raw)
	LogLevel   string
	ReportPath string // --report; "-" = stdout

	// Scan
	Exclude []string // nombres de directorio extra a podar

	// Generators: mapa dinámico por nombre de generador ("java", "go", ...)
	ToolTimeout time.Duration // fallback para generadores sin timeout propio
	Generators  map[string]ports.GeneratorConfig
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	gens := make(map[string]ports.GeneratorConfig)
	for _, eco := range domain.AllEcosystems() {
		gens[eco.String()] = ports.DefaultGeneratorConfig()
	}

	return Config{
		UI:         "auto",
		RawFormat:  "text",
		LogLevel:   "warn",
		Exclude:    []string{},
		Generators: gens,
	}
}

// LoadArgs inicializa la configuración: defaults -> YAML -> ENV -> FLAGS
// (cada capa pisa a la anterior; solo los flags explícitos pisan).
func LoadArgs(args []string) (Config, error) {
	cfg := DefaultConfig()

	fs, fv := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return cfg, errors.Wrapf(ErrUsage, "%v", err)
	}
	if fv.help {
		return cfg, ErrHelp
	}
	if fv.version {
		cfg.PrintVersion = true
		return cfg, nil
	}

	// YAML (ruta: flag > ENV > sbomatic.yaml si existe)
	path, explicit := fv.config, fs.Changed("config")
	if !explicit {
		if v := getenv("SBOMATIC_CONFIG", ""); v != "" {
			path, explicit = v, true
		}
	}
	if path == "" {
		path = DefaultConfigFile
	}
	if err := loadFromFile(&cfg, path, explicit); err != nil {
		return cfg, err
	}

	// ENV
	if err := loadFromEnv(&cfg); err != nil {
		return cfg, err
	}

	// FLAGS
	if err := applyFlags(&cfg, fs, fv); err != nil {
		return cfg, err
	}

	if !cfg.CheckTools {
		positional := fs.Args()
		if len(positional) != 1 {
			return cfg, errors.Wrapf(ErrUsage, "expected exactly one <root> argument, got %d", len(positional))
		}
		cfg.Root = positional[0]
	}

	normalize(&cfg)
	return cfg, nil
}

// flagValues recibe los flags antes de mezclarlos con las otras capas.
type flagValues struct {
	config      string
	quiet       bool
	noColor     bool
	plain       bool
	ui          string
	rawFormat   string
	logLevel    string
	report      string
	exclude     []string
	toolTimeout time.Duration
	check       bool
	skip        []string
	version     bool
	help        bool
}

func newFlagSet() (*pflag.FlagSet, *flagValues) {
	fv := &flagValues{}
	fs := pflag.NewFlagSet("sbomatic", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	fs.StringVarP(&fv.config, "config", "c", "", "YAML configuration file")
	fs.BoolVarP(&fv.quiet, "quiet", "q", false, "Hide the output of the external tools")
	fs.BoolVar(&fv.noColor, "no-color", false, "Disable colors")
	fs.BoolVar(&fv.plain, "plain", false, "Shortcut for --ui plain")
	fs.StringVar(&fv.ui, "ui", "auto", "Console mode: auto, pretty, plain, raw, none")
	fs.StringVar(&fv.rawFormat, "raw-format", "text", "Line format for --ui raw: text, json")
	fs.StringVarP(&fv.logLevel, "log-level", "l", "warn", "Log level: debug, info, warn, error")
	fs.StringVarP(&fv.report, "report", "r", "", "Write the run report as JSON (- = stdout)")
	fs.StringSliceVarP(&fv.exclude, "exclude", "e", nil, "Extra directory name to skip (repeatable)")
	fs.DurationVar(&fv.toolTimeout, "tool-timeout", 0, "Timeout per tool invocation (0 = none)")
	fs.BoolVar(&fv.check, "check", false, "Check the external tools and exit")
	fs.StringSliceVar(&fv.skip, "skip", nil, "Disable the generator of an ecosystem (repeatable)")
	fs.BoolVarP(&fv.version, "version", "v", false, "Print version information and exit")
	fs.BoolVarP(&fv.help, "help", "h", false, "Show this help message")

	return fs, fv
}

func applyFlags(cfg *Config, fs *pflag.FlagSet, fv *flagValues) error {
	if fs.Changed("config") {
		cfg.ConfigPath = fv.config
	}
	if fs.Changed("quiet") {
		cfg.Quiet = fv.quiet
	}
	if fs.Changed("no-color") {
		cfg.NoColor = fv.noColor
	}
	if fs.Changed("ui") {
		cfg.UI = fv.ui
	}
	if fs.Changed("plain") && fv.plain {
		cfg.UI = "plain"
	}
	if fs.Changed("raw-format") {
		cfg.RawFormat = fv.rawFormat
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = fv.logLevel
	}
	if fs.Changed("report") {
		cfg.ReportPath = fv.report
	}
	if fs.Changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, fv.exclude...)
	}
	if fs.Changed("tool-timeout") {
		cfg.ToolTimeout = fv.toolTimeout
	}
	if fs.Changed("check") {
		cfg.CheckTools = fv.check
	}

	for _, name := range fv.skip {
		eco, err := domain.ParseEcosystem(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			return errors.Wrapf(ErrUsage, "--skip %q: %v", name, err)
		}
		gen := cfg.Generators[eco.String()]
		gen.Enabled = false
		cfg.Generators[eco.String()] = gen
	}

	return nil
}

// fileConfig es el esquema del YAML.
type fileConfig struct {
	LogLevel    string `yaml:"log_level"`
	Quiet       *bool  `yaml:"quiet"`
	NoColor     *bool  `yaml:"no_color"`
	UI          string `yaml:"ui"`
	RawFormat   string `yaml:"raw_format"`
	Report      string `yaml:"report"`
	ToolTimeout string `yaml:"tool_timeout"`

	Scan struct {
		Exclude []string `yaml:"exclude"`
	} `yaml:"scan"`

	Generators map[string]fileGenerator `yaml:"generators"`
}

type fileGenerator struct {
	Enabled  *bool                  `yaml:"enabled"`
	Command  yaml.Node              `yaml:"command"`  // string o lista argv: la línea que genera el SBOM
	Commands []string               `yaml:"commands"` // una línea por tool, en orden
	Timeout  string                 `yaml:"timeout"`
	Options  map[string]interface{} `yaml:"options"`
}

// loadFromFile aplica el YAML. Si el archivo no existe y no fue pedido
// explícitamente, no es un error.
func loadFromFile(cfg *Config, path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return errors.Wrapf(err, "read config %s", path)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errors.Wrapf(errors.Join(errors.ErrInvalidInput, err), "parse config %s", path)
	}

	if err := applyFile(cfg, fc); err != nil {
		return errors.Wrapf(err, "config %s", path)
	}
	cfg.ConfigPath = path
	return nil
}

func applyFile(cfg *Config, fc fileConfig) error {
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.Quiet != nil {
		cfg.Quiet = *fc.Quiet
	}
	if fc.NoColor != nil {
		cfg.NoColor = *fc.NoColor
	}
	if fc.UI != "" {
		cfg.UI = fc.UI
	}
	if fc.RawFormat != "" {
		cfg.RawFormat = fc.RawFormat
	}
	if fc.Report != "" {
		cfg.ReportPath = fc.Report
	}
	if fc.ToolTimeout != "" {
		d, err := parseDuration(fc.ToolTimeout)
		if err != nil {
			return fmt.Errorf("tool_timeout: %w", err)
		}
		cfg.ToolTimeout = d
	}
	cfg.Exclude = append(cfg.Exclude, fc.Scan.Exclude...)

	// Orden estable para que los errores sean deterministas
	names := make([]string, 0, len(fc.Generators))
	for name := range fc.Generators {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fg := fc.Generators[name]
		gen, ok := cfg.Generators[name]
		if !ok {
			// nombre desconocido: lo conserva, el registry lo reporta al hacer Build
			gen = ports.DefaultGeneratorConfig()
		}

		if fg.Enabled != nil {
			gen.Enabled = *fg.Enabled
		}

		command, commands, err := fg.commandLines()
		if err != nil {
			return fmt.Errorf("generators.%s: %w", name, err)
		}
		if len(command) > 0 {
			gen.Command = command
		}
		if len(commands) > 0 {
			gen.Commands = commands
		}

		if fg.Timeout != "" {
			d, err := parseDuration(fg.Timeout)
			if err != nil {
				return fmt.Errorf("generators.%s.timeout: %w", name, err)
			}
			gen.Timeout = d
		}
		if len(fg.Options) > 0 {
			gen.Options = fg.Options
		}

		cfg.Generators[name] = gen
	}

	return nil
}

// commandLines resuelve command/commands a argv. Un string se parte con
// reglas de shell (comillas, escapes); no se invoca ningún shell.
// command es la línea del SBOM; commands va una línea por tool, en orden.
func (fg fileGenerator) commandLines() (command []string, commands [][]string, err error) {
	if fg.Command.Kind != 0 && len(fg.Commands) > 0 {
		return nil, nil, fmt.Errorf("use either command or commands, not both")
	}

	switch fg.Command.Kind {
	case 0:
		// ausente
	case yaml.ScalarNode:
		argv, err := splitCommand(fg.Command.Value)
		if err != nil {
			return nil, nil, err
		}
		return argv, nil, nil
	case yaml.SequenceNode:
		var argv []string
		if err := fg.Command.Decode(&argv); err != nil {
			return nil, nil, fmt.Errorf("command: %w", err)
		}
		if len(argv) == 0 {
			return nil, nil, fmt.Errorf("command: empty argv")
		}
		return argv, nil, nil
	default:
		return nil, nil, fmt.Errorf("command: expected a string or a list")
	}

	out := make([][]string, 0, len(fg.Commands))
	for i, line := range fg.Commands {
		if strings.TrimSpace(line) == "" {
			// línea vacía = mantener el default de esa posición
			out = append(out, nil)
			continue
		}
		argv, err := splitCommand(line)
		if err != nil {
			return nil, nil, fmt.Errorf("commands[%d]: %w", i, err)
		}
		out = append(out, argv)
	}
	return nil, out, nil
}

func splitCommand(line string) ([]string, error) {
	argv, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("command %q: %w", line, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("command: empty")
	}
	return argv, nil
}

// loadFromEnv carga configuración desde variables de entorno.
func loadFromEnv(cfg *Config) error {
	if v := getenv("SBOMATIC_LOG_LEVEL", ""); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("SBOMATIC_QUIET", ""); v != "" {
		cfg.Quiet = parseBool(v)
	}
	if v := getenv("SBOMATIC_NO_COLOR", ""); v != "" {
		cfg.NoColor = parseBool(v)
	}
	if v := getenv("SBOMATIC_UI", ""); v != "" {
		cfg.UI = v
	}
	if v := getenv("SBOMATIC_REPORT", ""); v != "" {
		cfg.ReportPath = v
	}
	if v := getenv("SBOMATIC_TOOL_TIMEOUT", ""); v != "" {
		d, err := parseDuration(v)
		if err != nil {
			return errors.Wrapf(errors.Join(errors.ErrInvalidInput, err), "SBOMATIC_TOOL_TIMEOUT")
		}
		cfg.ToolTimeout = d
	}

	// Generators config desde ENV
	// Formato: SBOMATIC_GENERATORS_JAVA_ENABLED=false
	//          SBOMATIC_GENERATORS_NODEJS_TIMEOUT=5m
	for name := range cfg.Generators {
		prefix := fmt.Sprintf("SBOMATIC_GENERATORS_%s_", strings.ToUpper(name))

		genCfg := cfg.Generators[name]

		if v := getenv(prefix+"ENABLED", ""); v != "" {
			genCfg.Enabled = parseBool(v)
		}
		if v := getenv(prefix+"TIMEOUT", ""); v != "" {
			d, err := parseDuration(v)
			if err != nil {
				return errors.Wrapf(errors.Join(errors.ErrInvalidInput, err), "%sTIMEOUT", prefix)
			}
			genCfg.Timeout = d
		}

		cfg.Generators[name] = genCfg
	}

	return nil
}

func normalize(c *Config) {
	c.UI = strings.ToLower(strings.TrimSpace(c.UI))
	if c.UI == "" {
		c.UI = "auto"
	}
	c.RawFormat = strings.ToLower(strings.TrimSpace(c.RawFormat))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.ToolTimeout < 0 {
		c.ToolTimeout = 0
	}

	// Excludes sin vacíos ni duplicados, en orden de aparición
	seen := make(map[string]bool, len(c.Exclude))
	excl := make([]string, 0, len(c.Exclude))
	for _, name := range c.Exclude {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		excl = append(excl, name)
	}
	c.Exclude = excl
}

// GeneratorConfigs retorna las configs listas para el registry: Quiet global
// y ToolTimeout como fallback de los generadores sin timeout propio.
func (c Config) GeneratorConfigs() map[string]ports.GeneratorConfig {
	out := make(map[string]ports.GeneratorConfig, len(c.Generators))
	for name, gen := range c.Generators {
		gen.Quiet = c.Quiet
		if gen.Timeout <= 0 {
			gen.Timeout = c.ToolTimeout
		}
		out[name] = gen
	}
	return out
}

// ToJSON serializa la configuración efectiva en una sola línea (log de debug).
func (c Config) ToJSON() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

// parseDuration acepta "90s", "5m" o un entero en segundos.
func parseDuration(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", v)
	}
	return d, nil
}
