// internal/platform/config/help.go
package config

import (
	"fmt"
	"io"
	"runtime"
)

const helpText = `
sbomatic - CycloneDX SBOM generation for multi-language source trees

USAGE:
  sbomatic [options] <root>

  Walks <root>, detects Java (pom.xml), Node.js (package.json), Go (go.mod)
  and Python (requirements.txt, setup.py) projects and runs the matching
  CycloneDX tool in each project directory. node_modules is never entered.

CORE OPTIONS:
  -c, --config string      YAML configuration file (default: ./sbomatic.yaml if present)
  -e, --exclude name       Extra directory name to skip, repeatable
      --skip eco           Disable a generator (java, nodejs, go, python), repeatable
      --tool-timeout dur   Timeout per tool invocation, e.g. 5m (default: none)
  -r, --report file        Write the run report as JSON ("-" = stdout)

OUTPUT OPTIONS:
      --ui mode            auto, pretty, plain, raw or none (default: auto)
      --plain              Shortcut for --ui plain (classic line output)
      --raw-format fmt     text (logfmt) or json, for --ui raw (default: text)
      --no-color           Disable colors
  -q, --quiet              Hide the output of the external tools
  -l, --log-level level    debug, info, warn or error (default: warn)

INFO:
      --check              Check the external tools and exit
  -v, --version            Print version information and exit
  -h, --help               Show this help message

EXTERNAL TOOLS:
  java     mvn (org.cyclonedx:cyclonedx-maven-plugin)  -> target/bom.json | target/bom.xml
  python   cyclonedx-py                                -> bom-python.json
  go       cyclonedx-gomod                             -> bom-go.json
  nodejs   npm + cyclonedx-npm                         -> bom-nodejs.json

EXAMPLES:
  Generate SBOMs for every project under ./src:
    sbomatic ./src

  CI run with a JSON report and no tool noise:
    sbomatic -q --ui raw --report sbomatic-report.json .

  Skip Node.js projects and vendored code:
    sbomatic --skip nodejs -e vendor -e third_party .

  Check which tools are installed:
    sbomatic --check

CONFIG FILE (YAML):
  log_level: info
  tool_timeout: 10m
  scan:
    exclude: [vendor, .git]
  generators:
    java:
      command: "mvn -B org.cyclonedx:cyclonedx-maven-plugin:makeAggregateBom -q"
      options: { prefer: xml }
    python:
      options: { requirements: requirements-prod.txt }
    go:
      options: { licenses: true }
    nodejs:
      commands: ["npm ci", ""]     # one line per tool; "" keeps the default
      timeout: 15m
      options: { extra_args: ["--omit", "dev"] }

  "command" always replaces the step that writes the SBOM (for nodejs the
  cyclonedx-npm call); use "commands" to change the other steps.

ENVIRONMENT VARIABLES:
  SBOMATIC_CONFIG=/path/sbomatic.yaml   Configuration file
  SBOMATIC_LOG_LEVEL=debug              Log level
  SBOMATIC_QUIET=true                   Hide tool output
  SBOMATIC_NO_COLOR=true                Disable colors (NO_COLOR is honoured too)
  SBOMATIC_UI=plain                     Console mode
  SBOMATIC_REPORT=report.json           JSON report path
  SBOMATIC_TOOL_TIMEOUT=5m              Timeout per tool invocation

  Generator-specific (replace JAVA with the ecosystem name):
  SBOMATIC_GENERATORS_JAVA_ENABLED=false
  SBOMATIC_GENERATORS_JAVA_TIMEOUT=10m

  Precedence: defaults < config file < environment < command line flags.

EXIT CODES:
  0  run completed (individual projects may have failed) or no projects found
  1  scan failed (unreadable root), the report could not be written, the run
     was interrupted, or --check found missing tools
  2  usage or configuration error
`

// PrintHelp escribe la ayuda en w.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, helpText)
}

// PrintUsage escribe la línea de uso corta, para errores de línea de comandos.
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sbomatic [options] <root>")
	fmt.Fprintln(w, "Run 'sbomatic --help' for more information.")
}

// PrintVersion escribe la información de versión en w.
func PrintVersion(w io.Writer, version, commit, date string) {
	fmt.Fprintf(w, "sbomatic %s\n", version)
	fmt.Fprintf(w, "  Commit:  %s\n", commit)
	fmt.Fprintf(w, "  Built:   %s\n", date)
	fmt.Fprintf(w, "  Go:      %s\n", getGoVersion())
}

func getGoVersion() string {
	return runtime.Version()
}
