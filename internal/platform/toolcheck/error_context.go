package toolcheck

import (
	"fmt"
	"strings"

	"sbomatic/internal/core/domain"
	"sbomatic/internal/platform/errors"
)

// ErrorContext provides detailed context and solutions for generation errors.
type ErrorContext struct {
	ToolName  string
	Ecosystem domain.Ecosystem
	Project   string
	Error     error
	Reason    string
	Solutions []string
	DocsURL   string
}

// String formats the error context for display.
func (ec *ErrorContext) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("\n    ERROR: %s\n", ec.Error))

	if ec.Reason != "" {
		b.WriteString(fmt.Sprintf("    REASON: %s\n", ec.Reason))
	}

	if len(ec.Solutions) > 0 {
		b.WriteString("\n    SOLUTIONS:\n")
		for i, solution := range ec.Solutions {
			b.WriteString(fmt.Sprintf("    %d) %s\n", i+1, solution))
		}
	}

	if ec.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n    For more help: %s\n", ec.DocsURL))
	}

	return b.String()
}

// toolNamer lo implementan los errores que saben qué ejecutable falló.
type toolNamer interface {
	ToolName() string
}

// AnalyzeError creates an ErrorContext from the error of a failed project.
func AnalyzeError(eco domain.Ecosystem, project string, err error) *ErrorContext {
	if err == nil {
		return nil
	}

	ctx := &ErrorContext{
		Ecosystem: eco,
		Project:   project,
		Error:     err,
	}

	var named toolNamer
	if errors.As(err, &named) {
		ctx.ToolName = named.ToolName()
	}

	info, known := KnownTools[ctx.ToolName]
	if known {
		ctx.DocsURL = info.DocsURL
	}

	envKey := fmt.Sprintf("SBOMATIC_GENERATORS_%s_ENABLED=false", strings.ToUpper(string(eco)))
	errMsg := strings.ToLower(err.Error())

	switch {
	case errors.IsToolNotFound(err) && strings.Contains(errMsg, "permission denied"):
		ctx.Reason = fmt.Sprintf("%s exists but cannot be executed", ctx.ToolName)
		ctx.Solutions = []string{
			"Check the file permissions of the executable (chmod +x)",
			"Make sure the filesystem is not mounted noexec",
		}

	case errors.IsToolNotFound(err):
		ctx.Reason = fmt.Sprintf("%s is not installed or not in PATH", ctx.ToolName)
		ctx.Solutions = make([]string, 0, 3)
		if known {
			ctx.Solutions = append(ctx.Solutions, "Install it: "+info.InstallHint)
		}
		ctx.Solutions = append(ctx.Solutions,
			"If it is already installed, add its directory to PATH",
			fmt.Sprintf("Skip %s projects: --skip %s or %s", eco.DisplayName(), eco, envKey),
		)

	case errors.IsTimeout(err):
		ctx.Reason = "The tool ran longer than the configured per-tool timeout"
		ctx.Solutions = []string{
			"Raise the limit: --tool-timeout 30m (or SBOMATIC_TOOL_TIMEOUT)",
			"Use --tool-timeout 0 to disable the limit",
			"Warm the dependency cache (first Maven/npm runs download a lot)",
		}

	case errors.Is(err, errors.ErrGeneratorMissing):
		ctx.Reason = fmt.Sprintf("No generator is enabled for %s projects", eco.DisplayName())
		ctx.Solutions = []string{
			"Remove it from --skip",
			fmt.Sprintf("Check generators.%s.enabled in the config file", eco),
		}

	default:
		ctx.Reason = "The generator failed unexpectedly"
		ctx.Solutions = []string{
			"Re-run with --log-level debug for the full tool output",
		}
	}

	return ctx
}

// AnalyzeOutcomes retorna un ErrorContext por cada outcome con error,
// deduplicado por tool para no repetir la misma sugerencia.
func AnalyzeOutcomes(outcomes []domain.Outcome) []*ErrorContext {
	contexts := make([]*ErrorContext, 0)
	seen := make(map[string]bool)

	for _, o := range outcomes {
		if o.Status != domain.OutcomeError || o.Err == nil {
			continue
		}

		ec := AnalyzeError(o.Project.Ecosystem, o.Project.Dir, o.Err)
		key := ec.ToolName
		if key == "" {
			key = string(o.Project.Ecosystem) + "|" + ec.Reason
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		contexts = append(contexts, ec)
	}

	return contexts
}
