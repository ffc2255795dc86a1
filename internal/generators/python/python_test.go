package python

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"sbomatic/internal/core/domain"
	"sbomatic/internal/core/ports"
	"sbomatic/internal/platform/errors"
	"sbomatic/internal/platform/logx"
	"sbomatic/internal/testutil"
)

func TestGenerator_Metadata(t *testing.T) {
	g := New(logx.Discard())

	testutil.AssertEqual(t, g.Name(), "python", "name")
	testutil.AssertEqual(t, g.Ecosystem(), domain.EcosystemPython, "ecosystem")
	testutil.AssertDeepEqual(t, g.Tools(), []string{"cyclonedx-py"}, "tools")
}

func TestDefaultCommand(t *testing.T) {
	testutil.AssertDeepEqual(t,
		DefaultCommand(""),
		[]string{"cyclonedx-py", "requirements", "requirements.txt", "-o", "bom-python.json"},
		"default command",
	)
	testutil.AssertDeepEqual(t,
		DefaultCommand("requirements/prod.txt"),
		[]string{"cyclonedx-py", "requirements", "requirements/prod.txt", "-o", "bom-python.json"},
		"custom requirements",
	)
}

func TestGenerator_Generate(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   bool
	}{
		{
			name:   "bom written",
			script: `printf '%s\n' "$@" > bom-python.json`,
			want:   true,
		},
		{
			name:   "empty bom",
			script: `: > bom-python.json`,
			want:   false,
		},
		{
			name:   "tool fails without output",
			script: `echo "no requirements" >&2; exit 1`,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tools := testutil.FakeToolDir(t)
			testutil.WriteFakeTool(t, tools, "cyclonedx-py", tt.script)
			project := t.TempDir()

			got, err := NewWithOptions(logx.Discard(), Options{Quiet: true}).Generate(context.Background(), project)

			testutil.AssertNoError(t, err, "generate")
			if tt.want {
				testutil.AssertEqual(t, got, filepath.Join(project, ArtifactName), "artifact")
			} else {
				testutil.AssertEqual(t, got, "", "absent")
			}
		})
	}
}

func TestGenerator_Generate_SetupPyProjectStillUsesRequirements(t *testing.T) {
	tools := testutil.FakeToolDir(t)
	testutil.WriteFakeTool(t, tools, "cyclonedx-py", `printf '%s ' "$@" > bom-python.json`)

	project := t.TempDir()
	testutil.MakeTree(t, project, map[string]string{"setup.py": testutil.FixtureManifests["setup.py"]})

	got, err := NewWithOptions(logx.Discard(), Options{Quiet: true}).Generate(context.Background(), project)
	testutil.AssertNoError(t, err, "generate")

	args, err := os.ReadFile(got)
	testutil.AssertNoError(t, err, "read args")
	testutil.AssertEqual(t, string(args), "requirements requirements.txt -o bom-python.json ", "arguments")
}

func TestGenerator_Generate_ToolMissing(t *testing.T) {
	testutil.FakeToolDir(t)

	_, err := New(logx.Discard()).Generate(context.Background(), t.TempDir())

	testutil.AssertTrue(t, errors.IsToolNotFound(err), "missing cyclonedx-py")
}

func TestFactory_RequirementsOption(t *testing.T) {
	gen, err := factory(ports.GeneratorConfig{
		Enabled: true,
		Options: map[string]interface{}{"requirements": "requirements-dev.txt"},
	}, logx.Discard())

	testutil.AssertNoError(t, err, "factory")
	testutil.AssertDeepEqual(t, gen.(*Generator).command,
		[]string{"cyclonedx-py", "requirements", "requirements-dev.txt", "-o", "bom-python.json"},
		"command uses option",
	)
}
