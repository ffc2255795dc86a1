package toolcheck

import (
	"context"
	"testing"

	"sbomatic/internal/core/domain"
	"sbomatic/internal/core/ports"
	"sbomatic/internal/testutil"
)

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{"maven", "Apache Maven 3.9.6 (bc0240f3c744dd6b6ec2920b3cd08dcc295161ae)\nMaven home: /usr/share/maven", "3.9.6"},
		{"npm bare", "10.2.4", "10.2.4"},
		{"prefixed", "Version: v1.6.0", "1.6.0"},
		{"cyclonedx-py", "cyclonedx-py 4.1.0", "4.1.0"},
		{"gomod multiline", "Version:\tv1.7.0\nGoVersion:\tgo1.22.1", "1.7.0"},
		{"no version", "unknown build", "unknown build"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, ExtractVersion(tt.output), tt.want, "version")
		})
	}
}

func TestIsValidVersion(t *testing.T) {
	testutil.AssertTrue(t, isValidVersion("1.2"), "two parts")
	testutil.AssertTrue(t, isValidVersion("10.2.4"), "three parts")
	testutil.AssertFalse(t, isValidVersion("1"), "single part")
	testutil.AssertFalse(t, isValidVersion("1.x"), "non numeric")
	testutil.AssertFalse(t, isValidVersion("1..2"), "empty part")
}

func TestLookup(t *testing.T) {
	meta := ports.GeneratorMetadata{InstallHint: "custom hint", DocsURL: "https://example.com"}

	known := Lookup("npm", meta)
	testutil.AssertDeepEqual(t, known.VersionArgs, []string{"--version"}, "known args")
	testutil.AssertContains(t, known.InstallHint, "Node.js", "known hint wins")

	unknown := Lookup("pnpm", meta)
	testutil.AssertEqual(t, unknown.InstallHint, "custom hint", "metadata hint")
	testutil.AssertEqual(t, unknown.DocsURL, "https://example.com", "metadata docs")
}

func TestCheck(t *testing.T) {
	tools := testutil.FakeToolDir(t)
	testutil.WriteFakeTool(t, tools, "npm", `echo "10.2.4"`)
	testutil.WriteFakeTool(t, tools, "mvn", `echo "Apache Maven 3.9.6 (abc)"`)

	metas := []ports.GeneratorMetadata{
		{Name: "java", Ecosystem: domain.EcosystemJava, Tools: []string{"mvn"}},
		{Name: "nodejs", Ecosystem: domain.EcosystemNodeJS, Tools: []string{"npm", "cyclonedx-npm"}},
	}

	statuses := Check(context.Background(), metas)

	testutil.AssertLen(t, statuses, 3, "one status per tool")
	testutil.AssertTrue(t, statuses[0].Available, "mvn available")
	testutil.AssertEqual(t, statuses[0].Version, "3.9.6", "mvn version")
	testutil.AssertEqual(t, statuses[1].Version, "10.2.4", "npm version")
	testutil.AssertFalse(t, statuses[2].Available, "cyclonedx-npm missing")
	testutil.AssertEqual(t, statuses[2].Generator, "nodejs", "generator recorded")
	testutil.AssertContains(t, statuses[2].InstallHint, "@cyclonedx/cyclonedx-npm", "install hint")

	missing := Missing(statuses)
	testutil.AssertLen(t, missing, 1, "one missing tool")
	testutil.AssertEqual(t, missing[0].Tool, "cyclonedx-npm", "missing tool")
}

func TestCheck_VersionFailureIsNotFatal(t *testing.T) {
	tools := testutil.FakeToolDir(t)
	testutil.WriteFakeTool(t, tools, "cyclonedx-gomod", "exit 1")

	statuses := Check(context.Background(), []ports.GeneratorMetadata{
		{Name: "go", Ecosystem: domain.EcosystemGo, Tools: []string{"cyclonedx-gomod"}},
	})

	testutil.AssertTrue(t, statuses[0].Available, "still available")
	testutil.AssertEqual(t, statuses[0].Version, "", "no version")
}

func TestIsCommandAvailable(t *testing.T) {
	tools := testutil.FakeToolDir(t)
	testutil.WriteFakeTool(t, tools, "cyclonedx-py", "exit 0")

	testutil.AssertTrue(t, IsCommandAvailable("cyclonedx-py"), "present")
	testutil.AssertFalse(t, IsCommandAvailable("cyclonedx-gomod"), "absent")
}

type stubGenerator struct {
	name  string
	eco   domain.Ecosystem
	tools []string
}

func (s stubGenerator) Name() string                { return s.name }
func (s stubGenerator) Ecosystem() domain.Ecosystem { return s.eco }
func (s stubGenerator) Tools() []string             { return s.tools }
func (s stubGenerator) Generate(ctx context.Context, projectDir string) (string, error) {
	return "", nil
}

func TestCheckGenerators(t *testing.T) {
	tools := testutil.FakeToolDir(t)
	testutil.WriteFakeTool(t, tools, "mvnw", `echo "Apache Maven 3.9.6"`)

	generators := map[domain.Ecosystem]ports.Generator{
		domain.EcosystemNodeJS: stubGenerator{name: "nodejs", eco: domain.EcosystemNodeJS, tools: []string{"cyclonedx-npm"}},
		domain.EcosystemJava:   stubGenerator{name: "java", eco: domain.EcosystemJava, tools: []string{"mvnw"}},
	}
	lookup := func(name string) (ports.GeneratorMetadata, bool) {
		if name == "java" {
			return ports.GeneratorMetadata{Name: "java", Tools: []string{"mvn"}, InstallHint: "install maven"}, true
		}
		return ports.GeneratorMetadata{}, false
	}

	statuses := CheckGenerators(context.Background(), generators, lookup)

	testutil.AssertLen(t, statuses, 2, "one status per built tool")
	testutil.AssertEqual(t, statuses[0].Tool, "mvnw", "built tools replace metadata tools")
	testutil.AssertTrue(t, statuses[0].Available, "override available")
	testutil.AssertEqual(t, statuses[0].InstallHint, "install maven", "hint from metadata")
	testutil.AssertEqual(t, statuses[1].Generator, "nodejs", "generator without metadata keeps its name")
	testutil.AssertEqual(t, statuses[1].Ecosystem, domain.EcosystemNodeJS, "ecosystem order")
	testutil.AssertFalse(t, statuses[1].Available, "missing tool")
}
