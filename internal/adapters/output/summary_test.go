package output

import (
	"bytes"
	"strings"
	"testing"

	"sbomatic/internal/core/domain"
	"sbomatic/internal/platform/errors"
	"sbomatic/internal/testutil"
)

func sampleReport() *domain.RunReport {
	report := domain.NewRunReport("/repo")
	java := domain.NewProjectRecord("/repo/svcB", "pom.xml", domain.EcosystemJava)
	python := domain.NewProjectRecord("/repo/svcB", "requirements.txt", domain.EcosystemPython)
	node := domain.NewProjectRecord("/repo/svcA", "package.json", domain.EcosystemNodeJS)
	report.Projects = []domain.ProjectRecord{node, java, python}

	report.AddOutcome(domain.NewOutcome(node, "/repo/svcA/bom-nodejs.json", nil, 0))
	report.AddOutcome(domain.NewOutcome(java, "", nil, 0))
	report.AddOutcome(domain.NewOutcome(python, "", errors.Wrap(errors.ErrToolNotFound, "cyclonedx-py"), 0))
	report.Finish()
	return report
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer

	err := WriteSummary(&buf, sampleReport(), nil)

	testutil.AssertNoError(t, err, "write summary")
	want := "\nGenerated SBOM Summary:\n" +
		SummarySeparator + "\n" +
		"Language: nodejs\n" +
		"Project Location: /repo/svcA\n" +
		"SBOM Location: /repo/svcA/bom-nodejs.json\n" +
		SummarySeparator + "\n"
	testutil.AssertEqual(t, buf.String(), want, "summary block")
}

func TestWriteSummary_OmitsFailedProjects(t *testing.T) {
	var buf bytes.Buffer

	_ = WriteSummary(&buf, sampleReport(), nil)

	testutil.AssertNotContains(t, buf.String(), "svcB", "failed and errored projects are not listed")
}

func TestWriteSummary_Highlight(t *testing.T) {
	var buf bytes.Buffer

	_ = WriteSummary(&buf, sampleReport(), func(s string) string { return "<" + s + ">" })

	testutil.AssertContains(t, buf.String(), "<SBOM Location: /repo/svcA/bom-nodejs.json>", "highlighted")
}

func TestWriteSummary_DefensiveBranch(t *testing.T) {
	report := domain.NewRunReport("/repo")
	report.Results = append(report.Results, domain.SbomResult{
		Ecosystem:   domain.EcosystemGo,
		ProjectPath: "/repo/tool",
	})
	var buf bytes.Buffer

	_ = WriteSummary(&buf, report, nil)

	testutil.AssertContains(t, buf.String(), "SBOM generation failed for /repo/tool (go).", "failed branch")
}

func TestWriteSummary_Empty(t *testing.T) {
	var buf bytes.Buffer

	_ = WriteSummary(&buf, domain.NewRunReport("/repo"), nil)

	testutil.AssertEqual(t, strings.Count(buf.String(), SummarySeparator), 1, "header separator only")
}

func TestLines(t *testing.T) {
	project := domain.NewProjectRecord("/repo/web", "package.json", domain.EcosystemNodeJS)

	testutil.AssertEqual(t, StartLine(project), "Generating SBOM for Node.js project at /repo/web", "start")
	testutil.AssertEqual(t, FailureLine(project), "SBOM generation failed for /repo/web (nodejs).", "failure")

	outcome := domain.NewOutcome(project, "", errors.New("npm: executable file not found in $PATH"), 0)
	testutil.AssertEqual(t, ErrorLine(outcome),
		"Error generating SBOM for /repo/web (nodejs): npm: executable file not found in $PATH",
		"error",
	)
}
