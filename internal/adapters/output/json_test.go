package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"sbomatic/internal/testutil"
)

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer

	err := EncodeJSON(&buf, sampleReport())
	testutil.AssertNoError(t, err, "encode")

	var decoded map[string]interface{}
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &decoded), "valid json")

	testutil.AssertEqual(t, decoded["root"], "/repo", "root")

	stats := decoded["stats"].(map[string]interface{})
	testutil.AssertEqual(t, stats["generated"], float64(1), "generated")
	testutil.AssertEqual(t, stats["failed"], float64(1), "failed")
	testutil.AssertEqual(t, stats["errors"], float64(1), "errors")

	outcomes := decoded["outcomes"].([]interface{})
	testutil.AssertLen(t, outcomes, 3, "outcomes")
	third := outcomes[2].(map[string]interface{})
	testutil.AssertEqual(t, third["status"], "error", "status")
	testutil.AssertContains(t, third["error"].(string), "cyclonedx-py", "error message")

	results := decoded["results"].([]interface{})
	testutil.AssertLen(t, results, 1, "results")
}

func TestWriteJSON_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.json")

	err := WriteJSON(path, sampleReport())
	testutil.AssertNoError(t, err, "write")

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err, "read back")
	testutil.AssertTrue(t, json.Valid(data), "valid json file")
}

func TestJSONExporter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	err := NewJSONExporter(path).Export(sampleReport())
	testutil.AssertNoError(t, err, "export")
	testutil.AssertTrue(t, testutil.FileExists(path), "file written")

	testutil.AssertNoError(t, NewJSONExporter("").Export(sampleReport()), "empty path is a no-op")
}
