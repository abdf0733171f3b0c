package vmod

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/loess/pkg/domain"
)

// Module is a synthesized content module.
type Module struct {
	URL   string
	Entry domain.EntryInfo
	Body  string
	Code  string
}

// internalBinding is the bookkeeping export consumers use to recover the
// exact source location and front-matter text of an entry.
type internalBinding struct {
	FilePath string `json:"filePath"`
	RawData  string `json:"rawData"`
}

// emitCode renders the ES module source for one entry. Every binding is
// serialized through encoding/json so content containing quotes, newlines or
// line separators cannot corrupt or escape the generated code.
func emitCode(info domain.EntryInfo, body string, data map[string]any, filePath, rawData string) (string, error) {
	var b strings.Builder

	bindings := []struct {
		name  string
		value any
	}{
		{"id", info.ID},
		{"collection", info.Collection},
		{"slug", info.Slug},
		{"body", body},
		{"data", data},
		{"_internal", internalBinding{FilePath: filePath, RawData: rawData}},
	}

	for _, binding := range bindings {
		encoded, err := json.Marshal(binding.value)
		if err != nil {
			return "", fmt.Errorf("encode binding %s: %w", binding.name, err)
		}
		fmt.Fprintf(&b, "export const %s = %s;\n", binding.name, encoded)
	}

	return EscapeEnvReferences(b.String()), nil
}

// EscapeEnvReferences rewrites sequences the downstream bundler would treat
// as build-time environment variable references. Applied on emission and on
// any later transform pass; idempotent, since the escaped form no longer
// contains the sequence being replaced.
func EscapeEnvReferences(code string) string {
	return strings.ReplaceAll(code, "import.meta.env", `import\u002Emeta.env`)
}
