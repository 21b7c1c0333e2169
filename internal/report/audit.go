package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chenzhuyu2004/solarforest/internal/app"
	"github.com/chenzhuyu2004/solarforest/internal/assumptions"
	"github.com/chenzhuyu2004/solarforest/pkg"
)

// BuildAudit 渲染假设文档的审计报告。
func BuildAudit(out app.AuditOutput, asJSON bool) string {
	if asJSON {
		payload := map[string]any{
			"schema_version": pkg.JSONSchemaVersion,
			"path":           out.Path,
			"valid":          out.Report.Valid,
			"summary":        out.Report.Summary,
			"errors":         findingsOrEmpty(out.Report.Errors),
			"warnings":       findingsOrEmpty(out.Report.Warnings),
			"info":           findingsOrEmpty(out.Report.Info),
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Sprintf("{\n  \"valid\": %t\n}\n", out.Report.Valid)
		}
		return string(data) + "\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\nAssumptions Audit\n%s\nDocument: %s\n", divider, divider, out.Path)

	writeFindings(&b, "ERRORS", out.Report.Errors)
	writeFindings(&b, "WARNINGS", out.Report.Warnings)
	writeFindings(&b, "INFO", out.Report.Info)

	if out.Report.Valid {
		fmt.Fprintf(&b, "Result: VALID (%s)\n", out.Report.Summary)
	} else {
		fmt.Fprintf(&b, "Result: INVALID (%s)\n", out.Report.Summary)
	}
	b.WriteString(divider + "\n")
	return b.String()
}

func writeFindings(b *strings.Builder, label string, findings []assumptions.Finding) {
	if len(findings) == 0 {
		return
	}
	fmt.Fprintf(b, "%s (%d):\n", label, len(findings))
	for _, f := range findings {
		fmt.Fprintf(b, "  [%s] %s\n", f.Check, f.Message)
		if f.Actual != "" && f.Section != "" {
			fmt.Fprintf(b, "    -> %s = %s\n", f.Section, f.Actual)
		} else if f.Actual != "" {
			fmt.Fprintf(b, "    -> %s\n", f.Actual)
		}
		if f.Expected != "" {
			fmt.Fprintf(b, "    expected: %s\n", f.Expected)
		}
	}
}

func findingsOrEmpty(findings []assumptions.Finding) []assumptions.Finding {
	if findings == nil {
		return []assumptions.Finding{}
	}
	return findings
}
