package insight

import (
	"fmt"
	"strings"
)

var severityMarker = map[Severity]string{
	Success: "✅",
	Warning: "⚠️",
	Info:    "ℹ️",
}

// Markdown renders insights as a markdown document.
func Markdown(insights []Insight) string {
	var sb strings.Builder
	sb.WriteString("# Automatic Analysis\n\n")
	if len(insights) == 0 {
		sb.WriteString("_Run a benchmark to see insights._\n")
		return sb.String()
	}
	for _, in := range insights {
		fmt.Fprintf(&sb, "## %s %s\n\n%s\n\n", severityMarker[in.Severity], in.Title, in.Description)
	}
	return sb.String()
}
