package provision

import (
	"fmt"
	"strings"
)

// summary renders the finished run as markdown. The password is never included.
func summary(pc *Context) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", pc.AppName)
	sb.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Root | `%s` |\n", pc.Root)
	fmt.Fprintf(&sb, "| Application | http://localhost:%d |\n", pc.AppPort)
	fmt.Fprintf(&sb, "| MySQL | localhost:%d, database `%s` |\n", pc.DBPort, pc.DBName)
	fmt.Fprintf(&sb, "| Working directory | `%s` |\n", pc.WorkingDir)
	if pc.Source != nil {
		fmt.Fprintf(&sb, "| Templates | %s |\n", pc.Source.Describe())
	}

	if len(pc.Written) > 0 {
		sb.WriteString("\n## Generated files\n\n")
		for _, rel := range pc.Written {
			fmt.Fprintf(&sb, "- `%s`\n", rel)
		}
	}
	if len(pc.Notes) > 0 {
		sb.WriteString("\n## Containers\n\n")
		for _, note := range pc.Notes {
			fmt.Fprintf(&sb, "- %s\n", note)
		}
	}
	return sb.String()
}
