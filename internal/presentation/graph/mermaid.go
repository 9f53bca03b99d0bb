package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/spark/pkg/domain"
)

// Overlay highlights themes on the graph.
type Overlay struct {
	// Selected is drawn with a heavy border.
	Selected string
	// Broken lists themes that failed to resolve.
	Broken []string
}

// GenerateMermaid produces a Mermaid flowchart of theme inheritance.
// Root themes are drawn as stadiums, other themes as rectangles, and each
// theme points at the theme it extends. Themes extending a missing parent
// point at a dashed placeholder.
func GenerateMermaid(themes []*domain.Theme, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph BT\n")

	known := make(map[string]bool, len(themes))
	for _, t := range themes {
		known[t.Name] = true
	}

	missing := make(map[string]bool)
	for _, t := range themes {
		safeID := sanitizeMermaidID(t.Name)

		opener, closer := "[", "]"
		if t.IsRoot() {
			opener, closer = "([", "])" // Stadium
		}
		label := t.Name
		if sel := t.SelectorOrDefault(); sel != "" {
			label = fmt.Sprintf("%s <br/> %s", t.Name, strings.ReplaceAll(sel, "\"", "'"))
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))

		if t.IsRoot() {
			continue
		}
		safeParent := sanitizeMermaidID(t.Extends)
		if !known[t.Extends] && !missing[t.Extends] {
			missing[t.Extends] = true
			sb.WriteString(fmt.Sprintf("    %s{{\"%s ?\"}}\n", safeParent, t.Extends))
		}
		arrow := "-->"
		if !known[t.Extends] {
			arrow = "-.->"
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, safeParent))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast regardless of the viewer theme
		sb.WriteString("    classDef selected fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef broken fill:#ffebee,stroke:#c62828,stroke-width:2px,color:#000;\n")

		seen := make(map[string]bool)
		for _, name := range overlay.Broken {
			safeID := sanitizeMermaidID(name)
			if !seen[safeID] && safeID != "" {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s broken;\n", safeID))
			}
		}
		if overlay.Selected != "" {
			sb.WriteString(fmt.Sprintf("    class %s selected;\n", sanitizeMermaidID(overlay.Selected)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
