package pipeline

import (
	"fmt"
	"strings"
)

const documentShell = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Generated UI</title>
</head>
<body>
%s
</body>
</html>`

// NormalizeHTML cleans raw model output into a renderable standalone
// document: markdown code fences are stripped (either may be absent), and
// a fragment without a doctype or html tag is wrapped in a minimal
// document shell.
func NormalizeHTML(code string) string {
	cleaned := strings.TrimSpace(code)

	if strings.HasPrefix(cleaned, "```html") {
		cleaned = strings.TrimPrefix(cleaned, "```html")
		cleaned = strings.TrimPrefix(cleaned, "\n")
	}
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimPrefix(cleaned, "\n")
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "\n")
	}

	lower := strings.ToLower(cleaned)
	if !strings.Contains(lower, "<!doctype") && !strings.Contains(lower, "<html") {
		cleaned = fmt.Sprintf(documentShell, cleaned)
	}

	return cleaned
}
