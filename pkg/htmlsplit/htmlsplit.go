// Package htmlsplit moves the inline stylesheet and script of a single HTML
// page into their own files and rewrites the page to reference them.
//
// Extraction is pattern based. Only the first <style> block and the first
// <script type='text/javascript'> block are extracted; nested or malformed
// markup is not detected.
package htmlsplit

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	styleRe  = regexp.MustCompile(`(?s)<style>(.*?)</style>`)
	scriptRe = regexp.MustCompile(`(?s)<script type='text/javascript'>(.*?)</script>`)
	headRe   = regexp.MustCompile(`(?s)<head>(.*?)</head>`)
	bodyRe   = regexp.MustCompile(`(?s)<body>(.*?)</body>`)
)

// Names are the file names the rewritten page refers to.
type Names struct {
	Style  string
	Script string
	Markup string
}

// DefaultInput is the page read when no input is given.
const DefaultInput = "micro.html"

// DefaultNames returns the output names used when none are given.
func DefaultNames() Names {
	return Names{
		Style:  "style.css",
		Script: "micrometer.js",
		Markup: "index.html",
	}
}

// Sections holds the three outputs derived from one document.
type Sections struct {
	Style  string
	Script string
	Markup string
}

// ExtractStyle returns the trimmed content of the first <style> block, or ""
// when the document has none.
func ExtractStyle(doc string) string {
	return firstGroup(styleRe, doc)
}

// ExtractScript returns the trimmed content of the first inline JavaScript
// block, or "" when the document has none.
func ExtractScript(doc string) string {
	return firstGroup(scriptRe, doc)
}

// RewriteMarkup rebuilds the page without its inline style and script blocks,
// linking the extracted files instead.
func RewriteMarkup(doc string, names Names) string {
	head := rawGroup(headRe, doc)
	body := rawGroup(bodyRe, doc)

	head = styleRe.ReplaceAllString(head, "")
	head = scriptRe.ReplaceAllString(head, "")

	return fmt.Sprintf(`<!doctype html>
<html>
<head>
    %s
    <link rel="stylesheet" href="%s">
</head>
<body>
%s
    <script src="%s"></script>
</body>
</html>`, strings.TrimSpace(head), names.Style, body, names.Script)
}

// Split derives all three sections from doc.
func Split(doc string, names Names) Sections {
	return Sections{
		Style:  ExtractStyle(doc),
		Script: ExtractScript(doc),
		Markup: RewriteMarkup(doc, names),
	}
}

func rawGroup(re *regexp.Regexp, doc string) string {
	m := re.FindStringSubmatch(doc)
	if m == nil {
		return ""
	}
	return m[1]
}

func firstGroup(re *regexp.Regexp, doc string) string {
	return strings.TrimSpace(rawGroup(re, doc))
}
