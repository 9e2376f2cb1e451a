package htmlsplit

import (
	"regexp"
	"unicode/utf8"
)

var (
	externalScriptRe = regexp.MustCompile(`<script src="([^"]*)"`)
	imageRe          = regexp.MustCompile(`src="([^"]*\.(?:png|jpg|jpeg|gif))"`)
	audioRe          = regexp.MustCompile(`new Audio\("([^"]*)"`)
)

// Report summarizes a page before it is split. Lengths count characters.
type Report struct {
	Length          int
	StyleLength     int
	ScriptLength    int
	BodyLength      int
	ExternalScripts []string
	Images          []string
	Audio           []string
}

// Inspect measures the inline sections of doc and lists the external
// resources it references.
func Inspect(doc string) Report {
	return Report{
		Length:          utf8.RuneCountInString(doc),
		StyleLength:     utf8.RuneCountInString(rawGroup(styleRe, doc)),
		ScriptLength:    utf8.RuneCountInString(rawGroup(scriptRe, doc)),
		BodyLength:      utf8.RuneCountInString(rawGroup(bodyRe, doc)),
		ExternalScripts: allGroups(externalScriptRe, doc),
		Images:          allGroups(imageRe, doc),
		Audio:           allGroups(audioRe, doc),
	}
}

func allGroups(re *regexp.Regexp, doc string) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(doc, -1) {
		out = append(out, m[1])
	}
	return out
}
