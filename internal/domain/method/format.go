package method

import (
	"html"
	"regexp"
	"strings"
)

// placeholder maps a signature macro to its expansion from a given standard onward.
type placeholder struct {
	macro string
	value string
	since Standard
}

// Order matters: longer macros sharing a prefix must be expanded first.
var placeholders = []placeholder{
	{macro: "LYAH_CONSTEXPR_CPP26", value: "constexpr", since: CPP26},
	{macro: "LYAH_CONSTEXPR_CPP23", value: "constexpr", since: CPP23},
	{macro: "LYAH_CONSTEXPR", value: "constexpr", since: CPP11},
	{macro: "LYAH_NOEXCEPT", value: "noexcept", since: CPP11},
	{macro: "LYAH_NODISCARD", value: "[[nodiscard]]", since: CPP17},
	{macro: "LYAH_CALL", value: "__vectorcall", since: Unspecified},
}

// FormatSignature expands the signature macros for the given standard.
// Macros introduced after std are removed. Only the first occurrence of each is replaced.
func FormatSignature(signature string, std Standard) string {
	out := signature
	for _, p := range placeholders {
		value := ""
		if std >= p.since {
			value = p.value
		}
		out = strings.Replace(out, p.macro, value, 1)
	}
	return out
}

var functionNameRe = regexp.MustCompile(`([A-Za-z]+)\(`)

// HighlightSignature returns an HTML rendition of an already formatted signature.
func HighlightSignature(formatted string) string {
	out := html.EscapeString(formatted)

	if loc := functionNameRe.FindStringSubmatchIndex(out); loc != nil {
		name := out[loc[2]:loc[3]]
		out = out[:loc[0]] + span("function-name", name) + "(" + out[loc[1]:]
	}

	for _, kw := range []string{"__vectorcall", "constexpr", "operator"} {
		out = strings.Replace(out, kw, span("keyword", kw), 1)
	}

	for _, ns := range []string{"lyah", "std"} {
		out = strings.ReplaceAll(out, ns, span("namespace", ns))
	}

	return strings.Replace(out, "[[nodiscard]]", span("string", "[[nodiscard]]"), 1)
}

var (
	italicRe    = regexp.MustCompile("\\*([^*`]+)\\*")
	monospaceRe = regexp.MustCompile("`([^`]+)`")
)

// FormatDescription returns an HTML rendition of a method description.
// Newlines become line breaks, *text* is italic and `text` is monospace.
func FormatDescription(description string) string {
	out := html.EscapeString(description)
	out = strings.ReplaceAll(out, "\n", "<br />")
	out = italicRe.ReplaceAllString(out, "<i>$1</i>")
	return monospaceRe.ReplaceAllString(out, `<span class="monospace">$1</span>`)
}

func span(class, text string) string {
	return `<span class="` + class + `">` + text + `</span>`
}
