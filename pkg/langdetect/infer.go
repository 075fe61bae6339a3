// Package langdetect infers languages for code snippets.
//
// It wraps go-enry for shebang and classifier detection, fronted by
// cheap structural probes for the languages that dominate
// documentation code blocks. Results are fence tags ("go", "python"),
// not display names.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// classifierCandidates bounds the enry classifier to languages that
// plausibly appear in documentation snippets.
var classifierCandidates = []string{
	"Go", "Swift", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Infer guesses the language of a code snippet and returns its fence
// tag, or "" when nothing matches confidently.
func Infer(code []byte) string {
	if len(bytes.TrimSpace(code)) == 0 {
		return ""
	}

	// A shebang is the most reliable signal there is.
	if lang, safe := enry.GetLanguageByShebang(code); safe {
		return Normalize(lang)
	}

	if lang := probe(code); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(code, classifierCandidates); safe && lang != "" {
		return Normalize(lang)
	}
	return ""
}

// fenceTags folds alias spellings, from fence info strings and from
// enry language names, onto one canonical tag each.
var fenceTags = map[string]string{
	"golang":     "go",
	"py":         "python",
	"python3":    "python",
	"js":         "javascript",
	"node":       "javascript",
	"ts":         "typescript",
	"sh":         "bash",
	"shell":      "bash",
	"zsh":        "bash",
	"yml":        "yaml",
	"c++":        "cpp",
	"make":       "makefile",
	"plaintext":  "text",
	"plain-text": "text",
}

// Normalize canonicalizes a fence info string to its language tag:
// the first token, lowercased, with aliases folded ("golang" becomes
// "go"). An empty info string stays empty.
func Normalize(info string) string {
	tag := strings.ToLower(strings.TrimSpace(info))
	if i := strings.IndexAny(tag, " \t"); i >= 0 {
		tag = tag[:i]
	}
	if canonical, ok := fenceTags[tag]; ok {
		return canonical
	}
	return tag
}

// probe runs structural checks in order of specificity. The
// classifier is strong on whole files but noisy on the short
// snippets documentation carries, so unmistakable shapes win first.
func probe(code []byte) string {
	trimmed := bytes.TrimSpace(code)
	text := string(code)

	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return "go"
	case looksLikePython(text):
		return "python"
	case looksLikeHTML(trimmed):
		return "html"
	case looksLikeJSON(trimmed):
		return "json"
	case looksLikeDockerfile(code, trimmed):
		return "dockerfile"
	case looksLikeSQL(text):
		return "sql"
	case looksLikeSwift(text):
		return "swift"
	case looksLikeRust(text):
		return "rust"
	case looksLikeJavaScript(text):
		return "javascript"
	case looksLikeYAML(code):
		return "yaml"
	}
	return ""
}

func looksLikePython(text string) bool {
	if strings.Contains(text, "def ") && strings.Contains(text, "):") {
		return true
	}
	// import statements, excluding Go's grouped form.
	if strings.Contains(text, "import ") && !strings.Contains(text, "import (") {
		if strings.Contains(text, "from ") || strings.HasPrefix(strings.TrimSpace(text), "import ") {
			return true
		}
	}
	return strings.Contains(text, "__name__") || strings.Contains(text, "__main__")
}

func looksLikeHTML(trimmed []byte) bool {
	lower := bytes.ToLower(trimmed)
	return bytes.Contains(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<head>")) ||
		bytes.Contains(lower, []byte("<body>"))
}

func looksLikeJSON(trimmed []byte) bool {
	return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`))
}

func looksLikeDockerfile(code, trimmed []byte) bool {
	return bytes.HasPrefix(trimmed, []byte("FROM ")) ||
		(bytes.Contains(code, []byte("\nFROM ")) && bytes.Contains(code, []byte("\nRUN "))) ||
		(bytes.Contains(code, []byte("WORKDIR ")) && bytes.Contains(code, []byte("COPY ")))
}

func looksLikeSQL(text string) bool {
	upper := strings.TrimSpace(strings.ToUpper(text))
	for _, prefix := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}

// looksLikeSwift matches func declarations alongside let/var/guard
// bindings. Go's := and package clause rule it out first, and
// JavaScript's "function" never matches "func " with the space.
func looksLikeSwift(text string) bool {
	if strings.Contains(text, ":=") || strings.Contains(text, "package ") {
		return false
	}
	if !strings.Contains(text, "func ") {
		return false
	}
	return strings.Contains(text, "let ") ||
		strings.Contains(text, "var ") ||
		strings.Contains(text, "guard ")
}

func looksLikeRust(text string) bool {
	return strings.Contains(text, "fn main()") ||
		strings.Contains(text, "println!") ||
		strings.Contains(text, "let mut ")
}

func looksLikeJavaScript(text string) bool {
	return strings.Contains(text, "=>") ||
		strings.Contains(text, "const ") ||
		strings.Contains(text, "console.log")
}

// looksLikeYAML counts root-ish "key: value" lines and list items;
// two or more is taken as YAML. Lines that carry code punctuation are
// skipped to keep struct literals out.
func looksLikeYAML(code []byte) bool {
	keys := 0
	for _, line := range bytes.Split(code, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.Contains(line, []byte("(")) &&
			!bytes.Contains(line, []byte("{")) &&
			!bytes.HasPrefix(line, []byte(`"`)) {
			keys++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			keys++
		}
	}
	return keys >= 2
}
