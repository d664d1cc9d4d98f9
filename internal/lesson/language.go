package lesson

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// classifierCandidates bounds content classification to languages lessons
// are written in. The classifier is unreliable over the full language set.
var classifierCandidates = []string{
	"Python", "Go", "JavaScript", "TypeScript", "Java", "C", "C++", "Ruby", "Rust", "Shell",
}

// DetectLanguage names the language of source. The file name wins when it
// is conclusive, then a shebang, then a content classifier. It returns ""
// when nothing matches.
func DetectLanguage(name, source string) string {
	content := []byte(source)
	if name != "" {
		if lang := enry.GetLanguage(filepath.Base(name), content); lang != "" {
			return lang
		}
	}
	if lang, _ := enry.GetLanguageByShebang(content); lang != "" {
		return lang
	}
	if len(content) == 0 {
		return ""
	}
	lang, _ := enry.GetLanguageByClassifier(content, classifierCandidates)
	return lang
}
