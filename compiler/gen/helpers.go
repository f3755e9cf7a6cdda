package gen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// rules holds the inflection rules for plural and singular names.
var rules = inflect.NewDefaultRuleset()

// acronyms are kept upper-cased in generated identifiers.
var acronyms = names("ACL", "API", "CSS", "DNS", "HTML", "HTTP", "HTTPS", "ID", "IP", "JSON", "SQL", "SSH", "TCP", "TLS", "UI", "URI", "URL", "UUID", "XML")

func names(ids ...string) map[string]struct{} {
	m := make(map[string]struct{})
	for i := range ids {
		m[ids[i]] = struct{}{}
	}
	return m
}

func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
}

// pascal converts a name to PascalCase, keeping known acronyms upper-cased.
// For example: "user_id" => "UserID", "authorOf" => "AuthorOf".
func pascal(s string) string {
	title := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, w := range words(s) {
		if _, ok := acronyms[strings.ToUpper(w)]; ok {
			b.WriteString(strings.ToUpper(w))
			continue
		}
		b.WriteString(title.String(w))
	}
	return b.String()
}

// camel converts a name to camelCase.
// For example: "user_id" => "userID", "http_code" => "httpCode".
func camel(s string) string {
	ws := words(s)
	if len(ws) == 0 {
		return ""
	}
	first := ws[0]
	if _, ok := acronyms[strings.ToUpper(first)]; ok {
		first = strings.ToLower(first)
	} else {
		r := []rune(first)
		r[0] = unicode.ToLower(r[0])
		first = string(r)
	}
	return first + pascal(strings.Join(ws[1:], "_"))
}

// pkgName turns a directory or import path element into a valid package name.
func pkgName(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			return unicode.ToLower(r)
		case r == '-', r == '.':
			return '_'
		}
		return -1
	}, s)
	switch {
	case strings.Trim(s, "_") == "":
		return "relations"
	case unicode.IsDigit(rune(s[0])):
		return "_" + s
	}
	return s
}
