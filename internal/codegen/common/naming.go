package common

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts Redfish-style property names into C++ method names.
// Examples: "ReadingCelsius" -> "reading_celsius", "UUID" -> "uuid", "PCIeDevices" -> "pcie_devices",
// "Status.Health" -> "status_health".
func ToSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "_") {
				b.WriteByte('_')
			}
			continue
		}
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			// "someWord" splits at 'W'; "XMLParser" splits at 'P' only.
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower && !isAcronymTail(runes, i)) {
				if !strings.HasSuffix(b.String(), "_") {
					b.WriteByte('_')
				}
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return strings.Trim(b.String(), "_")
}

// isAcronymTail keeps mixed-case acronyms such as "PCIe" in one word.
func isAcronymTail(runes []rune, i int) bool {
	return i+2 >= len(runes) || !unicode.IsLower(runes[i+2])
}

// ToPascalCase joins words separated by '_', '-', '.' or whitespace, upper-casing the
// first letter of each. The rest of each word is kept as is.
func ToPascalCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
	})
	var b strings.Builder
	for _, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// SanitizeLeadingDigit prefixes names that start with a digit with "Num"
// to keep identifiers valid C++.
func SanitizeLeadingDigit(name string) string {
	if name != "" && name[0] >= '0' && name[0] <= '9' {
		return "Num" + name
	}
	return name
}

// IncludeGuard derives a header guard macro from an include path.
// Example: "ecclesia/lib/accessors.h" -> "ECCLESIA_LIB_ACCESSORS_H_"
func IncludeGuard(includePath string) string {
	var b strings.Builder
	for _, r := range includePath {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteByte('_')
		}
	}
	return SanitizeLeadingDigit(b.String()) + "_"
}
