// Place for pure naming logic: request path -> class name.
// Nothing here knows about Gin, Redis or the registry, so the naming policy can be swapped alone.
package core

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	PathSeparator      = "/"  // separator used in request paths ("user/list")
	NamespaceSeparator = `\` // separator used in class names ("App\controller\user\List")
)

// PathToNamespace converts every path separator into a namespace separator.
func PathToNamespace(path string) string {
	return strings.ReplaceAll(path, PathSeparator, NamespaceSeparator)
}

// CapitalizeLastSegment upper-cases the first character after the final
// namespace separator (or the first character when there is none).
// Earlier segments are left exactly as given.
func CapitalizeLastSegment(name string) string {
	i := strings.LastIndex(name, NamespaceSeparator) // -1 when there is a single segment
	head, tail := name[:i+1], name[i+1:]
	if tail == "" { // trailing separator, nothing to capitalize
		return name
	}
	r, size := utf8.DecodeRuneInString(tail)
	if r == utf8.RuneError && size <= 1 { // invalid UTF-8 is kept byte for byte
		return name
	}
	return head + string(unicode.ToUpper(r)) + tail[size:]
}

// JoinNamespace prefixes name with a namespace. An empty prefix adds no leading separator.
func JoinNamespace(prefix, name string) string {
	prefix = strings.TrimRight(prefix, NamespaceSeparator)
	if prefix == "" {
		return name
	}
	return prefix + NamespaceSeparator + name
}

// ClassName derives a fully-qualified class name from a namespace prefix and a request path.
func ClassName(prefix, path string) string {
	return CapitalizeLastSegment(JoinNamespace(prefix, PathToNamespace(path)))
}

// NormalizePath cleans a raw URL path before it is used as a request path:
// whitespace and surrounding slashes are dropped.
func NormalizePath(s string) string {
	s = strings.TrimSpace(s) // Remove leading/trailing whitespace (clean user input).
	return strings.Trim(s, PathSeparator)
}
