package tui

import "unicode/utf8"

var namedIcons = map[string]string{
	"globe":    "\uf0ac",
	"user":     "\uf007",
	"users":    "\uf0c0",
	"calendar": "\uf073",
	"clock":    "\uf017",
	"tag":      "\uf02b",
	"folder":   "\uf07b",
	"file":     "\uf016",
	"branch":   "\ue725",
	"server":   "\uf233",
	"database": "\uf1c0",
	"cloud":    "\uf0c2",
	"cog":      "\uf013",
	"key":      "\uf084",
	"lock":     "\uf023",
	"star":     "\uf005",
	"heart":    "\uf004",
	"flag":     "\uf024",
	"home":     "\uf015",
	"list":     "\uf03a",
	"palette":  "\ue22b",
	"language": "\uf1ab",
	"moon":     "\uf186",
	"sun":      "\uf185",
}

// Icon resolves a named glyph. A single literal glyph is returned as-is so
// callers can pass their own; an unknown name yields "".
func Icon(name string) string {
	if icon, ok := namedIcons[name]; ok {
		return icon
	}
	if utf8.RuneCountInString(name) == 1 {
		return name
	}
	return ""
}
