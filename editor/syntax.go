package editor

import (
	"bytes"
	"strings"
)

// SyntaxFlag enables optional highlight categories for a SyntaxRule.
type SyntaxFlag uint8

const (
	HighlightNumbers SyntaxFlag = 1 << iota
	HighlightStrings
)

// SyntaxRule describes one filetype's highlighting behaviour: its
// keyword lists, comment markers, and which optional categories apply.
// Rules are static data — spec.md §3 — built once in syntaxTable and
// never mutated by the running editor.
type SyntaxRule struct {
	Filetype          string
	Extensions        []string
	Keyword1          []string
	Keyword2          []string
	LineCommentPrefix string
	BlockCommentStart string
	BlockCommentEnd   string
	Flags             SyntaxFlag
}

// syntaxTable is the built-in filetype database, grounded in the
// original kilo.c's HLDB and the teacher's HLDB_ENTRIES. It is the only
// place new filetypes are registered.
var syntaxTable = []SyntaxRule{
	{
		Filetype:   "c",
		Extensions: []string{".c", ".h", ".cpp"},
		Keyword1: []string{
			"switch", "if", "while", "for", "break", "continue", "return",
			"else", "struct", "union", "typedef", "static", "enum", "class",
			"case",
		},
		Keyword2: []string{
			"int", "long", "double", "float", "char", "unsigned", "signed", "void",
		},
		LineCommentPrefix: "//",
		BlockCommentStart: "/*",
		BlockCommentEnd:   "*/",
		Flags:             HighlightNumbers | HighlightStrings,
	},
	{
		Filetype:   "go",
		Extensions: []string{".go", ".mod", ".sum"},
		Keyword1: []string{
			"break", "case", "chan", "const", "continue", "default", "defer",
			"else", "fallthrough", "for", "go", "goto", "if", "import", "map",
			"package", "range", "return", "select", "struct", "switch", "type",
			"var",
		},
		Keyword2: []string{"interface", "func"},
		LineCommentPrefix: "//",
		BlockCommentStart: "/*",
		BlockCommentEnd:   "*/",
		Flags:             HighlightNumbers | HighlightStrings,
	},
}

// SelectSyntax returns the SyntaxRule whose Extensions match filename's
// suffix, or nil if none do, per spec.md §4.2/§4.3.
func SelectSyntax(filename string) *SyntaxRule {
	if filename == "" {
		return nil
	}
	ext := ""
	if i := strings.LastIndex(filename, "."); i != -1 {
		ext = filename[i:]
	}
	for i := range syntaxTable {
		for _, pattern := range syntaxTable[i].Extensions {
			if ext != "" && ext == pattern {
				return &syntaxTable[i]
			}
		}
	}
	return nil
}

// isSeparator reports whether b ends an identifier for highlighting
// purposes: whitespace, NUL, or one of the punctuation bytes in
// spec.md's GLOSSARY definition of Separator.
func isSeparator(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0:
		return true
	}
	return strings.IndexByte(",.()+-/*=~%<>[];", b) != -1
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// highlightRow runs the single left-to-right scan of spec.md §4.3 over
// render and returns the resulting highlight array together with
// whether a block comment was left open at the end of the row (the
// cross-row carry described in SPEC_FULL.md §3). prevOpenComment is the
// carry from the row above.
func highlightRow(render []byte, syntax *SyntaxRule, prevOpenComment bool) ([]Highlight, bool) {
	hl := make([]Highlight, len(render))
	if syntax == nil {
		return hl, false
	}

	lineComment := []byte(syntax.LineCommentPrefix)
	blockStart := []byte(syntax.BlockCommentStart)
	blockEnd := []byte(syntax.BlockCommentEnd)
	hasBlockComment := len(blockStart) > 0 && len(blockEnd) > 0

	prevSep := true
	var inString byte
	inComment := prevOpenComment

	i := 0
	for i < len(render) {
		c := render[i]
		prevHl := HLNormal
		if i > 0 {
			prevHl = hl[i-1]
		}

		// Block-comment continuation takes priority: once open, only its
		// closing marker ends it (mirrors the original's in_comment gate).
		if inComment {
			hl[i] = HLComment
			if bytes.HasPrefix(render[i:], blockEnd) {
				for j := 0; j < len(blockEnd) && i+j < len(render); j++ {
					hl[i+j] = HLComment
				}
				inComment = false
				i += len(blockEnd)
				prevSep = true
				continue
			}
			i++
			continue
		}

		// spec.md §4.3 item 1: a line-comment match consumes the rest of
		// the row outright.
		if inString == 0 && len(lineComment) > 0 && bytes.HasPrefix(render[i:], lineComment) {
			for j := i; j < len(render); j++ {
				hl[j] = HLComment
			}
			break
		}

		if hasBlockComment && inString == 0 && bytes.HasPrefix(render[i:], blockStart) {
			for j := 0; j < len(blockStart) && i+j < len(render); j++ {
				hl[i+j] = HLComment
			}
			inComment = true
			i += len(blockStart)
			continue
		}

		if syntax.Flags&HighlightStrings != 0 {
			if inString != 0 {
				hl[i] = HLString
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = HLString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				hl[i] = HLString
				i++
				continue
			}
		}

		if syntax.Flags&HighlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prevHl == HLNumber)) || (c == '.' && prevHl == HLNumber) {
				hl[i] = HLNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if kw, kwHl, ok := matchKeyword(render[i:], syntax); ok {
				for k := 0; k < len(kw); k++ {
					hl[i+k] = kwHl
				}
				i += len(kw)
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	return hl, inComment
}

// matchKeyword tries each keyword in syntax's lists, in order, against
// the start of render, requiring a separator (or end of input)
// immediately after the match, per spec.md §4.3 item 5.
func matchKeyword(render []byte, syntax *SyntaxRule) (kw string, hl Highlight, ok bool) {
	for _, k := range syntax.Keyword1 {
		if keywordMatches(render, k) {
			return k, HLKeyword1, true
		}
	}
	for _, k := range syntax.Keyword2 {
		if keywordMatches(render, k) {
			return k, HLKeyword2, true
		}
	}
	return "", HLNormal, false
}

func keywordMatches(render []byte, keyword string) bool {
	klen := len(keyword)
	if !bytes.HasPrefix(render, []byte(keyword)) {
		return false
	}
	if klen >= len(render) {
		return true
	}
	return isSeparator(render[klen])
}

// colourCode maps a Highlight to the SGR colour code spec.md §4.8
// requires; HLNormal maps to the default-foreground code (39).
func colourCode(hl Highlight) int {
	switch hl {
	case HLComment:
		return 36
	case HLKeyword1:
		return 33
	case HLKeyword2:
		return 32
	case HLString:
		return 35
	case HLNumber:
		return 31
	case HLMatch:
		return 34
	default:
		return 39
	}
}
