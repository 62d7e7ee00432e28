// Package frontmatter patches and parses the leading YAML-style metadata
// block of a markdown document.
package frontmatter

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// headerPattern matches a metadata header at the start of the document:
// a line of three dashes, a minimal body, and a closing line of three dashes.
// Only the first such block is considered.
var headerPattern = regexp.MustCompile(`(?s)\A---\n(.*?)\n---`)

// Patch returns new document text with description and keywords written into
// the frontmatter header. If the document starts with a header, the two
// fields are rewritten in place (or appended to the header when absent) and
// every other header line and the body are preserved byte-identical. If no
// header exists, a new one containing exactly the two fields is prepended,
// followed by a blank line and the original content.
//
// Values are not sanitized; the description is double-quoted, keywords are
// written unquoted as authored.
func Patch(text, description, keywords string) string {
	m := headerPattern.FindStringSubmatchIndex(text)
	if m == nil {
		return fmt.Sprintf("---\ndescription: %q\nkeywords: %s\n---\n\n%s",
			description, keywords, text)
	}

	inner := text[m[2]:m[3]]
	lines := strings.Split(inner, "\n")

	haveDesc := false
	haveKeywords := false
	for i, line := range lines {
		switch {
		case strings.HasPrefix(strings.TrimSpace(line), "description:"):
			lines[i] = fmt.Sprintf("description: %q", description)
			haveDesc = true
		case strings.HasPrefix(strings.TrimSpace(line), "keywords:"):
			lines[i] = "keywords: " + keywords
			haveKeywords = true
		}
	}
	if !haveDesc {
		lines = append(lines, fmt.Sprintf("description: %q", description))
	}
	if !haveKeywords {
		lines = append(lines, "keywords: "+keywords)
	}

	return text[:m[2]] + strings.Join(lines, "\n") + text[m[3]:]
}

// Parse reads a document and splits it into frontmatter key-value pairs and
// body text. Documents without a header yield an empty map and the full text
// as body. Quotes around values are stripped.
func Parse(r io.Reader) (map[string]string, string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fields := make(map[string]string)

	inHeader := false
	headerDone := false
	var bodyLines []string

	for scanner.Scan() {
		line := scanner.Text()

		if !inHeader && !headerDone {
			if strings.TrimSpace(line) == "---" {
				inHeader = true
				continue
			}
			// No header delimiter on the first line — everything is body.
			bodyLines = append(bodyLines, line)
			headerDone = true
			continue
		}

		if inHeader {
			if strings.TrimSpace(line) == "---" {
				inHeader = false
				headerDone = true
				continue
			}
			if idx := strings.IndexByte(line, ':'); idx > 0 {
				key := strings.TrimSpace(line[:idx])
				val := stripQuotes(strings.TrimSpace(line[idx+1:]))
				fields[key] = val
			}
			continue
		}

		bodyLines = append(bodyLines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, "", err
	}

	return fields, strings.Join(bodyLines, "\n"), nil
}

func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
