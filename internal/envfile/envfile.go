package envfile

import "strings"

// LineKind classifies a single line of a dotenv-style document.
type LineKind int

const (
	// Blank is an empty or whitespace-only line, preserved verbatim.
	Blank LineKind = iota

	// Comment is a line whose first non-space character is '#', preserved verbatim.
	Comment

	// BareKey is a pair with an empty value ("KEY="), preserved verbatim.
	BareKey

	// Pair is a "KEY=value" line with a non-empty value.
	Pair

	// Malformed is a non-blank, non-comment line with no '=' separator.
	Malformed
)

// Line is one parsed line. Text always holds the verbatim original; Key and
// Value are populated for BareKey and Pair lines only.
type Line struct {
	Kind  LineKind
	Key   string
	Value string
	Text  string
}

// Document is an ordered sequence of typed lines. Operating on parsed
// records instead of raw strings keeps value rewrites and upserts safe for
// keys containing regex metacharacters or values containing '='.
type Document struct {
	Lines []Line
}

// Parse splits text on newlines and classifies each line.
func Parse(text string) *Document {
	return ParseLines(strings.Split(text, "\n"))
}

// ParseLines classifies an ordered sequence of lines.
func ParseLines(lines []string) *Document {
	doc := &Document{Lines: make([]Line, 0, len(lines))}
	for _, text := range lines {
		doc.Lines = append(doc.Lines, classify(text))
	}
	return doc
}

func classify(text string) Line {
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		return Line{Kind: Blank, Text: text}
	}
	if strings.HasPrefix(trimmed, "#") {
		return Line{Kind: Comment, Text: text}
	}

	sep := strings.Index(text, "=")
	if sep < 0 {
		return Line{Kind: Malformed, Text: text}
	}

	key := strings.TrimSpace(text[:sep])
	value := text[sep+1:]
	if value == "" {
		return Line{Kind: BareKey, Key: key, Text: text}
	}
	return Line{Kind: Pair, Key: key, Value: value, Text: text}
}

// Serialize reassembles the document into newline-separated text.
func (d *Document) Serialize() string {
	texts := make([]string, len(d.Lines))
	for i, line := range d.Lines {
		texts[i] = line.Text
	}
	return strings.Join(texts, "\n")
}

// Get returns the value of the first Pair line with the given key.
func (d *Document) Get(key string) (string, bool) {
	for _, line := range d.Lines {
		if line.Kind == Pair && line.Key == key {
			return line.Value, true
		}
	}
	return "", false
}

// SetValue replaces the value of line i, rewriting its text. The line
// becomes a Pair (or BareKey when value is empty).
func (d *Document) SetValue(i int, value string) {
	line := &d.Lines[i]
	line.Value = value
	line.Text = line.Key + "=" + value
	if value == "" {
		line.Kind = BareKey
	} else {
		line.Kind = Pair
	}
}

// Upsert replaces the value of the first Pair or BareKey line with the given
// key, or appends a new "key=value" line if no such line exists.
func (d *Document) Upsert(key, value string) {
	for i, line := range d.Lines {
		if (line.Kind == Pair || line.Kind == BareKey) && line.Key == key {
			d.SetValue(i, value)
			return
		}
	}

	// Drop a single trailing blank line so the new entry doesn't leave a gap,
	// then re-add the trailing newline via the appended structure.
	if n := len(d.Lines); n > 0 && d.Lines[n-1].Kind == Blank && d.Lines[n-1].Text == "" {
		d.Lines = d.Lines[:n-1]
		d.Lines = append(d.Lines,
			Line{Kind: Pair, Key: key, Value: value, Text: key + "=" + value},
			Line{Kind: Blank, Text: ""},
		)
		return
	}

	d.Lines = append(d.Lines, Line{Kind: Pair, Key: key, Value: value, Text: key + "=" + value})
}
