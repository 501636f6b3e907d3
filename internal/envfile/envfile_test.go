package envfile

import (
	"testing"
)

func TestParseClassifiesLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind LineKind
	}{
		{"empty", "", Blank},
		{"whitespace", "   \t", Blank},
		{"comment", "# database settings", Comment},
		{"indented comment", "  # note", Comment},
		{"bare key", "FEATURE_FLAG=", BareKey},
		{"pair", "DB_HOST=localhost", Pair},
		{"pair with equals in value", "QUERY=a=b=c", Pair},
		{"malformed", "this is not a variable", Malformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := classify(tt.text)
			if line.Kind != tt.kind {
				t.Errorf("classify(%q).Kind = %v, want %v", tt.text, line.Kind, tt.kind)
			}
			if line.Text != tt.text {
				t.Errorf("classify(%q).Text = %q, original not preserved", tt.text, line.Text)
			}
		})
	}
}

func TestParsePairFields(t *testing.T) {
	line := classify("DB_URL=postgres://u:p@host/db?sslmode=require")
	if line.Key != "DB_URL" {
		t.Errorf("Key = %q, want %q", line.Key, "DB_URL")
	}
	if line.Value != "postgres://u:p@host/db?sslmode=require" {
		t.Errorf("Value = %q, value after first '=' not kept verbatim", line.Value)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	text := "# app config\nDB_HOST=localhost\n\nFEATURE_FLAG=\nAPI_KEY=abc123\n"

	doc := Parse(text)
	if got := doc.Serialize(); got != text {
		t.Errorf("round trip mismatch:\n got %q\nwant %q", got, text)
	}
}

func TestGet(t *testing.T) {
	doc := Parse("A=1\nB=\nC=3")

	if v, ok := doc.Get("A"); !ok || v != "1" {
		t.Errorf("Get(A) = %q, %v; want 1, true", v, ok)
	}
	if _, ok := doc.Get("B"); ok {
		t.Error("Get(B) found a value for a bare key")
	}
	if _, ok := doc.Get("MISSING"); ok {
		t.Error("Get(MISSING) reported a value")
	}
}

func TestUpsertReplacesInPlace(t *testing.T) {
	doc := Parse("A=1\nSECRET_KEY_DEV=old\nB=2")

	doc.Upsert("SECRET_KEY_DEV", "new")

	if got := doc.Serialize(); got != "A=1\nSECRET_KEY_DEV=new\nB=2" {
		t.Errorf("Serialize() = %q", got)
	}
}

func TestUpsertAppendsWhenMissing(t *testing.T) {
	doc := Parse("A=1\nB=2")

	doc.Upsert("SECRET_KEY_DEV", "value")

	if got := doc.Serialize(); got != "A=1\nB=2\nSECRET_KEY_DEV=value" {
		t.Errorf("Serialize() = %q", got)
	}
}

func TestUpsertAppendsBeforeTrailingNewline(t *testing.T) {
	doc := Parse("A=1\n")

	doc.Upsert("SECRET_KEY_DEV", "value")

	if got := doc.Serialize(); got != "A=1\nSECRET_KEY_DEV=value\n" {
		t.Errorf("Serialize() = %q", got)
	}
}

func TestUpsertFillsBareKey(t *testing.T) {
	doc := Parse("SECRET_KEY_DEV=\nA=1")

	doc.Upsert("SECRET_KEY_DEV", "minted")

	if v, ok := doc.Get("SECRET_KEY_DEV"); !ok || v != "minted" {
		t.Errorf("Get after upsert = %q, %v", v, ok)
	}
	if got := doc.Serialize(); got != "SECRET_KEY_DEV=minted\nA=1" {
		t.Errorf("Serialize() = %q", got)
	}
}

func TestUpsertKeyWithSpecialCharacters(t *testing.T) {
	// Keys containing regex metacharacters must not corrupt the document.
	doc := Parse("MY.KEY[0]=old\nOTHER=x")

	doc.Upsert("MY.KEY[0]", "new")

	if got := doc.Serialize(); got != "MY.KEY[0]=new\nOTHER=x" {
		t.Errorf("Serialize() = %q", got)
	}
}

func TestUpsertOnlyTouchesFirstMatch(t *testing.T) {
	doc := Parse("K=1\nK=2")

	doc.Upsert("K", "9")

	if got := doc.Serialize(); got != "K=9\nK=2" {
		t.Errorf("Serialize() = %q", got)
	}
}
