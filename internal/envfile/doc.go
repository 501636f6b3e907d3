// Package envfile parses dotenv-style documents into an ordered sequence of
// typed line records.
//
// Each line is classified as blank, comment, bare key ("KEY="), key/value
// pair, or malformed (no '=' separator). Blank, comment, and malformed lines
// keep their verbatim text, so a parse/serialize round trip reproduces the
// original document byte for byte.
//
// The typed representation exists so that value rewrites and upserts never
// touch raw strings: a key like "MY.KEY[0]" or a value containing '=' cannot
// corrupt neighbouring lines the way regex-based substitution can.
package envfile
