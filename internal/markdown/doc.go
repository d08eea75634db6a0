// Package markdown parses the constrained markdown dialect used in
// content JSON files into typed blocks and styled inline runs.
//
// The grammar is deliberately small: ATX headings, single-line images,
// pipe tables, ordered and unordered lists, and paragraphs, with
// bold/italic/code emphasis inside leaf text. Fenced code regions are
// stripped before block scanning. Parsing never fails; anything the
// grammar does not recognize degrades into literal paragraph text so
// the surrounding document pipeline keeps going.
package markdown
