// Package parser reads schema documents and turns them into GraphQL syntax
// trees.
package parser

import (
	"fmt"

	"github.com/leapstack-labs/leapgql/internal/loader"
	"github.com/vektah/gqlparser/v2/ast"
	gqlparser "github.com/vektah/gqlparser/v2/parser"
)

// Source is a schema file read from disk but not parsed yet.
type Source struct {
	// Path is the file path as discovered
	Path string
	// Content is the decoded document text
	Content string
	// Hash is the SHA-256 of the raw file bytes
	Hash string
}

// Parser reads and parses schema documents.
type Parser struct {
	// Encoding is the text encoding of schema files (default utf8)
	Encoding string
}

// NewParser creates a new parser reading files in the given encoding.
func NewParser(encoding string) *Parser {
	if encoding == "" {
		encoding = loader.DefaultEncoding
	}
	return &Parser{Encoding: encoding}
}

// ReadFile reads a schema file in the parser's encoding.
func (p *Parser) ReadFile(filePath string) (*Source, error) {
	content, raw, err := loader.ReadFile(filePath, p.Encoding)
	if err != nil {
		return nil, err
	}
	return &Source{Path: filePath, Content: content, Hash: loader.ComputeHash(raw)}, nil
}

// Parse parses a source read by ReadFile.
func (p *Parser) Parse(src *Source) (*ast.SchemaDocument, error) {
	return p.ParseContent(src.Path, src.Content)
}

// ParseContent parses schema text. name is used in error positions.
func (p *Parser) ParseContent(name, content string) (*ast.SchemaDocument, error) {
	doc, err := gqlparser.ParseSchema(&ast.Source{Name: name, Input: content})
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return doc, nil
}
