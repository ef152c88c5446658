package store

import (
	"bytes"
	stderrors "errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	jsoniter "github.com/json-iterator/go"

	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/save"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// record mirrors books.Book with pointer fields so that absent keys can be
// told apart from zero values.
type record struct {
	Title  *text `json:"title" yaml:"title"`
	Author *text `json:"author" yaml:"author"`
	Year   *text `json:"year" yaml:"year"`
	Genre  *text `json:"genre" yaml:"genre"`
	Read   *bool `json:"read" yaml:"read"`
}

// text is a string field that keeps the YAML source text of plain
// scalars, so values such as 1e3, 0123 or true load back unchanged.
type text string

// UnmarshalYAML implements yaml.NodeUnmarshaler.
func (t *text) UnmarshalYAML(node ast.Node) error {
	switch n := node.(type) {
	case *ast.StringNode:
		*t = text(n.Value)
	case *ast.LiteralNode:
		*t = text(n.Value.Value)
	case *ast.TagNode:
		return t.UnmarshalYAML(n.Value)
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.InfinityNode, *ast.NanNode:
		*t = text(n.GetToken().Value)
	default:
		return fmt.Errorf("expected a string, got %s", node.Type())
	}
	return nil
}

// missing returns the first absent key, or "".
func (r record) missing() string {
	switch {
	case r.Title == nil:
		return "title"
	case r.Author == nil:
		return "author"
	case r.Year == nil:
		return "year"
	case r.Genre == nil:
		return "genre"
	case r.Read == nil:
		return "read"
	}
	return ""
}

// encode serializes the catalog. An empty catalog encodes as an empty list.
func encode(c books.Catalog, format save.Format) ([]byte, error) {
	if c == nil {
		c = books.Catalog{}
	}

	switch format {
	case save.FormatJSON:
		data, err := json.MarshalIndent(c, "", constants.JSONIndent)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case save.FormatYAML:
		return yaml.MarshalWithOptions(c,
			yaml.Indent(constants.YAMLIndent),
			yaml.IndentSequence(false),
		)
	default:
		return nil, fmt.Errorf("unsupported format %s", format)
	}
}

// decode parses stored content into a catalog. file is only used in errors.
func decode(data []byte, format save.Format, file string) (books.Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.NewParseError(format.String(), file, "empty content", nil)
	}

	var raw []record
	switch format {
	case save.FormatJSON:
		var list *[]record
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, errors.WrapParse(format.String(), file, err)
		}
		if list == nil {
			return nil, errors.NewParseError(format.String(), file, "expected a list of books", nil)
		}
		raw = *list
	case save.FormatYAML:
		list, err := decodeYAML(data, file)
		if err != nil {
			return nil, err
		}
		raw = list
	default:
		return nil, errors.NewParseError(format.String(), file, "unsupported format", nil)
	}

	catalog := make(books.Catalog, 0, len(raw))
	for i, r := range raw {
		if key := r.missing(); key != "" {
			return nil, errors.NewParseError(format.String(), file,
				fmt.Sprintf("book %d is missing %q", i+1, key), nil)
		}
		catalog = append(catalog, books.Book{
			Title:  string(*r.Title),
			Author: string(*r.Author),
			Year:   string(*r.Year),
			Genre:  string(*r.Genre),
			Read:   *r.Read,
		})
	}

	return catalog, nil
}

// decodeYAML requires a single document whose body is a sequence.
func decodeYAML(data []byte, file string) ([]record, error) {
	format := save.FormatYAML.String()

	f, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, yamlParseError(file, err)
	}
	if len(f.Docs) != 1 {
		return nil, errors.NewParseError(format, file,
			fmt.Sprintf("expected one document, found %d", len(f.Docs)), nil)
	}

	seq, ok := f.Docs[0].Body.(*ast.SequenceNode)
	if !ok {
		return nil, errors.NewParseError(format, file, "expected a list of books", nil)
	}

	raw := []record{}
	if err := yaml.NodeToValue(seq, &raw); err != nil {
		return nil, yamlParseError(file, err)
	}
	return raw, nil
}

// yamlParseError carries the position goccy reports into the ParseError.
func yamlParseError(file string, err error) error {
	var yerr yaml.Error
	if !stderrors.As(err, &yerr) {
		return errors.WrapParse(save.FormatYAML.String(), file, err)
	}

	perr := errors.NewParseError(save.FormatYAML.String(), file, yerr.GetMessage(), err)
	if tk := yerr.GetToken(); tk != nil && tk.Position != nil {
		perr.Line = tk.Position.Line
		perr.Column = tk.Position.Column
	}
	return perr
}
