package eval

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	xmlnav "github.com/xmlnav/go-xmlnav"
	"github.com/xmlnav/go-xmlnav/debug"
)

func init() {
	xmlnav.RegisterEngine(New())
}

// Engine evaluates select and pattern expressions over cursor
// positions using expr. Position navigation is exposed through env
// functions (child, children, descendants, attr, parent, root, self);
// cursor methods such as Value() and LocalName() are callable on the
// positions those functions return.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

var _ xmlnav.Engine = (*Engine)(nil)

type holder struct {
	pos *xmlnav.Cursor
}

type compiled struct {
	text  string
	prg   *vm.Program
	match bool
	ns    map[string]string
	ctx   *holder
}

func (c *compiled) Text() string { return c.text }

func (e *Engine) CompileSelect(text string, ns map[string]string) (xmlnav.Compiled, error) {
	h := &holder{}
	prg, err := expr.Compile(text, exprOpts(h, ns)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xmlnav.ErrQuery, err)
	}
	return &compiled{text: text, prg: prg, ns: ns, ctx: h}, nil
}

func (e *Engine) CompileMatch(text string) (xmlnav.Compiled, error) {
	h := &holder{}
	opts := append(exprOpts(h, nil), expr.AsBool())
	prg, err := expr.Compile(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xmlnav.ErrQuery, err)
	}
	return &compiled{text: text, prg: prg, match: true, ctx: h}, nil
}

func (e *Engine) Evaluate(c xmlnav.Compiled, ctx xmlnav.Sequence) (any, error) {
	cc, ok := c.(*compiled)
	if !ok {
		return nil, fmt.Errorf("%w: expression compiled by a different engine (%T)", xmlnav.ErrQuery, c)
	}
	pos := ctx.Current()
	if pos == nil {
		if !ctx.Next() {
			return nil, fmt.Errorf("%w: empty context sequence", xmlnav.ErrQuery)
		}
		pos = ctx.Current()
	}
	return cc.run(pos)
}

func (e *Engine) Match(c xmlnav.Compiled, pos *xmlnav.Cursor) (bool, error) {
	cc, ok := c.(*compiled)
	if !ok {
		return false, fmt.Errorf("%w: expression compiled by a different engine (%T)", xmlnav.ErrQuery, c)
	}
	if !cc.match {
		return false, fmt.Errorf("%w: %q is not a pattern expression", xmlnav.ErrQuery, cc.text)
	}
	res, err := cc.run(pos)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: pattern %q yields %T", xmlnav.ErrQuery, cc.text, res)
	}
	return b, nil
}

func (cc *compiled) run(pos *xmlnav.Cursor) (any, error) {
	if debug.Query() {
		debug.Logf("query: %q at %s %q\n", cc.text, pos.Kind(), pos.Name())
	}
	cc.ctx.pos = pos
	res, err := expr.Run(cc.prg, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xmlnav.ErrQuery, err)
	}
	return convert(res)
}

// convert normalizes a raw expr result into the query dispatch result
// kinds: a Sequence for node results, scalars otherwise.
func convert(res any) (any, error) {
	switch v := res.(type) {
	case *xmlnav.Cursor:
		if v == nil {
			return xmlnav.NewSliceSequence(nil), nil
		}
		return xmlnav.NewSliceSequence([]*xmlnav.Cursor{v}), nil
	case []*xmlnav.Cursor:
		return xmlnav.NewSliceSequence(v), nil
	case []any:
		cs := make([]*xmlnav.Cursor, 0, len(v))
		for _, x := range v {
			c, ok := x.(*xmlnav.Cursor)
			if !ok {
				return v, nil
			}
			cs = append(cs, c)
		}
		return xmlnav.NewSliceSequence(cs), nil
	}
	return res, nil
}

// splitName resolves "prefix:local" against the compile-time namespace
// context. "*" matches any element name.
func splitName(name string, ns map[string]string) (local, uri string, wild bool) {
	if name == "*" {
		return "", "", true
	}
	prefix := ""
	if i := strings.IndexByte(name, ':'); i >= 0 {
		prefix, name = name[:i], name[i+1:]
	}
	if prefix == "" {
		return name, "", false
	}
	return name, ns[prefix], false
}

func nameMatches(c *xmlnav.Cursor, local, uri string, wild bool) bool {
	if c.Kind() != xmlnav.ElementNode {
		return false
	}
	if wild {
		return true
	}
	return c.LocalName() == local && c.NamespaceURI() == uri
}

func exprOpts(h *holder, ns map[string]string) []expr.Option {
	return []expr.Option{
		expr.Function("name", func(params ...any) (any, error) {
			return h.pos.Name(), nil
		}, new(func() string)),
		expr.Function("local", func(params ...any) (any, error) {
			return h.pos.LocalName(), nil
		}, new(func() string)),
		expr.Function("value", func(params ...any) (any, error) {
			return h.pos.Value(), nil
		}, new(func() string)),
		expr.Function("kind", func(params ...any) (any, error) {
			return h.pos.Kind().String(), nil
		}, new(func() string)),
		expr.Function("attr", func(params ...any) (any, error) {
			local, uri, _ := splitName(params[0].(string), ns)
			nav := h.pos.Clone()
			if !nav.MoveToAttribute(local, uri) {
				return "", nil
			}
			return nav.Value(), nil
		}, new(func(string) string)),
		expr.Function("self", func(params ...any) (any, error) {
			return h.pos.Clone(), nil
		}, new(func() *xmlnav.Cursor)),
		expr.Function("parent", func(params ...any) (any, error) {
			nav := h.pos.Clone()
			if !nav.MoveToParent() {
				return (*xmlnav.Cursor)(nil), nil
			}
			return nav, nil
		}, new(func() *xmlnav.Cursor)),
		expr.Function("root", func(params ...any) (any, error) {
			nav := h.pos.Clone()
			nav.MoveToRoot()
			return nav, nil
		}, new(func() *xmlnav.Cursor)),
		expr.Function("child", func(params ...any) (any, error) {
			local, uri, wild := splitName(params[0].(string), ns)
			nav := h.pos.Clone()
			if !nav.MoveToFirstChild() {
				return (*xmlnav.Cursor)(nil), nil
			}
			for {
				if nameMatches(nav, local, uri, wild) {
					return nav, nil
				}
				if !nav.MoveToNext() {
					return (*xmlnav.Cursor)(nil), nil
				}
			}
		}, new(func(string) *xmlnav.Cursor)),
		expr.Function("children", func(params ...any) (any, error) {
			local, uri, wild := splitName(params[0].(string), ns)
			var res []*xmlnav.Cursor
			nav := h.pos.Clone()
			if !nav.MoveToFirstChild() {
				return res, nil
			}
			for {
				if nameMatches(nav, local, uri, wild) {
					res = append(res, nav.Clone())
				}
				if !nav.MoveToNext() {
					return res, nil
				}
			}
		}, new(func(string) []*xmlnav.Cursor)),
		expr.Function("descendants", func(params ...any) (any, error) {
			local, uri, wild := splitName(params[0].(string), ns)
			var res []*xmlnav.Cursor
			end := h.pos.Clone()
			if !end.MoveToNonDescendant() {
				end = nil
			}
			nav := h.pos.Clone()
			if wild {
				for nav.MoveToFollowingKind(xmlnav.ElementNode, end) {
					res = append(res, nav.Clone())
				}
				return res, nil
			}
			for nav.MoveToFollowing(local, uri, end) {
				res = append(res, nav.Clone())
			}
			return res, nil
		}, new(func(string) []*xmlnav.Cursor)),
	}
}
