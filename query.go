package xmlnav

import "fmt"

// Compiled is the opaque, reusable result of parsing a query or
// pattern string. It is produced and consumed only by the engine that
// compiled it; handing it to a different engine is an ErrQuery.
type Compiled interface {
	// Text returns the original expression text.
	Text() string
}

// Sequence is a lazy, forward-only, finite node sequence. Next
// advances to the next position and reports whether one exists;
// Current returns the position, valid until the next call to Next.
// A consumed sequence restarts only by re-invoking Select.
type Sequence interface {
	Next() bool
	Current() *Cursor
}

// Engine is the query dispatch contract toward an external query
// engine. Select expressions use the general grammar; Match uses the
// pattern subset.
type Engine interface {
	CompileSelect(text string, ns map[string]string) (Compiled, error)
	CompileMatch(text string) (Compiled, error)
	// Evaluate binds expr against the current element of ctx,
	// advancing ctx, and returns a Sequence or a scalar (bool,
	// float64, int, string).
	Evaluate(expr Compiled, ctx Sequence) (any, error)
	Match(expr Compiled, pos *Cursor) (bool, error)
}

var defaultEngine Engine

// RegisterEngine installs the default query engine used by cursors
// without an explicit engine. Engine packages call this from init so
// that importing them is enough to enable queries.
func RegisterEngine(e Engine) {
	defaultEngine = e
}

// SetEngine overrides the query engine for this cursor (clones
// inherit it).
func (c *Cursor) SetEngine(e Engine) {
	c.engine = e
}

func (c *Cursor) queryEngine() (Engine, error) {
	if c.engine != nil {
		return c.engine, nil
	}
	if defaultEngine != nil {
		return defaultEngine, nil
	}
	return nil, fmt.Errorf("%w: no query engine registered", ErrQuery)
}

// Compile compiles a select expression with the namespaces in scope
// at the current position as its namespace context.
func (c *Cursor) Compile(text string) (Compiled, error) {
	eng, err := c.queryEngine()
	if err != nil {
		return nil, err
	}
	return eng.CompileSelect(text, c.NamespacesInScope(ScopeAll))
}

// CompileMatch compiles a pattern expression.
func (c *Cursor) CompileMatch(text string) (Compiled, error) {
	eng, err := c.queryEngine()
	if err != nil {
		return nil, err
	}
	return eng.CompileMatch(text)
}

// Select evaluates a select expression with the current position as
// implicit context and returns the resulting node sequence. A scalar
// result is an ErrQuery.
func (c *Cursor) Select(text string) (Sequence, error) {
	expr, err := c.Compile(text)
	if err != nil {
		return nil, err
	}
	return c.SelectCompiled(expr)
}

// SelectCompiled is Select over an already compiled expression.
func (c *Cursor) SelectCompiled(expr Compiled) (Sequence, error) {
	res, err := c.EvaluateCompiled(expr, nil)
	if err != nil {
		return nil, err
	}
	seq, ok := res.(Sequence)
	if !ok {
		return nil, fmt.Errorf("%w: expression %q yields %T, not a node sequence",
			ErrQuery, expr.Text(), res)
	}
	return seq, nil
}

// Evaluate evaluates a select expression with the current position as
// implicit context, returning a Sequence or a scalar.
func (c *Cursor) Evaluate(text string) (any, error) {
	expr, err := c.Compile(text)
	if err != nil {
		return nil, err
	}
	return c.EvaluateCompiled(expr, nil)
}

// EvaluateCompiled evaluates expr. When ctx is nil the current
// position is the context; otherwise the supplied sequence's current
// element is the context and that sequence is advanced instead of the
// cursor.
func (c *Cursor) EvaluateCompiled(expr Compiled, ctx Sequence) (any, error) {
	eng, err := c.queryEngine()
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = NewSingleton(c.Clone())
	}
	return eng.Evaluate(expr, ctx)
}

// Matches evaluates a pattern expression against the current position.
func (c *Cursor) Matches(text string) (bool, error) {
	expr, err := c.CompileMatch(text)
	if err != nil {
		return false, err
	}
	return c.MatchesCompiled(expr)
}

// MatchesCompiled is Matches over an already compiled pattern.
func (c *Cursor) MatchesCompiled(expr Compiled) (bool, error) {
	eng, err := c.queryEngine()
	if err != nil {
		return false, err
	}
	return eng.Match(expr, c)
}

// NewSingleton returns a Sequence over a single position.
func NewSingleton(c *Cursor) Sequence {
	return &singleton{c: c}
}

type singleton struct {
	c    *Cursor
	done bool
}

func (s *singleton) Next() bool {
	if s.done {
		return false
	}
	s.done = true
	return true
}

func (s *singleton) Current() *Cursor {
	if !s.done {
		return nil
	}
	return s.c
}

// NewSliceSequence returns a Sequence over positions already in
// document order.
func NewSliceSequence(cs []*Cursor) Sequence {
	return &sliceSequence{cs: cs, at: -1}
}

type sliceSequence struct {
	cs []*Cursor
	at int
}

func (s *sliceSequence) Next() bool {
	if s.at+1 >= len(s.cs) {
		return false
	}
	s.at++
	return true
}

func (s *sliceSequence) Current() *Cursor {
	if s.at < 0 || s.at >= len(s.cs) {
		return nil
	}
	return s.cs[s.at]
}
