// Package eval implements the query dispatch contract with an
// expr-based engine. Importing it registers the engine as the default,
// so cursors can Select, Evaluate and Matches without further wiring:
//
//	seq, err := cur.Select(`children("book")`)
//	ok, err := cur.Matches(`local() == "book" && attr("lang") == "en"`)
package eval
