// Package encode renders node-construction events as indented markup.
// It backs the cursor markup renderers and the xn view command; color
// output is optional and off by default.
package encode
