package token

// Cursor walks a token run forward with one-token lookahead. Setters
// mark a position before a speculative match and reset to it when the
// match fails.
type Cursor struct {
	toks []Token
	pos  int
}

// NewCursor returns a cursor positioned on the first token.
func NewCursor(toks []Token) *Cursor {
	return &Cursor{toks: toks}
}

// Done reports whether every token has been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.toks)
}

// Peek returns the current token without consuming it.
func (c *Cursor) Peek() (Token, bool) {
	return c.PeekAt(0)
}

// PeekAt returns the token n positions ahead of the current one.
func (c *Cursor) PeekAt(n int) (Token, bool) {
	i := c.pos + n
	if i < 0 || i >= len(c.toks) {
		return Token{}, false
	}
	return c.toks[i], true
}

// Next consumes and returns the current token.
func (c *Cursor) Next() (Token, bool) {
	t, ok := c.Peek()
	if ok {
		c.pos++
	}
	return t, ok
}

// Advance skips the current token.
func (c *Cursor) Advance() {
	if c.pos < len(c.toks) {
		c.pos++
	}
}

// Mark returns the current position for a later Reset.
func (c *Cursor) Mark() int {
	return c.pos
}

// Reset moves the cursor back to a marked position.
func (c *Cursor) Reset(mark int) {
	c.pos = mark
}

// Rest returns the tokens not consumed yet.
func (c *Cursor) Rest() []Token {
	if c.pos >= len(c.toks) {
		return nil
	}
	return c.toks[c.pos:]
}

// Tokens returns the full run the cursor walks.
func (c *Cursor) Tokens() []Token {
	return c.toks
}

// Len returns the length of the whole run.
func (c *Cursor) Len() int {
	return len(c.toks)
}
