package trigram

const (
	// StartToken pads the beginning of every sentence and seeds generation.
	StartToken = "<s>"
	// EndToken terminates every sentence. Sampling it ends generation.
	EndToken = "</s>"
	// UnknownToken replaces tokens that fell below the minimum frequency.
	UnknownToken = "<unk>"
)

// Context is the pair of tokens immediately preceding a prediction point.
type Context struct {
	First  string
	Second string
}

// startContext is the context every generated sequence begins from.
var startContext = Context{First: StartToken, Second: StartToken}

// Shift returns the context that follows c once next has been emitted.
func (c Context) Shift(next string) Context {
	return Context{First: c.Second, Second: next}
}

func (c Context) String() string {
	return c.First + " " + c.Second
}

// Candidate is a possible next token for a context together with the number
// of times it was observed after that context.
type Candidate struct {
	Token string
	Count int
}
