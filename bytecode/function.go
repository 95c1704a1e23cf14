package bytecode

// Function is a compiled function: a name, its declared arity, and the
// chunk holding its body. The top-level script itself is a Function with
// an empty name and arity 0.
type Function struct {
	Name   string
	Arity  int
	Chunk  *Chunk
}

func NewFunction(name string, arity int) *Function {
	return &Function{Name: name, Arity: arity, Chunk: NewChunk()}
}

func (f *Function) ObjType() string { return "function" }

func (f *Function) String() string {
	if f.Name == "" {
		return "<script>"
	}
	return "<fn " + f.Name + ">"
}
