package workout

import "fmt"

// Dispatcher maps package codes to the registered Kind and binds raw fields
type Dispatcher struct {
	kinds map[Code]Kind
	order []Code
}

// NewDispatcher creates a new Dispatcher with no kinds registered.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		kinds: make(map[Code]Kind),
		order: make([]Code, 0),
	}
}

// Register adds a Kind to the dispatch table.
// Register panics if a kind with the same Code() is already registered.
func (d *Dispatcher) Register(k Kind) {
	if _, exists := d.kinds[k.Code()]; exists {
		panic(fmt.Sprintf("workout: kind %q already registered", k.Code()))
	}
	d.kinds[k.Code()] = k
	d.order = append(d.order, k.Code())
}

// Codes returns the registered codes in registration order.
func (d *Dispatcher) Codes() []Code {
	codes := make([]Code, len(d.order))
	copy(codes, d.order)
	return codes
}

// Lookup returns the Kind registered for code.
func (d *Dispatcher) Lookup(code string) (Kind, bool) {
	k, ok := d.kinds[Code(code)]
	return k, ok
}

// Dispatch resolves the kind for code and binds rawFields to it positionally.
func (d *Dispatcher) Dispatch(code string, rawFields []any) (Workout, error) {
	kind, ok := d.Lookup(code)
	if !ok {
		return nil, NewErrUnknownWorkoutKind(code)
	}

	keys := kind.Keys()
	if len(rawFields) != len(keys) {
		return nil, NewErrArityMismatch(kind.Code(), len(keys), len(rawFields))
	}

	// Convert the positional slice to a map for lookups by the Kind
	params := make(map[string]Param, len(keys))
	for i, key := range keys {
		params[key] = Param{Key: key, Value: rawFields[i]}
	}

	return kind.New(params)
}
