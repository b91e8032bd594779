package scene

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by ContractError.
var (
	// ErrEmptyStack is reported when EndStructure has nothing to close.
	ErrEmptyStack = errors.New("scene: end of structure with empty stack")

	// ErrNoContainer is reported when a line is started while no paragraph
	// or content is the innermost open structure.
	ErrNoContainer = errors.New("scene: line started outside paragraph or content")
)

// ContractError is the panic value for misuse of the Builder.
type ContractError struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s(%s): %v", e.Op, e.Kind, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

func contractPanic(op string, kind Kind, err error) {
	panic(&ContractError{Op: op, Kind: kind, Err: err})
}
