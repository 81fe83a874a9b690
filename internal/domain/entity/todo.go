package entity

import (
	"time"

	domainerrors "tasker/internal/domain/errors"
)

// TodoState enumerates the lifecycle states a todo can be in. There is no
// enforced transition graph; any state may be patched to any other.
type TodoState string

const (
	StateDraft TodoState = "draft"
	StateTodo  TodoState = "todo"
	StateDoing TodoState = "doing"
	StateDone  TodoState = "done"
)

// ParseTodoState validates a raw state value. It is used both when accepting
// client input and when reading rows back, so a value written out-of-band
// that is not part of the enum surfaces as a data-integrity error instead of
// being silently coerced.
func ParseTodoState(raw string) (TodoState, error) {
	switch TodoState(raw) {
	case StateDraft, StateTodo, StateDoing, StateDone:
		return TodoState(raw), nil
	}

	return "", domainerrors.ErrInvalidTodoState.WrapMessage("unknown state " + raw)
}

// String returns the wire representation of the state.
func (s TodoState) String() string {
	return string(s)
}

// Todo is a single task owned by exactly one user.
type Todo struct {
	ID          int64
	Title       string
	Description string
	State       TodoState
	UserID      int64 // Owning user. Todos are never visible across owners.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
