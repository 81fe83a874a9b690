package entity

import (
	"testing"

	domainerrors "tasker/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestParseTodoState(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    TodoState
		wantErr bool
	}{
		{name: "draft", raw: "draft", want: StateDraft},
		{name: "todo", raw: "todo", want: StateTodo},
		{name: "doing", raw: "doing", want: StateDoing},
		{name: "done", raw: "done", want: StateDone},
		{name: "unknown value", raw: "archived", wantErr: true},
		{name: "empty value", raw: "", wantErr: true},
		{name: "case sensitive", raw: "Draft", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTodoState(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, domainerrors.ErrInvalidTodoState)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
