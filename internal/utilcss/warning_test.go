package utilcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarningString(t *testing.T) {
	tests := []struct {
		name    string
		warning *Warning
		want    string
	}{
		{
			name:    "state not found",
			warning: NewWarning("bogus:mt-4", Position{Line: 3, Column: 7}, StateNotFound("bogus")),
			want:    "Warning on Line: 3, Col: 7; Could not match state at class 'bogus:mt-4', 'bogus' is not a valid state",
		},
		{
			name:    "class not found",
			warning: NewWarning("flex", Position{Line: 1, Column: 1}, ClassNotFound()),
			want:    "Warning on Line: 1, Col: 1; Could not match class 'flex'",
		},
		{
			name:    "too many args",
			warning: NewWarning("mt-1-2-3-4", Position{Line: 10, Column: 20}, TooManyArgs(4, 3)),
			want:    "Warning on Line: 10, Col: 20; Could not match class 'mt-1-2-3-4', too many arguments, got '4' but required '3'",
		},
		{
			name:    "invalid arg",
			warning: NewWarning("p-7", Position{Line: 2, Column: 4}, InvalidArg("7", []string{"0", "1", "px"})),
			want:    "Warning on Line: 2, Col: 4; Could not match class 'p-7', invalid argument '7', possible arguments: '0, 1, px'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.warning.String())
			assert.Equal(t, tt.want, tt.warning.Error())
		})
	}
}

func TestWarning_RenderedFieldsPresent(t *testing.T) {
	w := NewWarning("space-x-bogus", Position{Line: 42, Column: 9}, InvalidArg("bogus", []string{"1", "2"}))
	text := w.String()

	assert.Contains(t, text, "42")
	assert.Contains(t, text, "9")
	assert.Contains(t, text, "space-x-bogus")
	assert.Contains(t, text, "invalid argument 'bogus'")
	assert.Contains(t, text, "1, 2")
	assert.Equal(t, w.Type.Message(w.Class), w.Message())
}

func TestInvalidArg_CopiesAllowed(t *testing.T) {
	allowed := []string{"1", "2"}
	wt := InvalidArg("x", allowed)
	allowed[0] = "changed"

	assert.Equal(t, []string{"1", "2"}, wt.Allowed)
}

func TestWarningKindString(t *testing.T) {
	assert.Equal(t, "state_not_found", KindStateNotFound.String())
	assert.Equal(t, "class_not_found", KindClassNotFound.String())
	assert.Equal(t, "too_many_args", KindTooManyArgs.String())
	assert.Equal(t, "invalid_arg", KindInvalidArg.String())
	assert.Equal(t, "unknown(9)", WarningKind(9).String())
}

func TestWarningTypeError(t *testing.T) {
	assert.Equal(t, "'z' is not a valid state", StateNotFound("z").Error())
	assert.Equal(t, "class not found", ClassNotFound().Error())
	assert.Equal(t, "too many arguments, got '5' but required '3'", TooManyArgs(5, 3).Error())
	assert.Equal(t, "invalid argument '7'", InvalidArg("7", nil).Error())
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "4:12", Position{Line: 4, Column: 12}.String())
}
