package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplay(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "plain error",
			err:  stderrors.New("something broke"),
			want: "something broke",
		},
		{
			name: "network failure uses catalog text",
			err:  NewNetworkError(stderrors.New("dial tcp: refused")),
			want: messages[KeyNetwork],
		},
		{
			name: "known backend code resolves through catalog",
			err:  NewRequestError(401, "INVALID_CREDENTIALS"),
			want: "Invalid email or password.",
		},
		{
			name: "unknown backend code falls back to generic with code",
			err:  NewRequestError(422, "SOMETHING_NEW"),
			want: "The request could not be completed. (SOMETHING_NEW)",
		},
		{
			name: "request error without backend message",
			err:  NewRequestError(500, ""),
			want: messages[KeyGeneric],
		},
		{
			name: "guard error keeps its own message",
			err:  New(ErrCodeAuthNotLoggedIn, "not logged in"),
			want: "not logged in",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Display(tt.err))
		})
	}
}

func TestDisplay_AppendsSuggestions(t *testing.T) {
	out := Display(NewNotLoggedInError())

	assert.True(t, strings.HasPrefix(out, "not logged in"))
	assert.Contains(t, out, "Suggestions:")
	assert.Contains(t, out, "lumera auth login")
}

func TestDisplay_UnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("loading context: %w", NewNetworkError(stderrors.New("timeout")))

	assert.Equal(t, messages[KeyNetwork], Display(wrapped))
	assert.Equal(t, KeyNetwork, MessageKey(wrapped))
}
