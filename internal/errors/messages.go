package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// messages is the terminal-facing catalog keyed by message key. Backend
// message codes without a catalog entry render through the generic entry
// with the code appended, so new backend codes degrade readably instead of
// disappearing.
var messages = map[string]string{
	KeyNetwork: "Cannot reach the Lumera platform. Check your connection and the configured API URL.",
	KeyGeneric: "The request could not be completed.",

	"errors.INVALID_CREDENTIALS": "Invalid email or password.",
	"errors.EMAIL_TAKEN":         "An account with this email already exists.",
	"errors.INSUFFICIENT_STOCK":  "Not enough stock for this movement.",
	"errors.NOT_FOUND":           "The requested record does not exist.",
	"errors.FORBIDDEN_ACTION":    "You do not have permission for this action.",
}

// Display renders an error for the terminal. API failures are resolved
// through their message key into the catalog; other coded errors keep
// their own message. Suggestions are appended either way.
func Display(err error) string {
	if err == nil {
		return ""
	}

	var le *LumeraError
	if !stderrors.As(err, &le) {
		return err.Error()
	}

	headline := le.Message
	switch key := MessageKey(err); {
	case key == KeyNetwork:
		headline = messages[KeyNetwork]
	case le.Code == ErrCodeAPIRequest:
		if msg, ok := messages[key]; ok {
			headline = msg
		} else if le.BackendMessage != "" {
			headline = fmt.Sprintf("%s (%s)", messages[KeyGeneric], le.BackendMessage)
		} else {
			headline = messages[KeyGeneric]
		}
	}

	if len(le.Suggestions) == 0 {
		return headline
	}

	var b strings.Builder
	b.WriteString(headline)
	b.WriteString("\n\nSuggestions:")
	for _, s := range le.Suggestions {
		b.WriteString("\n  • ")
		b.WriteString(s)
	}
	return b.String()
}
