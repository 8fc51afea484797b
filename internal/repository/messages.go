package repository

import "fmt"

// MessageKey selects the error-message template for one failure kind.
type MessageKey string

const (
	MsgNotFound        MessageKey = "not_found"
	MsgDuplicateKey    MessageKey = "duplicate_key"
	MsgIntegrity       MessageKey = "integrity"
	MsgForeignKey      MessageKey = "foreign_key"
	MsgCheckConstraint MessageKey = "check_constraint"
	MsgMultipleRows    MessageKey = "multiple_rows"
	MsgOther           MessageKey = "other"
)

// Template renders the final human message for a failure, given the causing
// error. Use Text for plain literals.
type Template func(err error) string

// Text returns a Template that ignores the cause and renders s verbatim.
func Text(s string) Template {
	return func(error) string { return s }
}

// Messages maps failure kinds to message templates. A repository resolves a
// complete mapping by layering: call-site override over repository defaults
// over the global defaults, independently per key.
type Messages map[MessageKey]Template

// defaultMessages is the global fallback layer. All seven keys are present,
// so any resolved mapping is complete.
var defaultMessages = Messages{
	MsgNotFound:        Text("The requested resource was not found"),
	MsgDuplicateKey:    Text("A record matching the supplied data already exists."),
	MsgIntegrity:       Text("There was a data validation error during processing"),
	MsgForeignKey:      Text("A foreign key is missing or invalid"),
	MsgCheckConstraint: Text("The data failed a check constraint during processing"),
	MsgMultipleRows:    Text("Multiple matching rows found"),
	MsgOther:           Text("There was an error during data processing"),
}

// resolveMessages merges the given layers over the global defaults.
// Later layers win, key by key.
func resolveMessages(layers ...Messages) Messages {
	resolved := make(Messages, len(defaultMessages))
	for key, tmpl := range defaultMessages {
		resolved[key] = tmpl
	}
	for _, layer := range layers {
		for key, tmpl := range layer {
			if tmpl != nil {
				resolved[key] = tmpl
			}
		}
	}
	return resolved
}

// render resolves the message for key against the causing error. A missing
// template degrades to a generic sentence naming the failure kind.
func (m Messages) render(key MessageKey, cause error) string {
	if tmpl, ok := m[key]; ok && tmpl != nil {
		return tmpl(cause)
	}
	return fmt.Sprintf("%s error: %v", key, cause)
}
