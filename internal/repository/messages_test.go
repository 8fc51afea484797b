package repository

import (
	"errors"
	"testing"
)

func TestResolveMessages_DefaultsComplete(t *testing.T) {
	resolved := resolveMessages()

	keys := []MessageKey{
		MsgNotFound, MsgDuplicateKey, MsgIntegrity, MsgForeignKey,
		MsgCheckConstraint, MsgMultipleRows, MsgOther,
	}
	for _, key := range keys {
		if resolved[key] == nil {
			t.Errorf("resolved mapping missing key %q", key)
		}
	}
}

func TestResolveMessages_LayeringPerKey(t *testing.T) {
	repoLayer := Messages{
		MsgNotFound:     Text("Widget not found"),
		MsgDuplicateKey: Text("Widget already exists"),
	}
	callLayer := Messages{
		MsgDuplicateKey: Text("That widget name is taken"),
	}

	resolved := resolveMessages(repoLayer, callLayer)

	// Call-site override wins for its key.
	if got := resolved.render(MsgDuplicateKey, nil); got != "That widget name is taken" {
		t.Errorf("duplicate key message = %q, want call-site override", got)
	}
	// Repository layer survives for keys the call did not override.
	if got := resolved.render(MsgNotFound, nil); got != "Widget not found" {
		t.Errorf("not found message = %q, want repository layer", got)
	}
	// Untouched keys keep the global default.
	if got := resolved.render(MsgMultipleRows, nil); got != "Multiple matching rows found" {
		t.Errorf("multiple rows message = %q, want global default", got)
	}
}

func TestResolveMessages_NilTemplateIgnored(t *testing.T) {
	resolved := resolveMessages(Messages{MsgNotFound: nil})
	if got := resolved.render(MsgNotFound, nil); got != "The requested resource was not found" {
		t.Errorf("render = %q, want global default when layer entry is nil", got)
	}
}

func TestMessages_RenderWithCause(t *testing.T) {
	m := resolveMessages(Messages{
		MsgOther: func(err error) string { return "storage failed: " + err.Error() },
	})
	got := m.render(MsgOther, errors.New("disk full"))
	if got != "storage failed: disk full" {
		t.Errorf("render = %q, want template to see the cause", got)
	}
}

func TestMessages_RenderMissingKeyFallsBack(t *testing.T) {
	got := Messages{}.render(MsgNotFound, errors.New("boom"))
	if got != "not_found error: boom" {
		t.Errorf("render = %q, want generic fallback", got)
	}
}
