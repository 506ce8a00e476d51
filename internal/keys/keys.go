// Package keys maps key presses to named actions per scope.
package keys

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	ScopeForm   = "form"
	ScopePicker = "picker"
	ScopeAlert  = "alert"
)

// Actions.
const (
	Quit       = "quit"
	Up         = "up"
	Down       = "down"
	Left       = "left"
	Right      = "right"
	Open       = "open"
	Done       = "done"
	Cancel     = "cancel"
	CycleStyle = "cycle-style"
	Submit     = "submit"
)

type Binding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
	// Hidden bindings still match but stay out of the footer.
	Hidden bool
}

type Registry struct {
	bindings []Binding
}

func NewRegistry(bindings []Binding) *Registry {
	return &Registry{bindings: slices.Clone(bindings)}
}

// Default is the binding set used by the app.
func Default() *Registry {
	return NewRegistry([]Binding{
		{Keys: []string{"ctrl+c"}, Action: Quit, Description: "quit", Scopes: []string{"*"}, Hidden: true},
		{Keys: []string{"q"}, Action: Quit, Description: "quit", Scopes: []string{ScopeForm}},
		{Keys: []string{"up", "k"}, Action: Up, Description: "up", Scopes: []string{ScopeForm}},
		{Keys: []string{"down", "j"}, Action: Down, Description: "down", Scopes: []string{ScopeForm}},
		// Letters type into the picker, so it only gets arrows.
		{Keys: []string{"up"}, Action: Up, Description: "prev", Scopes: []string{ScopePicker}},
		{Keys: []string{"down"}, Action: Down, Description: "next", Scopes: []string{ScopePicker}},
		{Keys: []string{"left"}, Action: Left, Description: "column", Scopes: []string{ScopePicker}},
		{Keys: []string{"right"}, Action: Right, Description: "column", Scopes: []string{ScopePicker}, Hidden: true},
		{Keys: []string{"enter"}, Action: Open, Description: "pick", Scopes: []string{ScopeForm}},
		{Keys: []string{"s"}, Action: Submit, Description: "show", Scopes: []string{ScopeForm}},
		{Keys: []string{"tab"}, Action: CycleStyle, Description: "transition", Scopes: []string{ScopeForm}},
		{Keys: []string{"enter"}, Action: Done, Description: "done", Scopes: []string{ScopePicker}},
		{Keys: []string{"esc"}, Action: Cancel, Description: "close", Scopes: []string{ScopePicker}},
		{Keys: []string{"enter", "esc"}, Action: Cancel, Description: "ok", Scopes: []string{ScopeAlert}},
	})
}

func (r *Registry) Register(binding Binding) {
	r.bindings = append(r.bindings, binding)
}

func (r *Registry) BindingsForScope(scope string) []Binding {
	out := make([]Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// Help returns footer entries for scope.
func (r *Registry) Help(scope string) []key.Binding {
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.BindingsForScope(scope) {
		if b.Hidden || len(b.Keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description)))
	}
	return out
}

func (r *Registry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	return r.Action(msg, scope, action) == action
}

// Action resolves msg to the first matching action in scope, or "". When
// candidates are given only those actions are considered.
func (r *Registry) Action(msg tea.KeyMsg, scope string, candidates ...string) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		if len(candidates) > 0 && !slices.Contains(candidates, b.Action) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
