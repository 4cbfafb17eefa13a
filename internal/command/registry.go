package command

import (
	"errors"
	"fmt"
	"sort"
)

// ErrCommandNotFound is returned when an identifier has no registered
// command.
var ErrCommandNotFound = errors.New("command: command not found")

// Registry maps command names to implementations. It is populated once
// from the static command tables and never changes afterward; there is
// no way to register a command at runtime.
type Registry struct {
	commands map[string]Command
}

// NewRegistry builds the registry from the built-in command tables.
func NewRegistry() *Registry {
	r := &Registry{commands: make(map[string]Command)}
	r.add(motionCommands())
	r.add(editingCommands())
	r.add(killYankCommands())
	r.add(markCommands())
	r.add(regionCommands())
	r.add(multiCursorCommands())
	r.add(undoCommands())
	r.add(bufferCommands())
	return r
}

func (r *Registry) add(cmds []Command) {
	for _, c := range cmds {
		if _, dup := r.commands[c.Name]; dup {
			panic(fmt.Sprintf("command: duplicate registration of %q", c.Name))
		}
		r.commands[c.Name] = c
	}
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (Command, error) {
	c, ok := r.commands[name]
	if !ok {
		return Command{}, fmt.Errorf("%w: %s", ErrCommandNotFound, name)
	}
	return c, nil
}

// Names returns every registered command name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered commands.
func (r *Registry) Len() int { return len(r.commands) }
