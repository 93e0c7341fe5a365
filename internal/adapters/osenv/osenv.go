// Package osenv adapts the process environment to ports.Environment.
package osenv

import "os"

// Env implements ports.Environment on top of the real process environment.
type Env struct{}

// New creates a new process environment adapter.
func New() *Env {
	return &Env{}
}

// Lookup returns the value of the variable and whether it is present.
func (e *Env) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Set writes the variable into the process environment.
func (e *Env) Set(key, value string) error {
	return os.Setenv(key, value)
}

// Environ returns the full process environment in "KEY=VALUE" form.
func (e *Env) Environ() []string {
	return os.Environ()
}
