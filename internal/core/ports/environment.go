package ports

// Environment is the process environment as read and rewritten by this tool.
// The inherited environment is read-only input for configuration resolution;
// the exported environment is write-once and observed only by the child
// process image that replaces the current one.
type Environment interface {
	// Lookup returns the value of the variable and whether it is present.
	Lookup(key string) (string, bool)

	// Set writes the variable into the environment.
	Set(key, value string) error

	// Environ returns the full environment in "KEY=VALUE" form.
	Environ() []string
}
