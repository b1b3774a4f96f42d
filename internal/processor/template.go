package processor

import "strings"

// RenderTemplate substitutes the fixed placeholders $command, $stdout, and
// $stderr with values from the execution. Substitution is literal string
// replacement; nothing is evaluated.
func RenderTemplate(template string, execution CommandExecution) string {
	r := strings.NewReplacer(
		"$command", execution.CommandLine(),
		"$stdout", execution.Stdout,
		"$stderr", execution.Stderr,
	)
	return r.Replace(template)
}
