// Package commands defines the metaphysics CLI.
//
// Commands
//
//   - train      List squares with their domino, term and face value
//   - squares    Print the global squares of catalog regions
//   - dominoes   Print the full and half dominoes of catalog regions
//   - sets       Print the minimum number of domino sets and a cut list
//   - report     Print everything above for the whole die
//
// # Implementation
//
// The root command loads configuration, builds a zap logger and the region
// catalog before any subcommand runs. Text output is drawn with lipgloss
// tables; --format json|yaml prints the report package's plain data instead.
package commands
