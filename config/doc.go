// Package config loads the settings of the metaphysics command.
//
// Settings are resolved in three layers, later layers winning:
//
//  1. Default(): order 4, GOMAXPROCS workers, text output, colour on.
//  2. An optional YAML file (keys: order, workers, format, color).
//  3. Environment variables METAPHYSICS_ORDER, METAPHYSICS_WORKERS,
//     METAPHYSICS_FORMAT and METAPHYSICS_COLOR.
//
// The merged result is validated; any failure wraps ErrInvalidConfig.
package config
