// Package report assembles the plain data a presentation layer needs: global
// squares, full and half dominoes, count tables, minimum set counts and cut
// lists for catalog regions and region groups.
//
// Nothing here formats tables; Marshal only serialises to JSON or YAML.
package report
