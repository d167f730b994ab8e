// Package main hosts the presetid CLI entrypoint and command graph.
//
// The Cobra-based command tree reads encoder flag text from a file or
// stdin, hands it to the matching core, and prints the identified preset
// or its diagnostic error text. It also surfaces the reference preset
// table and configuration scaffolding as subcommands.
//
// Keep this package lean: matching, ranking, and rendering live in the
// internal packages; the CLI only wires input, flags, and exit codes.
package main
