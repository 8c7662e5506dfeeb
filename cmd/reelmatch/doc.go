// Package main hosts the reelmatch CLI entrypoint and command graph.
//
// Run without arguments, reelmatch asks for one movie title and prints the
// closest matches from the loaded catalog. Subcommands expose the same engine
// for scripted queries, a line-per-query shell, catalog and vocabulary dumps,
// similarity tables, and configuration scaffolding.
//
// Configuration, logging, and engine construction are resolved once per
// invocation in commandContext; commands only format results.
package main
