// Package main hosts the moviegenre CLI entrypoint and command graph.
//
// The root command predicts genres for one title/description pair and prints
// the result as JSON. Subcommands expose the text normalizer, artifact
// inspection and checks, configuration scaffolding, and the optional
// prediction journal. Configuration resolution and logger setup live in the
// shared command context so commands stay declarative.
package main
