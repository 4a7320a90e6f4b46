// Package console implements the interactive line-based menu.
//
// The menu reads answers one line at a time and prints Spanish prompts.
// It loads the store before showing anything, saves after every change and
// once more on exit. End of input behaves like choosing [0] Salir.
package console
