// Package doxygen prepares and runs the Doxygen extraction step.
//
// A Doxyfile template carries two placeholders, InputDirToken and
// OutputDirToken. Substitute resolves them in memory; RenderFile does the
// same against the filesystem; Runner executes the doxygen binary in the
// template's directory so that relative paths in the Doxyfile resolve there.
package doxygen
