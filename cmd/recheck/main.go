// Command recheck runs a small registry of built-in demo properties
// outside of go test, so the engine's reporting and shrinking can be
// exercised from a shell.
package main

func main() {
	Execute()
}
