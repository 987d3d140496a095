// Command typeforge extracts a Distribution Model from a type registry,
// explores it by generating and mutating minimal values, and re-evaluates
// persisted values against a host library.
package main

func main() {
	execute()
}
