// Package main provides the CLI entrypoint for reticle.
package main

func main() {
	Execute()
}
