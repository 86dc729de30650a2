// frame2d is a command-line driver for the plane-frame solver: it reads a
// YAML frame definition, solves it and reports reactions, displacements and
// optional diagrams.
package main

func main() {
	Execute()
}
