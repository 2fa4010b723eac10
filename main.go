package main

import "github.com/seedsweep/seedsweep/cmd/seedsweep"

func main() { seedsweep.Execute() }
