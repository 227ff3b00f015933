package main

import "github.com/assat/assat/cmd/assat"

func main() { assat.Execute() }
