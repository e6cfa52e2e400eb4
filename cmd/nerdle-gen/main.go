// cmd/nerdle-gen/main.go
package main

import (
	"nerdle/internal/appshell"
	"nerdle/internal/genapp"
)

func main() { appshell.Main(genapp.RunContext) }
