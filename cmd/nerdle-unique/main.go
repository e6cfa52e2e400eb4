// cmd/nerdle-unique/main.go
package main

import (
	"nerdle/internal/appshell"
	"nerdle/internal/uniqueapp"
)

func main() { appshell.Main(uniqueapp.RunContext) }
