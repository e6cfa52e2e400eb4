// cmd/nerdle-pairs/main.go
package main

import (
	"nerdle/internal/appshell"
	"nerdle/internal/pairsapp"
)

func main() { appshell.Main(pairsapp.RunContext) }
