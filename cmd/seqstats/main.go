// cmd/seqstats/main.go
package main

import (
	"seqstats/internal/app"
	"seqstats/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
