// cmd/seqstats-server/main.go
package main

import (
	"seqstats/internal/appshell"
	"seqstats/internal/serverapp"
)

func main() { appshell.Serve(serverapp.RunContext) }
