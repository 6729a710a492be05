package main

import (
	"github.com/fumosclub/fumosync/cmd"
	"github.com/fumosclub/fumosync/cmd/util"
)

func main() {
	defer util.HandlePanic()
	cmd.Execute()
}
