package main

import (
	"fmt"
	"os"

	"cluely/internal/ipc"
)

func main() {
	cmd := ipc.CmdTrigger
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	if err := ipc.SendCommand(cmd); err != nil {
		fmt.Println("cluely-daemon not running:", err)
		os.Exit(1)
	}
}
