package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ravenmoor/mazebot/cmd/mazebot/commands"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	var ee *commands.ExitError
	if errors.As(err, &ee) {
		if ee.Err != nil {
			fmt.Fprintln(os.Stderr, "Error:", ee.Err)
		}
		os.Exit(ee.Code)
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
