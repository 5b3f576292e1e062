package main

import (
	"os"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
