package main

import (
	"log"

	"github.com/thiagokokada/gitgui-go/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		log.Fatalf("gitgui-go: %v", err)
	}
}
