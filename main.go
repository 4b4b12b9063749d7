package main

import (
	"log"

	"tasktracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("tasktracker: %v", err)
	}
}
