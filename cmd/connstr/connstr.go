package main

import (
	"log"

	"github.com/pgvillage-tools/connstr/internal/handler"
)

func main() {
	handler.Initialize()

	h, err := handler.NewHandler()
	if err != nil {
		log.Fatalf("Error occurred on getting config: %v", err)
	}

	h.Handle()
}
