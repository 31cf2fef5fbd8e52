// Command server runs the blog backend HTTP API.
//
// Configuration comes from CONFIG_PATH (YAML) and environment variables;
// see internal/config for the full list.
package main

import (
	"context"
	"log"

	"github.com/sangseok/blog-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
