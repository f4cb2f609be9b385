package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	dbpkg "github.com/angiescolor/salon-agenda/internal/db"
)

func main() {
	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	// Uso: /bin/migrate [force <version>]
	if len(os.Args) >= 3 && os.Args[1] == "force" {
		version, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatalf("invalid version: %v", err)
		}
		if err := dbpkg.Force(databaseURL, version); err != nil {
			log.Fatalf("force version: %v", err)
		}
		fmt.Printf("forced version to %d\n", version)
		return
	}

	if err := dbpkg.Migrate(databaseURL); err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println("migrations complete")
}
