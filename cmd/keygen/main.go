// Command keygen prints one fresh field-encryption key to stdout, suitable
// for the ENCRYPTION_KEY setting.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/vetcepi/vetcepi-backend/internal/fieldcrypt"
)

func main() {
	key, err := fieldcrypt.GenerateKey()
	if err != nil {
		log.Printf("generate key: %v", err)
		os.Exit(1)
	}

	fmt.Println(key)
}
