// Command hashpw generates the bcrypt hash expected in ADMIN_PASSWORD_HASH.
// The password is read from stdin so it never lands in shell history.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/daanseva/donation_backend/internal/utils"
)

func main() {
	fmt.Fprint(os.Stderr, "Password: ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		log.Fatal("no password provided")
	}
	password := scanner.Text()
	if password == "" {
		log.Fatal("password must not be empty")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	fmt.Println(hash)
}
