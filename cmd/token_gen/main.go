package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"hockey-playdate/clubhouse/internal/auth"
)

// Dev tool: mints a bearer token for a user so API routes can be exercised
// without the browser session flow.
func main() {
	userID := flag.String("user", "", "user id to issue the token for")
	email := flag.String("email", "", "email claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *userID == "" {
		log.Fatal("missing -user")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	token, err := auth.SignBearerToken([]byte(secret), *userID, *email, *ttl)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Println("Bearer token:", token)
}
