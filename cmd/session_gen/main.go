package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"hockey-playdate/clubhouse/internal/common"
	"hockey-playdate/clubhouse/internal/middleware"
)

// Dev tool: mints a Redis-backed session for a user so browser routes can be
// exercised without the identity-provider callback flow.
func main() {
	userID := flag.String("user", "", "user id to issue the session for")
	email := flag.String("email", "", "email claim")
	name := flag.String("name", "", "display name")
	flag.Parse()

	if *userID == "" {
		log.Fatal("missing -user")
	}

	client := common.NewRedisClient()
	svc := common.NewSessionService(client)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sessionID, err := svc.CreateSession(ctx, *userID, *email, *name)
	if err != nil {
		log.Fatalf("create session: %v", err)
	}

	fmt.Println("Session cookie:", middleware.SessionCookieName+"="+sessionID)
}
