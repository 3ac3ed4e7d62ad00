// Command api runs the JobLink HTTP server.
package main

import (
	"log"

	"JobLink-backend/internal/server"
)

// @title JobLink API
// @version 1.0
// @description Job board backend: employers post jobs and track hiring, jobseekers apply and save jobs.
// @BasePath /api/v1
func main() {
	srv := server.NewServer()

	log.Printf("Listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("cannot start server: %s", err)
	}
}
