package main

import (
	"log"
	"net/http"
	"os"

	"github.com/technomart/technomart/app/cmd"
	"github.com/technomart/technomart/app/configs"
	"github.com/technomart/technomart/app/routes"
	"github.com/technomart/technomart/app/utils/sessions"
)

func main() {
	env := configs.LoadENV

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("Database connected.")

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatal("Session keys missing: ", err, " (run `technomart generate-keys`)")
	}
	store := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	handler := routes.NewRouter(db, store, keys)

	server := http.Server{
		Addr:    env.Port,
		Handler: handler,
	}

	log.Printf("Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server stopped: ", err)
	}
}
