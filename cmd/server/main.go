package main

import (
	"html/template"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tradeboard/internal/config"
	mydb "tradeboard/internal/db"
	"tradeboard/internal/handlers"
	"tradeboard/internal/upload"
)

func main() {
	// load .env from the current dir and the repo root when running
	// from cmd/server
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	cfg := config.Load()

	gdb, err := mydb.Open(cfg.DBDSN)
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}
	if err := mydb.Migrate(gdb); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	r := gin.Default()

	r.Static("/uploads", cfg.UploadDir)
	r.Static("/static", "./static")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("tb_session", store))

	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	})
	r.LoadHTMLGlob("internal/views/*.tmpl")

	h := handlers.New(gdb, upload.New(cfg.UploadDir))
	h.Routes(r)

	log.Println("Server listening on " + cfg.Addr)
	log.Fatal(r.Run(cfg.Addr))
}
