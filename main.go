package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"twitter-clone/config"
	"twitter-clone/config/db"
	"twitter-clone/controller"
	"twitter-clone/repository"
	"twitter-clone/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := db.Connect(connectCtx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Connected to MongoDB!")
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Printf("disconnect: %v", err)
		}
	}()

	users := repository.NewMongoUserRepository(db.Users(client, cfg))
	tweets := repository.NewMongoTweetRepository(db.Tweets(client, cfg))

	auth := service.NewAuthService(users, cfg.App.JWTSecret)
	userService := service.NewUserService(users)
	tweetService := service.NewTweetService(tweets, users)

	handler := controller.NewHandler(auth, userService, tweetService, cfg.App.UploadDir)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           controller.CORS(handler.Routes()),
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Println("Server is running on port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
