// Package controller translates HTTP requests into service calls and maps
// service errors back to status codes.
package controller

import (
	"github.com/gorilla/mux"

	"twitter-clone/service"
)

// Handler owns the HTTP surface. All dependencies arrive at construction.
type Handler struct {
	auth      *service.AuthService
	users     *service.UserService
	tweets    *service.TweetService
	uploadDir string
}

func NewHandler(auth *service.AuthService, users *service.UserService, tweets *service.TweetService, uploadDir string) *Handler {
	return &Handler{
		auth:      auth,
		users:     users,
		tweets:    tweets,
		uploadDir: uploadDir,
	}
}

// Routes builds the router. Protected routes go through the bearer-token
// middleware.
func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/auth/login", h.Login).Methods("POST")

	r.HandleFunc("/alltweets", h.AllTweets).Methods("GET")
	r.HandleFunc("/myalltweets", h.protected(h.MyTweets)).Methods("GET")
	r.HandleFunc("/tweet", h.protected(h.CreateTweet)).Methods("POST")
	r.HandleFunc("/tweet", h.AllTweets).Methods("GET")
	r.HandleFunc("/tweet/{id}", h.GetTweet).Methods("GET")
	r.HandleFunc("/tweet/{id}/retweet", h.protected(h.Retweet)).Methods("POST")
	r.HandleFunc("/tweet/{id}/reply", h.protected(h.Reply)).Methods("POST")
	r.HandleFunc("/deletetweet/{tweetID}", h.protected(h.DeleteTweet)).Methods("DELETE")
	r.HandleFunc("/like", h.protected(h.Like)).Methods("PUT")
	r.HandleFunc("/unlike", h.protected(h.Unlike)).Methods("PUT")

	r.HandleFunc("/user/{id}", h.GetUser).Methods("GET")
	r.HandleFunc("/user/{id}", h.protected(h.EditUser)).Methods("PUT")
	r.HandleFunc("/user/{id}/follow", h.protected(h.Follow)).Methods("POST")
	r.HandleFunc("/user/{id}/unfollow", h.protected(h.Unfollow)).Methods("POST")
	r.HandleFunc("/user/{id}/tweets", h.UserTweets).Methods("POST")

	r.HandleFunc("/upload", h.Upload).Methods("POST")

	return r
}
