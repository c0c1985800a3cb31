package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"twitter-clone/model"
	"twitter-clone/service"
)

type likeOp func(ctx context.Context, actor, tweetID primitive.ObjectID) (*model.TweetDetail, error)

type tweetRequest struct {
	Content string `json:"content"`
	Image   string `json:"image"`
}

type likeRequest struct {
	TweetID string `json:"tweetId"`
}

func (h *Handler) AllTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.tweets.All(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tweets": tweets})
}

func (h *Handler) MyTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.tweets.ByAuthor(r.Context(), actorID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tweets": tweets})
}

func (h *Handler) CreateTweet(w http.ResponseWriter, r *http.Request) {
	var req tweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, service.ErrValidation)
		return
	}

	tweet, err := h.tweets.Create(r.Context(), actorID(r), req.Content, req.Image)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Tweet created successfully",
		"tweet":   tweet,
	})
}

func (h *Handler) GetTweet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	tweet, err := h.tweets.ByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tweet": tweet})
}

func (h *Handler) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["tweetID"])
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.tweets.Delete(r.Context(), actorID(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Tweet deleted successfully"})
}

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	h.setLike(w, r, h.tweets.Like)
}

func (h *Handler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.setLike(w, r, h.tweets.Unlike)
}

func (h *Handler) setLike(w http.ResponseWriter, r *http.Request, op likeOp) {
	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, service.ErrValidation)
		return
	}
	id, err := pathID(req.TweetID)
	if err != nil {
		writeError(w, err)
		return
	}

	tweet, err := op(r.Context(), actorID(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tweet)
}

func (h *Handler) Retweet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	tweet, err := h.tweets.Retweet(r.Context(), actorID(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Tweet retweeted successfully",
		"tweet":   tweet,
	})
}

func (h *Handler) Reply(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	var req tweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, service.ErrValidation)
		return
	}

	reply, err := h.tweets.Reply(r.Context(), actorID(r), id, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Reply posted successfully",
		"reply":   reply,
	})
}
