package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"twitter-clone/model"
	"twitter-clone/service"
)

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	profile, err := h.users.Profile(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": profile})
}

func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.users.Follow(r.Context(), actorID(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "You are now following the user"})
}

func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.users.Unfollow(r.Context(), actorID(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "You have unfollowed the user"})
}

func (h *Handler) EditUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	var update model.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, service.ErrValidation)
		return
	}

	if err := h.users.EditProfile(r.Context(), id, update); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User details updated successfully"})
}

func (h *Handler) UserTweets(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	tweets, err := h.tweets.ByAuthor(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tweets": tweets})
}
