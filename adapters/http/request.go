package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/gruzdev-dev/codex-users/core/domain"
)

var validate = validator.New()

// userRequest is the body of POST and PUT. Pointers tell a missing or null
// value apart from the zero value.
type userRequest struct {
	Username string    `validate:"required"`
	Age      *float64  `validate:"required"`
	Hobbies  []*string `validate:"required"`
}

type userResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Age      float64  `json:"age"`
	Hobbies  []string `json:"hobbies"`
}

func toUserResponse(user *domain.User) userResponse {
	hobbies := user.Hobbies
	if hobbies == nil {
		hobbies = []string{}
	}

	return userResponse{
		ID:       user.ID,
		Username: user.Username,
		Age:      user.Age,
		Hobbies:  hobbies,
	}
}

// readUserInput consumes the whole body before decoding it.
func (h *Handler) readUserInput(w http.ResponseWriter, r *http.Request) (domain.UserInput, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		return domain.UserInput{}, fmt.Errorf("%w: failed to read body: %v", domain.ErrInvalidInput, err)
	}
	if len(body) == 0 {
		return domain.UserInput{}, fmt.Errorf("%w: body is empty", domain.ErrInvalidInput)
	}

	// Field names are matched exactly; encoding/json would fold case.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return domain.UserInput{}, fmt.Errorf("%w: malformed json: %v", domain.ErrInvalidInput, err)
	}

	var req userRequest
	for name, dst := range map[string]any{
		"username": &req.Username,
		"age":      &req.Age,
		"hobbies":  &req.Hobbies,
	} {
		raw, ok := fields[name]
		if !ok {
			return domain.UserInput{}, fmt.Errorf("%w: missing field %s", domain.ErrInvalidInput, name)
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return domain.UserInput{}, fmt.Errorf("%w: field %s: %v", domain.ErrInvalidInput, name, err)
		}
	}

	if err := validate.Struct(&req); err != nil {
		return domain.UserInput{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	hobbies := make([]string, 0, len(req.Hobbies))
	for i, hobby := range req.Hobbies {
		if hobby == nil {
			return domain.UserInput{}, fmt.Errorf("%w: hobbies[%d] is null", domain.ErrInvalidInput, i)
		}
		hobbies = append(hobbies, *hobby)
	}

	return domain.UserInput{
		Username: req.Username,
		Age:      *req.Age,
		Hobbies:  hobbies,
	}, nil
}
