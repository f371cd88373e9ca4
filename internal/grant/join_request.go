package grant

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// JoinRequest is submitted once per session start and never stored.
type JoinRequest struct {
	RoomName        string `json:"roomName" validate:"required"`
	ParticipantName string `json:"participantName" validate:"required"`
}

func (r *JoinRequest) Normalize() {
	r.RoomName = strings.TrimSpace(r.RoomName)
	r.ParticipantName = strings.TrimSpace(r.ParticipantName)
}

func (r *JoinRequest) Validate() error {
	r.Normalize()
	if err := validate.Struct(r); err != nil {
		return errors.Join(ErrEmptyField, err)
	}
	return nil
}
