package grant

import (
	"errors"
	"time"

	"github.com/livekit/protocol/auth"
	"github.com/romashorodok/rv2class/pkg/variables"
)

// Permissions granted to every participant.
type Permissions struct {
	RoomJoin       bool `json:"roomJoin"`
	CanPublish     bool `json:"canPublish"`
	CanSubscribe   bool `json:"canSubscribe"`
	CanPublishData bool `json:"canPublishData"`
}

var defaultPermissions = Permissions{
	RoomJoin:       true,
	CanPublish:     true,
	CanSubscribe:   true,
	CanPublishData: true,
}

type TokenService struct {
	now func() time.Time
}

func (s *TokenService) videoGrant(room string, perms Permissions) *auth.VideoGrant {
	grant := &auth.VideoGrant{
		RoomJoin: perms.RoomJoin,
		Room:     room,
	}
	grant.SetCanPublish(perms.CanPublish)
	grant.SetCanSubscribe(perms.CanSubscribe)
	grant.SetCanPublishData(perms.CanPublishData)
	return grant
}

// Issue signs a grant scoped to req.RoomName for req.ParticipantName.
// The participant name is used both as identity and display name.
func (s *TokenService) Issue(cfg *variables.LiveKit, req JoinRequest) (string, error) {
	return s.IssueFor(cfg, req.RoomName, req.ParticipantName, req.ParticipantName)
}

func (s *TokenService) IssueFor(cfg *variables.LiveKit, room, identity, name string) (string, error) {
	if room == "" || identity == "" {
		return "", ErrEmptyField
	}
	if name == "" {
		name = identity
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = variables.LIVEKIT_TOKEN_TTL_DEFAULT
	}

	at := auth.NewAccessToken(cfg.APIKey, cfg.APISecret).
		SetVideoGrant(s.videoGrant(room, defaultPermissions)).
		SetIdentity(identity).
		SetName(name).
		SetValidFor(ttl)

	token, err := at.ToJWT()
	if err != nil {
		return "", errors.Join(ErrSigningFailed, err)
	}
	return token, nil
}

func NewTokenService() *TokenService {
	return &TokenService{now: time.Now}
}
