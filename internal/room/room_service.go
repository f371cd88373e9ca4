package room

//go:generate go run go.uber.org/mock/mockgen -source=room_service.go -destination=mocks/mock_room_lister.go -package=mocks -exclude_interfaces=roomServiceClient

import (
	"context"
	"errors"
	"time"

	"github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go/v2"
	"github.com/romashorodok/rv2class/pkg/variables"
	"go.uber.org/fx"
)

type RoomSummary struct {
	Name            string    `json:"name"`
	Sid             string    `json:"sid"`
	NumParticipants uint32    `json:"numParticipants"`
	CreatedAt       time.Time `json:"createdAt"`
}

type ParticipantSummary struct {
	Identity        string    `json:"identity"`
	Name            string    `json:"name"`
	JoinedAt        time.Time `json:"joinedAt"`
	MicrophoneMuted bool      `json:"microphoneMuted"`
}

// RoomLister reads room state from the conferencing server.
type RoomLister interface {
	ListRooms(ctx context.Context) ([]RoomSummary, error)
	ListParticipants(ctx context.Context, roomName string) ([]ParticipantSummary, error)
}

type roomServiceClient interface {
	ListRooms(ctx context.Context, req *livekit.ListRoomsRequest) (*livekit.ListRoomsResponse, error)
	ListParticipants(ctx context.Context, req *livekit.ListParticipantsRequest) (*livekit.ListParticipantsResponse, error)
}

func newLiveKitClient(cfg *variables.LiveKit) roomServiceClient {
	return lksdk.NewRoomServiceClient(cfg.URL, cfg.APIKey, cfg.APISecret)
}

// RoomService builds its client from the config current at call time.
type RoomService struct {
	livekit   variables.LiveKitSource
	newClient func(*variables.LiveKit) roomServiceClient
}

func (s *RoomService) client() (roomServiceClient, error) {
	cfg, err := s.livekit.LiveKit()
	if err != nil {
		return nil, err
	}
	return s.newClient(cfg), nil
}

func (s *RoomService) ListRooms(ctx context.Context) ([]RoomSummary, error) {
	client, err := s.client()
	if err != nil {
		return nil, err
	}

	resp, err := client.ListRooms(ctx, &livekit.ListRoomsRequest{})
	if err != nil {
		return nil, errors.Join(ErrConferencingUnavailable, err)
	}

	result := make([]RoomSummary, 0, len(resp.GetRooms()))
	for _, r := range resp.GetRooms() {
		result = append(result, RoomSummary{
			Name:            r.GetName(),
			Sid:             r.GetSid(),
			NumParticipants: r.GetNumParticipants(),
			CreatedAt:       time.Unix(r.GetCreationTime(), 0).UTC(),
		})
	}
	return result, nil
}

func microphoneMuted(p *livekit.ParticipantInfo) bool {
	for _, track := range p.GetTracks() {
		if track.GetType() == livekit.TrackType_AUDIO && !track.GetMuted() {
			return false
		}
	}
	return true
}

func (s *RoomService) ListParticipants(ctx context.Context, roomName string) ([]ParticipantSummary, error) {
	if roomName == "" {
		return nil, ErrRoomNameEmpty
	}

	client, err := s.client()
	if err != nil {
		return nil, err
	}

	resp, err := client.ListParticipants(ctx, &livekit.ListParticipantsRequest{Room: roomName})
	if err != nil {
		return nil, errors.Join(ErrConferencingUnavailable, err)
	}

	result := make([]ParticipantSummary, 0, len(resp.GetParticipants()))
	for _, p := range resp.GetParticipants() {
		result = append(result, ParticipantSummary{
			Identity:        p.GetIdentity(),
			Name:            p.GetName(),
			JoinedAt:        time.Unix(p.GetJoinedAt(), 0).UTC(),
			MicrophoneMuted: microphoneMuted(p),
		})
	}
	return result, nil
}

var _ RoomLister = (*RoomService)(nil)

type NewRoomServiceParams struct {
	fx.In

	LiveKit variables.LiveKitSource
}

func NewRoomService(params NewRoomServiceParams) *RoomService {
	return &RoomService{
		livekit:   params.LiveKit,
		newClient: newLiveKitClient,
	}
}
