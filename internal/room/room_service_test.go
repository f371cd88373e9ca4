package room

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/livekit/protocol/livekit"
	"github.com/romashorodok/rv2class/pkg/variables"
	"github.com/stretchr/testify/require"
)

type fakeRoomClient struct {
	rooms        []*livekit.Room
	participants map[string][]*livekit.ParticipantInfo
	err          error
	lastRoom     string
}

func (f *fakeRoomClient) ListRooms(ctx context.Context, req *livekit.ListRoomsRequest) (*livekit.ListRoomsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &livekit.ListRoomsResponse{Rooms: f.rooms}, nil
}

func (f *fakeRoomClient) ListParticipants(ctx context.Context, req *livekit.ListParticipantsRequest) (*livekit.ListParticipantsResponse, error) {
	f.lastRoom = req.GetRoom()
	if f.err != nil {
		return nil, f.err
	}
	return &livekit.ListParticipantsResponse{Participants: f.participants[req.GetRoom()]}, nil
}

var configuredSource = variables.StaticLiveKitSource{Config: variables.LiveKit{
	APIKey:    "APIdevkey",
	APISecret: "a-long-enough-secret-for-hs256-signing",
	URL:       "wss://livekit.example.com",
}}

func newTestRoomService(source variables.LiveKitSource, client *fakeRoomClient) *RoomService {
	svc := NewRoomService(NewRoomServiceParams{LiveKit: source})
	svc.newClient = func(cfg *variables.LiveKit) roomServiceClient { return client }
	return svc
}

func TestRoomServiceListRooms(t *testing.T) {
	req := require.New(t)
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	client := &fakeRoomClient{rooms: []*livekit.Room{
		{Name: "math-lesson-1", Sid: "RM_1", NumParticipants: 2, CreationTime: created.Unix()},
		{Name: "english-lesson", Sid: "RM_2"},
	}}

	rooms, err := newTestRoomService(configuredSource, client).ListRooms(context.Background())
	req.NoError(err)
	req.Len(rooms, 2)
	req.Equal(RoomSummary{Name: "math-lesson-1", Sid: "RM_1", NumParticipants: 2, CreatedAt: created}, rooms[0])
	req.Equal("english-lesson", rooms[1].Name)
}

func TestRoomServiceListParticipants(t *testing.T) {
	req := require.New(t)
	client := &fakeRoomClient{participants: map[string][]*livekit.ParticipantInfo{
		"math-lesson-1": {
			{Identity: "Alice", Name: "Alice", JoinedAt: 100, Tracks: []*livekit.TrackInfo{
				{Type: livekit.TrackType_AUDIO, Muted: false},
			}},
			{Identity: "Bob", Name: "Bob", Tracks: []*livekit.TrackInfo{
				{Type: livekit.TrackType_VIDEO, Muted: false},
				{Type: livekit.TrackType_AUDIO, Muted: true},
			}},
			{Identity: "Guest"},
		},
	}}

	participants, err := newTestRoomService(configuredSource, client).ListParticipants(context.Background(), "math-lesson-1")
	req.NoError(err)
	req.Equal("math-lesson-1", client.lastRoom)
	req.Len(participants, 3)
	req.False(participants[0].MicrophoneMuted)
	req.Equal(time.Unix(100, 0).UTC(), participants[0].JoinedAt)
	req.True(participants[1].MicrophoneMuted)
	req.True(participants[2].MicrophoneMuted)
}

func TestRoomServiceErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing config", func(t *testing.T) {
		req := require.New(t)
		svc := newTestRoomService(variables.StaticLiveKitSource{}, &fakeRoomClient{})

		_, err := svc.ListRooms(ctx)
		req.ErrorIs(err, variables.ErrLiveKitNotConfigured)
		_, err = svc.ListParticipants(ctx, "room")
		req.ErrorIs(err, variables.ErrLiveKitNotConfigured)
	})

	t.Run("server unavailable", func(t *testing.T) {
		req := require.New(t)
		cause := errors.New("connection refused")
		svc := newTestRoomService(configuredSource, &fakeRoomClient{err: cause})

		_, err := svc.ListRooms(ctx)
		req.ErrorIs(err, ErrConferencingUnavailable)
		req.ErrorIs(err, cause)
		_, err = svc.ListParticipants(ctx, "room")
		req.ErrorIs(err, ErrConferencingUnavailable)
	})

	t.Run("empty room name", func(t *testing.T) {
		_, err := newTestRoomService(configuredSource, &fakeRoomClient{}).ListParticipants(ctx, "")
		require.ErrorIs(t, err, ErrRoomNameEmpty)
	})
}
