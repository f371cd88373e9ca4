package room

import (
	"github.com/romashorodok/rv2class/pkg/protocol"
	"go.uber.org/fx"
)

var Module = fx.Module("room",
	fx.Provide(
		NewRoomNotifier,
		fx.Annotate(NewRoomService, fx.As(new(RoomLister))),
		protocol.AsHttpController(NewRoomController),
		protocol.AsHttpController(NewWebhookController),
	),
)
