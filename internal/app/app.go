package app

import (
	"github.com/am1t0/anonymous-meet-vote/internal/config"
	http_health "github.com/am1t0/anonymous-meet-vote/internal/delivery/http/health"
	http_init "github.com/am1t0/anonymous-meet-vote/internal/delivery/http/init"
	http_room "github.com/am1t0/anonymous-meet-vote/internal/delivery/http/room"
	ws_room "github.com/am1t0/anonymous-meet-vote/internal/delivery/ws/room"
	infra_memory_room "github.com/am1t0/anonymous-meet-vote/internal/infra/memory/room"
	"github.com/am1t0/anonymous-meet-vote/internal/service/roomcode"
	usecase_rating "github.com/am1t0/anonymous-meet-vote/internal/usecase/rating"
	usecase_room "github.com/am1t0/anonymous-meet-vote/internal/usecase/room"
)

func Go(cfg *config.Config) {
	roomRepository := infra_memory_room.New()
	codes := roomcode.New()

	roomUC := usecase_room.New(roomRepository, codes)
	ratingUC := usecase_rating.New(roomRepository, roomUC)

	hub := ws_room.NewHub(roomUC, ratingUC, ws_room.WithReadLimit(cfg.WS.ReadLimit))
	go hub.Run()

	controllerPool := http_init.NewControllerPool(cfg.HTTP.Mode)
	controllerPool.Add(http_health.New())
	controllerPool.Add(http_room.New(roomUC, hub))
	controllerPool.Add(ws_room.NewController(hub))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
