package api

import (
	"net/http"

	"colormind/internal/config"
	"colormind/internal/service"
	"colormind/internal/ws"
	"github.com/gorilla/websocket"
)

func NewRouter(
	cfg config.Config,
	colorSvc *service.ColorService,
	paletteSvc *service.PaletteService,
	hub *ws.Hub,
) http.Handler {
	h := &Handler{
		cfg:        cfg,
		colorSvc:   colorSvc,
		paletteSvc: paletteSvc,
		hub:        hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.Healthz)
	mux.HandleFunc("/v1/ws", h.WebSocket)
	mux.HandleFunc("/v1/palette/upload", h.UploadImage)
	mux.HandleFunc("/v1/palette/generate", h.GeneratePalette)
	mux.HandleFunc("/v1/palette/export", h.ExportPalette)
	mux.HandleFunc("/v1/palette/adjust-lighting", h.AdjustLighting)

	return limitBody(cfg.MaxUploadSizeBytes, mux)
}

func limitBody(maxSize int64, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxSize)
		next.ServeHTTP(w, r)
	})
}
