package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"colormind/internal/config"
	"colormind/internal/model"
	"colormind/internal/service"
	"colormind/internal/ws"
	"github.com/gorilla/websocket"
)

const (
	defaultStyle    = "scandinavian"
	defaultMood     = "calm"
	defaultLighting = "daylight"
	defaultHarmony  = service.HarmonyComplementary
)

type Handler struct {
	cfg        config.Config
	colorSvc   *service.ColorService
	paletteSvc *service.PaletteService
	hub        *ws.Hub
	upgrader   websocket.Upgrader
}

type apiError struct {
	Error string `json:"error"`
}

func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, errors.New("websocket requires GET"))
		return
	}
	if !websocket.IsWebSocketUpgrade(r) {
		writeErr(w, http.StatusBadRequest, errors.New("websocket upgrade required"))
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: remote=%s err=%v", r.RemoteAddr, err)
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	client := ws.NewClient(h.hub, conn)
	h.hub.Register(client)
	go client.WritePump()
	go client.ReadPump()
}

// UploadImage handles the photo flow: extract dominant colors, then build a
// palette for the requested style/mood/lighting.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if err := r.ParseMultipartForm(h.cfg.MaxUploadSizeBytes); err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeErr(w, http.StatusBadRequest, errors.New("no file uploaded"))
		return
	}
	defer file.Close()

	if err := validateImageUpload(fileHeader); err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	imageBytes, err := io.ReadAll(file)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}

	style := firstOr(r.FormValue("style"), defaultStyle)
	mood := firstOr(r.FormValue("mood"), defaultMood)
	lighting := firstOr(r.FormValue("lighting"), defaultLighting)

	dominant, err := h.colorSvc.ExtractDominantColors(imageBytes, h.cfg.DominantColorCount)
	if err != nil {
		log.Printf("extract colors: %v", err)
		writeErr(w, http.StatusInternalServerError, errors.New("error processing image"))
		return
	}

	palette, err := h.paletteSvc.Generate(dominant, style, mood, lighting)
	if err != nil {
		log.Printf("generate palette: %v", err)
		writeErr(w, http.StatusInternalServerError, errors.New("error generating palette"))
		return
	}

	h.hub.BroadcastEvent(model.Event{Type: "palette.generated", Payload: palette, CreatedAt: time.Now().UnixMilli()})
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"dominant_colors": dominant,
		"palette":         palette,
	})
}

// GeneratePalette handles the direct flow: seed colors in, harmony palette out.
func (h *Handler) GeneratePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req struct {
		Colors   []model.SeedColor `json:"colors"`
		Style    string            `json:"style"`
		Mood     string            `json:"mood"`
		Lighting string            `json:"lighting"`
		Harmony  string            `json:"harmony"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	if len(req.Colors) == 0 {
		writeErr(w, http.StatusBadRequest, errors.New("no base colors provided"))
		return
	}
	style := firstOr(req.Style, defaultStyle)
	mood := firstOr(req.Mood, defaultMood)
	lighting := firstOr(req.Lighting, defaultLighting)
	harmony := firstOr(req.Harmony, defaultHarmony)

	palette, err := h.paletteSvc.GenerateHarmony(req.Colors, harmony, style, mood, lighting)
	if err != nil {
		log.Printf("generate harmony palette: %v", err)
		writeErr(w, http.StatusInternalServerError, errors.New("error generating palette"))
		return
	}

	h.hub.BroadcastEvent(model.Event{Type: "palette.generated", Payload: palette, CreatedAt: time.Now().UnixMilli()})
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"palette": palette,
	})
}

// ExportPalette renders a PNG swatch or re-serializes the palette as JSON.
func (h *Handler) ExportPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req struct {
		Colors []model.PaletteColor `json:"colors"`
		Name   string               `json:"name"`
		Format string               `json:"format"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	if len(req.Colors) == 0 {
		writeErr(w, http.StatusBadRequest, errors.New("no colors to export"))
		return
	}
	name := firstOr(req.Name, "ColorMind Palette")

	switch strings.ToLower(firstOr(req.Format, "png")) {
	case "png":
		b, err := service.RenderSwatch(req.Colors, name, h.cfg.SwatchWidth, h.cfg.SwatchHeight)
		if err != nil {
			log.Printf("render swatch: %v", err)
			writeErr(w, http.StatusInternalServerError, errors.New("error exporting palette"))
			return
		}
		h.hub.BroadcastEvent(model.Event{Type: "swatch.exported", Payload: map[string]string{"name": name}, CreatedAt: time.Now().UnixMilli()})
		filename := strings.ReplaceAll(name, " ", "_") + "_palette.png"
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		_, _ = w.Write(b)
	case "json":
		writeJSON(w, http.StatusOK, h.paletteSvc.BuildExport(name, req.Colors))
	default:
		writeErr(w, http.StatusBadRequest, errors.New("unsupported export format"))
	}
}

// AdjustLighting re-lights an existing palette color list for a new lighting
// condition without regenerating the palette.
func (h *Handler) AdjustLighting(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req struct {
		Colors   []model.PaletteColor `json:"colors"`
		Lighting string               `json:"lighting"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	if len(req.Colors) == 0 {
		writeErr(w, http.StatusBadRequest, errors.New("no colors provided"))
		return
	}
	lighting := firstOr(req.Lighting, defaultLighting)

	adjusted := h.paletteSvc.AdjustForLighting(req.Colors, lighting)
	h.hub.BroadcastEvent(model.Event{Type: "lighting.adjusted", Payload: map[string]interface{}{"lighting": lighting, "colors": adjusted}, CreatedAt: time.Now().UnixMilli()})
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"colors":  adjusted,
	})
}

func validateImageUpload(header *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg":
		return nil
	default:
		return errors.New("invalid file type: upload jpg or png images only")
	}
}

func writeJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, apiError{Error: err.Error()})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeErr(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
}

func firstOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
