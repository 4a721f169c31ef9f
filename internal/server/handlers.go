package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsvensson/swatch"
	"github.com/jsvensson/swatch/internal/color"
	"github.com/jsvensson/swatch/internal/engine"
	"github.com/jsvensson/swatch/internal/render"
)

// errInvalidSize is reported as a 400 when the size query parameter is bad.
var errInvalidSize = errors.New("invalid size")

func (s *Server) handleRandomPage(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, swatch.Random())
}

func (s *Server) handleRandomRedirect(w http.ResponseWriter, r *http.Request) {
	target := "/" + string(color.NotationHex) + "/" + color.RandomHex()
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	conv, ok := s.convert(w, r)
	if !ok {
		return
	}
	s.servePage(w, r, conv)
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	conv, ok := s.convert(w, r)
	if !ok {
		return
	}
	size, err := s.size(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.servePNG(w, conv.Color, size)
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	conv, ok := s.convert(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(conv); err != nil {
		s.log.Errorf("encoding JSON for %s: %s", r.URL.Path, err)
	}
}

func (s *Server) handleFavicon(w http.ResponseWriter, r *http.Request) {
	c, ok := s.cfg.FaviconColor()
	if !ok {
		c = color.Random()
	}
	s.servePNG(w, c, 1)
}

func (s *Server) handleFaviconHex(w http.ResponseWriter, r *http.Request) {
	hex := mux.Vars(r)["hex"]
	c, err := color.ParseHex(hex)
	if err != nil {
		s.badColor(w, color.NotationHex, err)
		return
	}
	s.servePNG(w, c, 1)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "404 page not found: "+r.URL.Path, http.StatusNotFound)
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

// convert resolves the {notation} and {code} route variables. On failure it
// has already written the response and returns false.
func (s *Server) convert(w http.ResponseWriter, r *http.Request) (*swatch.Conversion, bool) {
	vars := mux.Vars(r)
	n, err := color.ParseNotation(vars["notation"])
	if err != nil {
		s.handleNotFound(w, r)
		return nil, false
	}

	conv, err := swatch.Convert(string(n), vars["code"])
	if err != nil {
		s.badColor(w, n, err)
		return nil, false
	}
	return conv, true
}

func (s *Server) badColor(w http.ResponseWriter, n color.Notation, err error) {
	var (
		fe *color.FormatError
		re *color.RangeError
	)
	if !errors.As(err, &fe) && !errors.As(err, &re) {
		s.log.Errorf("unexpected %s parse error: %s", n, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.Error(w, fmt.Sprintf("Invalid %s color code: %s", n.Title(), err), http.StatusBadRequest)
}

// size reads the optional size query parameter, falling back to the
// configured default.
func (s *Server) size(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("size")
	if raw == "" {
		return s.cfg.Swatch.Size, nil
	}
	size, err := strconv.Atoi(raw)
	if err != nil || size < 1 || size > s.cfg.Swatch.MaxSize {
		return 0, fmt.Errorf("%w %q: must be an integer between 1 and %d", errInvalidSize, raw, s.cfg.Swatch.MaxSize)
	}
	return size, nil
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request, conv *swatch.Conversion) {
	size, err := s.size(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b64, err := render.Base64(conv.Color, size)
	if err != nil {
		s.log.Errorf("rendering swatch %s: %s", conv.Hex, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Render to a buffer so a template failure still produces a clean 500.
	var buf bytes.Buffer
	err = s.engine.Render(&buf, engine.PageData{
		Code:        conv.Color.Hex(),
		ImageBase64: b64,
		Size:        size,
		Color:       conv.Color,
		Conversion:  conv,
	})
	if err != nil {
		s.log.Errorf("rendering page %s: %s", conv.Hex, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) servePNG(w http.ResponseWriter, c color.Color, size int) {
	data, err := render.PNG(c, size)
	if err != nil {
		s.log.Errorf("rendering PNG %s: %s", c.Hex(), err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", render.MimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}
