package snapshot

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"gfxscreen/pkg/display"
)

// Serve registers the snapshot routes on the default mux (alongside
// whatever else the server exposes, e.g. the RPC proxy) and binds the
// HTTP server's lifetime to the fx application.
func Serve(d display.Display, store *Store, srv *http.Server, logger *zap.Logger, lifecycle fx.Lifecycle) error {
	h := &handler{disp: d, store: store, logger: logger}

	http.HandleFunc("/snapshot.bmp", h.serveBMP)
	http.HandleFunc("/snapshot/save", h.saveBMP)

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != http.ErrServerClosed {
					log.Fatal(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return nil
}

type handler struct {
	disp   display.Display
	store  *Store
	logger *zap.Logger
}

func (h *handler) serveBMP(w http.ResponseWriter, r *http.Request) {
	s, err := Take(h.disp)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	bs := s.Encode()
	w.Header().Set("Content-Type", "image/bmp")
	w.Header().Set("Content-Length", strconv.Itoa(len(bs)))

	if _, err := w.Write(bs); err != nil {
		h.logger.With(zap.Error(err)).Info("snapshot send failed")
	}
}

func (h *handler) saveBMP(w http.ResponseWriter, r *http.Request) {
	s, err := Take(h.disp)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	name, err := h.store.Save(s.Encode())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.logger.With(zap.String("file", name)).Debug("snapshot saved")
	_, _ = w.Write([]byte(name))
}
