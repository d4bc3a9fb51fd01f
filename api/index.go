package handler

import (
	"net/http"
	"sync"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
	transport "hotel/transport/http"
)

var (
	server    *transport.HTTP
	setupOnce sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	setupOnce.Do(func() {
		cfg := config.Get()

		logger.Configure(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
