package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"

	"github.com/Moefedaily/Brief-creation-groupe/internal/config"
	"github.com/Moefedaily/Brief-creation-groupe/pkg/logger"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestNewHandler(t *testing.T) {
	convey.Convey("Given a handler built from default config", t, func() {
		cfg := config.New()
		cfg.RandomSeed = 11
		h := newHandler(cfg, logger.Nop())

		convey.Convey("When checking health", func() {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
		})

		convey.Convey("When creating a roster", func() {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest("POST", "/rosters", strings.NewReader(`{"name":"Promo"}`)))
			convey.So(w.Code, convey.ShouldEqual, http.StatusCreated)
		})
	})
}

func TestRegisterRuntimeCollectors(t *testing.T) {
	convey.Convey("Given a fresh registry", t, func() {
		reg := prometheus.NewRegistry()

		convey.Convey("When registering runtime collectors twice", func() {
			convey.So(func() {
				registerRuntimeCollectors(reg)
				registerRuntimeCollectors(reg)
			}, convey.ShouldNotPanic)

			convey.Convey("Then go metrics are gathered", func() {
				families, err := reg.Gather()
				convey.So(err, convey.ShouldBeNil)
				found := false
				for _, f := range families {
					if f.GetName() == "go_goroutines" {
						found = true
					}
				}
				convey.So(found, convey.ShouldBeTrue)
			})
		})
	})
}

func TestRunShutsDownOnCancel(t *testing.T) {
	convey.Convey("Given a running server on an ephemeral port", t, func() {
		cfg := config.New()
		cfg.Addr = "127.0.0.1:0"
		ctx, cancel := context.WithCancel(context.Background())

		convey.Convey("When the context is cancelled", func() {
			done := make(chan error, 1)
			go func() { done <- run(ctx, cfg) }()
			cancel()

			convey.Convey("Then run returns without error", func() {
				convey.So(<-done, convey.ShouldBeNil)
			})
		})
	})
}
