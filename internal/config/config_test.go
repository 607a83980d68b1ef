package config_test

import (
	"errors"
	"testing"

	"github.com/Moefedaily/Brief-creation-groupe/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.ShuffleMaxAttempts, convey.ShouldEqual, 10)
			convey.So(cfg.RandomSeed, convey.ShouldEqual, 0)
			convey.So(cfg.DedupeSize, convey.ShouldEqual, 10_000)
			convey.So(cfg.DefaultGroupPrefix, convey.ShouldEqual, "Group")
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs with one invalid field", t, func() {
		cases := map[string]func(*config.Config){
			"addr":                 func(c *config.Config) { c.Addr = "" },
			"shuffle_max_attempts": func(c *config.Config) { c.ShuffleMaxAttempts = 0 },
			"dedupe_size":          func(c *config.Config) { c.DedupeSize = -1 },
			"default_group_prefix": func(c *config.Config) { c.DefaultGroupPrefix = "" },
		}

		for field, mutate := range cases {
			cfg := config.New()
			mutate(cfg)
			err := cfg.Validate()

			convey.So(err, convey.ShouldNotBeNil)
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, field)
		}
	})
}
