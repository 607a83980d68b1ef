package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given the global logger", t, func() {
		So(Init(), ShouldBeNil)
		So(Sync(), ShouldBeNil)

		Convey("Then Get and Named return usable loggers", func() {
			So(Get(), ShouldNotBeNil)
			So(Named("test"), ShouldNotBeNil)
			Named("test").Info(context.Background(), "test message", String("k", "v"))
		})
	})
}

func TestLoggerOutput(t *testing.T) {
	Convey("Given a logger writing to a buffer at info level", t, func() {
		var buf bytes.Buffer
		var level slog.LevelVar
		l := New(&buf, &level)
		ctx := context.Background()

		Convey("When logging with fields", func() {
			l.Named("allocator").Info(ctx, "groups allocated",
				Int("groups", 3), Bool("sorted", true), Error(errors.New("boom")))
			out := buf.String()

			Convey("Then fields, component and source are rendered", func() {
				So(out, ShouldContainSubstring, "groups allocated")
				So(out, ShouldContainSubstring, "groups=3")
				So(out, ShouldContainSubstring, "sorted=true")
				So(out, ShouldContainSubstring, "error=boom")
				So(out, ShouldContainSubstring, "component=allocator")
				So(out, ShouldContainSubstring, "logger_test.go:")
			})
		})

		Convey("When logging below the level", func() {
			l.Debug(ctx, "hidden")

			Convey("Then nothing is written", func() {
				So(buf.Len(), ShouldEqual, 0)
			})
		})

		Convey("When the level is lowered", func() {
			level.Set(slog.LevelDebug)
			l.Debug(ctx, "visible")

			Convey("Then debug records appear", func() {
				So(strings.Contains(buf.String(), "visible"), ShouldBeTrue)
			})
		})
	})
}

func TestParseLevel(t *testing.T) {
	Convey("Given level names", t, func() {
		Convey("Then known names parse case-insensitively", func() {
			for in, want := range map[string]slog.Level{
				"debug": slog.LevelDebug, "INFO": slog.LevelInfo, "": slog.LevelInfo,
				"warning": slog.LevelWarn, " Error ": slog.LevelError,
			} {
				got, err := ParseLevel(in)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, want)
			}
		})

		Convey("Then unknown names fail", func() {
			So(SetLevelString("loud"), ShouldNotBeNil)
		})
	})
}

func TestNop(t *testing.T) {
	Convey("Given the nop logger", t, func() {
		l := Nop()

		Convey("Then it accepts calls and stays a nop when named", func() {
			l.Error(context.Background(), "ignored", String("k", "v"))
			So(l.Named("x"), ShouldEqual, l)
		})
	})
}
