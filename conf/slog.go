//go:build slog && !glog

package conf

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

func checkLogger() {
	c := GetConfig()
	opt := new(slog.HandlerOptions)
	{
		opt.AddSource = c.GetBoolean("log.source", false)
		lever := new(slog.Level)
		if err := lever.UnmarshalText([]byte(c.GetString("log.level", "info"))); err == nil {
			opt.Level = lever
		} else {
			opt.Level = slog.LevelInfo
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opt)))
	i = adaptor{}
}

type adaptor struct {
}

func (a adaptor) Debugf(format string, v ...any) {
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug(fmt.Sprintf(format, v...))
	}
}

func (a adaptor) Info(v ...any) {
	if len(v) > 0 {
		if f, ok := v[0].(string); ok {
			slog.Info(f, v[1:]...)
			return
		}
	}
	slog.Info("", v...)
}

func (a adaptor) Infof(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...))
}

func (a adaptor) Warn(v ...any) {
	if len(v) > 0 {
		if f, ok := v[0].(string); ok {
			slog.Warn(f, v[1:]...)
			return
		}
	}
	slog.Warn("", v...)
}

func (a adaptor) Warnf(format string, v ...any) {
	slog.Warn(fmt.Sprintf(format, v...))
}

func (a adaptor) Error(v ...any) {
	if len(v) > 0 {
		if f, ok := v[0].(string); ok {
			slog.Error(f, v[1:]...)
			return
		}
	}
	slog.Error("", v...)
}

func (a adaptor) Errorf(format string, v ...any) {
	slog.Error(fmt.Sprintf(format, v...))
}
