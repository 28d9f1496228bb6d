// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// SetDefaultLogger sets the default logger to one that writes
// colored level labels to [os.Stderr], filtered by [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// Handler is a [slog.Handler] that prefixes each record with a
// level label colored for the terminal it writes to.
type Handler struct {
	slog.Handler
	out *termenv.Output
}

// NewHandler returns a new [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	out := termenv.NewOutput(w)
	return &Handler{
		Handler: slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: &UserLevel,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if len(groups) == 0 && a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				if len(groups) == 0 && a.Key == slog.LevelKey {
					lvl, ok := a.Value.Any().(slog.Level)
					if ok {
						a.Value = slog.StringValue(LevelString(out, lvl))
					}
				}
				return a
			},
		}),
		out: out,
	}
}

// Enabled returns whether the given level is at or above [UserLevel].
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

// LevelString returns the given level as a string colored
// according to its severity for the given output.
func LevelString(out *termenv.Output, level slog.Level) string {
	s := level.String()
	switch {
	case level >= slog.LevelError:
		return out.String(s).Foreground(out.Color("#ba1a1a")).Bold().String()
	case level >= slog.LevelWarn:
		return out.String(s).Foreground(out.Color("#7d5700")).String()
	case level >= slog.LevelInfo:
		return out.String(s).Foreground(out.Color("#006a6a")).String()
	default:
		return out.String(s).Faint().String()
	}
}
