package slotstore

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/stowage/coord"
)

// logger wraps slog.Logger with the store's identity and consistent field
// names for every operation.
type logger struct {
	*slog.Logger
	base *slog.Logger // as configured, before store attributes
}

func newLogger(l *slog.Logger, id uuid.UUID) *logger {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}

	return &logger{Logger: l.With("store", id.String()), base: l}
}

// with adds attributes while keeping the configured base.
func (l *logger) with(args ...any) *logger {
	return &logger{Logger: l.Logger.With(args...), base: l.base}
}

func (l *logger) logLoad(at coord.Position3D, err error) {
	if err != nil {
		l.Warn("load rejected", "x", at.X, "y", at.Y, "error", err)
		return
	}
	l.Debug("load completed", "x", at.X, "y", at.Y, "z", at.Z)
}

func (l *logger) logUnload(at coord.Position3D, err error) {
	if err != nil {
		l.Warn("unload rejected", "x", at.X, "y", at.Y, "error", err)
		return
	}
	l.Debug("unload completed", "x", at.X, "y", at.Y, "z", at.Z)
}

func (l *logger) logMove(from, to coord.Position, err error) {
	if err != nil {
		l.Warn("move rejected", "from", from.String(), "to", to.String(), "error", err)
		return
	}
	l.Debug("move completed", "from", from.String(), "to", to.String())
}

func (l *logger) logGroupingFailed(name string, at coord.Position3D) {
	l.Warn("grouping failed", "grouping", name, "x", at.X, "y", at.Y, "z", at.Z)
}

func (l *logger) logCreated(b coord.Bounds, restrictions, groupings int) {
	l.Info("store created",
		"x_size", b.XSize(),
		"y_size", b.YSize(),
		"height_size", b.HeightSize(),
		"restrictions", restrictions,
		"groupings", groupings,
	)
}

func (l *logger) logTransfer() {
	l.Info("ownership transferred")
}

func (l *logger) logClone(cloneID uuid.UUID, items int) {
	l.Info("store cloned", "clone", cloneID.String(), "items", items)
}
