// Package frameplot draws 3-D Cartesian coordinate frames — three
// coloured basis-vector arrows, optionally labelled — on a plotting
// canvas, given a rotation matrix and a translation vector.
//
// The rendering backend is a collaborator behind the render package's
// interfaces; this repository ships a static-image backend
// (render/vgplot) and an interactive HTML backend (render/echarts3d).
// A frame drawn once can be updated in place by passing its handle
// back through Config.Update, which mutates the same arrow and label
// objects rather than creating new ones.
package frameplot

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/frameplot/internal/geom"
	"github.com/banshee-data/frameplot/render"
)

// OrthonormalTol is the elementwise tolerance on R·Rᵀ = I accepted for
// rotation matrices.
const OrthonormalTol = 1e-4

// Defaults applied to arrows unless overridden through
// Config.ArrowStyle.
const (
	DefaultLineWidth = 2.0
	// DefaultHeadSize is the arrowhead length as a fraction of the
	// arrow length.
	DefaultHeadSize = 0.15
)

// MatrixIndexing selects whether the rows or the columns of the
// rotation matrix are the basis directions.
type MatrixIndexing int

const (
	// RowMajor treats each row of the rotation matrix as one basis
	// vector. This is the default.
	RowMajor MatrixIndexing = iota

	// ColumnMajor treats each column as one basis vector. The matrix
	// is transposed once on entry and handled as row-major after that.
	ColumnMajor
)

// LabelAlignment places a basis label relative to its arrow.
type LabelAlignment int

const (
	// AlignTail anchors the label at the arrow tip (tail + vector).
	// This is the default.
	AlignTail LabelAlignment = iota

	// AlignCenter anchors the label at the arrow midpoint.
	AlignCenter

	// AlignHead anchors the label at tail - vector.
	AlignHead
)

// Pose is a coordinate frame: an orthonormal rotation and a
// translation.
type Pose struct {
	Rotation    [3][3]float64
	Translation r3.Vec
}

// Config carries everything about a Plot call other than the pose.
// The zero value draws an unlabelled unit frame in red, green and
// blue.
type Config struct {
	// Lengths scales the basis vectors: nil means unit length, a
	// single value broadcasts to all three axes, three values apply
	// per axis. Any NaN resets the whole set to all-ones.
	Lengths []float64

	// Indexing selects row-major (default) or column-major reading of
	// Pose.Rotation.
	Indexing MatrixIndexing

	// Update, when non-nil, is a frame from a previous Plot call whose
	// objects are mutated in place instead of creating new ones.
	Update *Frame

	// LabelBasis turns the three basis labels on.
	LabelBasis bool

	// Labels overrides the default "X", "Y", "Z" texts. Ignored unless
	// LabelBasis is set.
	Labels [3]string

	// Colors holds one colour (applied to all arrows) or three. Nil
	// means red, green, blue.
	Colors []render.ColorSpec

	// LabelAlignment places labels at the arrow tip (default), the
	// midpoint, or mirrored behind the tail.
	LabelAlignment LabelAlignment

	// ArrowStyle and TextStyle carry overrides forwarded to the
	// backend. Arrow overrides take precedence over the line width and
	// head size defaults.
	ArrowStyle render.ArrowStyle
	TextStyle  render.TextStyle
}

// Frame is the handle to one plotted coordinate frame. It owns direct
// references to its group and primitives, so updates never need to
// scan the container for objects.
type Frame struct {
	group  render.Group
	arrows [3]render.Arrow
	labels []render.Label // empty or exactly three
}

// Group returns the container holding the frame's primitives.
func (f *Frame) Group() render.Group { return f.group }

// Arrows returns the frame's three basis arrows in X, Y, Z order.
func (f *Frame) Arrows() [3]render.Arrow { return f.arrows }

// Labels returns the frame's labels: empty when the frame is
// unlabelled, otherwise three in X, Y, Z order.
func (f *Frame) Labels() []render.Label { return f.labels }

var defaultLabels = [3]string{"X", "Y", "Z"}

var defaultColors = []render.ColorSpec{"red", "green", "blue"}

// Plot draws a coordinate frame for pose inside parent, or updates the
// frame referenced by cfg.Update in place. All validation happens
// before any object is created or mutated: an error means nothing was
// drawn or changed.
//
// NaN handling is deliberately asymmetric: a non-orthonormal rotation
// is an error, but a NaN anywhere in the translation resets it to the
// origin and a NaN anywhere in Lengths resets them to ones. Both
// fallbacks are silent.
func Plot(parent render.Container, pose Pose, cfg Config) (*Frame, error) {
	if parent == nil || !parent.Valid() {
		return nil, ErrInvalidParent
	}

	rot := pose.Rotation
	if cfg.Indexing == ColumnMajor {
		rot = geom.Transpose(rot)
	}
	if !geom.IsFinite(rot) {
		return nil, fmt.Errorf("%w: matrix has NaN or Inf elements", ErrInvalidRotation)
	}
	if !geom.IsOrthonormal(rot, OrthonormalTol) {
		return nil, fmt.Errorf("%w: R times its transpose is not the identity within %g", ErrInvalidRotation, OrthonormalTol)
	}

	lengths, err := resolveLengths(cfg.Lengths)
	if err != nil {
		return nil, err
	}

	colours, err := resolveColors(cfg.Colors)
	if err != nil {
		return nil, err
	}

	if cfg.Update != nil {
		if err := validateUpdateTarget(cfg.Update); err != nil {
			return nil, err
		}
	}

	translation := pose.Translation
	if geom.HasNaN(translation) {
		translation = r3.Vec{}
	}

	var vectors [3]r3.Vec
	for i := 0; i < 3; i++ {
		vectors[i] = r3.Scale(lengths[i], geom.Row(rot, i))
	}

	// Validation is done; everything below mutates backend objects.
	frame := cfg.Update
	if frame == nil {
		frame, err = newFrame(parent)
		if err != nil {
			return nil, err
		}
	} else if err := frame.group.SetParent(parent); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParent, err)
	}

	if err := frame.styleArrows(translation, vectors, colours, cfg.ArrowStyle); err != nil {
		return nil, err
	}

	if cfg.LabelBasis {
		if err := frame.placeLabels(translation, vectors, cfg); err != nil {
			return nil, err
		}
	} else if err := frame.dropLabels(); err != nil {
		return nil, err
	}

	return frame, nil
}

func resolveLengths(in []float64) ([3]float64, error) {
	ones := [3]float64{1, 1, 1}

	var out [3]float64
	switch len(in) {
	case 0:
		return ones, nil
	case 1:
		out = [3]float64{in[0], in[0], in[0]}
	case 3:
		copy(out[:], in)
	default:
		return out, fmt.Errorf("%w: got %d values", ErrInvalidLengths, len(in))
	}

	// A NaN anywhere resets the whole set, mirroring the translation
	// fallback. Checked before the sign so NaN never reaches the
	// comparison below.
	for _, v := range out {
		if math.IsNaN(v) {
			return ones, nil
		}
	}
	for _, v := range out {
		if v < 0 {
			return out, fmt.Errorf("%w: got %v", ErrInvalidLengths, v)
		}
	}
	return out, nil
}

func resolveColors(specs []render.ColorSpec) ([3]color.RGBA, error) {
	if len(specs) == 0 {
		specs = defaultColors
	}

	var out [3]color.RGBA
	switch len(specs) {
	case 1:
		c, err := specs[0].Resolve()
		if err != nil {
			return out, err
		}
		out = [3]color.RGBA{c, c, c}
	case 3:
		for i, s := range specs {
			c, err := s.Resolve()
			if err != nil {
				return out, err
			}
			out[i] = c
		}
	default:
		return out, fmt.Errorf("%w: got %d", ErrInvalidColorCount, len(specs))
	}
	return out, nil
}

func validateUpdateTarget(f *Frame) error {
	if f.group == nil {
		return fmt.Errorf("%w: frame has no group", ErrInvalidUpdateTarget)
	}
	for i, a := range f.arrows {
		if a == nil {
			return fmt.Errorf("%w: arrow %d missing", ErrInvalidUpdateTarget, i)
		}
	}
	if n := len(f.labels); n != 0 && n != 3 {
		return fmt.Errorf("%w: frame has %d labels, want 0 or 3", ErrInvalidUpdateTarget, n)
	}
	for i, l := range f.labels {
		if l == nil {
			return fmt.Errorf("%w: label %d missing", ErrInvalidUpdateTarget, i)
		}
	}
	return nil
}

func newFrame(parent render.Container) (*Frame, error) {
	group, err := parent.NewGroup()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParent, err)
	}

	frame := &Frame{group: group}
	for i := range frame.arrows {
		arrow, err := group.NewArrow()
		if err != nil {
			return nil, fmt.Errorf("creating arrow %d: %w", i, err)
		}
		frame.arrows[i] = arrow
	}
	return frame, nil
}

func (f *Frame) styleArrows(tail r3.Vec, vectors [3]r3.Vec, colours [3]color.RGBA, style render.ArrowStyle) error {
	width := DefaultLineWidth
	if style.LineWidth > 0 {
		width = style.LineWidth
	}
	head := DefaultHeadSize
	if style.HeadSize > 0 {
		head = style.HeadSize
	}

	for i, arrow := range f.arrows {
		arrow.SetTail(tail)
		arrow.SetDirection(vectors[i])
		arrow.SetColor(colours[i])
		arrow.SetLineWidth(width)
		arrow.SetHeadSize(head)

		for _, key := range sortedKeys(style.Extra) {
			if err := arrow.SetStyle(key, style.Extra[key]); err != nil {
				return &render.StyleError{Key: key, Cause: err}
			}
		}
	}
	return nil
}

func (f *Frame) placeLabels(tail r3.Vec, vectors [3]r3.Vec, cfg Config) error {
	texts := cfg.Labels
	if texts == ([3]string{}) {
		texts = defaultLabels
	}

	if len(f.labels) == 0 {
		for i := 0; i < 3; i++ {
			label, err := f.group.NewLabel()
			if err != nil {
				return fmt.Errorf("creating label %d: %w", i, err)
			}
			f.labels = append(f.labels, label)
		}
	}

	for i, label := range f.labels {
		label.SetPosition(labelAnchor(tail, vectors[i], cfg.LabelAlignment))
		label.SetText(texts[i])

		if cfg.TextStyle.FontSize > 0 {
			if err := label.SetStyle("font-size", cfg.TextStyle.FontSize); err != nil {
				return &render.StyleError{Key: "font-size", Cause: err}
			}
		}
		for _, key := range sortedKeys(cfg.TextStyle.Extra) {
			if err := label.SetStyle(key, cfg.TextStyle.Extra[key]); err != nil {
				return &render.StyleError{Key: key, Cause: err}
			}
		}
	}
	return nil
}

func (f *Frame) dropLabels() error {
	for _, label := range f.labels {
		if err := f.group.RemoveLabel(label); err != nil {
			return fmt.Errorf("removing label: %w", err)
		}
	}
	f.labels = nil
	return nil
}

func labelAnchor(tail, vector r3.Vec, align LabelAlignment) r3.Vec {
	switch align {
	case AlignCenter:
		return r3.Add(tail, r3.Scale(0.5, vector))
	case AlignHead:
		return r3.Sub(tail, vector)
	default:
		return r3.Add(tail, vector)
	}
}

func sortedKeys(m map[string]any) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
