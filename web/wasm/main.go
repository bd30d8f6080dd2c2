//go:build js && wasm

package main

import (
	"os"
	"syscall/js"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
	"github.com/cwbudde/algo-dsp-viz/dsp/interp"
	"github.com/cwbudde/algo-dsp-viz/dsp/signal"
	"github.com/cwbudde/algo-dsp-viz/internal/session"
	log "github.com/sirupsen/logrus"
)

var (
	sess  *session.Session
	funcs []js.Func
)

// Point sets cross the boundary as flat Float64Arrays [x0, y0, x1, y1, ...].
func main() {
	log.SetOutput(os.Stderr)
	logger := log.WithFields(log.Fields{"component": "wasm"})

	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		var opts []core.Option
		if len(args) > 0 {
			opts = append(opts, core.WithXPrecision(args[0].Int()))
		}
		if len(args) > 1 {
			opts = append(opts, core.WithYPrecision(args[1].Int()))
		}
		if len(args) > 2 {
			opts = append(opts, core.WithSeed(uint64(args[2].Int())))
		}
		sess = session.New(logger, session.Config{Options: opts})
		return js.Null()
	}))

	api.Set("presets", export(func([]js.Value) any {
		names := signal.PresetNames()
		arr := js.Global().Get("Array").New(len(names))
		for i, n := range names {
			arr.SetIndex(i, n)
		}
		return arr
	}))

	api.Set("setPoints", export(func(args []js.Value) any {
		if sess == nil || len(args) < 2 {
			return js.Null()
		}
		sess.SetPoints(args[0].String(), toPoints(args[1]))
		return js.Null()
	}))

	api.Set("setPoint", export(func(args []js.Value) any {
		if sess == nil || len(args) < 3 {
			return js.Null()
		}
		return errorOrNull(sess.SetPoint(args[0].String(), args[1].Float(), args[2].Float()))
	}))

	api.Set("removePoint", export(func(args []js.Value) any {
		if sess == nil || len(args) < 2 {
			return false
		}
		ok, err := sess.RemovePoint(args[0].String(), args[1].Float())
		if err != nil {
			return err.Error()
		}
		return ok
	}))

	api.Set("setTimeOffset", export(func(args []js.Value) any {
		if sess == nil || len(args) < 2 {
			return js.Null()
		}
		return errorOrNull(sess.SetTimeOffset(args[0].String(), args[1].Float()))
	}))

	api.Set("points", export(func(args []js.Value) any {
		if sess == nil || len(args) < 1 {
			return emptyArray()
		}
		var opts []signal.ReadOption
		if len(args) > 1 && args[1].Bool() {
			opts = append(opts, signal.TimeReversed())
		}
		if len(args) > 2 && args[2].Bool() {
			opts = append(opts, signal.WithOffset())
		}
		pts, err := sess.Points(args[0].String(), opts...)
		return pointsOrError(pts, err)
	}))

	api.Set("generate", export(func(args []js.Value) any {
		if sess == nil || len(args) < 5 {
			return js.Null()
		}
		p := args[1]
		preset := signal.PresetConfig{
			Name:      p.Get("name").String(),
			Amplitude: floatField(p, "amplitude"),
			Frequency: floatField(p, "frequency"),
			Phase:     floatField(p, "phase"),
			Period:    floatField(p, "period"),
			Rate:      floatField(p, "rate"),
			At:        floatField(p, "at"),
		}
		return errorOrNull(sess.Generate(args[0].String(), preset, args[2].Float(), args[3].Float(), args[4].Float()))
	}))

	api.Set("samples", export(func(args []js.Value) any {
		if sess == nil || len(args) < 2 {
			return emptyArray()
		}
		return pointsOrError(sess.Samples(args[0].String(), args[1].Float()))
	}))

	api.Set("regression", export(func(args []js.Value) any {
		if sess == nil || len(args) < 2 {
			return js.Null()
		}
		fit, err := sess.Regression(args[0].String(), args[1].Int())
		if err != nil {
			return err.Error()
		}
		out := js.Global().Get("Object").New()
		out.Set("level", fit.Level)
		out.Set("coefs", toFloat64Array(fit.Coefs))
		out.Set("points", fromPoints(fit.Points))
		out.Set("residual", fit.Residual)
		return out
	}))

	api.Set("newton", export(func(args []js.Value) any {
		if sess == nil || len(args) < 1 {
			return emptyArray()
		}
		var targets []float64
		if len(args) > 1 {
			targets = toFloats(args[1])
		}
		return pointsOrError(sess.Newton(args[0].String(), targets...))
	}))

	api.Set("hold", export(func(args []js.Value) any {
		if sess == nil || len(args) < 6 {
			return emptyArray()
		}
		hold := interp.HoldZeroOrder
		if args[1].String() == "first-order" {
			hold = interp.HoldFirstOrder
		}
		return pointsOrError(sess.Hold(args[0].String(), hold,
			args[2].Float(), args[3].Float(), args[4].Float(), args[5].Float()))
	}))

	api.Set("holdLine", export(func(args []js.Value) any {
		if len(args) < 1 {
			return emptyArray()
		}
		return fromPoints(interp.ZeroOrderHoldLine(toPoints(args[0])))
	}))

	api.Set("convolve", export(func(args []js.Value) any {
		if sess == nil || len(args) < 2 {
			return emptyArray()
		}
		return pointsOrError(sess.Convolve(args[0].String(), args[1].String()))
	}))

	api.Set("convolutionStep", export(func(args []js.Value) any {
		if sess == nil || len(args) < 3 {
			return emptyArray()
		}
		return pointsOrError(sess.ConvolutionStep(args[0].String(), args[1].String(), args[2].Float()))
	}))

	api.Set("noise", export(func(args []js.Value) any {
		if sess == nil || len(args) < 6 {
			return js.Null()
		}
		return errorOrNull(sess.GenerateNoise(args[0].String(),
			args[1].Float(), args[2].Float(), args[3].Float(), args[4].Float(), args[5].Float()))
	}))

	api.Set("noisify", export(func(args []js.Value) any {
		if sess == nil || len(args) < 5 {
			return js.Null()
		}
		return errorOrNull(sess.Noisify(args[0].String(), args[1].String(), args[2].String(),
			args[3].Float(), args[4].Float()))
	}))

	api.Set("correlate", export(func(args []js.Value) any {
		if sess == nil || len(args) < 2 {
			return js.Null()
		}
		m, err := sess.Correlate(args[0].String(), args[1].String())
		if err != nil {
			return err.Error()
		}
		out := js.Global().Get("Object").New()
		out.Set("lag", m.Lag)
		out.Set("peak", m.Peak)
		out.Set("similarity", m.Similarity)
		out.Set("coefficient", m.Coefficient)
		return out
	}))

	js.Global().Set("AlgoDSPViz", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}

func errorOrNull(err error) any {
	if err != nil {
		return err.Error()
	}
	return js.Null()
}

func pointsOrError(pts []signal.Point, err error) any {
	if err != nil {
		return err.Error()
	}
	return fromPoints(pts)
}

func floatField(v js.Value, key string) float64 {
	f := v.Get(key)
	if f.IsUndefined() || f.IsNull() {
		return 0
	}
	return f.Float()
}

func emptyArray() js.Value {
	return js.Global().Get("Float64Array").New(0)
}

func toFloats(v js.Value) []float64 {
	out := make([]float64, v.Length())
	for i := range out {
		out[i] = v.Index(i).Float()
	}
	return out
}

func toFloat64Array(v []float64) js.Value {
	arr := js.Global().Get("Float64Array").New(len(v))
	for i, f := range v {
		arr.SetIndex(i, f)
	}
	return arr
}

func toPoints(v js.Value) []signal.Point {
	flat := toFloats(v)
	out := make([]signal.Point, len(flat)/2)
	for i := range out {
		out[i] = signal.Point{X: flat[2*i], Y: flat[2*i+1]}
	}
	return out
}

func fromPoints(pts []signal.Point) js.Value {
	flat := make([]float64, 0, 2*len(pts))
	for _, p := range pts {
		flat = append(flat, p.X, p.Y)
	}
	return toFloat64Array(flat)
}
