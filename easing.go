package tilt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tanema/gween/ease"
)

// namedEasings maps lower-cased gween names to their functions.
var namedEasings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"inquad":       ease.InQuad,
	"outquad":      ease.OutQuad,
	"inoutquad":    ease.InOutQuad,
	"outinquad":    ease.OutInQuad,
	"incubic":      ease.InCubic,
	"outcubic":     ease.OutCubic,
	"inoutcubic":   ease.InOutCubic,
	"outincubic":   ease.OutInCubic,
	"inquart":      ease.InQuart,
	"outquart":     ease.OutQuart,
	"inoutquart":   ease.InOutQuart,
	"outinquart":   ease.OutInQuart,
	"inquint":      ease.InQuint,
	"outquint":     ease.OutQuint,
	"inoutquint":   ease.InOutQuint,
	"outinquint":   ease.OutInQuint,
	"insine":       ease.InSine,
	"outsine":      ease.OutSine,
	"inoutsine":    ease.InOutSine,
	"outinsine":    ease.OutInSine,
	"inexpo":       ease.InExpo,
	"outexpo":      ease.OutExpo,
	"inoutexpo":    ease.InOutExpo,
	"outinexpo":    ease.OutInExpo,
	"incirc":       ease.InCirc,
	"outcirc":      ease.OutCirc,
	"inoutcirc":    ease.InOutCirc,
	"outincirc":    ease.OutInCirc,
	"inelastic":    ease.InElastic,
	"outelastic":   ease.OutElastic,
	"inoutelastic": ease.InOutElastic,
	"outinelastic": ease.OutInElastic,
	"inback":       ease.InBack,
	"outback":      ease.OutBack,
	"inoutback":    ease.InOutBack,
	"outinback":    ease.OutInBack,
	"inbounce":     ease.InBounce,
	"outbounce":    ease.OutBounce,
	"inoutbounce":  ease.InOutBounce,
	"outinbounce":  ease.OutInBounce,
}

// cssKeywords are the CSS timing-function keywords expressed as Bézier curves.
var cssKeywords = map[string][4]float64{
	"ease":        {0.25, 0.1, 0.25, 1},
	"ease-in":     {0.42, 0, 1, 1},
	"ease-out":    {0, 0, 0.58, 1},
	"ease-in-out": {0.42, 0, 0.58, 1},
}

// ParseEasing resolves an easing description to a gween tween function.
// Accepted forms are the CSS keywords linear, ease, ease-in, ease-out and
// ease-in-out, gween function names such as "inOutCubic" or "outBounce"
// (case-insensitive), and "cubic-bezier(x1, y1, x2, y2)". The closing
// parenthesis of cubic-bezier may be omitted. An empty string yields
// DefaultEasing.
func ParseEasing(s string) (ease.TweenFunc, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		key = DefaultEasing
	}
	if fn, ok := namedEasings[key]; ok {
		return fn, nil
	}
	if pts, ok := cssKeywords[key]; ok {
		return CubicBezier(pts[0], pts[1], pts[2], pts[3]), nil
	}
	if args, ok := strings.CutPrefix(key, "cubic-bezier("); ok {
		args = strings.TrimSuffix(strings.TrimSpace(args), ")")
		parts := strings.Split(args, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("tilt: easing %q: cubic-bezier needs 4 values, got %d", s, len(parts))
		}
		var p [4]float64
		for i, part := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return nil, fmt.Errorf("tilt: easing %q: %w", s, err)
			}
			p[i] = v
		}
		if p[0] < 0 || p[0] > 1 || p[2] < 0 || p[2] > 1 {
			return nil, fmt.Errorf("tilt: easing %q: x control points must be in [0, 1]", s)
		}
		return CubicBezier(p[0], p[1], p[2], p[3]), nil
	}
	return nil, fmt.Errorf("tilt: unknown easing %q", s)
}

// CubicBezier returns a tween function following the CSS cubic-bezier curve
// with control points (x1, y1) and (x2, y2). The endpoints are fixed at
// (0, 0) and (1, 1).
func CubicBezier(x1, y1, x2, y2 float64) ease.TweenFunc {
	c := bezier{x1: x1, y1: y1, x2: x2, y2: y2}
	return func(t, b, ch, d float32) float32 {
		if d <= 0 {
			return b + ch
		}
		return b + ch*float32(c.at(float64(t/d)))
	}
}

type bezier struct {
	x1, y1, x2, y2 float64
}

// bezierSample evaluates one coordinate of the curve at parameter u.
func bezierSample(p1, p2, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*p1 + 3*inv*u*u*p2 + u*u*u
}

func bezierSlope(p1, p2, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*p1 + 6*inv*u*(p2-p1) + 3*u*u*(1-p2)
}

// at returns the curve's y for progress x in [0, 1].
func (c bezier) at(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return bezierSample(c.y1, c.y2, c.solve(x))
}

// solve finds the curve parameter whose x equals x. Newton's method first,
// then bisection when the slope is too flat to converge.
func (c bezier) solve(x float64) float64 {
	const epsilon = 1e-7

	u := x
	for i := 0; i < 8; i++ {
		dx := bezierSample(c.x1, c.x2, u) - x
		if math.Abs(dx) < epsilon {
			return u
		}
		slope := bezierSlope(c.x1, c.x2, u)
		if math.Abs(slope) < 1e-6 {
			break
		}
		u -= dx / slope
		if u < 0 || u > 1 {
			break
		}
	}

	lo, hi := 0.0, 1.0
	u = x
	for i := 0; i < 64 && hi-lo > epsilon; i++ {
		v := bezierSample(c.x1, c.x2, u)
		if math.Abs(v-x) < epsilon {
			return u
		}
		if v < x {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return u
}
