package chain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-pix/pix/border"
	"github.com/cwbudde/algo-pix/pix/core"
	"github.com/cwbudde/algo-pix/pix/kernel"
)

// Params holds the parsed parameters for a single chain node.
type Params struct {
	ID       string
	Type     string
	Bypassed bool
	Num      map[string]float64
	Str      map[string]string
}

// GetNum safely extracts a numeric parameter, returning def if missing or invalid.
func (p Params) GetNum(key string, def float64) float64 {
	if p.Num == nil {
		return def
	}

	v, ok := p.Num[key]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}

	return v
}

// GetInt is GetNum truncated toward zero.
func (p Params) GetInt(key string, def int) int {
	return int(p.GetNum(key, float64(def)))
}

// GetStr returns a string parameter, or def if missing.
func (p Params) GetStr(key, def string) string {
	if v, ok := p.Str[key]; ok {
		return v
	}
	return def
}

// policy returns the "border" parameter.
func (p Params) policy() (border.Policy, error) {
	return border.Parse(p.GetStr("border", border.Reflect.String()))
}

// method returns the "method" parameter as an option.
func (p Params) method() (core.Option, error) {
	m, err := core.ParseMethod(p.GetStr("method", core.MethodDirect.String()))
	if err != nil {
		return nil, err
	}
	return core.WithMethod(m), nil
}

// angles parses a comma-separated "angles" parameter, e.g. "0,90".
func (p Params) angles(def []kernel.Angle) ([]kernel.Angle, error) {
	raw, ok := p.Str["angles"]
	if !ok {
		return def, nil
	}
	var out []kernel.Angle
	for field := range strings.SplitSeq(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("chain: angle %q: %w", field, err)
		}
		out = append(out, kernel.Angle(v))
	}
	return out, nil
}

func parseNodeParams(raw map[string]any) (map[string]float64, map[string]string) {
	num := map[string]float64{}
	str := map[string]string{}

	for k, v := range raw {
		switch t := v.(type) {
		case float64:
			num[k] = t
		case string:
			str[k] = t
		case bool:
			if t {
				num[k] = 1
			} else {
				num[k] = 0
			}
		}
	}

	return num, str
}
