// Package config decodes smalltext widget definitions from TOML or YAML.
//
// TOML layout:
//
//	text = "Hello"
//
//	[[style]]
//	target = "single:0"
//	fg = "black"
//	bg = "white"
//	attrs = ["bold"]
//
//	[animation.flash]
//	repeat = "once"     # once | infinite
//	advance = "auto"    # auto | manual
//
//	[[animation.flash.step]]
//	duration = "100ms"
//
//	[[animation.flash.step.rule]]
//	target = "untouched"
//	fg = "red"
//	add = ["bold"]
//
// YAML uses the same keys.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/smalltext/smalltext"
)

// Format selects the decoder
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

// ErrUnknownFormat is returned when a file extension maps to no decoder
var ErrUnknownFormat = errors.New("unknown config format")

// File mirrors the on-disk definition
type File struct {
	Text       string                     `toml:"text" yaml:"text"`
	Styles     []RuleConfig               `toml:"style" yaml:"style"`
	Animations map[string]AnimationConfig `toml:"animation" yaml:"animation"`
}

// RuleConfig is one static rule
type RuleConfig struct {
	Target  string   `toml:"target" yaml:"target"`
	Fg      string   `toml:"fg" yaml:"fg"`
	Bg      string   `toml:"bg" yaml:"bg"`
	Attrs   []string `toml:"attrs" yaml:"attrs"`
	NoAttrs []string `toml:"no_attrs" yaml:"no_attrs"`
}

// AnimationConfig is one keyed animation
type AnimationConfig struct {
	Repeat  string       `toml:"repeat" yaml:"repeat"`
	Advance string       `toml:"advance" yaml:"advance"`
	Steps   []StepConfig `toml:"step" yaml:"step"`
}

// StepConfig is one timed step
type StepConfig struct {
	Duration string        `toml:"duration" yaml:"duration"`
	Rules    []DeltaConfig `toml:"rule" yaml:"rule"`
}

// DeltaConfig is one step rule
type DeltaConfig struct {
	Target     string   `toml:"target" yaml:"target"`
	Fg         string   `toml:"fg" yaml:"fg"`
	Bg         string   `toml:"bg" yaml:"bg"`
	ClearFg    bool     `toml:"clear_fg" yaml:"clear_fg"`
	ClearBg    bool     `toml:"clear_bg" yaml:"clear_bg"`
	Add        []string `toml:"add" yaml:"add"`
	Remove     []string `toml:"remove" yaml:"remove"`
	RemoveAll  bool     `toml:"remove_all" yaml:"remove_all"`
	ClearAttrs bool     `toml:"clear_attrs" yaml:"clear_attrs"`
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Load reads and decodes a definition file
func Load(path string) (smalltext.TextStyle, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return smalltext.TextStyle{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return smalltext.TextStyle{}, fmt.Errorf("failed to read config: %w", err)
	}
	style, err := Parse(data, format)
	if err != nil {
		return smalltext.TextStyle{}, fmt.Errorf("%s: %w", path, err)
	}
	return style, nil
}

// Parse decodes data and converts it to a widget definition, unknown keys are rejected
func Parse(data []byte, format Format) (smalltext.TextStyle, error) {
	var f File
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return smalltext.TextStyle{}, fmt.Errorf("failed to decode toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return smalltext.TextStyle{}, fmt.Errorf("failed to decode yaml: %w", err)
		}
	default:
		return smalltext.TextStyle{}, ErrUnknownFormat
	}
	return f.TextStyle()
}

// TextStyle converts the decoded file
func (f File) TextStyle() (smalltext.TextStyle, error) {
	out := smalltext.TextStyle{
		Text:       f.Text,
		Rules:      make([]smalltext.Rule, 0, len(f.Styles)),
		Animations: make(map[string]smalltext.AnimationStyle, len(f.Animations)),
	}

	for i, rc := range f.Styles {
		rule, err := rc.rule()
		if err != nil {
			return smalltext.TextStyle{}, fmt.Errorf("style[%d]: %w", i, err)
		}
		out.Rules = append(out.Rules, rule)
	}

	for key, ac := range f.Animations {
		anim, err := ac.animation()
		if err != nil {
			return smalltext.TextStyle{}, fmt.Errorf("animation %q: %w", key, err)
		}
		out.Animations[key] = anim
	}
	return out, nil
}

func (rc RuleConfig) rule() (smalltext.Rule, error) {
	target, err := smalltext.ParseTarget(rc.Target)
	if err != nil {
		return smalltext.Rule{}, err
	}
	fg, err := ParseColor(rc.Fg)
	if err != nil {
		return smalltext.Rule{}, err
	}
	bg, err := ParseColor(rc.Bg)
	if err != nil {
		return smalltext.Rule{}, err
	}
	attrs, err := ParseAttrs(rc.Attrs)
	if err != nil {
		return smalltext.Rule{}, err
	}
	noAttrs, err := ParseAttrs(rc.NoAttrs)
	if err != nil {
		return smalltext.Rule{}, err
	}
	return smalltext.Rule{
		Target: target,
		Style:  smalltext.Style{Fg: fg, Bg: bg, Attrs: attrs, NoAttrs: noAttrs},
	}, nil
}

func (ac AnimationConfig) animation() (smalltext.AnimationStyle, error) {
	var anim smalltext.AnimationStyle

	switch strings.ToLower(ac.Repeat) {
	case "", "once":
		anim.Repeat = smalltext.RepeatOnce
	case "infinite":
		anim.Repeat = smalltext.RepeatInfinite
	default:
		return anim, fmt.Errorf("unknown repeat mode %q", ac.Repeat)
	}

	switch strings.ToLower(ac.Advance) {
	case "", "auto":
		anim.Advance = smalltext.AdvanceAuto
	case "manual":
		anim.Advance = smalltext.AdvanceManual
	default:
		return anim, fmt.Errorf("unknown advance mode %q", ac.Advance)
	}

	anim.Steps = make([]smalltext.Step, 0, len(ac.Steps))
	for i, sc := range ac.Steps {
		step, err := sc.step()
		if err != nil {
			return anim, fmt.Errorf("step[%d]: %w", i, err)
		}
		anim.Steps = append(anim.Steps, step)
	}
	return anim, nil
}

func (sc StepConfig) step() (smalltext.Step, error) {
	var step smalltext.Step
	if sc.Duration != "" {
		d, err := time.ParseDuration(sc.Duration)
		if err != nil {
			return step, fmt.Errorf("invalid duration: %w", err)
		}
		step.Duration = d
	}

	step.Rules = make([]smalltext.StepRule, 0, len(sc.Rules))
	for i, dc := range sc.Rules {
		rule, err := dc.stepRule()
		if err != nil {
			return step, fmt.Errorf("rule[%d]: %w", i, err)
		}
		step.Rules = append(step.Rules, rule)
	}
	return step, nil
}

func (dc DeltaConfig) stepRule() (smalltext.StepRule, error) {
	target, err := smalltext.ParseTarget(dc.Target)
	if err != nil {
		return smalltext.StepRule{}, err
	}
	fg, err := ParseColor(dc.Fg)
	if err != nil {
		return smalltext.StepRule{}, err
	}
	bg, err := ParseColor(dc.Bg)
	if err != nil {
		return smalltext.StepRule{}, err
	}
	add, err := ParseAttrs(dc.Add)
	if err != nil {
		return smalltext.StepRule{}, err
	}
	remove, err := ParseAttrs(dc.Remove)
	if err != nil {
		return smalltext.StepRule{}, err
	}
	return smalltext.StepRule{
		Target: target,
		Delta: smalltext.StyleDelta{
			Fg:         fg,
			Bg:         bg,
			ClearFg:    dc.ClearFg,
			ClearBg:    dc.ClearBg,
			Add:        add,
			Remove:     remove,
			RemoveAll:  dc.RemoveAll,
			ClearAttrs: dc.ClearAttrs,
		},
	}, nil
}
