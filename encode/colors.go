package encode

import (
	"github.com/fatih/color"
)

type ColorAttr int

const (
	TagColor ColorAttr = iota
	AttrNameColor
	AttrValueColor
	TextColor
	CommentColor
	PIColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			TagColor:       color.RGB(128, 168, 196).SprintfFunc(),
			AttrNameColor:  color.RGB(196, 96, 16).SprintfFunc(),
			AttrValueColor: color.RGB(8, 196, 16).SprintfFunc(),
			TextColor:      colorDefault,
			CommentColor:   color.BlueString,
			PIColor:        color.RGB(168, 0, 196).SprintfFunc(),
		},
	}
}

func colorDefault(s string, args ...any) string {
	if len(args) == 0 {
		return s
	}
	return s
}

func (e *Encoder) color(attr ColorAttr, s string) string {
	if e.colors == nil {
		return s
	}
	f := e.colors.Map[attr]
	if f == nil {
		f = e.colors.Default
	}
	if f == nil {
		return s
	}
	return f("%s", s)
}
