package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"zonetext/asset"
)

func padKey(key string) string {
	if len(key) >= 28 {
		return key
	}
	return key + strings.Repeat(" ", 28-len(key))
}

func TestDumperWriteMenu(t *testing.T) {
	white := Color{1, 1, 1, 1}
	menu := &MenuDef{
		Window: WindowDef{
			Name:      "main_menu",
			Rect:      Rect{X: 0, Y: 0, W: 640, H: 480},
			ForeColor: white,
		},
		FullScreen: true,
		VisibleExp: &Statement{Entries: []Entry{IntEntry(1)}},
		Items: []*ItemDef{
			{
				Window: WindowDef{Name: "button_play", ForeColor: white},
				Text:   "@MENU_PLAY",
			},
		},
	}

	sb := &strings.Builder{}
	dumper := NewDumper(sb)
	dumper.WriteMenu(menu)
	assert.NoError(t, dumper.Err())

	expected := strings.Join(
		[]string{
			"menuDef",
			"{",
			"\t" + padKey("name") + `"main_menu"`,
			"\t" + padKey("fullscreen") + "1",
			"\t" + padKey("rect") + "0 0 640 480 0 0",
			"\t" + padKey("visible") + "when 1;",
			"\titemDef",
			"\t{",
			"\t\t" + padKey("name") + `"button_play"`,
			"\t\t" + padKey("text") + `"@MENU_PLAY"`,
			"\t\t" + padKey("rect") + "0 0 0 0 0 0",
			"\t}",
			"}",
			"",
		},
		"\n",
	)
	assert.Equal(t, expected, sb.String())
}

func TestDumperDefaultSuppression(t *testing.T) {
	menu := &MenuDef{
		Window: WindowDef{ForeColor: Color{1, 1, 1, 1}},
	}

	sb := &strings.Builder{}
	NewDumper(sb).WriteMenu(menu)

	// only the always-written rect survives on an all-default menu
	assert.NotContains(t, sb.String(), "fullscreen")
	assert.NotContains(t, sb.String(), "forecolor")
	assert.Contains(t, sb.String(), padKey("rect")+"0 0 0 0 0 0")
}

func TestDumperFlagsProperty(t *testing.T) {
	menu := &MenuDef{
		Window: WindowDef{
			ForeColor:      Color{1, 1, 1, 1},
			OwnerDrawFlags: (1 << 2) | (1 << 5),
		},
	}

	sb := &strings.Builder{}
	NewDumper(sb).WriteMenu(menu)

	assert.Contains(t, sb.String(), padKey("ownerdrawFlag")+"2\n")
	assert.Contains(t, sb.String(), padKey("ownerdrawFlag")+"5\n")
}

func TestDumperMaterialCommaPrefix(t *testing.T) {
	menu := &MenuDef{
		Window: WindowDef{
			ForeColor:  Color{1, 1, 1, 1},
			Background: &asset.Material{Name: ",inline_background"},
		},
	}

	sb := &strings.Builder{}
	NewDumper(sb).WriteMenu(menu)

	assert.Contains(t, sb.String(), padKey("background")+`"inline_background"`)
}

func TestDumperKeywordProperties(t *testing.T) {
	menu := &MenuDef{
		Window: WindowDef{
			ForeColor:   Color{1, 1, 1, 1},
			StaticFlags: WindowFlagDecoration | WindowFlagPopup,
		},
	}

	sb := &strings.Builder{}
	NewDumper(sb).WriteMenu(menu)

	assert.Contains(t, sb.String(), "decoration")
	assert.Contains(t, sb.String(), "popup")
	assert.NotContains(t, sb.String(), "screenSpace")
}

func TestDumperStartEnd(t *testing.T) {
	sb := &strings.Builder{}
	dumper := NewDumper(sb)
	dumper.Start()
	dumper.End()
	assert.Equal(t, "{\n}\n", sb.String())
}

func TestDumperItemSoundAliasAndDvarFlags(t *testing.T) {
	menu := &MenuDef{
		Window: WindowDef{ForeColor: Color{1, 1, 1, 1}},
		Items: []*ItemDef{
			{
				Window:     WindowDef{ForeColor: Color{1, 1, 1, 1}},
				FocusSound: &asset.SndAliasList{AliasName: "ui_focus"},
				EnableDvar: "ui_allow_play",
				DvarFlags:  ItemDvarFlagEnable,
			},
		},
	}

	sb := &strings.Builder{}
	NewDumper(sb).WriteMenu(menu)

	assert.Contains(t, sb.String(), padKey("focusSound")+`"ui_focus"`)
	assert.Contains(t, sb.String(), padKey("enableDvar")+`"ui_allow_play"`)
	assert.NotContains(t, sb.String(), "disableDvar")
}
