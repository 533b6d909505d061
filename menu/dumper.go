package menu

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"zonetext/asset"
	"zonetext/infostring"
)

type (
	// Dumper writes menu definitions in the engine's menu text dialect.
	// Write errors are sticky; check Err once after dumping.
	Dumper struct {
		w         io.Writer
		keyColumn int
		indent    int
		err       error
	}
)

func NewDumper(w io.Writer) *Dumper {
	return &Dumper{
		w:         w,
		keyColumn: infostring.DefaultKeyColumn,
	}
}

func (r *Dumper) SetKeyColumn(keyColumn int) {
	r.keyColumn = keyColumn
}

func (r *Dumper) Err() error {
	return r.err
}

func (r *Dumper) Start() {
	r.write("{\n")
	r.indent++
}

func (r *Dumper) End() {
	r.indent--
	r.writeIndent()
	r.write("}\n")
}

func (r *Dumper) WriteMenu(menu *MenuDef) {
	r.writeIndent()
	r.write("menuDef\n")
	r.writeIndent()
	r.write("{\n")
	r.indent++

	r.writeMenuData(menu)

	r.indent--
	r.writeIndent()
	r.write("}\n")
}

func (r *Dumper) write(text string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, text)
}

func (r *Dumper) writeIndent() {
	r.write(strings.Repeat("\t", r.indent))
}

func (r *Dumper) writeKey(key string) {
	r.write(key)
	for i := len(key); i < r.keyColumn; i++ {
		r.write(" ")
	}
}

func formatFloat(value float32) string {
	return strconv.FormatFloat(float64(value), 'g', -1, 32)
}

func floatsDiffer(a float32, b float32) bool {
	return math.Abs(float64(a)-float64(b)) >= 1e-9
}

func (r *Dumper) WriteStringProperty(key string, value string) {
	if value == "" {
		return
	}
	r.writeIndent()
	r.writeKey(key)
	r.write(`"` + value + `"` + "\n")
}

func (r *Dumper) WriteBoolProperty(key string, value bool, defaultValue bool) {
	if value == defaultValue {
		return
	}
	r.writeIndent()
	r.writeKey(key)
	if value {
		r.write("1\n")
	} else {
		r.write("0\n")
	}
}

func (r *Dumper) WriteIntProperty(key string, value int32, defaultValue int32) {
	if value == defaultValue {
		return
	}
	r.writeIndent()
	r.writeKey(key)
	r.write(strconv.FormatInt(int64(value), 10) + "\n")
}

func (r *Dumper) WriteFloatProperty(key string, value float32, defaultValue float32) {
	if !floatsDiffer(value, defaultValue) {
		return
	}
	r.writeIndent()
	r.writeKey(key)
	r.write(formatFloat(value) + "\n")
}

func (r *Dumper) WriteColorProperty(key string, value Color, defaultValue Color) {
	if !floatsDiffer(value[0], defaultValue[0]) &&
		!floatsDiffer(value[1], defaultValue[1]) &&
		!floatsDiffer(value[2], defaultValue[2]) &&
		!floatsDiffer(value[3], defaultValue[3]) {
		return
	}
	r.writeIndent()
	r.writeKey(key)
	r.write(fmt.Sprintf(
		"%s %s %s %s\n",
		formatFloat(value[0]), formatFloat(value[1]), formatFloat(value[2]), formatFloat(value[3]),
	))
}

// WriteKeywordProperty writes a bare keyword line for set window flags.
func (r *Dumper) WriteKeywordProperty(key string, shouldWrite bool) {
	if !shouldWrite {
		return
	}
	r.writeIndent()
	r.writeKey(key)
	r.write("\n")
}

// WriteFlagsProperty writes one line per set bit, carrying the bit index.
func (r *Dumper) WriteFlagsProperty(key string, flags int32) {
	for i := 0; i < 32; i++ {
		if flags&(1<<i) != 0 {
			r.writeIndent()
			r.writeKey(key)
			r.write(strconv.Itoa(i) + "\n")
		}
	}
}

func (r *Dumper) WriteRectProperty(key string, rect Rect) {
	r.writeIndent()
	r.writeKey(key)
	r.write(fmt.Sprintf(
		"%s %s %s %s %d %d\n",
		formatFloat(rect.X), formatFloat(rect.Y), formatFloat(rect.W), formatFloat(rect.H),
		rect.HorzAlign, rect.VertAlign,
	))
}

func (r *Dumper) WriteMaterialProperty(key string, material *asset.Material) {
	if material == nil || material.Name == "" {
		return
	}
	// materials with a leading comma are inline; strip the marker
	name := strings.TrimPrefix(material.Name, ",")
	r.WriteStringProperty(key, name)
}

func (r *Dumper) WriteSoundAliasProperty(key string, soundAlias *asset.SndAliasList) {
	if soundAlias == nil {
		return
	}
	r.WriteStringProperty(key, soundAlias.AliasName)
}

func (r *Dumper) WriteStatementProperty(key string, statement *Statement, isBooleanStatement bool) {
	if statement == nil {
		return
	}
	r.writeIndent()
	r.writeKey(key)
	r.write(Serialize(statement, isBooleanStatement))
	r.write(";\n")
}

func (r *Dumper) WriteFloatExpressionsProperty(floatExpressions []FloatExpression) {
	for _, floatExpression := range floatExpressions {
		if floatExpression.Target < 0 || floatExpression.Target >= FloatExpTargetCount {
			continue
		}
		binding := floatExpressionTargetBindings[floatExpression.Target]
		key := "exp " + binding.name + " " + binding.componentName
		r.WriteStatementProperty(key, floatExpression.Expression, false)
	}
}

func (r *Dumper) writeMenuData(menu *MenuDef) {
	r.WriteStringProperty("name", menu.Window.Name)
	r.WriteBoolProperty("fullscreen", menu.FullScreen, false)
	r.WriteKeywordProperty("screenSpace", menu.Window.StaticFlags&WindowFlagScreenSpace != 0)
	r.WriteKeywordProperty("decoration", menu.Window.StaticFlags&WindowFlagDecoration != 0)
	r.WriteRectProperty("rect", menu.Window.Rect)
	r.WriteIntProperty("style", menu.Window.Style, 0)
	r.WriteIntProperty("border", menu.Window.Border, 0)
	r.WriteFloatProperty("borderSize", menu.Window.BorderSize, 0)
	r.WriteColorProperty("backcolor", menu.Window.BackColor, colorTransparent)
	r.WriteColorProperty("forecolor", menu.Window.ForeColor, colorWhite)
	r.WriteColorProperty("bordercolor", menu.Window.BorderColor, colorTransparent)
	r.WriteColorProperty("focuscolor", menu.FocusColor, colorTransparent)
	r.WriteMaterialProperty("background", menu.Window.Background)
	r.WriteIntProperty("ownerdraw", menu.Window.OwnerDraw, 0)
	r.WriteFlagsProperty("ownerdrawFlag", menu.Window.OwnerDrawFlags)
	r.WriteKeywordProperty("outOfBoundsClick", menu.Window.StaticFlags&WindowFlagOutOfBoundsClick != 0)
	r.WriteStringProperty("soundLoop", menu.SoundLoopName)
	r.WriteKeywordProperty("popup", menu.Window.StaticFlags&WindowFlagPopup != 0)
	r.WriteFloatProperty("fadeClamp", menu.FadeClamp, 0)
	r.WriteIntProperty("fadeCycle", menu.FadeCycle, 0)
	r.WriteFloatProperty("fadeAmount", menu.FadeAmount, 0)
	r.WriteFloatProperty("fadeInAmount", menu.FadeInAmount, 0)
	r.WriteFloatProperty("blurWorld", menu.BlurRadius, 0)
	r.WriteKeywordProperty("legacySplitScreenScale", menu.Window.StaticFlags&WindowFlagLegacySplitScreen != 0)
	r.WriteKeywordProperty("hiddenDuringScope", menu.Window.StaticFlags&WindowFlagHiddenDuringScope != 0)
	r.WriteKeywordProperty("hiddenDuringFlashbang", menu.Window.StaticFlags&WindowFlagHiddenDuringFlashBang != 0)
	r.WriteKeywordProperty("hiddenDuringUI", menu.Window.StaticFlags&WindowFlagHiddenDuringUI != 0)
	r.WriteStringProperty("allowedBinding", menu.AllowedBinding)
	r.WriteKeywordProperty("textOnlyFocus", menu.Window.StaticFlags&WindowFlagTextOnlyFocus != 0)
	r.WriteStatementProperty("visible", menu.VisibleExp, true)
	r.WriteStatementProperty("exp rect X", menu.RectXExp, false)
	r.WriteStatementProperty("exp rect Y", menu.RectYExp, false)
	r.WriteStatementProperty("exp rect W", menu.RectWExp, false)
	r.WriteStatementProperty("exp rect H", menu.RectHExp, false)
	r.WriteStatementProperty("exp openSound", menu.OpenSoundExp, false)
	r.WriteStatementProperty("exp closeSound", menu.CloseSoundExp, false)
	r.writeItemDefs(menu.Items)
}

func (r *Dumper) writeItemDefs(items []*ItemDef) {
	for _, item := range items {
		r.writeIndent()
		r.write("itemDef\n")
		r.writeIndent()
		r.write("{\n")
		r.indent++

		r.writeItemData(item)

		r.indent--
		r.writeIndent()
		r.write("}\n")
	}
}

func (r *Dumper) writeItemData(item *ItemDef) {
	r.WriteStringProperty("name", item.Window.Name)
	r.WriteStringProperty("text", item.Text)
	r.WriteKeywordProperty("textsavegame", item.ItemFlags&ItemFlagSaveGameInfo != 0)
	r.WriteKeywordProperty("textcinematicsubtitle", item.ItemFlags&ItemFlagCinematicSubtitle != 0)
	r.WriteStringProperty("group", item.Window.Group)
	r.WriteRectProperty("rect", item.Window.Rect)
	r.WriteIntProperty("style", item.Window.Style, 0)
	r.WriteKeywordProperty("decoration", item.Window.StaticFlags&WindowFlagDecoration != 0)
	r.WriteIntProperty("type", item.Type, 0)
	r.WriteIntProperty("border", item.Window.Border, 0)
	r.WriteFloatProperty("borderSize", item.Window.BorderSize, 0)
	r.WriteStatementProperty("visible", item.VisibleExp, true)
	r.WriteStatementProperty("disabled", item.DisabledExp, true)
	r.WriteIntProperty("ownerDraw", item.Window.OwnerDraw, 0)
	r.WriteIntProperty("align", item.Alignment, 0)
	r.WriteIntProperty("textalign", item.TextAlignMode, 0)
	r.WriteFloatProperty("textalignx", item.TextAlignX, 0)
	r.WriteFloatProperty("textaligny", item.TextAlignY, 0)
	r.WriteFloatProperty("textscale", item.TextScale, 0)
	r.WriteIntProperty("textstyle", item.TextStyle, 0)
	r.WriteIntProperty("textfont", item.TextFont, 0)
	r.WriteColorProperty("backcolor", item.Window.BackColor, colorTransparent)
	r.WriteColorProperty("forecolor", item.Window.ForeColor, colorWhite)
	r.WriteColorProperty("bordercolor", item.Window.BorderColor, colorTransparent)
	r.WriteColorProperty("outlinecolor", item.Window.OutlineColor, colorTransparent)
	r.WriteColorProperty("disablecolor", item.Window.DisableColor, colorTransparent)
	r.WriteColorProperty("glowcolor", item.GlowColor, colorTransparent)
	r.WriteMaterialProperty("background", item.Window.Background)
	r.WriteFloatProperty("special", item.Special, 0)
	r.WriteSoundAliasProperty("focusSound", item.FocusSound)
	r.WriteFlagsProperty("ownerdrawFlag", item.Window.OwnerDrawFlags)
	r.WriteStringProperty("dvarTest", item.DvarTest)
	r.writeDvarFlagProperty(item)
	r.WriteStatementProperty("exp text", item.TextExp, false)
	r.WriteStatementProperty("exp material", item.MaterialExp, false)
	r.WriteFloatExpressionsProperty(item.FloatExpressions)
	r.WriteIntProperty("gamemsgwindowindex", item.GameMsgWindowIndex, 0)
	r.WriteIntProperty("gamemsgwindowmode", item.GameMsgWindowMode, 0)
}

func (r *Dumper) writeDvarFlagProperty(item *ItemDef) {
	switch {
	case item.DvarFlags&ItemDvarFlagEnable != 0:
		r.WriteStringProperty("enableDvar", item.EnableDvar)
	case item.DvarFlags&ItemDvarFlagDisable != 0:
		r.WriteStringProperty("disableDvar", item.EnableDvar)
	case item.DvarFlags&ItemDvarFlagShow != 0:
		r.WriteStringProperty("showDvar", item.EnableDvar)
	case item.DvarFlags&ItemDvarFlagHide != 0:
		r.WriteStringProperty("hideDvar", item.EnableDvar)
	case item.DvarFlags&ItemDvarFlagFocus != 0:
		r.WriteStringProperty("focusDvar", item.EnableDvar)
	}
}
