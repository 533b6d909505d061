package menu

import (
	"zonetext/asset"
)

type (
	Color [4]float32

	Rect struct {
		X         float32 `json:"x"`
		Y         float32 `json:"y"`
		W         float32 `json:"w"`
		H         float32 `json:"h"`
		HorzAlign int32   `json:"horz_align"`
		VertAlign int32   `json:"vert_align"`
	}

	WindowDef struct {
		Name           string          `json:"name"`
		Group          string          `json:"group"`
		Rect           Rect            `json:"rect"`
		Style          int32           `json:"style"`
		Border         int32           `json:"border"`
		BorderSize     float32         `json:"border_size"`
		OwnerDraw      int32           `json:"owner_draw"`
		OwnerDrawFlags int32           `json:"owner_draw_flags"`
		StaticFlags    int32           `json:"static_flags"`
		Background     *asset.Material `json:"background"`
		BackColor      Color           `json:"back_color"`
		ForeColor      Color           `json:"fore_color"`
		BorderColor    Color           `json:"border_color"`
		OutlineColor   Color           `json:"outline_color"`
		DisableColor   Color           `json:"disable_color"`
	}

	MenuDef struct {
		Window         WindowDef  `json:"window"`
		FullScreen     bool       `json:"full_screen"`
		FocusColor     Color      `json:"focus_color"`
		SoundLoopName  string     `json:"sound_loop_name"`
		AllowedBinding string     `json:"allowed_binding"`
		FadeClamp      float32    `json:"fade_clamp"`
		FadeCycle      int32      `json:"fade_cycle"`
		FadeAmount     float32    `json:"fade_amount"`
		FadeInAmount   float32    `json:"fade_in_amount"`
		BlurRadius     float32    `json:"blur_radius"`
		VisibleExp     *Statement `json:"visible_exp"`
		RectXExp       *Statement `json:"rect_x_exp"`
		RectYExp       *Statement `json:"rect_y_exp"`
		RectWExp       *Statement `json:"rect_w_exp"`
		RectHExp       *Statement `json:"rect_h_exp"`
		OpenSoundExp   *Statement `json:"open_sound_exp"`
		CloseSoundExp  *Statement `json:"close_sound_exp"`
		Items          []*ItemDef `json:"items"`
	}

	ItemDef struct {
		Window             WindowDef           `json:"window"`
		Type               int32               `json:"type"`
		Text               string              `json:"text"`
		TextFont           int32               `json:"text_font"`
		Alignment          int32               `json:"alignment"`
		TextAlignMode      int32               `json:"text_align_mode"`
		TextAlignX         float32             `json:"text_align_x"`
		TextAlignY         float32             `json:"text_align_y"`
		TextScale          float32             `json:"text_scale"`
		TextStyle          int32               `json:"text_style"`
		GlowColor          Color               `json:"glow_color"`
		FocusSound         *asset.SndAliasList `json:"focus_sound"`
		Special            float32             `json:"special"`
		DvarTest           string              `json:"dvar_test"`
		EnableDvar         string              `json:"enable_dvar"`
		DvarFlags          int32               `json:"dvar_flags"`
		ItemFlags          int32               `json:"item_flags"`
		VisibleExp         *Statement          `json:"visible_exp"`
		DisabledExp        *Statement          `json:"disabled_exp"`
		TextExp            *Statement          `json:"text_exp"`
		MaterialExp        *Statement          `json:"material_exp"`
		FloatExpressions   []FloatExpression   `json:"float_expressions"`
		GameMsgWindowIndex int32               `json:"game_msg_window_index"`
		GameMsgWindowMode  int32               `json:"game_msg_window_mode"`
	}

	FloatExpressionTarget int32

	FloatExpression struct {
		Target     FloatExpressionTarget `json:"target"`
		Expression *Statement            `json:"expression"`
	}

	floatExpressionTargetBinding struct {
		name          string
		componentName string
	}
)

const (
	WindowFlagDecoration            = int32(1 << 0)
	WindowFlagScreenSpace           = int32(1 << 1)
	WindowFlagOutOfBoundsClick      = int32(1 << 2)
	WindowFlagPopup                 = int32(1 << 3)
	WindowFlagLegacySplitScreen     = int32(1 << 4)
	WindowFlagHiddenDuringScope     = int32(1 << 5)
	WindowFlagHiddenDuringFlashBang = int32(1 << 6)
	WindowFlagHiddenDuringUI        = int32(1 << 7)
	WindowFlagTextOnlyFocus         = int32(1 << 8)
)

const (
	ItemDvarFlagEnable  = int32(1 << 0)
	ItemDvarFlagDisable = int32(1 << 1)
	ItemDvarFlagShow    = int32(1 << 2)
	ItemDvarFlagHide    = int32(1 << 3)
	ItemDvarFlagFocus   = int32(1 << 4)
)

const (
	ItemFlagSaveGameInfo      = int32(1 << 0)
	ItemFlagCinematicSubtitle = int32(1 << 1)
)

const (
	FloatExpTargetRectX FloatExpressionTarget = iota
	FloatExpTargetRectY
	FloatExpTargetRectW
	FloatExpTargetRectH
	FloatExpTargetForeColorR
	FloatExpTargetForeColorG
	FloatExpTargetForeColorB
	FloatExpTargetForeColorRGB
	FloatExpTargetForeColorA
	FloatExpTargetGlowColorR
	FloatExpTargetGlowColorG
	FloatExpTargetGlowColorB
	FloatExpTargetGlowColorRGB
	FloatExpTargetGlowColorA
	FloatExpTargetBackColorR
	FloatExpTargetBackColorG
	FloatExpTargetBackColorB
	FloatExpTargetBackColorRGB
	FloatExpTargetBackColorA
	FloatExpTargetCount
)

var floatExpressionTargetBindings = [FloatExpTargetCount]floatExpressionTargetBinding{
	{"rect", "x"},
	{"rect", "y"},
	{"rect", "w"},
	{"rect", "h"},
	{"forecolor", "r"},
	{"forecolor", "g"},
	{"forecolor", "b"},
	{"forecolor", "rgb"},
	{"forecolor", "a"},
	{"glowcolor", "r"},
	{"glowcolor", "g"},
	{"glowcolor", "b"},
	{"glowcolor", "rgb"},
	{"glowcolor", "a"},
	{"backcolor", "r"},
	{"backcolor", "g"},
	{"backcolor", "b"},
	{"backcolor", "rgb"},
	{"backcolor", "a"},
}

var (
	colorTransparent = Color{0, 0, 0, 0}
	colorWhite       = Color{1, 1, 1, 1}
)
