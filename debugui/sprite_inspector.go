package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/game2d/sprite"
)

// SpriteInspector lists the sprites of one bucket a page at a time and
// edits the exported fields of the selected one in place.
type SpriteInspector struct {
	bucket       uint32
	hasBucket    bool
	selected     sprite.Handle
	page         int
	spritesPerPg int
}

func NewSpriteInspector() *SpriteInspector {
	return &SpriteInspector{spritesPerPg: 50}
}

// SelectBucket switches the list to bucket id.
func (si *SpriteInspector) SelectBucket(id uint32) {
	if si.hasBucket && si.bucket == id {
		return
	}
	si.bucket, si.hasBucket = id, true
	si.selected = 0
	si.page = 0
}

func (si *SpriteInspector) Render(reg *sprite.Registry) {
	if !imgui.BeginV("Sprite Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if !si.hasBucket {
		imgui.Text("Select a bucket")
		imgui.End()
		return
	}

	handles := bucketHandles(reg, si.bucket)
	totalPages := max(1, (len(handles)+si.spritesPerPg-1)/si.spritesPerPg)
	si.page = min(si.page, totalPages-1)

	imgui.Text(fmt.Sprintf("Bucket %d: %d sprites", si.bucket, len(handles)))
	if totalPages > 1 {
		if imgui.Button("Prev") && si.page > 0 {
			si.page--
		}
		imgui.SameLine()
		imgui.Text(fmt.Sprintf("Page %d / %d", si.page+1, totalPages))
		imgui.SameLine()
		if imgui.Button("Next") && si.page < totalPages-1 {
			si.page++
		}
	}

	start := si.page * si.spritesPerPg
	end := min(start+si.spritesPerPg, len(handles))
	for _, h := range handles[start:end] {
		s, ok := reg.Lookup(h)
		if !ok {
			continue
		}
		x, y := s.Position()
		label := fmt.Sprintf("%s  (%.0f, %.0f)", h, x, y)
		if imgui.SelectableBoolV(label, si.selected == h, imgui.SelectableFlagsNone, imgui.NewVec2(0, 0)) {
			si.selected = h
		}
	}

	if s, ok := reg.Lookup(si.selected); ok {
		imgui.Separator()
		w, h := s.Size()
		imgui.Text(fmt.Sprintf("Handle %s, size %.0fx%.0f", si.selected, w, h))
		renderFields(reflect.ValueOf(s).Elem())
	}

	imgui.End()
}

func bucketHandles(reg *sprite.Registry, bucket uint32) []sprite.Handle {
	var handles []sprite.Handle
	for h := range reg.All() {
		if h.Bucket() == bucket {
			handles = append(handles, h)
		}
	}
	return handles
}

// renderFields draws an editor for every exported field of the struct v.
// v must be addressable.
func renderFields(v reflect.Value) {
	if v.Kind() != reflect.Struct {
		imgui.Text(fmt.Sprintf("%v", v.Interface()))
		return
	}
	for _, field := range fieldsOf(v.Type()) {
		renderField(field.Name, v.Field(field.Index))
	}
}

func renderField(name string, val reflect.Value) {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", name))
			return
		}
		val = val.Elem()
	}

	id := fmt.Sprintf("##%s", name)
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(id, &v) && val.CanSet() && !val.OverflowInt(int64(v)) {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(id, &v) && v >= 0 && val.CanSet() && !val.OverflowUint(uint64(v)) {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(id, &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(id, "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			for _, field := range fieldsOf(val.Type()) {
				renderField(field.Name, val.Field(field.Index))
			}
			imgui.TreePop()
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %s", name, val.Type()))
	}
}
