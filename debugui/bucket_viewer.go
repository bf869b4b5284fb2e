package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/game2d/sprite"
)

// BucketViewer lists the sprite registry's buckets in a sortable table.
type BucketViewer struct {
	rows          []sprite.BucketStats
	selected      uint32
	hasSelection  bool
	sortColumn    int
	sortAscending bool
}

func NewBucketViewer() *BucketViewer {
	return &BucketViewer{sortColumn: 2}
}

// Render draws the table. It returns the bucket id clicked this frame.
func (bv *BucketViewer) Render(reg *sprite.Registry) (uint32, bool) {
	if !imgui.BeginV("Sprite Buckets", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return 0, false
	}

	stats := reg.Stats()
	bv.rows = append(bv.rows[:0], stats.Buckets...)
	bv.sortRows()

	imgui.Text(fmt.Sprintf("Sprites: %d in %d buckets", stats.Sprites, len(stats.Buckets)))

	maxCount := 0
	for _, row := range bv.rows {
		maxCount = max(maxCount, row.Count)
	}

	var clicked uint32
	var didClick bool

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("BucketTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Bucket")
		imgui.TableSetupColumn("Type")
		imgui.TableSetupColumn("Count")
		imgui.TableSetupColumn("Slots / Capacity")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			bv.sortColumn = int(spec.ColumnIndex())
			bv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			bv.sortRows()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, row := range bv.rows {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := bv.hasSelection && bv.selected == row.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				bv.selected, bv.hasSelection = row.ID, true
				clicked, didClick = row.ID, true
			}

			imgui.TableNextColumn()
			imgui.Text(row.Type)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Count))
			if maxCount > 0 {
				barWidth := float32(row.Count) / float32(maxCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d / %d", row.Slots, row.Capacity))
		}

		imgui.EndTable()
	}

	imgui.End()
	return clicked, didClick
}

func (bv *BucketViewer) sortRows() {
	sortBuckets(bv.rows, bv.sortColumn, bv.sortAscending)
}

func sortBuckets(rows []sprite.BucketStats, column int, ascending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !ascending {
			a, b = b, a
		}
		switch column {
		case 0:
			return a.ID < b.ID
		case 1:
			return a.Type < b.Type
		case 3:
			return a.Slots < b.Slots
		default:
			return a.Count < b.Count
		}
	})
}
