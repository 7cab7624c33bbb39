package game

import (
	"fmt"

	"rigforge/internal/rig"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const toolbarHeight = 36

// requestTest is set by the toolbar and consumed by the game loop.
var requestTest bool

// DrawUI draws the toolbar and the side panels. Runs outside of
// BeginMode3D.
func (e *Editor) DrawUI() {
	e.drawToolbar()
	e.drawMappingPanel()
	e.drawClipsPanel()
	e.drawStatusMessage()
}

func (e *Editor) drawToolbar() {
	screenW := int32(rl.GetScreenWidth())
	rl.DrawRectangle(0, 0, screenW, toolbarHeight, colorBgDark)
	rl.DrawRectangle(0, toolbarHeight-1, screenW, 1, colorBorder)

	x := int32(8)
	if button(x, 6, 86, 24, "Auto-Map") {
		e.session.AutoMap()
		e.undoStack = e.undoStack[:0]
		e.setMsg("Mapped %d bones", len(e.session.Mapping))
	}
	x += 94
	if button(x, 6, 82, 24, "Retarget") {
		e.session.RetargetAll()
		e.setMsg("Retargeted %d clips", len(e.session.Retargeted))
	}
	x += 90
	if button(x, 6, 94, 24, "Export Rig") {
		e.exportRig()
	}
	x += 102
	if button(x, 6, 96, 24, "Export Map") {
		e.exportMap()
	}
	x += 104
	if button(x, 6, 56, 24, "Shot") {
		e.screenshotPath = "preview.webp"
	}
	x += 64
	if button(x, 6, 52, 24, "Save") {
		e.saveProject()
	}
	x += 60
	if button(x, 6, 52, 24, "Test") {
		requestTest = true
	}

	rl.DrawText("Rigforge", screenW-90, 10, 18, colorTextMuted)
}

// drawMappingPanel lists every source bone with its target binding.
// Clicking a target cell cycles through viable candidates, right-click
// clears the binding.
func (e *Editor) drawMappingPanel() {
	panelX := int32(0)
	panelY := int32(toolbarHeight)
	panelW := int32(300)
	panelH := int32(rl.GetScreenHeight()) - panelY

	rl.DrawRectangle(panelX, panelY, panelW, panelH, colorBgPanel)
	rl.DrawRectangle(panelX+panelW-2, panelY, 2, panelH, colorBorder)

	rl.DrawText("Bone Mapping", panelX+12, panelY+8, 18, colorTextSecondary)

	sources := e.session.SourceBoneNames()
	mousePos := rl.GetMousePosition()
	mouseInPanel := mousePos.X >= float32(panelX) && mousePos.X <= float32(panelX+panelW) &&
		mousePos.Y >= float32(panelY) && mousePos.Y <= float32(panelY+panelH)

	if mouseInPanel && !rl.IsMouseButtonDown(rl.MouseRightButton) {
		e.mappingScroll -= int32(rl.GetMouseWheelMove() * 20)
	}

	itemH := int32(22)
	e.mappingScroll = clampScroll(e.mappingScroll, int32(len(sources))*itemH+34, panelH)

	y := panelY + 30
	rl.BeginScissorMode(panelX, panelY+26, panelW, panelH-26)

	for i, source := range sources {
		itemY := y + int32(i)*itemH - e.mappingScroll
		if itemY+itemH < panelY+26 || itemY > panelY+panelH {
			continue
		}

		target, mapped := e.session.Mapping.Resolve(source)
		hovered := mouseInPanel && mousePos.Y >= float32(itemY) && mousePos.Y < float32(itemY+itemH)
		selected := e.selectedSource == source

		if selected {
			rl.DrawRectangle(panelX, itemY, panelW, itemH, colorSelection)
			rl.DrawRectangle(panelX, itemY, 3, itemH, colorAccent)
		} else if hovered {
			rl.DrawRectangle(panelX, itemY, panelW, itemH, colorBgHover)
		}

		srcColor := colorTextSecondary
		if !mapped {
			srcColor = colorWarn
		}
		rl.DrawText(truncate(source, 20), panelX+10, itemY+4, 15, srcColor)

		targetLabel := target
		targetColor := colorAccentLight
		if !mapped {
			targetLabel = "-"
			targetColor = colorTextMuted
		}
		rl.DrawText(truncate(targetLabel, 14), panelX+176, itemY+4, 15, targetColor)

		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			e.selectedSource = source
			e.cycleTarget(source)
		}
		if hovered && rl.IsMouseButtonPressed(rl.MouseRightButton) {
			e.selectedSource = source
			e.clearTarget(source)
		}
	}

	rl.EndScissorMode()

	if len(sources) == 0 {
		rl.DrawText("Load animations to see", panelX+12, panelY+36, 15, colorTextMuted)
		rl.DrawText("source bones here", panelX+12, panelY+54, 15, colorTextMuted)
	}
}

// cycleTarget advances a source bone's binding through its scored
// candidates, then to unmapped, then wraps around.
func (e *Editor) cycleTarget(source string) {
	candidates := rig.CandidateTargets(source, e.session.Bones)
	if len(candidates) == 0 {
		return
	}

	current, mapped := e.session.Mapping.Resolve(source)
	next := candidates[0]
	if mapped {
		next = ""
		for i, c := range candidates {
			if c == current && i+1 < len(candidates) {
				next = candidates[i+1]
				break
			}
		}
	}

	e.pushUndo(source)
	e.session.Mapping.Set(source, next)
	e.session.MappingChanged.Invoke()
}

func (e *Editor) clearTarget(source string) {
	if _, mapped := e.session.Mapping.Resolve(source); !mapped {
		return
	}
	e.pushUndo(source)
	e.session.Mapping.ClearTarget(source)
	e.session.MappingChanged.Invoke()
}

// drawClipsPanel lists retargeted clips and the action bindings.
func (e *Editor) drawClipsPanel() {
	screenW := int32(rl.GetScreenWidth())
	panelW := int32(240)
	panelX := screenW - panelW
	panelY := int32(toolbarHeight)
	panelH := int32(rl.GetScreenHeight()) - panelY

	rl.DrawRectangle(panelX, panelY, panelW, panelH, colorBgPanel)
	rl.DrawRectangle(panelX, panelY, 2, panelH, colorBorder)

	rl.DrawText("Clips", panelX+12, panelY+8, 18, colorTextSecondary)

	mousePos := rl.GetMousePosition()
	mouseInPanel := mousePos.X >= float32(panelX) && mousePos.X <= float32(panelX+panelW) &&
		mousePos.Y >= float32(panelY) && mousePos.Y <= float32(panelY+panelH)

	if mouseInPanel && !rl.IsMouseButtonDown(rl.MouseRightButton) {
		e.clipsScroll -= int32(rl.GetMouseWheelMove() * 20)
	}

	itemH := int32(22)
	actionsH := int32(24 + len(actionNames)*22 + 64)
	contentH := int32(len(e.session.Retargeted))*itemH + 12 + actionsH + 34
	e.clipsScroll = clampScroll(e.clipsScroll, contentH, panelH)

	y := panelY + 30 - e.clipsScroll
	rl.BeginScissorMode(panelX, panelY+26, panelW, panelH-26)

	for i := range e.session.Retargeted {
		clip := &e.session.Retargeted[i]
		itemY := y + int32(i)*itemH
		if itemY+itemH < panelY+26 || itemY > panelY+panelH {
			continue
		}

		hovered := mouseInPanel &&
			mousePos.Y >= float32(itemY) && mousePos.Y < float32(itemY+itemH)
		selected := e.previewClip == clip.Name

		if selected {
			rl.DrawRectangle(panelX, itemY, panelW, itemH, colorSelection)
			rl.DrawRectangle(panelX, itemY, 3, itemH, colorAccent)
		} else if hovered {
			rl.DrawRectangle(panelX, itemY, panelW, itemH, colorBgHover)
		}

		label := fmt.Sprintf("%s  [%d]", truncate(clip.Name, 18), len(clip.Tracks))
		rl.DrawText(label, panelX+10, itemY+4, 15, colorTextSecondary)

		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			if selected {
				e.previewClip = ""
			} else {
				e.previewClip = clip.Name
			}
		}
	}

	e.drawActionBindings(panelX, panelW, y+int32(len(e.session.Retargeted))*itemH+12)

	rl.EndScissorMode()
}

var actionNames = []string{"idle", "walk", "run", "jump"}

// drawActionBindings shows which clip plays for each gameplay action in
// test mode. Clicking cycles through the loaded clips.
func (e *Editor) drawActionBindings(panelX, panelW, y int32) {
	rl.DrawText("Actions", panelX+12, y, 18, colorTextSecondary)
	y += 24

	mousePos := rl.GetMousePosition()
	itemH := int32(22)

	for i, action := range actionNames {
		itemY := y + int32(i)*itemH

		hovered := mousePos.X >= float32(panelX) && mousePos.X <= float32(panelX+panelW) &&
			mousePos.Y >= float32(toolbarHeight+26) &&
			mousePos.Y >= float32(itemY) && mousePos.Y < float32(itemY+itemH)
		if hovered {
			rl.DrawRectangle(panelX, itemY, panelW, itemH, colorBgHover)
		}

		rl.DrawText(action, panelX+10, itemY+4, 15, colorTextSecondary)

		bound := e.session.Actions[action]
		boundColor := colorAccentLight
		if bound == "" {
			bound = "-"
			boundColor = colorTextMuted
		}
		rl.DrawText(truncate(bound, 14), panelX+90, itemY+4, 15, boundColor)

		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			e.cycleAction(action)
		}
		if hovered && rl.IsMouseButtonPressed(rl.MouseRightButton) {
			delete(e.session.Actions, action)
		}
	}

	toggleY := y + int32(len(actionNames))*itemH + 10
	checkBounds := rl.Rectangle{X: float32(panelX + 10), Y: float32(toggleY), Width: 16, Height: 16}
	e.showSkeleton = gui.CheckBox(checkBounds, "Skeleton overlay", e.showSkeleton)

	speedBounds := rl.Rectangle{X: float32(panelX + 10), Y: float32(toggleY + 26), Width: float32(panelW - 70), Height: 16}
	e.playbackFPS = gui.Slider(speedBounds, "", fmt.Sprintf("%.0f fps", e.playbackFPS), e.playbackFPS, 1, 60)
}

func (e *Editor) cycleAction(action string) {
	clips := e.session.Retargeted
	if len(clips) == 0 {
		return
	}

	current := e.session.Actions[action]
	next := clips[0].Name
	if current != "" {
		next = ""
		for i := range clips {
			if clips[i].Name == current && i+1 < len(clips) {
				next = clips[i+1].Name
				break
			}
		}
	}

	if next == "" {
		delete(e.session.Actions, action)
	} else {
		e.session.Actions[action] = next
	}
}

func (e *Editor) drawStatusMessage() {
	if e.saveMsg == "" || rl.GetTime()-e.saveMsgTime > 3.0 {
		return
	}
	screenH := int32(rl.GetScreenHeight())
	rl.DrawText(e.saveMsg, 310, screenH-28, 16, colorAccentLight)
}

// clampScroll keeps a panel's scroll offset inside the scrollable range.
func clampScroll(scroll, contentH, viewH int32) int32 {
	max := contentH - viewH
	if max < 0 {
		max = 0
	}
	if scroll > max {
		return max
	}
	if scroll < 0 {
		return 0
	}
	return scroll
}

// truncate shortens a label to max runes so multi-byte bone names do
// not get cut mid-rune.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "~"
}
