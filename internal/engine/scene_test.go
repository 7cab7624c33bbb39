package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Rig")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}
	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneUIDLookup(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Rig")

	scene.AddGameObject(obj)

	if found := scene.FindByUID(obj.UID); found != obj {
		t.Errorf("FindByUID failed: expected %v, got %v", obj, found)
	}
	if scene.FindByUID(99999) != nil {
		t.Error("FindByUID should return nil for non-existent UID")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Rig")
	obj2 := NewGameObject("Ground")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)
	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject after removal, got %d", len(scene.GameObjects))
	}
	if scene.FindByUID(obj1.UID) != nil {
		t.Error("Removed GameObject still in UID map")
	}
	if scene.FindByUID(obj2.UID) != obj2 {
		t.Error("Remaining GameObject not in UID map")
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("SpawnMarker")

	scene.AddGameObject(obj)

	if scene.FindByName("SpawnMarker") != obj {
		t.Error("FindByName failed")
	}
	if scene.FindByName("DoesNotExist") != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
}

type countingComponent struct {
	BaseComponent
	started int
	updates int
}

func (c *countingComponent) Start()                   { c.started++ }
func (c *countingComponent) Update(deltaTime float32) { c.updates++ }

func TestGameObjectComponentLifecycle(t *testing.T) {
	obj := NewGameObject("Rig")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	obj.Start()
	obj.Start() // second Start must not re-run components
	if comp.started != 1 {
		t.Errorf("Start ran %d times, want 1", comp.started)
	}

	obj.Update(0.016)
	obj.Active = false
	obj.Update(0.016) // inactive objects skip updates
	if comp.updates != 1 {
		t.Errorf("Update ran %d times, want 1", comp.updates)
	}

	if comp.GetGameObject() != obj {
		t.Error("AddComponent did not back-link the GameObject")
	}
}

func TestGetComponentByType(t *testing.T) {
	obj := NewGameObject("Rig")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	if got := GetComponent[*countingComponent](obj); got != comp {
		t.Error("GetComponent did not find the component")
	}
	if got := GetComponent[*countingComponent](nil); got != nil {
		t.Error("GetComponent on nil object should return zero value")
	}
}

func TestEventInvokesListenersInOrder(t *testing.T) {
	var order []int
	var e Event
	e.AddListener(func() { order = append(order, 1) })
	e.AddListener(func() { order = append(order, 2) })
	e.AddListener(nil) // ignored

	e.Invoke()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("listener order = %v, want [1 2]", order)
	}

	e.RemoveAllListeners()
	e.Invoke()
	if len(order) != 2 {
		t.Error("listeners fired after RemoveAllListeners")
	}
}
