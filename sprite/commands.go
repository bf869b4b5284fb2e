package sprite

// Commands buffers registry changes made while sprites are being updated.
// They are applied after UpdateAll so no bucket changes mid-iteration.
type Commands struct {
	removes []Handle
	spawns  []func(*Registry)
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues adding v to the registry.
func Spawn[T any, PT interface {
	*T
	Sprite
}](c *Commands, v T) {
	c.spawns = append(c.spawns, func(r *Registry) {
		Add[T, PT](r, v)
	})
}

// Remove queues removing the sprite for h.
func (c *Commands) Remove(h Handle) {
	c.removes = append(c.removes, h)
}

// Defer queues fn to run after removals and spawns are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.removes) + len(c.spawns) + len(c.defers)
}

// Flush applies removals, then spawns, then deferred funcs, and resets the
// buffer.
func (c *Commands) Flush(r *Registry) {
	for _, h := range c.removes {
		r.Remove(h)
	}
	for _, spawn := range c.spawns {
		spawn(r)
	}
	for _, fn := range c.defers {
		fn()
	}

	clear(c.spawns)
	clear(c.defers)
	c.removes = c.removes[:0]
	c.spawns = c.spawns[:0]
	c.defers = c.defers[:0]
}
