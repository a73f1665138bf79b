package domain

// Todo is the single managed entity.
// ID is assigned by the store and never changes or gets reused.
type Todo struct {
	ID        int64
	Text      string
	Completed bool
}

// TodoPatch is a partial update: nil fields keep their current value.
type TodoPatch struct {
	Text      *string
	Completed *bool
}

// Apply returns t with the present fields of p replaced.
func (p TodoPatch) Apply(t Todo) Todo {
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}

