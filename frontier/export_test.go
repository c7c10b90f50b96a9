package frontier

// Items exposes the raw heap slice to black-box tests.
func (q *Queue[T]) Items() []T { return q.items }
