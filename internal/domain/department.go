package domain

import "time"

// Department is a weak reference target for resources. A department does
// not own the resources tagged with it.
type Department struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
