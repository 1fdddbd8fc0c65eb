package domain

// Envelope is the uniform shape media and subscription calls hand back to
// callers instead of raising errors.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	ID      string `json:"id,omitempty"`
	Status  string `json:"status,omitempty"`
}

const StatusPending = "pending"

func Succeeded[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: &data}
}

func Failed[T any](message string) Envelope[T] {
	return Envelope[T]{Success: false, Error: message}
}

func Pending[T any](id string) Envelope[T] {
	return Envelope[T]{Success: true, Status: StatusPending, ID: id}
}

func (e Envelope[T]) IsPending() bool {
	return e.Success && e.Status == StatusPending
}
